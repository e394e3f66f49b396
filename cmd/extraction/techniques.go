package main

import "fmt"

// Run executes the techniques command.
func (c *TechniquesCmd) Run(deps *Dependencies) error {
	for _, name := range deps.Registry.List() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
