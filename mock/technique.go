// Package mock provides function-field mocks of the extraction interfaces.
package mock

import "github.com/clemfromspace/extraction"

var _ extraction.Technique = (*Technique)(nil)

// Technique is a mock implementation of extraction.Technique.
type Technique struct {
	ExtractFn func(html string) (*extraction.Fields, error)
	NameFn    func() string
}

func (t *Technique) Extract(html string) (*extraction.Fields, error) {
	return t.ExtractFn(html)
}

func (t *Technique) Name() string {
	return t.NameFn()
}
