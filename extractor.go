package extraction

import "fmt"

// Extractor runs an ordered list of techniques against one HTML
// document and merges their outputs into a single Extracted record.
// Technique order is significant: values from earlier techniques come
// first in every field list, and the best-value accessors return the
// first value, so higher quality techniques belong at the front.
type Extractor struct {
	techniques []Technique
}

// NewExtractor creates an Extractor running the given techniques in order.
func NewExtractor(techniques ...Technique) *Extractor {
	return &Extractor{techniques: techniques}
}

// NewExtractorFromRegistry resolves an ordered list of technique names
// against a registry. Returns ENOTFOUND if any name is not registered.
func NewExtractorFromRegistry(registry TechniqueRegistry, names ...string) (*Extractor, error) {
	techniques := make([]Technique, 0, len(names))
	for _, name := range names {
		technique, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		techniques = append(techniques, technique)
	}
	return NewExtractor(techniques...), nil
}

// Techniques returns the configured techniques in execution order.
func (e *Extractor) Techniques() []Technique {
	return e.techniques
}

// Extract runs every technique against the document and merges their
// outputs. Techniques run sequentially and independently; each parses
// the document on its own and none sees another's results.
func (e *Extractor) Extract(html string) (*Extracted, error) {
	extracted := &Extracted{}
	for _, technique := range e.techniques {
		fields, err := technique.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("technique %q: %w", technique.Name(), err)
		}
		extracted.Merge(fields)
	}
	return extracted, nil
}
