// Package trafilatura adapts go-trafilatura's document metadata to the
// extraction field vocabulary.
package trafilatura

import (
	"strings"

	"github.com/clemfromspace/extraction"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Metadata implements extraction.Technique at compile time.
var _ extraction.Technique = (*Metadata)(nil)

// Metadata is the highest quality general technique here: trafilatura
// cross-checks meta tags, JSON-LD and visible content before settling
// on a value, at the cost of a full content-extraction pass.
type Metadata struct{}

// NewMetadata creates a new Metadata technique.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// Name returns the technique's registry identifier.
func (t *Metadata) Name() string {
	return "trafilatura"
}

// Extract maps trafilatura's metadata onto the field vocabulary. A page
// trafilatura cannot process yields empty fields, not an error.
func (t *Metadata) Extract(rawHTML string) (*extraction.Fields, error) {
	fields := &extraction.Fields{}
	if rawHTML == "" {
		return fields, nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{})
	if err != nil {
		// trafilatura errors when a page has no extractable content;
		// for a technique that is "found nothing".
		return fields, nil
	}

	meta := result.Metadata
	if title := strings.TrimSpace(meta.Title); title != "" {
		fields.Titles = append(fields.Titles, title)
	}
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		fields.Descriptions = append(fields.Descriptions, desc)
	}
	if url := strings.TrimSpace(meta.URL); url != "" {
		fields.URLs = append(fields.URLs, url)
	}

	// trafilatura joins multiple authors with semicolons.
	for _, author := range strings.Split(meta.Author, ";") {
		if author = strings.TrimSpace(author); author != "" {
			fields.Authors = append(fields.Authors, author)
		}
	}

	for _, tag := range meta.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			fields.Tags = append(fields.Tags, tag)
		}
	}
	for _, category := range meta.Categories {
		if category = strings.TrimSpace(category); category != "" {
			fields.Tags = append(fields.Tags, category)
		}
	}

	if !meta.Date.IsZero() {
		fields.Dates = append(fields.Dates, meta.Date.Format("2006-01-02"))
	}

	return fields, nil
}
