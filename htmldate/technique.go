// Package htmldate provides a publication-date technique built on
// go-htmldate, which inspects meta tags, time elements and visible date
// patterns.
package htmldate

import (
	"strings"

	"github.com/clemfromspace/extraction"
	"github.com/markusmobius/go-htmldate"
)

// Ensure PublishDate implements extraction.Technique at compile time.
var _ extraction.Technique = (*PublishDate)(nil)

// PublishDate extracts the document's publication date into the dates
// field, formatted as YYYY-MM-DD.
type PublishDate struct{}

// NewPublishDate creates a new PublishDate technique.
func NewPublishDate() *PublishDate {
	return &PublishDate{}
}

// Name returns the technique's registry identifier.
func (t *PublishDate) Name() string {
	return "html_date"
}

// Extract returns at most one date. A document with no recognizable
// date yields empty fields, not an error.
func (t *PublishDate) Extract(rawHTML string) (*extraction.Fields, error) {
	fields := &extraction.Fields{}
	if rawHTML == "" {
		return fields, nil
	}

	result, err := htmldate.FromReader(strings.NewReader(rawHTML), htmldate.Options{})
	if err != nil || result.IsZero() {
		return fields, nil
	}

	fields.Dates = append(fields.Dates, result.DateTime.Format("2006-01-02"))
	return fields, nil
}
