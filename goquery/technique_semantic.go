package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clemfromspace/extraction"
)

var _ extraction.Technique = (*Semantic)(nil)

// Per-field ceilings for the generic sweep. Structurally tagged data is
// trusted more than generic tags, so the caps tighten as tag quality
// drops: h1/h2 over h3, and only a handful of paragraphs and images.
const (
	maxHeadingTitles = 3  // h1 and h2 combined
	maxSubheadTitles = 1  // h3
	maxSweepDescs    = 5  // p
	maxSweepImages   = 10 // img
)

// Semantic sweeps generic tags: h1/h2/h3 for titles, p for
// descriptions, img for images. A true last resort, capped per field so
// noisy pages cannot flood the result.
type Semantic struct{}

// NewSemantic creates a new Semantic technique.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the technique's registry identifier.
func (t *Semantic) Name() string {
	return "semantic"
}

// Extract sweeps the generic tags, honoring the per-field ceilings
// regardless of how many matching tags exist. Headings are ordered by
// quality before document order: every h1 comes before any h2, and the
// h2s only fill whatever the h1s left of the combined cap.
func (t *Semantic) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	fields := &extraction.Fields{}

	fields.Titles = collectText(doc, "h1", maxHeadingTitles)
	fields.Titles = append(fields.Titles, collectText(doc, "h2", maxHeadingTitles-len(fields.Titles))...)
	fields.Titles = append(fields.Titles, collectText(doc, "h3", maxSubheadTitles)...)
	fields.Descriptions = collectText(doc, "p", maxSweepDescs)
	fields.Images = collectAttr(doc, "img[src]", "src", maxSweepImages)

	return fields, nil
}

// collectText gathers trimmed text content of matching elements in
// document order, storing at most max non-empty values.
func collectText(doc *goquery.Document, selector string, max int) []string {
	var values []string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(values) >= max {
			return false
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			values = append(values, text)
		}
		return true
	})
	return values
}

// collectAttr gathers an attribute of matching elements in document
// order, storing at most max non-empty values.
func collectAttr(doc *goquery.Document, selector, attr string, max int) []string {
	var values []string
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(values) >= max {
			return false
		}
		if value := sel.AttrOr(attr, ""); value != "" {
			values = append(values, value)
		}
		return true
	})
	return values
}
