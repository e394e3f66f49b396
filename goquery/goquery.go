// Package goquery provides CSS-selector based implementations of
// extraction.Technique built on PuerkitoBio/goquery, plus the
// TechniqueRegistry implementation that selects them by name.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clemfromspace/extraction"
)

// parseDocument parses an HTML string leniently. The underlying x/net
// parser tolerates malformed markup, so failures here are limited to
// reader errors and surface as EINVALID.
func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, extraction.Errorf(extraction.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// extractMetaFields collects meta tag content into fields in document
// order, keyed by the given attribute (property for Open Graph, name
// for Twitter cards).
func extractMetaFields(doc *goquery.Document, keyAttr string, mapping map[string]extraction.Field) *extraction.Fields {
	fields := &extraction.Fields{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		key, ok := sel.Attr(keyAttr)
		if !ok {
			return
		}
		field, ok := mapping[key]
		if !ok {
			return
		}
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}
		_ = fields.Append(field, content)
	})
	return fields
}
