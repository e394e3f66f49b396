package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clemfromspace/extraction"
)

var _ extraction.Technique = (*RuleTechnique)(nil)

// Rule describes one extraction step for a RuleTechnique: a CSS
// selector, the destination field, an optional attribute to read (text
// content when empty), and an optional cap on stored values (0 = no cap).
type Rule struct {
	Selector string
	Field    extraction.Field
	Attr     string
	Max      int
}

// RuleTechnique is a technique assembled from caller-supplied rules.
// It is the extension point for site-specific extraction, e.g. pulling
// dates, tags or addresses out of a known page layout:
//
//	technique, _ := goquery.NewRuleTechnique("lethain_com", []goquery.Rule{
//	    {Selector: "div.page h2", Field: extraction.FieldTitles, Max: 1},
//	    {Selector: "span.date", Field: extraction.FieldDates, Max: 1},
//	    {Selector: "span.tag a", Field: extraction.FieldTags},
//	    {Selector: "div.text img", Field: extraction.FieldImages, Attr: "src"},
//	})
type RuleTechnique struct {
	name  string
	rules []Rule
}

// NewRuleTechnique creates a technique from rules. Returns EINVALID if
// the name is empty, a rule has no selector, or a rule names a field
// outside the known vocabulary.
func NewRuleTechnique(name string, rules []Rule) (*RuleTechnique, error) {
	if name == "" {
		return nil, extraction.Errorf(extraction.EINVALID, "technique name required")
	}
	for _, rule := range rules {
		if rule.Selector == "" {
			return nil, extraction.Errorf(extraction.EINVALID, "rule selector required")
		}
		if !rule.Field.Valid() {
			return nil, extraction.Errorf(extraction.EINVALID, "unknown field %q", rule.Field)
		}
	}
	return &RuleTechnique{name: name, rules: rules}, nil
}

// Name returns the technique's registry identifier.
func (t *RuleTechnique) Name() string {
	return t.name
}

// Extract applies each rule in order against the document.
func (t *RuleTechnique) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	fields := &extraction.Fields{}

	for _, rule := range t.rules {
		stored := 0
		doc.Find(rule.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if rule.Max > 0 && stored >= rule.Max {
				return false
			}
			var value string
			if rule.Attr != "" {
				value = sel.AttrOr(rule.Attr, "")
			} else {
				value = strings.TrimSpace(sel.Text())
			}
			if value == "" {
				return true
			}
			_ = fields.Append(rule.Field, value)
			stored++
			return true
		})
	}

	return fields, nil
}
