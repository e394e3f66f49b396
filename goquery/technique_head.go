package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clemfromspace/extraction"
)

var _ extraction.Technique = (*HeadTags)(nil)

// HeadTags extracts data from standard HTML metatags, for example:
//
//	<head>
//	    <meta name="author" content="Will Larson" />
//	    <meta name="description" content="Will Larson's blog about programming and other things." />
//	    <link rel="alternate" type="application/rss+xml" title="Page Feed" href="/feeds/" />
//	    <link rel="canonical" href="http://lethain.com/digg-v4-architecture-process/">
//	    <title>Digg v4's Architecture and Development Processes</title>
//	</head>
//
// Low quality but widely present; usually a last resort that still
// returns something.
type HeadTags struct{}

// NewHeadTags creates a new HeadTags technique.
func NewHeadTags() *HeadTags {
	return &HeadTags{}
}

// Name returns the technique's registry identifier.
func (t *HeadTags) Name() string {
	return "head_tags"
}

// metaNameFields maps meta name attributes to their destination field.
var metaNameFields = map[string]extraction.Field{
	"description": extraction.FieldDescriptions,
	"author":      extraction.FieldAuthors,
}

// Extract reads the title tag, description and author metas, the
// canonical link and RSS alternate links.
func (t *HeadTags) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	fields := &extraction.Fields{}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	_ = fields.Append(extraction.FieldTitles, title)

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, ok := sel.Attr("name")
		if !ok {
			return
		}
		field, ok := metaNameFields[name]
		if !ok {
			return
		}
		if content := strings.TrimSpace(sel.AttrOr("content", "")); content != "" {
			_ = fields.Append(field, content)
		}
	})

	doc.Find("link[rel][href]").Each(func(_ int, sel *goquery.Selection) {
		rel := sel.AttrOr("rel", "")
		href := sel.AttrOr("href", "")
		if href == "" {
			return
		}
		switch {
		case hasRelToken(rel, "canonical"):
			_ = fields.Append(extraction.FieldURLs, href)
		case hasRelToken(rel, "alternate"):
			if sel.AttrOr("type", "") == "application/rss+xml" {
				_ = fields.Append(extraction.FieldFeeds, href)
			}
		}
	})

	return fields, nil
}

// hasRelToken reports whether the space-separated rel attribute
// contains the given token.
func hasRelToken(rel, token string) bool {
	for _, t := range strings.Fields(rel) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
