package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clemfromspace/extraction"
)

var _ extraction.Technique = (*HTML5Semantic)(nil)

// HTML5Semantic reads the HTML5 article and video tags:
//
//	<article>
//	  <h1>This is a title</h1>
//	  <p>This is a description.</p>
//	</article>
//	<video>
//	  <source src="this_is_a_video.mp4">
//	</video>
//
// Intentionally much more conservative than Semantic: it only trusts
// explicitly structured content (first heading and first paragraph per
// article) and expects Semantic to sweep behind it for the lower
// quality, more abundant hits.
type HTML5Semantic struct{}

// NewHTML5Semantic creates a new HTML5Semantic technique.
func NewHTML5Semantic() *HTML5Semantic {
	return &HTML5Semantic{}
}

// Name returns the technique's registry identifier.
func (t *HTML5Semantic) Name() string {
	return "html5_semantic"
}

// Extract reads one title and one description per article element, and
// the src of every video source element.
func (t *HTML5Semantic) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	fields := &extraction.Fields{}

	doc.Find("article").Each(func(_ int, article *goquery.Selection) {
		if title := strings.TrimSpace(article.Find("h1").First().Text()); title != "" {
			fields.Titles = append(fields.Titles, title)
		}
		if desc := strings.TrimSpace(article.Find("p").First().Text()); desc != "" {
			fields.Descriptions = append(fields.Descriptions, desc)
		}
	})

	doc.Find("video source[src]").Each(func(_ int, source *goquery.Selection) {
		if src := source.AttrOr("src", ""); src != "" {
			fields.Videos = append(fields.Videos, src)
		}
	})

	return fields, nil
}
