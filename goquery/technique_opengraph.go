package goquery

import "github.com/clemfromspace/extraction"

var _ extraction.Technique = (*OpenGraph)(nil)

// OpenGraph extracts data from Facebook Open Graph meta tags, for example:
//
//	<meta property="og:title" content="The Rock"/>
//	<meta property="og:url" content="http://www.imdb.com/title/tt0117500/"/>
//	<meta property="og:image" content="http://ia.media-imdb.com/rock.jpg"/>
//	<meta property="og:description" content="A group of U.S. Marines ..."/>
//
// Open Graph tags are ubiquitous on high quality sites and tend to beat
// the manual discovery techniques, especially for picking good images.
type OpenGraph struct{}

// NewOpenGraph creates a new OpenGraph technique.
func NewOpenGraph() *OpenGraph {
	return &OpenGraph{}
}

// Name returns the technique's registry identifier.
func (t *OpenGraph) Name() string {
	return "open_graph"
}

// openGraphFields maps og properties to their destination field.
var openGraphFields = map[string]extraction.Field{
	"og:title":       extraction.FieldTitles,
	"og:url":         extraction.FieldURLs,
	"og:image":       extraction.FieldImages,
	"og:description": extraction.FieldDescriptions,
}

// Extract reads the mapped og properties in document order, one value
// per tag encountered.
func (t *OpenGraph) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}
	return extractMetaFields(doc, "property", openGraphFields), nil
}
