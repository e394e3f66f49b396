package goquery

import "github.com/clemfromspace/extraction"

var _ extraction.Technique = (*TwitterCard)(nil)

// TwitterCard extracts data from Twitter summary card meta tags. Same
// shape as OpenGraph but keyed on the name attribute:
//
//	<meta name="twitter:title" content="The Rock"/>
//	<meta name="twitter:description" content="A group of U.S. Marines ..."/>
//	<meta name="twitter:image" content="http://ia.media-imdb.com/rock.jpg"/>
type TwitterCard struct{}

// NewTwitterCard creates a new TwitterCard technique.
func NewTwitterCard() *TwitterCard {
	return &TwitterCard{}
}

// Name returns the technique's registry identifier.
func (t *TwitterCard) Name() string {
	return "twitter_card"
}

// twitterCardFields maps twitter card names to their destination field.
var twitterCardFields = map[string]extraction.Field{
	"twitter:title":       extraction.FieldTitles,
	"twitter:description": extraction.FieldDescriptions,
	"twitter:image":       extraction.FieldImages,
}

// Extract reads the mapped twitter card tags in document order.
func (t *TwitterCard) Extract(html string) (*extraction.Fields, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}
	return extractMetaFields(doc, "name", twitterCardFields), nil
}
