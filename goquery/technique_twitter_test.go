package goquery_test

import (
	"testing"

	"github.com/clemfromspace/extraction/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwitterCard_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "twitter_card", goquery.NewTwitterCard().Name())
}

func TestTwitterCard_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts summary card tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="twitter:card" content="summary"/>
<meta name="twitter:title" content="The Rock"/>
<meta name="twitter:description" content="A group of U.S. Marines takes over Alcatraz."/>
<meta name="twitter:image" content="http://ia.media-imdb.com/rock.jpg"/>
</head></html>`

		fields, err := goquery.NewTwitterCard().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"The Rock"}, fields.Titles)
		assert.Equal(t, []string{"A group of U.S. Marines takes over Alcatraz."}, fields.Descriptions)
		assert.Equal(t, []string{"http://ia.media-imdb.com/rock.jpg"}, fields.Images)
	})

	t.Run("ignores property-keyed metas", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="twitter:title" content="keyed on property"/></head></html>`

		fields, err := goquery.NewTwitterCard().Extract(html)

		require.NoError(t, err)
		assert.True(t, fields.Empty())
	})

	t.Run("returns empty fields for HTML with no recognizable tags", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewTwitterCard().Extract(`<html><body></body></html>`)

		require.NoError(t, err)
		assert.True(t, fields.Empty())
	})
}
