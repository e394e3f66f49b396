package goquery_test

import (
	"testing"

	"github.com/clemfromspace/extraction/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML5Semantic_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "html5_semantic", goquery.NewHTML5Semantic().Name())
}

func TestHTML5Semantic_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the documented article example", func(t *testing.T) {
		t.Parallel()

		html := `<html>
  <body>
    <h1>This is not a title to the technique</h1>
    <article>
      <h1>This is a title</h1>
      <p>This is a description.</p>
      <p>This is not a description.</p>
    </article>
    <video>
      <source src="this_is_a_video.mp4">
    </video>
  </body>
</html>`

		fields, err := goquery.NewHTML5Semantic().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"This is a title"}, fields.Titles)
		assert.Equal(t, []string{"This is a description."}, fields.Descriptions)
		assert.Equal(t, []string{"this_is_a_video.mp4"}, fields.Videos)
	})

	t.Run("takes one title and one description per article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article><h1>First article</h1><p>First description.</p></article>
<article><h1>Second article</h1><p>Second description.</p></article>
</body></html>`

		fields, err := goquery.NewHTML5Semantic().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"First article", "Second article"}, fields.Titles)
		assert.Equal(t, []string{"First description.", "Second description."}, fields.Descriptions)
	})

	t.Run("ignores headings outside article elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Page heading</h1><p>Page paragraph.</p></body></html>`

		fields, err := goquery.NewHTML5Semantic().Extract(html)

		require.NoError(t, err)
		assert.True(t, fields.Empty())
	})

	t.Run("collects every video source", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<video><source src="a.mp4"><source src="a.webm"></video>
<video><source src="b.mp4"></video>
</body></html>`

		fields, err := goquery.NewHTML5Semantic().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.mp4", "a.webm", "b.mp4"}, fields.Videos)
	})

	t.Run("returns empty fields for HTML with no recognizable tags", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewHTML5Semantic().Extract(`<html><body><div>plain</div></body></html>`)

		require.NoError(t, err)
		assert.True(t, fields.Empty())
	})
}
