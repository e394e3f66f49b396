package goquery_test

import (
	"testing"

	"github.com/clemfromspace/extraction"
	"github.com/clemfromspace/extraction/goquery"
	"github.com/clemfromspace/extraction/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("constructs registered techniques by name", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()
		registry.Register("open_graph", func() extraction.Technique { return goquery.NewOpenGraph() })

		technique, err := registry.Get("open_graph")

		require.NoError(t, err)
		assert.Equal(t, "open_graph", technique.Name())
	})

	t.Run("returns ENOTFOUND for unregistered names", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		_, err := registry.Get("missing")

		require.Error(t, err)
		assert.Equal(t, extraction.ENOTFOUND, extraction.ErrorCode(err))
	})

	t.Run("constructs a fresh instance per Get", func(t *testing.T) {
		t.Parallel()

		calls := 0
		registry := goquery.NewRegistry()
		registry.Register("counted", func() extraction.Technique {
			calls++
			return &mock.Technique{NameFn: func() string { return "counted" }}
		})

		_, err := registry.Get("counted")
		require.NoError(t, err)
		_, err = registry.Get("counted")
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("replaces constructors registered under the same name", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()
		registry.Register("tech", func() extraction.Technique { return goquery.NewHeadTags() })
		registry.Register("tech", func() extraction.Technique { return goquery.NewSemantic() })

		technique, err := registry.Get("tech")

		require.NoError(t, err)
		assert.Equal(t, "semantic", technique.Name())
	})

	t.Run("lists registered names in sorted order", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()
		registry.Register("semantic", func() extraction.Technique { return goquery.NewSemantic() })
		registry.Register("head_tags", func() extraction.Technique { return goquery.NewHeadTags() })
		registry.Register("open_graph", func() extraction.Technique { return goquery.NewOpenGraph() })

		assert.Equal(t, []string{"head_tags", "open_graph", "semantic"}, registry.List())
	})

	t.Run("empty registry lists nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NewRegistry().List())
	})
}
