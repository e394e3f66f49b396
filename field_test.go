package extraction_test

import (
	"testing"

	"github.com/clemfromspace/extraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Valid(t *testing.T) {
	t.Parallel()

	for _, field := range extraction.AllFields {
		assert.True(t, field.Valid(), "field %q should be valid", field)
	}

	assert.False(t, extraction.Field("bogus").Valid())
	assert.False(t, extraction.Field("").Valid())
}

func TestFields_Append(t *testing.T) {
	t.Parallel()

	t.Run("appends values in order", func(t *testing.T) {
		t.Parallel()

		fields := &extraction.Fields{}
		err := fields.Append(extraction.FieldTitles, "First", "Second")

		require.NoError(t, err)
		assert.Equal(t, []string{"First", "Second"}, fields.Titles)
	})

	t.Run("skips empty strings", func(t *testing.T) {
		t.Parallel()

		fields := &extraction.Fields{}
		err := fields.Append(extraction.FieldTags, "go", "", "html")

		require.NoError(t, err)
		assert.Equal(t, []string{"go", "html"}, fields.Tags)
	})

	t.Run("returns EINVALID for unknown field", func(t *testing.T) {
		t.Parallel()

		fields := &extraction.Fields{}
		err := fields.Append(extraction.Field("bogus"), "value")

		require.Error(t, err)
		assert.Equal(t, extraction.EINVALID, extraction.ErrorCode(err))
	})
}

func TestFields_Values(t *testing.T) {
	t.Parallel()

	fields := &extraction.Fields{Images: []string{"a.jpg", "b.jpg"}}

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, fields.Values(extraction.FieldImages))
	assert.Nil(t, fields.Values(extraction.Field("bogus")))
}

func TestFields_Len(t *testing.T) {
	t.Parallel()

	t.Run("sums values across fields", func(t *testing.T) {
		t.Parallel()

		fields := &extraction.Fields{
			Titles: []string{"A"},
			Images: []string{"a.jpg", "b.jpg"},
		}

		assert.Equal(t, 3, fields.Len())
		assert.False(t, fields.Empty())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		fields := &extraction.Fields{}

		assert.Equal(t, 0, fields.Len())
		assert.True(t, fields.Empty())
	})

	t.Run("nil receiver is empty", func(t *testing.T) {
		t.Parallel()

		var fields *extraction.Fields

		assert.Equal(t, 0, fields.Len())
	})
}
