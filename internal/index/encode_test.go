package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_Layout(t *testing.T) {
	data, err := Encode([]Entry{{
		ID:          "a.md",
		Title:       "Fish & <Chips>",
		Date:        "2024-01-15",
		Permalink:   "/blog/a",
		Tags:        []string{"x"},
		Description: "",
	}})
	require.NoError(t, err)
	require.Equal(t, `[
  {
    "id": "a.md",
    "title": "Fish & <Chips>",
    "date": "2024-01-15",
    "permalink": "/blog/a",
    "tags": [
      "x"
    ],
    "description": ""
  }
]`, string(data))
}

func TestEncode_EmptySet(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestDecode_NullTagsBecomeEmpty(t *testing.T) {
	entries, err := Decode([]byte(`[{"id":"a.md","title":"A","tags":null}]`))
	require.NoError(t, err)
	require.Equal(t, []string{}, entries[0].Tags)

	_, err = Decode([]byte(`{`))
	require.Error(t, err)
}
