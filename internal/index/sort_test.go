package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSortEntries_NewestFirst(t *testing.T) {
	entries := []Entry{
		{ID: "old", Date: "2023-12-01"},
		{ID: "new", Date: "2024-03-02T10:00:00Z"},
		{ID: "mid", Date: "2024-01-15"},
	}
	SortEntries(entries)
	require.Equal(t, []string{"new", "mid", "old"}, ids(entries))
}

func TestSortEntries_UnparsableLastAndStable(t *testing.T) {
	entries := []Entry{
		{ID: "bad1", Date: "someday"},
		{ID: "a", Date: "2024-01-01"},
		{ID: "bad2", Date: "not a date"},
		{ID: "b", Date: "2024-01-01"},
		{ID: "c", Date: "2025-05-05"},
	}
	SortEntries(entries)
	require.Equal(t, []string{"c", "a", "b", "bad1", "bad2"}, ids(entries))
}

func TestParseDate(t *testing.T) {
	_, ok := ParseDate("2024-01-15")
	require.True(t, ok)
	_, ok = ParseDate("January 2, 2006")
	require.True(t, ok)
	_, ok = ParseDate("garbage")
	require.False(t, ok)
}
