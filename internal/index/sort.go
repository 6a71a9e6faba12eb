package index

import (
	"slices"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a frontmatter date leniently, interpreting zone-less values as UTC.
func ParseDate(s string) (time.Time, bool) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortEntries orders entries by date, newest first. Entries whose date cannot
// be parsed go after all others. The sort is stable.
func SortEntries(entries []Entry) {
	type keyed struct {
		entry Entry
		at    time.Time
		ok    bool
	}
	keys := make([]keyed, len(entries))
	for i, e := range entries {
		at, ok := ParseDate(e.Date)
		keys[i] = keyed{entry: e, at: at, ok: ok}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return b.at.Compare(a.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	for i := range keys {
		entries[i] = keys[i].entry
	}
}
