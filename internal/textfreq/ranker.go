package textfreq

import (
	"cmp"
	"slices"
)

// DefaultTopK is the number of entries shown when the caller does not ask for
// a specific limit.
const DefaultTopK = 10

// Top returns at most k entries by descending count. Equal counts keep their
// first-seen order. k <= 0 is rejected with ErrNonPositiveTopK.
func Top(table *FrequencyTable, k int) ([]Entry, error) {
	if k <= 0 {
		return nil, ErrNonPositiveTopK
	}

	entries := table.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return entries[:min(k, len(entries))], nil
}
