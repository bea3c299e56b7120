package textfreq

import "strings"

// NGram is an ordered run of 1-3 consecutive tokens.
type NGram []string

func (g NGram) String() string {
	return strings.Join(g, " ")
}

type Entry struct {
	Gram  NGram
	Count int
}

func (e Entry) Term() string {
	return e.Gram.String()
}

// FrequencyTable maps distinct n-grams to their counts and remembers the
// order in which each n-gram was first seen.
type FrequencyTable struct {
	arity   int
	entries []Entry
	index   map[string]int
}

func newFrequencyTable(n int) *FrequencyTable {
	return &FrequencyTable{arity: n, index: make(map[string]int)}
}

// CountNGrams slides a window of n tokens over the flat token stream.
func CountNGrams(tokens []string, n int) *FrequencyTable {
	table := newFrequencyTable(n)
	table.addWindows(tokens)
	return table
}

// CountItemNGrams counts windows per item, so no n-gram spans two items.
func CountItemNGrams(items [][]string, n int) *FrequencyTable {
	table := newFrequencyTable(n)
	for _, tokens := range items {
		table.addWindows(tokens)
	}
	return table
}

func (t *FrequencyTable) addWindows(tokens []string) {
	if t.arity <= 0 {
		return
	}
	for i := 0; i+t.arity <= len(tokens); i++ {
		t.add(tokens[i : i+t.arity])
	}
}

func (t *FrequencyTable) add(window []string) {
	// tokens never contain spaces, so the joined form is a unique key
	key := strings.Join(window, " ")
	if i, ok := t.index[key]; ok {
		t.entries[i].Count++
		return
	}

	gram := make(NGram, len(window))
	copy(gram, window)

	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Gram: gram, Count: 1})
}

func (t *FrequencyTable) Arity() int {
	return t.arity
}

func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Count returns how many windows equal the given tokens.
func (t *FrequencyTable) Count(tokens ...string) int {
	i, ok := t.index[strings.Join(tokens, " ")]
	if !ok {
		return 0
	}
	return t.entries[i].Count
}

// Entries returns a copy of the table in first-seen order.
func (t *FrequencyTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
