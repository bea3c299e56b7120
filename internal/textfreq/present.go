package textfreq

const CloudNotice = "Word cloud only for unigrams. Showing top phrases instead."

type Table struct {
	Terms  []string `json:"term"`
	Counts []int    `json:"count"`
}

func (t Table) Len() int {
	return len(t.Terms)
}

type Presentation struct {
	Arity          int            `json:"arity"`
	Table          Table          `json:"table"`
	CloudAvailable bool           `json:"cloud_available"`
	WordCloud      map[string]int `json:"word_cloud,omitempty"`
	Notice         string         `json:"notice,omitempty"`
}

// Present builds the display table for a ranked list. The word-cloud bag is
// only produced for unigrams; other arities carry a notice instead.
func Present(ranked []Entry, n int) Presentation {
	p := Presentation{
		Arity: n,
		Table: Table{
			Terms:  make([]string, len(ranked)),
			Counts: make([]int, len(ranked)),
		},
	}

	for i, e := range ranked {
		p.Table.Terms[i] = e.Term()
		p.Table.Counts[i] = e.Count
	}

	if n != 1 {
		p.Notice = CloudNotice
		return p
	}

	p.CloudAvailable = true
	p.WordCloud = WordCloud(ranked)
	return p
}

// WordCloud turns ranked unigrams into a token -> weight bag.
func WordCloud(ranked []Entry) map[string]int {
	bag := make(map[string]int, len(ranked))
	for _, e := range ranked {
		bag[e.Term()] += e.Count
	}
	return bag
}
