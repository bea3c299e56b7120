package textfreq

import (
	"os"
	"path/filepath"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/wgomg/klhousing/internal/utils"
)

func texts(items ...string) []*string {
	out := make([]*string, len(items))
	for i := range items {
		out[i] = utils.Ptr(items[i])
	}
	return out
}

func newTestExtractor(t *testing.T, opts Options) *Extractor {
	t.Helper()

	res, err := LoadResources(ResourceOptions{})
	require.NoError(t, err)

	return NewExtractor(NewNormalizer(res, NewLemmatizer(res)), opts)
}

func terms(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Term()
	}
	return out
}

func TestLoadResources(t *testing.T) {
	res, err := LoadResources(ResourceOptions{})
	require.NoError(t, err)

	require.Equal(t, 179, res.StopwordCount())
	require.True(t, res.IsStopword("the"))
	require.True(t, res.IsStopword("don't"))
	require.False(t, res.IsStopword("house"))

	lemma, ok := res.Lemma("buying")
	require.True(t, ok)
	require.Equal(t, "buy", lemma)
	require.True(t, res.IsKnownLemma("mortgage"))
}

func TestLoadResourcesOverrides(t *testing.T) {
	file := filepath.Join(t.TempDir(), "text.yaml")
	require.NoError(t, os.WriteFile(file, []byte("stopwords:\n  - Malaysia\n  - rm\nlemmas:\n  condominiums: condo\n"), 0o644))

	res, err := LoadResources(ResourceOptions{File: file})
	require.NoError(t, err)

	require.True(t, res.IsStopword("malaysia"))
	require.True(t, res.IsStopword("rm"))
	lemma, ok := res.Lemma("condominiums")
	require.True(t, ok)
	require.Equal(t, "condo", lemma)

	_, err = LoadResources(ResourceOptions{File: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("stopwords: {"), 0o644))
	_, err = LoadResources(ResourceOptions{File: bad})
	require.Error(t, err)
}

func TestLemmatizer(t *testing.T) {
	res, err := LoadResources(ResourceOptions{})
	require.NoError(t, err)
	l := NewLemmatizer(res)

	tests := []struct {
		in, want string
	}{
		{"buying", "buy"},
		{"houses", "house"},
		{"bought", "buy"},
		{"mortgage", "mortgage"},
		{"mortgaged", "mortgage"},
		{"tenancies", "tenancies"},
		{"xyzzy", "xyzzy"},
		{"landlords", "landlord"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, l.Reduce(tc.in))
		})
	}
}

func TestNewReducer(t *testing.T) {
	res, err := LoadResources(ResourceOptions{})
	require.NoError(t, err)

	r, err := NewReducer(ReducerStem, res)
	require.NoError(t, err)
	require.Equal(t, "buy", r.Reduce("buying"))

	r, err = NewReducer("", res)
	require.NoError(t, err)
	require.IsType(t, &Lemmatizer{}, r)

	_, err = NewReducer("porter", res)
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	res, err := LoadResources(ResourceOptions{})
	require.NoError(t, err)
	n := NewNormalizer(res, NewLemmatizer(res))

	t.Run("punctuation separates words", func(t *testing.T) {
		got := n.Normalize(texts("Rent, or BUY?! Houses...in KL"))
		require.Equal(t, []string{"rent", "buy", "house", "kl"}, got)
	})

	t.Run("apostrophes separate words", func(t *testing.T) {
		require.Equal(t, []string{"buyer", "market"}, n.Normalize(texts("buyer's market")))
		require.Equal(t, []string{"malaysia", "housing"}, n.Normalize(texts("Malaysia’s housing")))
		require.Equal(t, []string{"renter", "rights"}, n.Normalize(texts("renters' rights")))
		require.Equal(t, []string{"buy"}, n.Normalize(texts("Don't buy")))
	})

	t.Run("digits and mixed tokens are dropped", func(t *testing.T) {
		got := n.Normalize(texts("2025 price RM800k 4.5% yield"))
		require.Equal(t, []string{"price", "yield"}, got)
	})

	t.Run("order follows input items", func(t *testing.T) {
		got := n.Normalize(texts("first apple", "second banana"))
		require.Equal(t, []string{"first", "apple", "second", "banana"}, got)
	})

	t.Run("filtering invariant", func(t *testing.T) {
		got := n.Normalize(texts(
			"Is it better to RENT or to buy in 2025? I'm not sure...",
			"Don't buy a condo @ 5% interest!!! #KL property-market",
			"Café prices & naïve renters",
		))
		require.NotEmpty(t, got)
		for _, token := range got {
			for _, r := range token {
				require.True(t, unicode.IsLetter(r), "token %q", token)
				require.False(t, unicode.IsUpper(r), "token %q", token)
			}
			require.False(t, res.IsStopword(token), "token %q", token)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, n.Normalize(nil))
		require.Empty(t, n.Normalize([]*string{nil, utils.Ptr(""), utils.Ptr("   ")}))
	})
}

func TestCountNGrams(t *testing.T) {
	t.Run("bigram window", func(t *testing.T) {
		table := CountNGrams([]string{"x", "y", "z"}, 2)
		require.Equal(t, 2, table.Len())
		require.Equal(t, 1, table.Count("x", "y"))
		require.Equal(t, 1, table.Count("y", "z"))
		require.Equal(t, 0, table.Count("x", "z"))
	})

	t.Run("value equality", func(t *testing.T) {
		table := CountNGrams([]string{"a", "b", "a", "b", "a"}, 2)
		require.Equal(t, 2, table.Count("a", "b"))
		require.Equal(t, 2, table.Count("b", "a"))
	})

	t.Run("fewer tokens than n", func(t *testing.T) {
		require.Zero(t, CountNGrams([]string{"a", "b"}, 3).Len())
		require.Zero(t, CountNGrams(nil, 1).Len())
	})

	t.Run("per item windows", func(t *testing.T) {
		table := CountItemNGrams([][]string{{"a", "b"}, {"c"}, {"d", "e"}}, 2)
		require.Equal(t, []string{"a b", "d e"}, terms(table.Entries()))
	})
}

func TestTop(t *testing.T) {
	table := CountNGrams([]string{"d", "a", "b", "a", "c", "b", "a"}, 1)

	top, err := Top(table, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "d", "c"}, terms(top))
	require.Equal(t, []int{3, 2, 1, 1}, []int{top[0].Count, top[1].Count, top[2].Count, top[3].Count})

	top, err = Top(table, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, terms(top))

	_, err = Top(table, 0)
	require.ErrorIs(t, err, ErrNonPositiveTopK)
	_, err = Top(table, -3)
	require.ErrorIs(t, err, ErrNonPositiveTopK)

	// ranking does not disturb the table
	require.Equal(t, []string{"d", "a", "b", "c"}, terms(table.Entries()))
}

func TestExtractTopNGrams(t *testing.T) {
	e := newTestExtractor(t, Options{})

	t.Run("count exactness", func(t *testing.T) {
		top, err := e.ExtractTopNGrams(texts("the cat sat", "the cat ran"), 1, 10)
		require.NoError(t, err)
		require.Equal(t, "cat", top[0].Term())
		require.Equal(t, 2, top[0].Count)
		require.NotContains(t, terms(top), "the")
	})

	t.Run("tie break keeps first seen order", func(t *testing.T) {
		top, err := e.ExtractTopNGrams(texts("alpha beta", "gamma delta"), 1, 10)
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, terms(top))
	})

	t.Run("bigrams", func(t *testing.T) {
		top, err := e.ExtractTopNGrams(texts("xray yankee zulu"), 2, 10)
		require.NoError(t, err)
		require.Equal(t, []string{"xray yankee", "yankee zulu"}, terms(top))
		require.Equal(t, NGram{"xray", "yankee"}, top[0].Gram)
	})

	t.Run("top k bound", func(t *testing.T) {
		input := texts("one two three four five six seven eight nine ten eleven twelve")
		top, err := e.ExtractTopNGrams(input, 1, 5)
		require.NoError(t, err)
		require.Len(t, top, 5)

		top, err = e.ExtractTopNGrams(texts("alpha beta gamma"), 1, 10)
		require.NoError(t, err)
		require.Len(t, top, 3)
	})

	t.Run("empty input", func(t *testing.T) {
		top, err := e.ExtractTopNGrams([]*string{nil, utils.Ptr(""), utils.Ptr("   ")}, 2, 10)
		require.NoError(t, err)
		require.Empty(t, top)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := texts("Should I rent or buy a house in KL?", "Buying a house vs renting and investing in EPF")
		first, err := e.ExtractTopNGrams(input, 2, 10)
		require.NoError(t, err)
		second, err := e.ExtractTopNGrams(input, 2, 10)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := e.ExtractTopNGrams(texts("alpha"), 4, 10)
		require.ErrorIs(t, err, ErrInvalidArity)
		_, err = e.ExtractTopNGrams(texts("alpha"), 0, 10)
		require.ErrorIs(t, err, ErrInvalidArity)
		_, err = e.ExtractTopNGrams(texts("alpha"), 1, 0)
		require.ErrorIs(t, err, ErrNonPositiveTopK)
	})
}

func TestCrossItemNGrams(t *testing.T) {
	input := texts("foo", "bar")

	joined, err := newTestExtractor(t, Options{}).ExtractTopNGrams(input, 2, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"foo bar"}, terms(joined))

	split, err := newTestExtractor(t, Options{SplitItems: true}).ExtractTopNGrams(input, 2, 10)
	require.NoError(t, err)
	require.Empty(t, split)
}

func TestPresent(t *testing.T) {
	ranked := []Entry{
		{Gram: NGram{"rent", "house"}, Count: 3},
		{Gram: NGram{"buy", "house"}, Count: 1},
	}

	p := Present(ranked, 2)
	require.Equal(t, []string{"rent house", "buy house"}, p.Table.Terms)
	require.Equal(t, []int{3, 1}, p.Table.Counts)
	require.False(t, p.CloudAvailable)
	require.Nil(t, p.WordCloud)
	require.Equal(t, CloudNotice, p.Notice)

	p = Present([]Entry{{Gram: NGram{"rent"}, Count: 4}, {Gram: NGram{"buy"}, Count: 2}}, 1)
	require.True(t, p.CloudAvailable)
	require.Equal(t, map[string]int{"rent": 4, "buy": 2}, p.WordCloud)
	require.Empty(t, p.Notice)
	require.Equal(t, 2, p.Table.Len())
}

func TestAnalyze(t *testing.T) {
	e := newTestExtractor(t, Options{CloudSize: 3})

	a, err := e.Analyze(texts("rent rent rent buy buy house", "loan epf opr"), 1, 2)
	require.NoError(t, err)
	require.Equal(t, 9, a.Tokens)
	require.Equal(t, 6, a.Distinct)
	require.Equal(t, []string{"rent", "buy"}, a.Presentation.Table.Terms)
	require.Equal(t, map[string]int{"rent": 3, "buy": 2, "house": 1}, a.Presentation.WordCloud)

	a, err = e.Analyze(texts("rent house", "buy house"), 3, 5)
	require.NoError(t, err)
	require.False(t, a.Presentation.CloudAvailable)
	require.Equal(t, []string{"rent house buy", "house buy house"}, a.Presentation.Table.Terms)
}
