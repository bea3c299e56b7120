package textfreq

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/segment"
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/wgomg/klhousing/internal/utils"
)

// Reducer maps a retained token to its canonical form.
type Reducer interface {
	Reduce(token string) string
}

const (
	ReducerLemma = "lemma"
	ReducerStem  = "stem"
)

type suffixRule struct {
	suffix  string
	replace string
}

// WordNet-style detachment rules, tried in order. A candidate is accepted only
// when it is a known lemma.
var detachmentRules = []suffixRule{
	{"ies", "y"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"ses", "s"},
	{"xes", "x"},
	{"zes", "z"},
	{"men", "man"},
	{"es", "e"},
	{"es", ""},
	{"s", ""},
	{"ing", "e"},
	{"ing", ""},
	{"ed", "e"},
	{"ed", ""},
	{"er", ""},
	{"er", "e"},
	{"est", ""},
	{"est", "e"},
}

// Lemmatizer is a dictionary lemmatizer. Unknown forms pass through unchanged.
type Lemmatizer struct {
	res *Resources
}

func NewLemmatizer(res *Resources) *Lemmatizer {
	return &Lemmatizer{res: res}
}

func (l *Lemmatizer) Reduce(token string) string {
	if lemma, ok := l.res.Lemma(token); ok {
		return lemma
	}
	if l.res.IsKnownLemma(token) {
		return token
	}

	for _, rule := range detachmentRules {
		if !strings.HasSuffix(token, rule.suffix) || len(token) <= len(rule.suffix) {
			continue
		}
		candidate := token[:len(token)-len(rule.suffix)] + rule.replace
		if l.res.IsKnownLemma(candidate) {
			return candidate
		}
	}

	return token
}

// Stemmer reduces tokens with the Snowball English stemmer.
type Stemmer struct{}

func (Stemmer) Reduce(token string) string {
	return english.Stem(token, false)
}

func NewReducer(mode string, res *Resources) (Reducer, error) {
	switch mode {
	case "", ReducerLemma:
		return NewLemmatizer(res), nil
	case ReducerStem:
		return Stemmer{}, nil
	default:
		return nil, fmt.Errorf("unknown reducer '%s'", mode)
	}
}

// Normalizer turns raw text items into lowercase, alphabetic, stopword-free,
// reduced tokens.
type Normalizer struct {
	res     *Resources
	reducer Reducer
}

func NewNormalizer(res *Resources, reducer Reducer) *Normalizer {
	return &Normalizer{res: res, reducer: reducer}
}

// Normalize flattens the tokens of every item, in input order.
func (n *Normalizer) Normalize(texts []*string) []string {
	var out []string
	for _, item := range n.NormalizeItems(texts) {
		out = append(out, item...)
	}
	return out
}

// NormalizeItems keeps the tokens of each non-empty item apart.
func (n *Normalizer) NormalizeItems(texts []*string) [][]string {
	lower := cases.Lower(language.English)

	var items [][]string
	for _, text := range texts {
		if text == nil || utils.IsBlank(*text) {
			continue
		}

		tokens := n.tokens(lower.String(norm.NFC.String(*text)))
		if len(tokens) > 0 {
			items = append(items, tokens)
		}
	}
	return items
}

func (n *Normalizer) tokens(text string) []string {
	var tokens []string

	seg := segment.NewWordSegmenter(strings.NewReader(text))
	for seg.Segment() {
		if seg.Type() == segment.None {
			continue
		}

		// Word segments keep inner apostrophes ("buyer's"); split them off.
		for _, word := range strings.FieldsFunc(seg.Text(), isApostrophe) {
			if !isAlpha(word) || n.res.IsStopword(word) {
				continue
			}
			tokens = append(tokens, n.reducer.Reduce(word))
		}
	}

	return tokens
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '\u2019'
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
