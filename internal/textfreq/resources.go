package textfreq

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/stopwords_en.txt
var embeddedStopwords string

//go:embed data/lemma_dict.csv
var embeddedLemmas string

// Resources is the immutable stopword set and lemma dictionary shared by every
// Normalizer. Build it once with LoadResources.
type Resources struct {
	stopwords map[string]struct{}
	lemmas    map[string]string
	known     map[string]struct{}
}

type ResourceOptions struct {
	// File optionally points at a YAML document extending the embedded lists.
	File string
}

// ResourceFile is the layout of the optional YAML overrides file.
type ResourceFile struct {
	Stopwords []string          `yaml:"stopwords"`
	Lemmas    map[string]string `yaml:"lemmas"`
}

func LoadResources(opts ResourceOptions) (*Resources, error) {
	r := &Resources{
		stopwords: make(map[string]struct{}),
		lemmas:    make(map[string]string),
		known:     make(map[string]struct{}),
	}

	scan := bufio.NewScanner(strings.NewReader(embeddedStopwords))
	for scan.Scan() {
		r.addStopword(scan.Text())
	}

	scan = bufio.NewScanner(strings.NewReader(embeddedLemmas))
	for line := 1; scan.Scan(); line++ {
		parts := strings.Split(scan.Text(), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("lemma dictionary line %d: expected 'form,lemma'", line)
		}
		r.addLemma(parts[0], parts[1])
	}

	if opts.File == "" {
		return r, nil
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read text resources file: %w", err)
	}

	var extra ResourceFile
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse text resources file %s: %w", opts.File, err)
	}

	for _, w := range extra.Stopwords {
		r.addStopword(w)
	}
	for form, lemma := range extra.Lemmas {
		r.addLemma(form, lemma)
	}

	return r, nil
}

func (r *Resources) addStopword(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		r.stopwords[w] = struct{}{}
	}
}

func (r *Resources) addLemma(form, lemma string) {
	form = strings.ToLower(strings.TrimSpace(form))
	lemma = strings.ToLower(strings.TrimSpace(lemma))
	if form == "" || lemma == "" {
		return
	}
	r.lemmas[form] = lemma
	r.known[lemma] = struct{}{}
}

func (r *Resources) IsStopword(token string) bool {
	_, ok := r.stopwords[token]
	return ok
}

// Lemma returns the dictionary base form of token, if listed.
func (r *Resources) Lemma(token string) (string, bool) {
	l, ok := r.lemmas[token]
	return l, ok
}

// IsKnownLemma reports whether token is a base form in the dictionary.
func (r *Resources) IsKnownLemma(token string) bool {
	_, ok := r.known[token]
	return ok
}

func (r *Resources) StopwordCount() int {
	return len(r.stopwords)
}
