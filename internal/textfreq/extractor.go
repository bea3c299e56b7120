package textfreq

// DefaultCloudSize matches the usual word-cloud renderer limit of 200 words.
const DefaultCloudSize = 200

type Options struct {
	// SplitItems stops n-grams from spanning two text items. By default the
	// items are concatenated and a window may cross from one into the next.
	SplitItems bool
	CloudSize  int
}

type Extractor struct {
	normalizer *Normalizer
	opts       Options
}

type Analysis struct {
	Tokens       int          `json:"tokens"`
	Distinct     int          `json:"distinct"`
	Ranked       []Entry      `json:"-"`
	Presentation Presentation `json:"presentation"`
}

func NewExtractor(normalizer *Normalizer, opts Options) *Extractor {
	if opts.CloudSize <= 0 {
		opts.CloudSize = DefaultCloudSize
	}
	return &Extractor{normalizer: normalizer, opts: opts}
}

// ExtractTopNGrams returns the topK most frequent n-grams of texts. Missing or
// blank items contribute nothing; no usable text yields an empty result.
func (e *Extractor) ExtractTopNGrams(texts []*string, n, topK int) ([]Entry, error) {
	table, _, err := e.count(texts, n, topK)
	if err != nil {
		return nil, err
	}
	return Top(table, topK)
}

// Analyze runs the full pipeline and shapes the result for display. For
// unigrams the word cloud is weighted by the CloudSize most frequent tokens.
func (e *Extractor) Analyze(texts []*string, n, topK int) (*Analysis, error) {
	table, tokens, err := e.count(texts, n, topK)
	if err != nil {
		return nil, err
	}

	ranked, err := Top(table, topK)
	if err != nil {
		return nil, err
	}

	presentation := Present(ranked, n)
	if n == 1 {
		cloud, err := Top(table, max(e.opts.CloudSize, topK))
		if err != nil {
			return nil, err
		}
		presentation.WordCloud = WordCloud(cloud)
	}

	return &Analysis{
		Tokens:       tokens,
		Distinct:     table.Len(),
		Ranked:       ranked,
		Presentation: presentation,
	}, nil
}

func (e *Extractor) count(texts []*string, n, topK int) (*FrequencyTable, int, error) {
	if !ValidArity(n) {
		return nil, 0, ErrInvalidArity
	}
	if topK <= 0 {
		return nil, 0, ErrNonPositiveTopK
	}

	items := e.normalizer.NormalizeItems(texts)

	tokens := 0
	for _, item := range items {
		tokens += len(item)
	}

	if e.opts.SplitItems {
		return CountItemNGrams(items, n), tokens, nil
	}

	flat := make([]string, 0, tokens)
	for _, item := range items {
		flat = append(flat, item...)
	}
	return CountNGrams(flat, n), tokens, nil
}
