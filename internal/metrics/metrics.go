package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "klhousing"

// Scrape outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeFailed  = "failed"
	OutcomeInvalid = "invalid"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry    *prometheus.Registry
	scrapes     *prometheus.CounterVec
	cache       *prometheus.CounterVec
	extractions *prometheus.CounterVec
	posts       prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scrapes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forum_scrapes_total",
			Help:      "Forum scrape requests by outcome.",
		}, []string{"outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_lookups_total",
			Help:      "Forum search cache lookups by result.",
		}, []string{"result"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ngram_extractions_total",
			Help:      "N-gram extractions by arity.",
		}, []string{"arity"}),
		posts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forum_posts_per_scrape",
			Help:      "Number of posts returned per successful scrape.",
			Buckets:   []float64{0, 5, 10, 20, 30, 40, 50},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scrapes,
		m.cache,
		m.extractions,
		m.posts,
	)
	return m
}

func (m *Metrics) Scrape(outcome string, posts int) {
	m.scrapes.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		m.posts.Observe(float64(posts))
	}
}

// CacheLookup satisfies reddit.CacheObserver.
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

func (m *Metrics) Extraction(arity int) {
	m.extractions.WithLabelValues(strconv.Itoa(arity)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
