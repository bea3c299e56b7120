package api

import (
	"github.com/wgomg/klhousing/internal/dataset"
	"github.com/wgomg/klhousing/internal/reddit"
	"github.com/wgomg/klhousing/internal/textfreq"
)

type ScrapeRequest struct {
	Query     string `json:"query"`
	Subreddit string `json:"subreddit"`
	Limit     int    `json:"limit"`
	NGram     int    `json:"ngram"`
	TopK      int    `json:"top_k"`
}

type ScrapeResponse struct {
	Posts        []reddit.Post          `json:"posts"`
	Field        reddit.TextField       `json:"field,omitempty"`
	Tokens       int                    `json:"tokens"`
	Distinct     int                    `json:"distinct"`
	Presentation *textfreq.Presentation `json:"presentation"`
}

type DatasetResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Years   []int      `json:"years"`
}

type SummaryResponse struct {
	Cleaning dataset.CleanReport     `json:"cleaning"`
	Columns  []dataset.ColumnSummary `json:"columns"`
}

type SeriesResponse struct {
	Indicator dataset.Indicator `json:"indicator"`
	From      int               `json:"from"`
	To        int               `json:"to"`
	Points    []dataset.Point   `json:"points"`
}

type Page struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Routes  []string `json:"routes"`
}
