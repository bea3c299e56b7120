package reddit

import (
	"errors"
	"fmt"
)

const (
	Platform         = "Reddit"
	ContentMaxRunes  = 300
	MinLimit         = 5
	MaxLimit         = 50
	DefaultSubreddit = "MalaysianPF"
)

// Subreddits lists the communities the dashboard lets users search.
var Subreddits = []string{"MalaysianPF", "Malaysia", "personalfinance", "realestate"}

var ErrUnknownSubreddit = errors.New("unknown subreddit")

type SearchRequest struct {
	Query     string
	Subreddit string
	Limit     int
}

// Key identifies a search for caching.
func (r SearchRequest) Key() string {
	return fmt.Sprintf("%s|%s|%d", r.Query, r.Subreddit, r.Limit)
}

type Post struct {
	Platform  string  `json:"platform"`
	Subreddit string  `json:"subreddit"`
	Title     *string `json:"title"`
	URL       string  `json:"url"`
	Content   string  `json:"content"`
}

type ListingResponse struct {
	Data ListingData `json:"data"`
}

type ListingData struct {
	Children []ListingChild `json:"children"`
}

type ListingChild struct {
	Data PostData `json:"data"`
}

type PostData struct {
	Title     *string `json:"title"`
	Permalink string  `json:"permalink"`
	Selftext  *string `json:"selftext"`
}

type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}
