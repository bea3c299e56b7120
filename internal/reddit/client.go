package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/wgomg/klhousing/internal/config"
	"github.com/wgomg/klhousing/internal/utils"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.Reddit.BaseURL == "" {
		return nil, fmt.Errorf("REDDIT_BASE_URL is required")
	}

	return &Client{
		baseURL:   cfg.Reddit.BaseURL,
		userAgent: cfg.Reddit.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Reddit.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// Search fetches the newest posts of a subreddit matching the query. It makes
// a single request: no retries and no pagination.
func (c *Client) Search(ctx context.Context, sr SearchRequest, reqID string) ([]Post, error) {
	if !slices.Contains(Subreddits, sr.Subreddit) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSubreddit, sr.Subreddit)
	}

	params := url.Values{}
	params.Set("q", sr.Query)
	params.Set("restrict_sr", "1")
	params.Set("limit", fmt.Sprint(ClampLimit(sr.Limit)))
	params.Set("sort", "new")

	reqURL := fmt.Sprintf("%s/r/%s/search.json?%s", c.baseURL, url.PathEscape(sr.Subreddit), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug(&reqID, "Searching r/%s for '%s' from %s", sr.Subreddit, sr.Query, c.baseURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	_, err = httputils.LogResponseBody(resp, c.logger, reqID)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp)
	}

	var listing ListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	posts := make([]Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, toPost(sr.Subreddit, child.Data))
	}

	c.logger.Debug(&reqID, "Found %d posts in r/%s.", len(posts), sr.Subreddit)

	return posts, nil
}

func toPost(subreddit string, p PostData) Post {
	content := ""
	if p.Selftext != nil {
		content = utils.Truncate(*p.Selftext, ContentMaxRunes)
	}

	return Post{
		Platform:  Platform,
		Subreddit: subreddit,
		Title:     p.Title,
		URL:       "https://reddit.com" + p.Permalink,
		Content:   content,
	}
}

// ClampLimit keeps the requested post count inside the range the dashboard offers.
func ClampLimit(limit int) int {
	return min(max(limit, MinLimit), MaxLimit)
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
