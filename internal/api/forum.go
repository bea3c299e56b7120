package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/wgomg/klhousing/internal/metrics"
	"github.com/wgomg/klhousing/internal/reddit"
	"github.com/wgomg/klhousing/internal/textfreq"
	"github.com/wgomg/klhousing/internal/utils/httputils"
)

// HandleScrape searches the forum and ranks the most frequent n-grams of the
// posts found. Fetch failures and empty results are reported as warnings.
func (h *Handler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := httputils.RequestID(ctx)

	var req ScrapeRequest
	if err := httputils.DecodeJSON(r, &req); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		h.metrics.Scrape(metrics.OutcomeInvalid, 0)
		httputils.HandleError(w, err)
		return
	}

	h.applyScrapeDefaults(&req)
	if err := validateScrape(req); err != nil {
		h.logger.Error(&reqID, "Invalid scrape request: %v", err)
		h.metrics.Scrape(metrics.OutcomeInvalid, 0)
		httputils.HandleError(w, err)
		return
	}

	h.logger.Info(&reqID, "Scraping r/%s for '%s' (limit=%d, ngram=%d, top_k=%d)",
		req.Subreddit, req.Query, req.Limit, req.NGram, req.TopK)

	posts, err := h.searcher.Search(ctx, reddit.SearchRequest{
		Query:     req.Query,
		Subreddit: req.Subreddit,
		Limit:     req.Limit,
	}, reqID)
	if err != nil {
		h.logger.Error(&reqID, "Failed to fetch posts: %v", err)
		h.metrics.Scrape(metrics.OutcomeFailed, 0)
		h.warn(w, reqID, "Failed to fetch posts: "+err.Error(), emptyScrape(req.NGram))
		return
	}

	if len(posts) == 0 {
		h.metrics.Scrape(metrics.OutcomeEmpty, 0)
		h.warn(w, reqID, "No posts found.", emptyScrape(req.NGram))
		return
	}

	field := reddit.PreferredField(posts)
	analysis, err := h.analyze(reqID, posts, field, req.NGram, req.TopK)
	if err != nil {
		httputils.HandleError(w, err)
		return
	}
	h.metrics.Scrape(metrics.OutcomeOK, len(posts))

	h.logger.Info(&reqID, "Scraped %d posts: %d tokens, %d distinct %d-grams",
		len(posts), analysis.Tokens, analysis.Distinct, req.NGram)

	response := ScrapeResponse{
		Posts:        posts,
		Field:        field,
		Tokens:       analysis.Tokens,
		Distinct:     analysis.Distinct,
		Presentation: &analysis.Presentation,
	}

	if analysis.Tokens == 0 {
		h.warn(w, reqID, "Posts contain no usable text.", response)
		return
	}

	if err := httputils.SuccessResponse(w, "Forum posts analyzed", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

// analyze ranks the n-grams of one field of posts. Failures are logged and
// counted as failed scrapes.
func (h *Handler) analyze(reqID string, posts []reddit.Post, field reddit.TextField, n, topK int) (*textfreq.Analysis, error) {
	texts, err := reddit.Texts(posts, field)
	if err != nil {
		h.logger.Error(&reqID, "Failed to read post %s: %v", field, err)
		h.metrics.Scrape(metrics.OutcomeFailed, len(posts))
		return nil, err
	}

	analysis, err := h.extractor.Analyze(texts, n, topK)
	if err != nil {
		h.logger.Error(&reqID, "N-gram extraction failed: %v", err)
		h.metrics.Scrape(metrics.OutcomeFailed, len(posts))
		return nil, err
	}

	h.metrics.Extraction(n)
	return analysis, nil
}

func (h *Handler) applyScrapeDefaults(req *ScrapeRequest) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		req.Query = h.cfg.Reddit.DefaultQuery
	}
	if req.Subreddit == "" {
		req.Subreddit = reddit.DefaultSubreddit
	}
	if req.Limit == 0 {
		req.Limit = h.cfg.Reddit.DefaultLimit
	}
	req.Limit = reddit.ClampLimit(req.Limit)
	if req.NGram == 0 {
		req.NGram = 1
	}
	if req.TopK == 0 {
		req.TopK = h.cfg.Text.TopK
	}
}

func validateScrape(req ScrapeRequest) error {
	if !slices.Contains(reddit.Subreddits, req.Subreddit) {
		return httputils.BadRequest("subreddit must be one of " + strings.Join(reddit.Subreddits, ", "))
	}
	if !textfreq.ValidArity(req.NGram) {
		return httputils.BadRequest(textfreq.ErrInvalidArity.Error())
	}
	if req.TopK <= 0 {
		return httputils.BadRequest(textfreq.ErrNonPositiveTopK.Error())
	}
	return nil
}

func emptyScrape(n int) ScrapeResponse {
	presentation := textfreq.Present(nil, n)
	return ScrapeResponse{
		Posts:        []reddit.Post{},
		Presentation: &presentation,
	}
}

func (h *Handler) warn(w http.ResponseWriter, reqID, warning string, data ScrapeResponse) {
	h.logger.Info(&reqID, "Scrape warning: %s", warning)
	if err := httputils.WarningResponse(w, warning, data); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}
