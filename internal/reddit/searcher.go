package reddit

import (
	"context"
	"time"

	"github.com/wgomg/klhousing/internal/utils"
)

type Searcher interface {
	Search(ctx context.Context, sr SearchRequest, reqID string) ([]Post, error)
}

// CacheObserver is told about every cache lookup.
type CacheObserver interface {
	CacheLookup(hit bool)
}

// CachedSearcher memoizes successful searches by query, subreddit and limit.
// Failures are never cached.
type CachedSearcher struct {
	next     Searcher
	cache    utils.Cache[[]Post]
	observer CacheObserver
	logger   *utils.Logger
}

func NewCachedSearcher(next Searcher, cache utils.Cache[[]Post], observer CacheObserver, logger *utils.Logger) *CachedSearcher {
	return &CachedSearcher{next: next, cache: cache, observer: observer, logger: logger}
}

// NewSearchCache returns the default in-memory cache for search results.
func NewSearchCache(ttl time.Duration) *utils.TTLCache[[]Post] {
	return utils.NewTTLCache[[]Post](ttl)
}

func (s *CachedSearcher) Search(ctx context.Context, sr SearchRequest, reqID string) ([]Post, error) {
	sr.Limit = ClampLimit(sr.Limit)
	key := sr.Key()

	posts, hit := s.cache.Get(key)
	if s.observer != nil {
		s.observer.CacheLookup(hit)
	}
	if hit {
		s.logger.Debug(&reqID, "Search cache hit for %s", key)
		return posts, nil
	}

	posts, err := s.next.Search(ctx, sr, reqID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, posts)
	s.logger.Debug(&reqID, "Cached %d posts for %s (%d entries)", len(posts), key, s.cache.Size())
	return posts, nil
}
