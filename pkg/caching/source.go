package caching

import (
	"context"
	"fmt"

	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/fetcher"
)

// Upstream fetches a document by source ID.
type Upstream interface {
	GetDocument(ctx context.Context, id string) (string, error)
}

// Source serves details pages from the cache, falling back to upstream and storing what it fetched.
type Source struct {
	cache    *Cache
	upstream Upstream
	offline  bool
}

// NewSource wraps upstream with cache. In offline mode upstream is never called, cached pages are
// served whatever their age and a cache miss is fetcher.ErrNotAvailable; upstream may then be nil.
func NewSource(cache *Cache, upstream Upstream, offline bool) *Source {
	return &Source{cache: cache, upstream: upstream, offline: offline}
}

// Fetch returns the document for src and whether it came from the cache.
func (s *Source) Fetch(ctx context.Context, src models.Source) (string, bool, error) {
	key := src.Key()
	if data, ok := s.cache.Get(key); ok {
		return string(data), true, nil
	}

	if s.offline {
		// Nothing can be refetched, so a stale page beats none.
		if data, ok := s.cache.GetStale(key); ok {
			return string(data), true, nil
		}
		return "", false, fmt.Errorf("%s not cached: %w", key, fetcher.ErrNotAvailable)
	}

	doc, err := s.upstream.GetDocument(ctx, src.ID())
	if err != nil {
		return "", false, err
	}

	if err := s.cache.Set(key, []byte(doc)); err != nil {
		return doc, false, err
	}
	return doc, false, nil
}
