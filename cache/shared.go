package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/syssam/reach"
	"github.com/syssam/reach/graph"
)

// Shared wraps a Cache for concurrent use. Reads take a read lock; the
// miss path deduplicates builds per source identity, so N goroutines
// racing on a cold source trigger one build, not N; invalidations take the
// write lock. This is the external synchronization the core cache requires
// of multi-threaded hosts.
//
// The inner cache must not be used directly once wrapped.
type Shared struct {
	mu sync.RWMutex
	sf singleflight.Group
	c  *Cache
}

// NewShared wraps c.
func NewShared(c *Cache) *Shared {
	return &Shared{c: c}
}

// IsReachable is the concurrent counterpart of Cache.IsReachable.
func (s *Shared) IsReachable(ctx context.Context, src reach.Source, start reach.ID, targets ...reach.ID) (bool, error) {
	g, err := s.ensure(ctx, src)
	if err != nil {
		return false, err
	}
	set := reach.NewIDSet(targets...)
	ok, err := graph.Reachable(g, start, set)
	if err != nil && s.c.rebuildOnStale && reach.IsNodeNotFound(err) {
		s.Invalidate(src)
		if g, err = s.ensure(ctx, src); err != nil {
			return false, err
		}
		return graph.Reachable(g, start, set)
	}
	return ok, err
}

// Warm builds and stores the graph for src if absent.
func (s *Shared) Warm(ctx context.Context, src reach.Source) error {
	_, err := s.ensure(ctx, src)
	return err
}

// Len returns the number of cached graphs.
func (s *Shared) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Len()
}

// Invalidate unconditionally drops the cached graph for src.
func (s *Shared) Invalidate(src reach.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Invalidate(src)
}

// InvalidateChanged drops every source in the batch under the kind filter.
func (s *Shared) InvalidateChanged(kind reach.Kind, changes map[reach.Source][]reach.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.InvalidateChanged(kind, changes)
}

// InvalidateFetched drops one source under the kind filter.
func (s *Shared) InvalidateFetched(kind reach.Kind, src reach.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.InvalidateFetched(kind, src)
}

func (s *Shared) ensure(ctx context.Context, src reach.Source) (*graph.Graph, error) {
	key := src.Identity()
	s.mu.RLock()
	g, ok := s.c.graphs[key]
	s.mu.RUnlock()
	if ok {
		return g, nil
	}
	v, err, _ := s.sf.Do(key, func() (any, error) {
		// Re-check: an earlier flight may have stored the graph
		// between our read-unlock and this call.
		s.mu.RLock()
		g, ok := s.c.graphs[key]
		s.mu.RUnlock()
		if ok {
			return g, nil
		}
		g, err := s.c.builder.Build(ctx, src)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.c.graphs[key] = g
		s.mu.Unlock()
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*graph.Graph), nil
}
