package cache

import "github.com/syssam/reach"

// Invalidate unconditionally drops the cached graph for src. Calling it
// with no entry present is a no-op.
func (c *Cache) Invalidate(src reach.Source) {
	c.drop(src.Identity())
}

// InvalidateChanged drops the cached graph for every source in the change
// batch, provided kind is one of the kinds the cache's builder reads. The
// change contents are not inspected: any mutation of a relevant kind makes
// the whole graph suspect.
func (c *Cache) InvalidateChanged(kind reach.Kind, changes map[reach.Source][]reach.Item) {
	if !c.watches(kind) {
		return
	}
	for src := range changes {
		c.drop(src.Identity())
	}
}

// InvalidateFetched drops the cached graph for exactly one source, under
// the same kind filter as InvalidateChanged. It is meant for lazily-loaded
// collaborators: once a batch fetch completes, previously-unseen items may
// exist and the old snapshot can no longer be trusted.
func (c *Cache) InvalidateFetched(kind reach.Kind, src reach.Source) {
	if !c.watches(kind) {
		return
	}
	c.drop(src.Identity())
}

func (c *Cache) watches(kind reach.Kind) bool {
	_, ok := c.kinds[kind]
	return ok
}

func (c *Cache) drop(key string) {
	if _, ok := c.graphs[key]; ok {
		c.debug("cache: dropping graph for source", key)
		delete(c.graphs, key)
	}
}
