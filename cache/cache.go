package cache

import (
	"context"
	"log"

	"github.com/syssam/reach"
	"github.com/syssam/reach/graph"
)

// Builder constructs a graph snapshot from a source. Implementations read
// only currently-valid items and never mutate the source.
type Builder interface {
	// Build reads the source's mapped tables and returns a fresh graph.
	Build(ctx context.Context, src reach.Source) (*graph.Graph, error)

	// Kinds returns the item kinds this builder reads. A mutation to any
	// of them makes graphs built by this builder stale.
	Kinds() []reach.Kind
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger installs a printer for cache events (build, hit, drop).
// The printer receives fmt.Println-style arguments.
func WithLogger(print func(...any)) Option {
	return func(c *Cache) { c.print = print }
}

// Debug is shorthand for WithLogger(log.Println).
func Debug() Option {
	return func(c *Cache) { c.print = log.Println }
}

// WithRebuildOnStale makes IsReachable respond to a stale-cache
// NodeNotFoundError by dropping the entry, rebuilding once, and retrying
// the query. The default is to fail fast so that a missing invalidation
// call in the host's wiring stays visible.
func WithRebuildOnStale() Option {
	return func(c *Cache) { c.rebuildOnStale = true }
}

// Cache is the reachability query surface backed by a per-source graph map.
// Construct with New; the zero value is not usable.
type Cache struct {
	builder        Builder
	graphs         map[string]*graph.Graph
	kinds          map[reach.Kind]struct{}
	rebuildOnStale bool
	print          func(...any)
}

// New returns a Cache that builds graphs with b. The kind filter used by
// the conditional invalidation entry points is derived from b.Kinds().
func New(b Builder, opts ...Option) *Cache {
	c := &Cache{
		builder: b,
		graphs:  make(map[string]*graph.Graph),
		kinds:   make(map[reach.Kind]struct{}),
	}
	for _, k := range b.Kinds() {
		c.kinds[k] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsReachable reports whether start depends, directly or transitively, on
// any id in targets, consulting the cached graph for src and building it
// first if absent.
func (c *Cache) IsReachable(ctx context.Context, src reach.Source, start reach.ID, targets ...reach.ID) (bool, error) {
	g, err := c.ensure(ctx, src)
	if err != nil {
		return false, err
	}
	set := reach.NewIDSet(targets...)
	ok, err := graph.Reachable(g, start, set)
	if err != nil && c.rebuildOnStale && reach.IsNodeNotFound(err) {
		c.debug("cache: stale graph for source", src.Identity(), "- rebuilding")
		c.Invalidate(src)
		if g, err = c.ensure(ctx, src); err != nil {
			return false, err
		}
		return graph.Reachable(g, start, set)
	}
	return ok, err
}

// Warm builds and stores the graph for src if absent. A host can call it
// ahead of the first query to move the build cost off the query path.
func (c *Cache) Warm(ctx context.Context, src reach.Source) error {
	_, err := c.ensure(ctx, src)
	return err
}

// Len returns the number of cached graphs.
func (c *Cache) Len() int {
	return len(c.graphs)
}

// ensure returns the cached graph for src, building and storing it on a
// miss. A failed build stores nothing.
func (c *Cache) ensure(ctx context.Context, src reach.Source) (*graph.Graph, error) {
	key := src.Identity()
	if g, ok := c.graphs[key]; ok {
		return g, nil
	}
	c.debug("cache: building graph for source", key)
	g, err := c.builder.Build(ctx, src)
	if err != nil {
		return nil, err
	}
	c.graphs[key] = g
	return g, nil
}

// debug prints a cache event through the installed logger, Println-style.
func (c *Cache) debug(args ...any) {
	if c.print != nil {
		c.print(args...)
	}
}
