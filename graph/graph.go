package graph

import (
	"slices"

	"github.com/syssam/reach"
)

// Graph is a directed dependency graph over item ids. The zero value is not
// usable; construct with New.
//
// Graph is not safe for concurrent mutation. Builders construct a graph on
// one goroutine and then treat it as read-only.
type Graph struct {
	nodes map[reach.ID]struct{}
	preds map[reach.ID][]reach.ID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[reach.ID]struct{}),
		preds: make(map[reach.ID][]reach.ID),
	}
}

// AddNode adds id as a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id reach.ID) {
	g.nodes[id] = struct{}{}
}

// AddEdge records that dependent is built from dep, adding both endpoints
// as nodes. Duplicate edges are kept; the traversal's visited set makes
// them harmless.
func (g *Graph) AddEdge(dep, dependent reach.ID) {
	g.AddNode(dep)
	g.AddNode(dependent)
	g.preds[dependent] = append(g.preds[dependent], dep)
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id reach.ID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns the node ids in ascending order.
func (g *Graph) Nodes() []reach.ID {
	out := make([]reach.ID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Predecessors returns the ids the given node was built from. The returned
// slice is owned by the graph and must not be mutated. A lookup of an id
// that is not a node returns a NodeNotFoundError: the graph is stale
// relative to the caller's view of the model.
func (g *Graph) Predecessors(id reach.ID) ([]reach.ID, error) {
	if !g.HasNode(id) {
		return nil, reach.NewNodeNotFoundError(id)
	}
	return g.preds[id], nil
}
