package cache

import (
	"context"
	"fmt"

	"github.com/syssam/reach"
	"github.com/syssam/reach/graph"
)

// ClassBuilder builds class-level graphs: one node per valid entity class,
// a composition edge per relationship dimension, and a substitutability
// edge per valid subclass declaration.
type ClassBuilder struct{}

// Kinds implements Builder.
func (ClassBuilder) Kinds() []reach.Kind {
	return []reach.Kind{reach.KindEntityClass, reach.KindSubclassOf}
}

// Build implements Builder.
func (ClassBuilder) Build(ctx context.Context, src reach.Source) (*graph.Graph, error) {
	classes, err := src.MappedTable(ctx, reach.KindEntityClass)
	if err != nil {
		return nil, err
	}
	g := graph.New()
	addComposition(g, classes)

	decls, err := src.MappedTable(ctx, reach.KindSubclassOf)
	if err != nil {
		return nil, err
	}
	for _, it := range decls {
		if !it.Valid() {
			continue
		}
		decl, ok := it.(reach.Subtyping)
		if !ok {
			continue
		}
		// A declaration only counts while both classes are live.
		if validIn(classes, decl.SubclassID()) && validIn(classes, decl.SuperclassID()) {
			g.AddEdge(decl.SubclassID(), decl.SuperclassID())
		}
	}
	return g, nil
}

// EntityBuilder builds entity-level graphs: one node per valid entity and a
// composition edge per relationship element. No substitutability edges —
// element references already resolve to the concrete entity.
type EntityBuilder struct{}

// Kinds implements Builder.
func (EntityBuilder) Kinds() []reach.Kind {
	return []reach.Kind{reach.KindEntity}
}

// Build implements Builder.
func (EntityBuilder) Build(ctx context.Context, src reach.Source) (*graph.Graph, error) {
	entities, err := src.MappedTable(ctx, reach.KindEntity)
	if err != nil {
		return nil, err
	}
	g := graph.New()
	addComposition(g, entities)
	return g, nil
}

// addComposition adds a node for every valid item and an edge from each of
// its valid dependencies. Invalid items contribute nothing, and an edge to
// an invalid or unknown dependency is skipped rather than dangling.
func addComposition(g *graph.Graph, items map[reach.ID]reach.Item) {
	for id, it := range items {
		if !it.Valid() {
			continue
		}
		g.AddNode(id)
		comp, ok := it.(reach.Composite)
		if !ok {
			continue
		}
		for _, dep := range comp.DependencyIDs() {
			if validIn(items, dep) {
				g.AddEdge(dep, id)
			}
		}
	}
}

func validIn(items map[reach.ID]reach.Item, id reach.ID) bool {
	it, ok := items[id]
	return ok && it.Valid()
}

// ForLevel returns the builder matching a configured level string
// (reach.LevelClass or reach.LevelEntity).
func ForLevel(level string) (Builder, error) {
	switch level {
	case reach.LevelClass:
		return ClassBuilder{}, nil
	case reach.LevelEntity:
		return EntityBuilder{}, nil
	}
	return nil, fmt.Errorf("reach: unknown level %q", level)
}
