// Package reach implements a reachability cache for externally-mutated
// entity models.
//
// A host application owns a mutable object model: entity classes, entities,
// and superclass/subclass declarations, typically mapped from a database.
// Selection and filtering logic in the host repeatedly needs to answer one
// question: does item S depend, directly or transitively, on any item in a
// target set T? Answering it from the live model on every query is
// expensive, so this module maintains a derived index — a directed
// dependency graph per source — built lazily and dropped whenever the host
// reports that the underlying model changed.
//
// # Architecture
//
// The root package defines the item model (IDs, kinds, the Item interfaces),
// the Source contract that data-mapping layers implement, the error
// taxonomy, and configuration loading. Subsystems:
//
//   - graph: the immutable dependency graph value and the backward
//     reachability traversal.
//   - cache: the per-source graph cache, the class-level and entity-level
//     build strategies, and the invalidation entry points.
//   - dialect, dialect/sql: a SQL-backed Source reading the mapped item
//     tables from SQLite, PostgreSQL, or MySQL.
//   - watch: an fsnotify adapter that invalidates file-backed sources when
//     their database file changes on disk.
//
// # Edge semantics
//
// Graphs encode two kinds of dependency. A composition edge dep → composite
// records that dep contributes to constructing composite: a dimension of a
// relationship class, or an element of a relationship entity. A
// substitutability edge subclass → superclass (class-level graphs only)
// records that the subclass may stand in for the superclass wherever the
// superclass is expected as a dimension. Edges always point from the
// depended-upon item toward its dependent.
//
// # Usage
//
//	src, err := sql.Open(dialect.SQLite, "file:model.db")
//	if err != nil { ... }
//	c := cache.New(cache.ClassBuilder{})
//	ok, err := c.IsReachable(ctx, src, 7, 1, 2)
//
// The cache never observes mutations on its own. The host's notification
// layer must call Invalidate, InvalidateChanged, or InvalidateFetched when
// the model changes; a missed call surfaces later as a NodeNotFoundError
// rather than a silently wrong answer.
package reach
