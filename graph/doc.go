// Package graph provides the dependency graph value type and the backward
// reachability traversal.
//
// # Graph Structure
//
// A Graph is a snapshot: its node set is exactly the ids of the items that
// were valid when the builder ran, and its edges record dependency in one
// direction only, from the depended-upon id toward its dependent:
//
//	g := graph.New()
//	g.AddNode(1)
//	g.AddEdge(1, 2) // 2 is built from 1
//
// Once a graph is handed to the cache it is treated as immutable. Staleness
// is resolved by dropping the whole graph and rebuilding, never by patching.
//
// # Reachability
//
// Reachable walks edges backward from a start id, asking whether anything
// the start was built from — directly or through any chain of composition
// and substitution — belongs to a target set:
//
//	ok, err := graph.Reachable(g, 2, reach.NewIDSet(1))
//
// The traversal keeps a visited set, so each node is enqueued at most once:
// shared ancestors (diamonds) and cycles cost linear time instead of
// exponential or unbounded time. The query is not reflexive; the start id's
// own membership in the target set is never tested.
//
// Looking up an id with no node in the graph yields a
// reach.NodeNotFoundError rather than false: the graph no longer matches
// the model it was built from, and the cache entry should have been
// invalidated.
//
// # Snapshots
//
// MarshalBinary and UnmarshalBinary move a built graph between processes or
// into diagnostic dumps. Snapshots are an in-session transport format, not
// durable storage; a restarted host rebuilds from its sources.
package graph
