// Package cache owns the per-source graph cache and its invalidation entry
// points.
//
// # Lazy build
//
// A Cache maps source identities to built graphs. IsReachable looks the
// source up; on a miss it runs the injected Builder exactly once, stores
// the result, and only then answers the query. A hit neither builds nor
// stores. There is no "known empty" state: an absent entry always means
// "rebuild before next use".
//
// # Build strategies
//
// The Builder is injected, not inherited. ClassBuilder indexes entity
// classes, adding composition edges for relationship dimensions and
// substitutability edges for subclass declarations. EntityBuilder indexes
// entities, adding composition edges for relationship elements only —
// element references already name the concrete entity, so substitution has
// happened one level down in the owning model.
//
// # Invalidation
//
// The cache never watches anything. The host's notification layer calls:
//
//   - Invalidate(src) — unconditional drop, idempotent.
//   - InvalidateChanged(kind, changes) — drop every source listed in the
//     batch, if kind is one the builder reads. The filter is deliberately
//     coarse: "did anything of this kind change", not "did this change
//     affect the graph".
//   - InvalidateFetched(kind, src) — drop one source after a lazy loader
//     finished fetching a batch, under the same kind filter.
//
// # Staleness
//
// A query against a stale graph fails with reach.NodeNotFoundError rather
// than silently recovering: by default a missed invalidation hookup is a
// wiring defect worth surfacing. Hosts that prefer robustness opt into one
// drop-rebuild-retry cycle with WithRebuildOnStale.
//
// # Concurrency
//
// Cache performs no locking; it expects one logical thread of control. The
// read-check-build-store sequence and the invalidation drops are not atomic
// with respect to each other, so concurrent hosts must either route all
// calls through one goroutine or wrap the cache in Shared, which adds a
// read-write lock and deduplicates concurrent builds per source.
package cache
