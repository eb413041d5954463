// Package cache implements the copper-paths cache: a memo of
// polyset.PolygonSet keyed by (layer, net-signal set, ignore-planes
// flag), shared across the checks that need a bulk "all copper on this
// layer" view (copper/hole clearance, annular ring). It is populated lazily,
// owned exclusively by one drc.Engine run, and never outlives that run —
// the coordinator constructs a fresh Cache per Execute call and drops it
// when the run ends.
//
//	cache.go — Key, Cache, Layer (the lazy memoized lookup)
package cache
