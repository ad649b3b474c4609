// Package viewsync keeps the console's observable view collections
// synchronized with their backing sources.
//
// A Syncer owns one observe.Collection of view records for a feature
// (vpools, vdisks, ...). On refresh it lists the current entity keys from a
// Source, cross-fills the collection against that key list (new entities
// appended, vanished ones pruned), and selectively merges freshly fetched
// field values into the retained records. Merging is three-way against the
// last-synced snapshot, so fields an operator edited through the API keep
// their local value until the entity itself changes again.
//
// # Architecture
//
// 1. Source: feature-specific adapter that lists keys and fetches one view
// record per entity (database rows, object-store presence, ...).
//
// 2. Syncer: refresh orchestration — TTL freshness, singleflight stampede
// protection, cross-fill, per-record merge, snapshot bookkeeping, and a
// sorted index for O(log n) key lookups.
//
// # Usage
//
//	syncer := viewsync.NewSyncer(source, viewsync.Config{
//	    KeyField: "guid",
//	    Editable: []string{"name", "description"},
//	    TTL:      time.Minute,
//	}, logg)
//
//	_ = syncer.EnsureFresh(ctx)     // refresh only when stale
//	rec, ok := syncer.Get("a-guid") // O(log n) over the sorted index
//	_ = syncer.ApplyEdit("a-guid", "name", "renamed")
package viewsync
