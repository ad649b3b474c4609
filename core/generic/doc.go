// Package generic provides the shared algorithm toolkit used by the console
// view layer: ordered search, structural equality, collection cross-fill,
// and selective three-way merge.
//
// The package is stateless. All inputs are caller-owned; only CrossFill and
// Merge mutate their target, and both do so in place. Nothing here blocks or
// spawns goroutines, so the functions are safe to call from any single
// logical execution context (the caller provides synchronization if the
// target is shared).
//
// # Ordered Search
//
// Search, SearchFirst and SearchLast perform O(log n) binary searches over
// sequences the caller has already sorted in non-decreasing order. Sortedness
// is not verified; results on unsorted input are undefined. The By variants
// take a key extractor so records can be searched by a projected field
// without reflection.
//
// # Structural Equality
//
// SequenceEquals and RecordEquals implement deep equality over loosely shaped
// data (JSON-decoded values). They never panic: any shape or comparability
// mismatch resolves to "not equal". There is no cycle guard; cyclic inputs
// recurse without bound.
//
// # Cross-Fill
//
// CrossFill reconciles an ordered keyed collection against a fresh key list,
// appending missing entries through a loader and pruning stale ones. Retained
// entries are never reordered.
//
// # Selective Merge
//
// Merge applies freshly fetched field values onto a live record only where
// the live record has not diverged from the last-synced snapshot, so local
// operator edits always win over background refreshes.
package generic
