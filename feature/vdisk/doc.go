// Package vdisk implements the vdisk console view feature.
//
// It maintains an in-memory view of the platform's virtual disks, kept in
// sync with the database through the `core/viewsync` engine and enriched with
// volume object presence from the storage backend: each refresh snapshots the
// `volumes/` namespace once and annotates every record with whether its
// backing object exists.
//
// # Components
//
//   - Source: Feeds the view from the vdisks table plus the volume namespace.
//   - Service: Owns the syncer and answers list/get/orphan/edit requests.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /vdisks               : List all vdisk view records.
//   - GET    /vdisks/:guid         : Get one vdisk record.
//   - GET    /vdisks/vpool/:guid   : List vdisks on a vpool.
//   - GET    /vdisks/orphans       : List volume objects without a vdisk.
//   - POST   /vdisks/refresh       : Force a resync.
//   - PATCH  /vdisks/:guid         : Apply operator edits.
package vdisk
