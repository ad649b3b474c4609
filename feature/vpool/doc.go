// Package vpool implements the vpool console view feature.
//
// It maintains an in-memory view of the platform's virtual storage pools,
// kept in sync with the database through the `core/viewsync` engine: a TTL
// freshness window, cross-fill of appeared/disappeared pools and a selective
// merge that preserves operator edits on fields the backend did not change.
//
// # Components
//
//   - Source: Feeds the view from the vpools table.
//   - Service: Owns the syncer and answers list/get/status/edit requests.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /vpools                 : List all vpool view records.
//   - GET    /vpools/:guid           : Get one vpool record.
//   - GET    /vpools/status/:status  : List vpools in a lifecycle status.
//   - POST   /vpools/refresh         : Force a resync with the database.
//   - PATCH  /vpools/:guid           : Apply operator edits.
package vpool
