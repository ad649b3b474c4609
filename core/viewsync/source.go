package viewsync

import (
	"context"

	"storage-console/core/generic"
)

// Source supplies entity keys and view records for one feature. A Syncer
// serializes calls into its source, so implementations may cache state
// between ListKeys and the Fetch calls of the same refresh.
type Source interface {
	// Name returns the unique source name (e.g. "vpool", "vdisk"), used
	// for logging and singleflight keys.
	Name() string

	// ListKeys returns the current entity keys in the order the view
	// should append newly discovered entries.
	ListKeys(ctx context.Context) ([]string, error)

	// Fetch builds the view record for a single entity. Returning a nil
	// record without an error means the entity is not materialized yet;
	// the key is skipped this refresh and retried on the next one.
	Fetch(ctx context.Context, key string) (generic.Record, error)
}
