// Package storage provides an abstraction layer for the object store that
// backs the platform's volumes.
//
// It wraps the MinIO Go client behind a small interface for the operations
// the console needs: checking bucket and volume-object presence, listing the
// volume namespace, and purging orphaned volume objects. The abstraction
// supports both AWS S3 and self-hosted MinIO instances, and makes storage
// interactions easy to mock in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "volumes")
package storage
