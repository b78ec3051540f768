// Package storage provides an abstraction layer for the object storage holding master data.
//
// It wraps the MinIO Go client; both AWS S3 and self-hosted MinIO work. The Client interface
// keeps the surface small so it can be mocked in tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - ObjectExists: Single-key presence check built on ListObjects.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	ok, err := storage.ObjectExists(ctx, client, "assets", "gamedata/RecipeData.json")
package storage
