package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ObjectExists reports whether key is present in bucket.
// It lists with the key as prefix so no HEAD permission is needed.
func ObjectExists(ctx context.Context, client Client, bucket, key string) (bool, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list %s: %w", key, obj.Err)
		}
		if obj.Key == key {
			return true, nil
		}
	}
	return false, nil
}
