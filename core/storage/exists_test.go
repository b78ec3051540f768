package storage_test

import (
	"context"
	"testing"

	"craftstore/core/storage"
	"craftstore/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func listing(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestObjectExists(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(listing(minio.ObjectInfo{Key: "gamedata/RecipeData.json"}))

		ok, err := storage.ObjectExists(context.Background(), mockClient, "assets", "gamedata/RecipeData.json")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Only Longer Key", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(listing(minio.ObjectInfo{Key: "gamedata/RecipeData.json.bak"}))

		ok, err := storage.ObjectExists(context.Background(), mockClient, "assets", "gamedata/RecipeData.json")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Listing Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(listing(minio.ObjectInfo{Err: assert.AnError}))

		_, err := storage.ObjectExists(context.Background(), mockClient, "assets", "gamedata/RecipeData.json")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
