package crafting_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"craftstore/core/database"
	"craftstore/core/masterdata"
	"craftstore/core/storage/mocks"
	"craftstore/feature/crafting"
	"craftstore/feature/inventory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const groupJSON = `{"groups": [{"id": 10, "requiredItemIdList": [0, 7]}]}`

const recipeJSON = `{
  "recipes": [
    {"id": 1, "name": "Wooden Chair", "station": "windmill",
     "requiredItemList": ["(101, 2)", "(10, 3)", "(0, 0)"], "requiredItemTypeList": [0, 2, 0]},
    {"id": 2, "name": "Vegetable Soup", "station": "cooking",
     "requiredItemList": ["(4, 1)"], "requiredItemTypeList": [1]},
    {"id": 3, "name": "Wooden Table", "station": "windmill",
     "requiredItemList": [], "requiredItemTypeList": []}
  ]
}`

var mdConfig = masterdata.Config{
	GroupObject:     "gamedata/ItemGroupData.json",
	RecipeObject:    "gamedata/RecipeData.json",
	CacheTTLSeconds: 300,
}

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func newMasterDataMock() *mocks.Client {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "assets", mdConfig.GroupObject, mock.Anything).Return(body(groupJSON), nil).Once()
	client.On("GetObject", mock.Anything, "assets", mdConfig.RecipeObject, mock.Anything).Return(body(recipeJSON), nil).Once()
	return client
}

// seedPlayer stores p1: 101 in bag and house, item 7 (category 2) in house and tool.
func seedPlayer(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, inventory.NewRepository(db).Migrate(context.Background()))

	rows := []inventory.Item{
		{PlayerID: "p1", Pool: "bag", ItemID: 101, Category: 1, Stack: 1},
		{PlayerID: "p1", Pool: "house", ItemID: 101, Category: 1, Stack: 1},
		{PlayerID: "p1", Pool: "house", ItemID: 7, Category: 2, Stack: 2},
		{PlayerID: "p1", Pool: "tool", ItemID: 7, Category: 2, Stack: 1},
	}
	require.NoError(t, db.Create(&rows).Error)
	return db
}

func newService(t *testing.T, db *gorm.DB) (*crafting.Service, *mocks.Client) {
	client := newMasterDataMock()
	return crafting.NewService(client, "assets", mdConfig, zap.NewNop(), db, "windmill"), client
}
