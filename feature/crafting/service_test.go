package crafting_test

import (
	"context"
	"errors"
	"testing"

	core "craftstore/core/crafting"
	"craftstore/core/storage/mocks"
	"craftstore/feature/crafting"
	"craftstore/feature/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Evaluate(t *testing.T) {
	svc, _ := newService(t, nil)

	t.Run("Inline Pools", func(t *testing.T) {
		req := crafting.EvaluateRequest{
			Pools: crafting.PoolsPayload{
				Bag:   []core.ItemRecord{{ItemID: 5, Category: 1, Stack: 4}},
				House: []core.ItemRecord{{ItemID: 5, Category: 1, Stack: 1500}},
			},
			Lines: []core.RequiredItemLine{
				{TargetID: 5, RequiredStack: 3, Kind: core.Item},
				{TargetID: 0, RequiredStack: 0, Kind: core.Item},
			},
		}

		report, err := svc.Evaluate(req)
		require.NoError(t, err)
		assert.True(t, report.Craftable)
		require.Len(t, report.Lines, 2)
		assert.Equal(t, 1500, report.Lines[0].InStorage)
		assert.Equal(t, 1504, report.Lines[0].Total)
		assert.Equal(t, "999+", report.Lines[0].Label)
		assert.True(t, report.Lines[0].Enough)
		assert.True(t, report.Lines[1].Empty)
		assert.Equal(t, "", report.Lines[1].Label)
	})

	t.Run("Group Table", func(t *testing.T) {
		req := crafting.EvaluateRequest{
			Pools:  crafting.PoolsPayload{Tool: []core.ItemRecord{{ItemID: 8, Stack: 2}}},
			Lines:  []core.RequiredItemLine{{TargetID: 20, RequiredStack: 2, Kind: core.Group}},
			Groups: []core.GroupDefinition{{GroupID: 20, MemberItemIDs: []uint32{0, 8, 9}}},
		}

		report, err := svc.Evaluate(req)
		require.NoError(t, err)
		assert.True(t, report.Craftable)
		assert.Equal(t, 2, report.Lines[0].InStorage)
	})

	t.Run("Malformed Line", func(t *testing.T) {
		req := crafting.EvaluateRequest{
			Lines: []core.RequiredItemLine{{TargetID: 5, RequiredStack: -1, Kind: core.Item}},
		}
		_, err := svc.Evaluate(req)
		assert.ErrorIs(t, err, core.ErrMalformedLine)
	})
}

func TestService_EvaluateRecipe(t *testing.T) {
	db := seedPlayer(t)

	t.Run("By Name", func(t *testing.T) {
		svc, client := newService(t, db)

		report, err := svc.EvaluateRecipe(context.Background(), "p1", "wooden chair")
		require.NoError(t, err)
		assert.Equal(t, uint32(1), report.RecipeID)
		assert.Equal(t, "p1", report.PlayerID)
		assert.True(t, report.Craftable)
		require.Len(t, report.Lines, 3)

		assert.Equal(t, 1, report.Lines[0].InStorage)
		assert.Equal(t, 2, report.Lines[0].Total)
		assert.False(t, report.Lines[0].Enough)

		assert.Equal(t, core.Group, report.Lines[1].Kind)
		assert.Equal(t, 3, report.Lines[1].InStorage)
		assert.Equal(t, "3", report.Lines[1].Label)
		assert.True(t, report.Lines[1].Enough)

		assert.True(t, report.Lines[2].Empty)

		// A second call reuses the cached catalog.
		_, err = svc.EvaluateRecipe(context.Background(), "p1", "1")
		require.NoError(t, err)
		client.AssertNumberOfCalls(t, "GetObject", 2)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, _ := newService(t, db)

		_, err := svc.EvaluateRecipe(context.Background(), "p1", "wooden")
		require.Error(t, err)
		assert.ErrorIs(t, err, crafting.ErrRecipeNotFound)

		var notFound *crafting.RecipeNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.ElementsMatch(t, []string{"Wooden Chair", "Wooden Table"}, notFound.Suggestions)
	})

	t.Run("No Database", func(t *testing.T) {
		svc, _ := newService(t, nil)

		_, err := svc.EvaluateRecipe(context.Background(), "p1", "1")
		assert.ErrorIs(t, err, inventory.ErrNoDatabase)
	})

	t.Run("Master Data Unavailable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
		svc := crafting.NewService(client, "assets", mdConfig, zap.NewNop(), db, "windmill")

		_, err := svc.EvaluateRecipe(context.Background(), "p1", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load master data")
	})
}

func TestService_RecipeMask(t *testing.T) {
	db := seedPlayer(t)

	t.Run("Default Station", func(t *testing.T) {
		svc, _ := newService(t, db)

		mask, err := svc.RecipeMask(context.Background(), "p1", "")
		require.NoError(t, err)
		assert.Equal(t, []crafting.RecipeStatus{
			{RecipeID: 1, Name: "Wooden Chair", Craftable: true},
			{RecipeID: 3, Name: "Wooden Table", Craftable: true},
		}, mask)
	})

	t.Run("Cooking", func(t *testing.T) {
		svc, _ := newService(t, db)

		mask, err := svc.RecipeMask(context.Background(), "p1", "Cooking")
		require.NoError(t, err)
		assert.Equal(t, []crafting.RecipeStatus{
			{RecipeID: 2, Name: "Vegetable Soup", Craftable: false},
		}, mask)
	})

	t.Run("Unknown Station", func(t *testing.T) {
		svc, _ := newService(t, db)

		_, err := svc.RecipeMask(context.Background(), "p1", "forge")
		assert.ErrorIs(t, err, crafting.ErrInvalidStation)
	})
}
