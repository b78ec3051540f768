package crafting

import (
	"context"
	"fmt"
	"strings"

	"craftstore/core/crafting"
	"craftstore/core/masterdata"
	"craftstore/core/server"
	"craftstore/core/storage"
	"craftstore/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service evaluates recipes against stored inventories.
type Service struct {
	catalog *masterdata.Cache
	repo    *inventory.Repository
	logger  *zap.Logger
	station string
}

// NewService creates a new crafting service. db may be nil, in which case only inline
// evaluation works.
func NewService(client storage.Client, bucket string, cfg masterdata.Config, logger *zap.Logger, db *gorm.DB, station string) *Service {
	return &Service{
		catalog: masterdata.NewCache(client, bucket, cfg),
		repo:    inventory.NewRepository(db),
		logger:  logger,
		station: station,
	}
}

// Evaluate runs an inline requirement against inline pools.
func (s *Service) Evaluate(req EvaluateRequest) (*RecipeReport, error) {
	ev := crafting.NewEvaluator(req.Snapshot())
	return BuildReport(ev, req.Requirement())
}

// EvaluateRecipe loads the player's pools and reports on one recipe, found by id or name.
func (s *Service) EvaluateRecipe(ctx context.Context, playerID, query string) (*RecipeReport, error) {
	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load master data: %w", err)
	}

	recipe, ok := catalog.FindRecipe(query)
	if !ok {
		return nil, &RecipeNotFoundError{Query: query, Suggestions: catalog.Suggest(query)}
	}

	snapshot, err := s.repo.LoadSnapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	report, err := BuildReport(crafting.NewEvaluator(snapshot), catalog.Requirement(recipe))
	if err != nil {
		return nil, fmt.Errorf("recipe %d: %w", recipe.ID, err)
	}

	report.RecipeID = recipe.ID
	report.Name = recipe.Name
	report.Station = recipe.Station
	report.PlayerID = playerID

	s.logger.Debug("Recipe evaluated",
		zap.String("player", playerID),
		zap.Uint32("recipe", recipe.ID),
		zap.Bool("craftable", report.Craftable))

	return report, nil
}

// RecipeMask reports craftability of every recipe of a station. An empty station uses
// the configured default. A recipe whose lines cannot be evaluated carries an error
// instead of a verdict.
func (s *Service) RecipeMask(ctx context.Context, playerID, station string) ([]RecipeStatus, error) {
	station = strings.ToLower(strings.TrimSpace(station))
	if station == "" {
		station = s.station
	}
	if !server.IsStation(station) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStation, station)
	}

	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load master data: %w", err)
	}

	snapshot, err := s.repo.LoadSnapshot(ctx, playerID)
	if err != nil {
		return nil, err
	}

	ev := crafting.NewEvaluator(snapshot)
	recipes := catalog.RecipesForStation(station)
	mask := make([]RecipeStatus, 0, len(recipes))

	for _, r := range recipes {
		status := recipeStatus(ev, r, catalog.Requirement(r))
		if status.Error != "" {
			s.logger.Warn("Malformed recipe in mask",
				zap.Uint32("recipe", r.ID),
				zap.String("error", status.Error))
		}
		mask = append(mask, status)
	}

	return mask, nil
}

func recipeStatus(ev *crafting.Evaluator, r masterdata.Recipe, req crafting.RecipeRequirement) RecipeStatus {
	status := RecipeStatus{RecipeID: r.ID, Name: r.Name}
	craftable, err := ev.IsCraftable(req)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Craftable = craftable
	return status
}

// Station returns the configured default station.
func (s *Service) Station() string {
	return s.station
}
