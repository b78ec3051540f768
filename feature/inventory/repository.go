package inventory

import (
	"context"
	"errors"
	"fmt"

	"craftstore/core/crafting"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the repository was built without a connection.
var ErrNoDatabase = errors.New("inventory database is not connected")

// Repository loads storage pools from the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository. db may be nil when the database is optional.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LoadSnapshot reads every pool row of the player in insertion order.
// An unknown pool value fails the load instead of dropping the row.
func (r *Repository) LoadSnapshot(ctx context.Context, playerID string) (crafting.Snapshot, error) {
	snapshot := crafting.NewSnapshot(nil, nil, nil)
	if r.db == nil {
		return snapshot, ErrNoDatabase
	}

	var rows []Item
	if err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("id").
		Find(&rows).Error; err != nil {
		return snapshot, fmt.Errorf("failed to load inventory for %s: %w", playerID, err)
	}

	for _, row := range rows {
		role, rec, err := row.ToRecord()
		if err != nil {
			return snapshot, err
		}
		if err := snapshot.Add(role, rec); err != nil {
			return snapshot, err
		}
	}

	return snapshot, nil
}

// Migrate creates or updates the inventory table.
func (r *Repository) Migrate(ctx context.Context) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	return r.db.WithContext(ctx).AutoMigrate(&Item{})
}
