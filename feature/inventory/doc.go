// Package inventory reads a player's storage pools from the inventory database.
//
// Each row of the inventory_items table is one ItemRecord in one pool (bag, house or tool).
// LoadSnapshot turns a player's rows into a crafting.Snapshot; rows are never written here,
// the game server owns them.
//
// # Usage
//
//	repo := inventory.NewRepository(db)
//	snapshot, err := repo.LoadSnapshot(ctx, "player-1")
package inventory
