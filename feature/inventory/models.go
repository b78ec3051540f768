package inventory

import (
	"fmt"

	"craftstore/core/crafting"
)

// Item represents a row of the 'inventory_items' table.
type Item struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	PlayerID string `gorm:"column:player_id;type:varchar(64);index;not null"`
	Pool     string `gorm:"column:pool;type:varchar(16);not null"` // bag, house, tool
	ItemID   uint32 `gorm:"column:item_id;not null"`
	Category uint32 `gorm:"column:category;not null;default:0"`
	Stack    int    `gorm:"column:stack;not null;default:0"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "inventory_items"
}

// ToRecord converts the row to its pool role and record.
func (i Item) ToRecord() (crafting.PoolRole, crafting.ItemRecord, error) {
	role, err := crafting.ParseRole(i.Pool)
	if err != nil {
		return 0, crafting.ItemRecord{}, fmt.Errorf("inventory row %d: %w", i.ID, err)
	}
	return role, crafting.ItemRecord{ItemID: i.ItemID, Category: i.Category, Stack: i.Stack}, nil
}
