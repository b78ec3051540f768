// Package database handles the inventory database connection and schema inspection.
//
// It wraps GORM and selects the MySQL or SQLite dialector from the configuration. SQLite is
// mainly used with ":memory:" in tests and for single-file local setups.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns in a driver-independent shape. The integrity feature
// compares them with the GORM tags of the inventory models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory_items")
package database
