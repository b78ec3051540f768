package checks

import (
	"testing"

	"craftstore/core/database"
	"craftstore/feature/inventory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func inventoryColumns() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint(20) unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("player_id", "varchar(64)", "NO", "MUL", nil, "")
	rows.AddRow("pool", "varchar(16)", "NO", "", nil, "")
	rows.AddRow("item_id", "int(10) unsigned", "NO", "", nil, "")
	rows.AddRow("category", "int(10) unsigned", "NO", "", "0", "")
	rows.AddRow("stack", "bigint(20)", "NO", "", "0", "")
	return rows
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_Match(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `inventory_items`").WillReturnRows(inventoryColumns())

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)
	assert.Equal(t, "ok", report.Tables["inventory_items"].Status)
}

func TestCheckServerIntegrity_Missing(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("player_id", "varchar(64)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `inventory_items`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["inventory_items"]
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"pool", "item_id", "category", "stack"}, tbl.MissingColumns)
}

func TestCheckServerIntegrity_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "int(11)", "NO", "PRI", nil, "")
	rows.AddRow("player_id", "int(11)", "NO", "", nil, "")
	rows.AddRow("pool", "varchar(16)", "NO", "", nil, "")
	rows.AddRow("item_id", "int(11)", "NO", "", nil, "")
	rows.AddRow("category", "int(11)", "NO", "", nil, "")
	rows.AddRow("stack", "int(11)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `inventory_items`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"player_id: expected varchar(64), got int(11)"}, report.Tables["inventory_items"].TypeMismatches)
}

func TestCheckServerIntegrity_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS").WillReturnError(assert.AnError)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckServerIntegrity_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	t.Run("Missing Table", func(t *testing.T) {
		report, err := CheckServerIntegrity(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Errors, "Table inventory_items does not exist")
	})

	t.Run("Migrated", func(t *testing.T) {
		require.NoError(t, db.AutoMigrate(&inventory.Item{}))

		report, err := CheckServerIntegrity(db)
		require.NoError(t, err)
		assert.True(t, report.Matched, "%+v", report)
		assert.Equal(t, "sqlite", report.Driver)
	})
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_name", parseGormColumn("primaryKey;column:item_name;type:varchar(100)"))
	assert.Equal(t, "varchar(16)", parseGormType("column:pool;type:varchar(16);not null"))
	assert.Equal(t, "", parseGormType("column:id"))
}
