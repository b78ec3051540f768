package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"craftstore/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, "test-bucket", testConfig, zap.NewNop(), db)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func TestHandleMasterDataCheck(t *testing.T) {
	t.Run("Missing Objects", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		emptyListing(mockClient, "test-bucket")

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/masterdata", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "error", body["status"])
		assert.Len(t, body["missing"], 2)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/masterdata", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleServerCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SHOW COLUMNS FROM `inventory_items`").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "bigint(20) unsigned", "NO", "PRI", nil, ""))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	// Fail both checks fast; the combined report still answers 200.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["masterdata"]["status"])
	assert.Equal(t, false, body["server"]["matched"])
}
