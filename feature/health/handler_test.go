package health_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"storage-console/core/storage/mocks"
	"storage-console/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db, mockDB := setupMockDB(t)
		mockDB.ExpectPing()
		mockDB.ExpectQuery("SHOW COLUMNS FROM `vpools`").
			WillReturnRows(columnsResult("guid", "name", "size", "status", "connection", "login"))
		mockDB.ExpectQuery("SHOW COLUMNS FROM `vdisks`").
			WillReturnRows(columnsResult("guid", "name", "description", "size", "devicename", "volume_id", "vpool_guid"))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "volumes").Return(true, nil)

		app := fiber.New()
		health.NewHandler(health.NewService(db, client, "volumes", zap.NewNop())).RegisterRoutes(app)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report health.Report
		body, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, "ok", report.Status)
	})

	t.Run("Degraded", func(t *testing.T) {
		db, mockDB := setupMockDB(t)
		mockDB.ExpectPing().WillReturnError(assert.AnError)
		mockDB.ExpectQuery("SHOW COLUMNS FROM `vpools`").
			WillReturnRows(columnsResult("guid", "name", "size", "status", "connection", "login"))
		mockDB.ExpectQuery("SHOW COLUMNS FROM `vdisks`").
			WillReturnRows(columnsResult("guid", "name", "description", "size", "devicename", "volume_id", "vpool_guid"))

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "volumes").Return(true, nil)

		app := fiber.New()
		health.NewHandler(health.NewService(db, client, "volumes", zap.NewNop())).RegisterRoutes(app)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}
