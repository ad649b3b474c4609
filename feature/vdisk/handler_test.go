package vdisk_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storage-console/core/storage/mocks"
	"storage-console/feature/vdisk"
	"storage-console/feature/vdisk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, client *mocks.Client, volumes []string, disks ...models.VDisk) *fiber.App {
	db, mockDB := setupMockDB(t)
	expectRefresh(mockDB, client, volumes, disks...)

	svc := vdisk.NewService(db, client, "volumes", zap.NewNop(), time.Minute)
	h := vdisk.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func TestHandleListVDisks(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, []string{"disk1.raw"},
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/vdisks", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []map[string]any
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &records))
	require.Len(t, records, 1)
	assert.Equal(t, true, records[0]["volume_present"])
}

func TestHandleGetVDisk(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, nil,
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/vdisks/guid-1", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/vdisks/unknown", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleListOrphans(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, []string{"disk1.raw", "stray.raw"},
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)
	client.On("ListObjects", mock.Anything, "volumes", mock.Anything).
		Return(volumeChannel("disk1.raw", "stray.raw")).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/vdisks/orphans", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var orphans []string
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &orphans))
	assert.Equal(t, []string{"stray.raw"}, orphans)
}

func TestHandleGetVDiskVolume(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, []string{"disk1.raw"},
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)
	client.On("StatObject", mock.Anything, "volumes", vdisk.VolumePrefix+"disk1.raw", mock.Anything).
		Return(minio.ObjectInfo{Size: 512}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/vdisks/guid-1/volume", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var info map[string]any
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, true, info["present"])
	assert.EqualValues(t, 512, info["size"])

	resp, err = app.Test(httptest.NewRequest("GET", "/vdisks/unknown/volume", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandlePurgeOrphans(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, []string{"disk1.raw", "stray.raw"},
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)
	client.On("ListObjects", mock.Anything, "volumes", mock.Anything).
		Return(volumeChannel("disk1.raw", "stray.raw")).Once()
	client.On("RemoveObjects", mock.Anything, "volumes", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for range args.Get(2).(<-chan minio.ObjectInfo) {
			}
		}).
		Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/vdisks/orphans", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var purged []string
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &purged))
	assert.Equal(t, []string{"stray.raw"}, purged)
	client.AssertExpectations(t)
}

func TestHandleListVDisksOnVPool(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, nil,
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw", VPoolGUID: "pool-a"},
		models.VDisk{GUID: "guid-2", Name: "disk2", DeviceName: "disk2.raw", VPoolGUID: "pool-b"},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/vdisks/vpool/pool-b", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []map[string]any
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "guid-2", records[0]["guid"])
}

func TestHandleEditVDisk(t *testing.T) {
	client := new(mocks.Client)
	app := setupApp(t, client, nil,
		models.VDisk{GUID: "guid-1", Name: "disk1", DeviceName: "disk1.raw"},
	)

	req := httptest.NewRequest("PATCH", "/vdisks/guid-1", strings.NewReader(`{"name":"boot"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var record map[string]any
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, "boot", record["name"])

	req = httptest.NewRequest("PATCH", "/vdisks/guid-1", strings.NewReader(`{"size":99}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Editing an unknown vdisk is a 404, matching the GET route.
	req = httptest.NewRequest("PATCH", "/vdisks/unknown", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
