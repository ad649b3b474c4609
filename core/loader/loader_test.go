package loader

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := &fakeFeature{name: "vpool", enabled: true}
	disabled := &fakeFeature{name: "vdisk", enabled: false}

	m := NewManager()
	m.Register(enabled)
	m.Register(disabled)

	require.NoError(t, m.LoadAll(app))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Len(t, m.Features(), 2)
}

func TestManager_LoadAllError(t *testing.T) {
	app := fiber.New()

	failing := &fakeFeature{name: "health", enabled: true, loadErr: fmt.Errorf("route clash")}
	next := &fakeFeature{name: "vpool", enabled: true}

	m := NewManager()
	m.Register(failing)
	m.Register(next)

	err := m.LoadAll(app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health")
	assert.False(t, next.loaded, "load must fail fast")
}
