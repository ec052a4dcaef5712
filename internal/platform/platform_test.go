package platform

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName(AppName)
	assert.Equal(t, port, portFromName(AppName))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestSecondInstanceActivatesFirst(t *testing.T) {
	name := "kegeltoday-test-" + uuid.NewString()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.SetOnActivate(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(name)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	name := "kegeltoday-test-" + uuid.NewString()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestConfigDir(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom")
	dir, err := ConfigDir(override)
	require.NoError(t, err)
	assert.Equal(t, override, dir)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	dir, err = ConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(dir))
}
