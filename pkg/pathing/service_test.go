package pathing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirsDefaultAndOverride(t *testing.T) {
	t.Setenv("ENERGY_DASHBOARD_CONFIG_DIR", "")
	t.Setenv("ENERGY_DASHBOARD_DATA_DIR", "")
	assert.Equal(t, "config", GetConfigDir())
	assert.Equal(t, "data", GetDataDir())
	assert.Equal(t, filepath.Join("data", "cleaned_energy_data.csv"), GetDefaultCSVPath())

	t.Setenv("ENERGY_DASHBOARD_CONFIG_DIR", "/tmp/cfg")
	t.Setenv("ENERGY_DASHBOARD_DATA_DIR", "/tmp/data")
	assert.Equal(t, "/tmp/cfg", GetConfigDir())
	assert.Equal(t, filepath.Join("/tmp/data", "cleaned_energy_data.csv"), GetDefaultCSVPath())
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	require.NoError(t, EnsureDir(dir))
}
