package pathing

import (
	"os"
	"path/filepath"
)

// Directory layout is relative to the working directory by default so the
// dashboard can run straight from a checkout. Both locations can be moved
// with environment variables.

func GetConfigDir() string {
	if dir := os.Getenv("ENERGY_DASHBOARD_CONFIG_DIR"); dir != "" {
		return dir
	}
	return "config"
}

func GetDataDir() string {
	if dir := os.Getenv("ENERGY_DASHBOARD_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func GetDefaultCSVPath() string {
	return filepath.Join(GetDataDir(), "cleaned_energy_data.csv")
}

// EnsureDir creates dir if it does not exist yet.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
