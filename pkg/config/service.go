package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/boracolakoglu/energy-dashboard/pkg/pathing"
)

var ActiveDashboardConfig *DashboardConfig

// DefaultDashboardConfig matches the column layout of the household
// energy dataset the dashboard was built around.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		ListenAddress: "0.0.0.0",
		ListenPort:    9040,
		CSVPath:       pathing.GetDefaultCSVPath(),
		LogFormat:     "text",
		Columns: ColumnSchemaConfig{
			Timestamp:       "time",
			TimestampLayout: "2006-01-02 15:04:05",
			EnergyMarker:    "[kW]",
			Solar:           "Solar [kW]",
			Weather:         []string{"temperature"},
			ExcludeFromAppliances: []string{
				"use [kW]",
				"gen [kW]",
				"House overall [kW]",
			},
		},
		Pipeline: PipelineConfig{
			SmoothingWindow:     7,
			ScatterSampleStride: 20,
			TopApplianceCount:   5,
			DefaultBucket:       "day",
		},
	}
}

func LoadDashboardConfig() error {
	configPath := filepath.Join(pathing.GetConfigDir(), "dashboard.toml")

	// Create default if not exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultDashboardConfig()
		if err := pathing.EnsureDir(pathing.GetConfigDir()); err != nil {
			return err
		}
		// Create file
		cfgFile, err := os.Create(configPath)
		if err != nil {
			return err
		}
		defer cfgFile.Close()
		if err := toml.NewEncoder(cfgFile).Encode(cfg); err != nil {
			return err
		}
		ActiveDashboardConfig = cfg
		return nil
	}

	// Load existing config
	var config DashboardConfig
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return err
	}
	ActiveDashboardConfig = &config
	return nil
}
