package config

type DashboardConfig struct {
	ListenAddress string `toml:"listen_address"`
	ListenPort    int    `toml:"listen_port"`
	CSVPath       string `toml:"csv_path"`
	// "text" or "json"
	LogFormat string `toml:"log_format"`

	Columns  ColumnSchemaConfig `toml:"columns"`
	Pipeline PipelineConfig     `toml:"pipeline"`
}

// ColumnSchemaConfig makes the input file's column roles explicit instead
// of hardcoding names, so a missing column fails early with a clear error.
type ColumnSchemaConfig struct {
	Timestamp       string `toml:"timestamp"`
	TimestampLayout string `toml:"timestamp_layout"`
	// Columns whose header contains this marker are energy columns.
	EnergyMarker string   `toml:"energy_marker"`
	Solar        string   `toml:"solar"`
	Weather      []string `toml:"weather"`
	// Energy columns that are house-wide totals rather than individual
	// appliances. They are not counted as appliances in sums or rankings.
	ExcludeFromAppliances []string `toml:"exclude_from_appliances"`
}

type PipelineConfig struct {
	SmoothingWindow     int    `toml:"smoothing_window"`
	ScatterSampleStride int    `toml:"scatter_sample_stride"`
	TopApplianceCount   int    `toml:"top_appliance_count"`
	DefaultBucket       string `toml:"default_bucket"`
}
