package types

import (
	"math"
	"time"
)

// Reading is one row of the input file: a timestamp plus the numeric
// columns the pipeline cares about (appliances, solar, weather).
// A zero Timestamp marks a row whose timestamp cell was empty; NaN marks
// an empty numeric cell. Both are resolved by the cleaner.
type Reading struct {
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
}

// IsNull reports whether the named cell was empty in the source file.
func (r *Reading) IsNull(column string) bool {
	v, ok := r.Values[column]
	return !ok || math.IsNaN(v)
}

// Value returns the cell value, treating missing cells as zero.
func (r *Reading) Value(column string) float64 {
	v, ok := r.Values[column]
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// Schema describes which columns of the input file play which role.
type Schema struct {
	TimestampColumn  string   `json:"timestamp_column"`
	SolarColumn      string   `json:"solar_column"`
	ApplianceColumns []string `json:"appliance_columns"`
	WeatherColumns   []string `json:"weather_columns"`
}

// HasWeatherColumn reports whether name is one of the schema's weather columns.
func (s *Schema) HasWeatherColumn(name string) bool {
	for _, c := range s.WeatherColumns {
		if c == name {
			return true
		}
	}
	return false
}

// HasApplianceColumn reports whether name is one of the schema's appliance columns.
func (s *Schema) HasApplianceColumn(name string) bool {
	for _, c := range s.ApplianceColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Table is an ordered sequence of readings plus the schema they were read
// with. It is owned by a single pipeline run and never shared or mutated
// across runs.
type Table struct {
	Schema   Schema    `json:"schema"`
	Readings []Reading `json:"readings"`
}
