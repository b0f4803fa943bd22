package pipeline

import (
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/cleaner"
	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

// Options are the per-interaction inputs: the display unit toggle plus
// the recovered dashboard filters. Zero values fall back to configured
// defaults.
type Options struct {
	Unit          types.Unit
	Bucket        types.Bucket
	From          time.Time
	To            time.Time
	Appliances    []string
	WeatherColumn string
}

// Result bundles everything one dashboard render needs. It is rebuilt
// from scratch on every run and never mutated afterwards.
type Result struct {
	Unit          string                     `json:"unit"`
	Bucket        string                     `json:"bucket"`
	Trend         types.TimeSeriesAggregate  `json:"trend"`
	TrendSmoothed types.TimeSeriesAggregate  `json:"trend_smoothed"`
	WeatherColumn string                     `json:"weather_column"`
	WeatherPairs  []types.RegressionSample   `json:"weather_pairs"`
	Summary       types.SummaryTotals        `json:"summary"`
	NetKW         float64                    `json:"net_kw"`
	TopAppliances types.MonthlyTopAppliances `json:"top_appliances"`
	Appliances    []string                   `json:"appliances"`
	CleanReport   cleaner.Report             `json:"clean_report"`
}
