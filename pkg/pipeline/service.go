// Pipeline is the stateless load -> clean -> aggregate run behind every
// dashboard interaction. Each call re-reads the input file and recomputes
// all four views; nothing is retained between calls, so two runs over the
// same file yield identical results.
package pipeline

import (
	"log/slog"

	"github.com/boracolakoglu/energy-dashboard/pkg/aggregator"
	"github.com/boracolakoglu/energy-dashboard/pkg/cleaner"
	"github.com/boracolakoglu/energy-dashboard/pkg/config"
	"github.com/boracolakoglu/energy-dashboard/pkg/loader"
)

// Run executes one full pipeline pass. A run either completes or returns
// the first error; there are no partial results and no retries.
func Run(cfg *config.DashboardConfig, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := loader.LoadCSV(cfg.CSVPath, cfg.Columns)
	if err != nil {
		return nil, err
	}

	table, report := cleaner.Clean(raw, logger)
	table = aggregator.FilterRange(table, opts.From, opts.To)

	allAppliances := table.Schema.ApplianceColumns
	table, err = aggregator.SelectAppliances(table, opts.Appliances)
	if err != nil {
		return nil, err
	}

	weatherColumn := opts.WeatherColumn
	if weatherColumn == "" && len(cfg.Columns.Weather) > 0 {
		weatherColumn = cfg.Columns.Weather[0]
	}

	trend := aggregator.TotalEnergyOverTime(table, opts.Bucket, opts.Unit)

	pairs, err := aggregator.WeatherEnergyPairs(table, weatherColumn)
	if err != nil {
		return nil, err
	}
	pairs = aggregator.SampleEveryNth(pairs, cfg.Pipeline.ScatterSampleStride)

	summary := aggregator.SolarVsHousehold(table)

	topCount := cfg.Pipeline.TopApplianceCount
	if topCount <= 0 {
		topCount = 5
	}
	top := aggregator.TopAppliancesByMonth(table, topCount)

	logger.Info("pipeline run complete",
		"rows", len(table.Readings),
		"unit", opts.Unit.String(),
		"bucket", opts.Bucket.String())

	return &Result{
		Unit:          opts.Unit.String(),
		Bucket:        opts.Bucket.String(),
		Trend:         trend,
		TrendSmoothed: aggregator.RollingMean(trend, cfg.Pipeline.SmoothingWindow),
		WeatherColumn: weatherColumn,
		WeatherPairs:  pairs,
		Summary:       summary,
		NetKW:         summary.NetKW(),
		TopAppliances: top,
		Appliances:    allAppliances,
		CleanReport:   report,
	}, nil
}

// ListAppliances reports which appliance columns the input file offers
// for the selection filter.
func ListAppliances(cfg *config.DashboardConfig) ([]string, error) {
	table, err := loader.LoadCSV(cfg.CSVPath, cfg.Columns)
	if err != nil {
		return nil, err
	}
	return table.Schema.ApplianceColumns, nil
}
