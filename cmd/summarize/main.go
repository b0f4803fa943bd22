// Summarize runs the dashboard pipeline once and prints the aggregates
// as JSON. Useful for inspecting a dataset without starting the server.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/config"
	"github.com/boracolakoglu/energy-dashboard/pkg/pipeline"
	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

func main() {
	csvPath := flag.String("csv", "", "input CSV path (defaults to the configured path)")
	unit := flag.String("unit", "raw", "display unit: raw | watts")
	bucket := flag.String("bucket", "", "trend bucket: hour | day | month (defaults to configured)")
	from := flag.String("from", "", "start date (2006-01-02), inclusive")
	to := flag.String("to", "", "end date (2006-01-02), inclusive")
	appliances := flag.String("appliances", "", "comma-separated appliance columns to include")
	weather := flag.String("weather", "", "weather column for the regression pairs")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := config.LoadDashboardConfig(); err != nil {
		logger.Error("failed to load dashboard config", "error", err)
		os.Exit(1)
	}
	cfg := config.ActiveDashboardConfig
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}

	opts, err := buildOptions(cfg, *unit, *bucket, *from, *to, *appliances, *weather)
	if err != nil {
		logger.Error("invalid options", "error", err)
		os.Exit(1)
	}

	result, err := pipeline.Run(cfg, opts, logger)
	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}

func buildOptions(cfg *config.DashboardConfig, unit, bucket, from, to, appliances, weather string) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	opts.Unit, err = types.ParseUnit(unit)
	if err != nil {
		return opts, err
	}
	if bucket == "" {
		bucket = cfg.Pipeline.DefaultBucket
	}
	opts.Bucket, err = types.ParseBucket(bucket)
	if err != nil {
		return opts, err
	}
	if from != "" {
		opts.From, err = time.Parse("2006-01-02", from)
		if err != nil {
			return opts, err
		}
	}
	if to != "" {
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			return opts, err
		}
		opts.To = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if appliances != "" {
		for _, name := range strings.Split(appliances, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Appliances = append(opts.Appliances, name)
			}
		}
	}
	opts.WeatherColumn = weather
	return opts, nil
}
