package aggregator

import (
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

// FilterRange returns the readings with from <= timestamp <= to. A zero
// bound is open on that side. The schema is shared, readings are not
// copied; the result must be treated as read-only like its source.
func FilterRange(t *types.Table, from, to time.Time) *types.Table {
	out := &types.Table{Schema: t.Schema}
	for i := range t.Readings {
		ts := t.Readings[i].Timestamp
		if !from.IsZero() && ts.Before(from) {
			continue
		}
		if !to.IsZero() && ts.After(to) {
			continue
		}
		out.Readings = append(out.Readings, t.Readings[i])
	}
	return out
}

// SelectAppliances narrows the appliance columns to names, preserving the
// schema's column order. An empty selection keeps all appliances. Unknown
// names fail with MissingColumnError.
func SelectAppliances(t *types.Table, names []string) (*types.Table, error) {
	if len(names) == 0 {
		return t, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if !t.Schema.HasApplianceColumn(name) {
			return nil, &types.MissingColumnError{Column: name}
		}
		wanted[name] = true
	}

	selected := make([]string, 0, len(wanted))
	for _, column := range t.Schema.ApplianceColumns {
		if wanted[column] {
			selected = append(selected, column)
		}
	}

	out := &types.Table{Schema: t.Schema, Readings: t.Readings}
	out.Schema.ApplianceColumns = selected
	return out, nil
}

// RollingMean smooths a time series with a trailing mean of up to window
// points. The first window-1 points average over the shorter available
// prefix instead of being dropped, so the output keeps one point per
// input bucket.
func RollingMean(agg types.TimeSeriesAggregate, window int) types.TimeSeriesAggregate {
	if window <= 1 {
		return agg
	}
	out := make(types.TimeSeriesAggregate, len(agg))
	var sum float64
	for i, b := range agg {
		sum += b.Total
		if i >= window {
			sum -= agg[i-window].Total
		}
		span := i + 1
		if span > window {
			span = window
		}
		out[i] = types.BucketTotal{BucketStart: b.BucketStart, Total: sum / float64(span)}
	}
	return out
}
