// Cleaner turns a raw loaded table into the canonical form the
// aggregator relies on: sorted by timestamp ascending, unique timestamps,
// no nulls, no negative energy values.
//
// Policies (all counted in the Report and logged, never silent):
//   - rows with a null timestamp are dropped
//   - null numeric cells are zero-filled
//   - negative energy readings are treated as data errors and clamped to zero
//   - duplicate timestamps are collapsed by summing energy columns;
//     weather values keep the first occurrence
package cleaner

import (
	"log/slog"
	"sort"

	"github.com/boracolakoglu/energy-dashboard/pkg/types"
	"github.com/boracolakoglu/energy-dashboard/pkg/units"
)

// Clean produces a cleaned copy of t. The input table is not modified.
func Clean(t *types.Table, logger *slog.Logger) (*types.Table, Report) {
	if logger == nil {
		logger = slog.Default()
	}

	var report Report
	out := &types.Table{Schema: t.Schema}
	out.Readings = make([]types.Reading, 0, len(t.Readings))

	energyColumns := append([]string(nil), t.Schema.ApplianceColumns...)
	energyColumns = append(energyColumns, t.Schema.SolarColumn)

	for i := range t.Readings {
		src := &t.Readings[i]
		if src.Timestamp.IsZero() {
			report.DroppedNullTimestamp++
			continue
		}

		reading := types.Reading{
			Timestamp: src.Timestamp,
			Values:    make(map[string]float64, len(src.Values)),
		}
		for column := range src.Values {
			if src.IsNull(column) {
				report.ZeroFilled++
				reading.Values[column] = 0
				continue
			}
			reading.Values[column] = src.Values[column]
		}
		// Weather values are left alone; a negative temperature is valid.
		for _, column := range energyColumns {
			v := reading.Values[column]
			if v < 0 {
				report.ClampedNegative++
				reading.Values[column] = units.ClampNonNegative(v)
			}
		}
		out.Readings = append(out.Readings, reading)
	}

	sort.SliceStable(out.Readings, func(i, j int) bool {
		return out.Readings[i].Timestamp.Before(out.Readings[j].Timestamp)
	})

	// Collapse duplicate timestamps by summation. The slice is sorted, so
	// duplicates are adjacent.
	deduped := out.Readings[:0]
	for _, reading := range out.Readings {
		if len(deduped) > 0 && deduped[len(deduped)-1].Timestamp.Equal(reading.Timestamp) {
			report.CollapsedDuplicates++
			prev := &deduped[len(deduped)-1]
			for _, column := range energyColumns {
				prev.Values[column] += reading.Values[column]
			}
			continue
		}
		deduped = append(deduped, reading)
	}
	out.Readings = deduped

	if report.Dirty() {
		logger.Warn("cleaning policies changed the data",
			"dropped_null_timestamp", report.DroppedNullTimestamp,
			"zero_filled", report.ZeroFilled,
			"clamped_negative", report.ClampedNegative,
			"collapsed_duplicates", report.CollapsedDuplicates)
	}

	return out, report
}
