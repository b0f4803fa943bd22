// Aggregator computes the four dashboard views from a cleaned table.
// Every function is pure: it reads the table, returns a fresh aggregate
// and keeps no state between runs.
package aggregator

import (
	"sort"
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/types"
	"github.com/boracolakoglu/energy-dashboard/pkg/units"
)

// roundToBucketStart returns the start of the bucket containing t.
func roundToBucketStart(t time.Time, bucket types.Bucket) time.Time {
	switch bucket {
	case types.BucketHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	case types.BucketMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// roundToMonthStart returns the start of the calendar month containing t.
func roundToMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// rowEnergy sums the appliance columns of one reading.
func rowEnergy(t *types.Table, reading *types.Reading) float64 {
	var sum float64
	for _, column := range t.Schema.ApplianceColumns {
		sum += reading.Value(column)
	}
	return sum
}

// TotalEnergyOverTime groups readings by time bucket and sums appliance
// energy per bucket. Buckets with no rows are omitted, not zero-filled.
// The unit toggle affects display values only; totals are computed in kW
// and converted last, so bucketing stays total-preserving.
func TotalEnergyOverTime(t *types.Table, bucket types.Bucket, unit types.Unit) types.TimeSeriesAggregate {
	totals := make(map[time.Time]float64)
	for i := range t.Readings {
		start := roundToBucketStart(t.Readings[i].Timestamp, bucket)
		totals[start] += rowEnergy(t, &t.Readings[i])
	}

	agg := make(types.TimeSeriesAggregate, 0, len(totals))
	for start, total := range totals {
		agg = append(agg, types.BucketTotal{
			BucketStart: start,
			Total:       units.ForDisplay(total, unit),
		})
	}
	sort.Slice(agg, func(i, j int) bool {
		return agg[i].BucketStart.Before(agg[j].BucketStart)
	})
	return agg
}

// WeatherEnergyPairs returns one regression sample per row pairing the
// weather value with that row's summed appliance energy.
func WeatherEnergyPairs(t *types.Table, weatherColumn string) ([]types.RegressionSample, error) {
	if !t.Schema.HasWeatherColumn(weatherColumn) {
		return nil, &types.MissingColumnError{Column: weatherColumn}
	}

	samples := make([]types.RegressionSample, 0, len(t.Readings))
	for i := range t.Readings {
		samples = append(samples, types.RegressionSample{
			Weather: t.Readings[i].Value(weatherColumn),
			Energy:  rowEnergy(t, &t.Readings[i]),
		})
	}
	return samples, nil
}

// SampleEveryNth keeps every n-th sample, starting with the first. The
// scatter plot does not need every minute-level point; a fixed stride
// keeps the selection deterministic across runs.
func SampleEveryNth(samples []types.RegressionSample, n int) []types.RegressionSample {
	if n <= 1 {
		return samples
	}
	out := make([]types.RegressionSample, 0, (len(samples)+n-1)/n)
	for i := 0; i < len(samples); i += n {
		out = append(out, samples[i])
	}
	return out
}

// SolarVsHousehold sums the solar column and all appliance columns over
// the whole table. An empty table yields zero totals; the coverage ratio
// is only computed when SummaryTotals.SolarCoverageRatio is called.
func SolarVsHousehold(t *types.Table) types.SummaryTotals {
	var totals types.SummaryTotals
	for i := range t.Readings {
		totals.SolarKW += t.Readings[i].Value(t.Schema.SolarColumn)
		totals.HouseholdKW += rowEnergy(t, &t.Readings[i])
	}
	return totals
}

// TopAppliancesByMonth ranks appliances by summed energy per calendar
// month, descending, ties broken by name ascending, truncated to n.
// Months with no rows are omitted.
func TopAppliancesByMonth(t *types.Table, n int) types.MonthlyTopAppliances {
	monthly := make(map[time.Time]map[string]float64)
	for i := range t.Readings {
		month := roundToMonthStart(t.Readings[i].Timestamp)
		byAppliance, ok := monthly[month]
		if !ok {
			byAppliance = make(map[string]float64, len(t.Schema.ApplianceColumns))
			monthly[month] = byAppliance
		}
		for _, column := range t.Schema.ApplianceColumns {
			byAppliance[column] += t.Readings[i].Value(column)
		}
	}

	result := make(types.MonthlyTopAppliances, 0, len(monthly))
	for month, byAppliance := range monthly {
		entries := make([]types.ApplianceTotal, 0, len(byAppliance))
		for name, total := range byAppliance {
			entries = append(entries, types.ApplianceTotal{Name: name, Total: total})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Total != entries[j].Total {
				return entries[i].Total > entries[j].Total
			}
			return entries[i].Name < entries[j].Name
		})
		if n >= 0 && len(entries) > n {
			entries = entries[:n]
		}
		result = append(result, types.MonthRanking{Month: month, Entries: entries})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})
	return result
}
