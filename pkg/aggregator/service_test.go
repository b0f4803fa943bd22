package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boracolakoglu/energy-dashboard/pkg/types"
)

func testSchema() types.Schema {
	return types.Schema{
		TimestampColumn:  "time",
		SolarColumn:      "solar",
		ApplianceColumns: []string{"applianceA", "applianceB"},
		WeatherColumns:   []string{"temperature"},
	}
}

func row(t time.Time, a, b, solar, temp float64) types.Reading {
	return types.Reading{
		Timestamp: t,
		Values: map[string]float64{
			"applianceA":  a,
			"applianceB":  b,
			"solar":       solar,
			"temperature": temp,
		},
	}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2016, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestTotalEnergyOverTime_SumsWithinHour(t *testing.T) {
	// Two readings in the same hour sum into a single bucket.
	table := &types.Table{
		Schema: types.Schema{
			SolarColumn:      "solar",
			ApplianceColumns: []string{"applianceA"},
		},
		Readings: []types.Reading{
			{Timestamp: at(1, 0, 0), Values: map[string]float64{"applianceA": 1.0, "solar": 0.5}},
			{Timestamp: at(1, 0, 30), Values: map[string]float64{"applianceA": 2.0, "solar": 0.5}},
		},
	}

	agg := TotalEnergyOverTime(table, types.BucketHour, types.UnitRaw)
	require.Len(t, agg, 1)
	assert.Equal(t, at(1, 0, 0), agg[0].BucketStart)
	assert.InDelta(t, 3.0, agg[0].Total, 1e-9)

	summary := SolarVsHousehold(table)
	assert.InDelta(t, 1.0, summary.SolarKW, 1e-9)
	assert.InDelta(t, 3.0, summary.HouseholdKW, 1e-9)
}

func TestTotalEnergyOverTime_OmitsEmptyBuckets(t *testing.T) {
	table := &types.Table{
		Schema: testSchema(),
		Readings: []types.Reading{
			row(at(1, 0, 0), 1, 0, 0, 20),
			row(at(1, 5, 0), 2, 0, 0, 20), // hours 1-4 have no rows
		},
	}

	agg := TotalEnergyOverTime(table, types.BucketHour, types.UnitRaw)
	require.Len(t, agg, 2)
	assert.Equal(t, at(1, 0, 0), agg[0].BucketStart)
	assert.Equal(t, at(1, 5, 0), agg[1].BucketStart)
}

func TestTotalEnergyOverTime_TotalPreservingAcrossGranularities(t *testing.T) {
	table := &types.Table{Schema: testSchema()}
	for day := 1; day <= 14; day++ {
		for hour := 0; hour < 24; hour += 3 {
			table.Readings = append(table.Readings,
				row(at(day, hour, 0), float64(day)*0.1, float64(hour)*0.01, 0.2, 15))
		}
	}

	hourly := TotalEnergyOverTime(table, types.BucketHour, types.UnitRaw)
	daily := TotalEnergyOverTime(table, types.BucketDay, types.UnitRaw)
	monthly := TotalEnergyOverTime(table, types.BucketMonth, types.UnitRaw)

	assert.InDelta(t, hourly.GrandTotal(), daily.GrandTotal(), 1e-9)
	assert.InDelta(t, daily.GrandTotal(), monthly.GrandTotal(), 1e-9)
}

func TestTotalEnergyOverTime_UnitToggle(t *testing.T) {
	table := &types.Table{
		Schema:   testSchema(),
		Readings: []types.Reading{row(at(1, 0, 0), 1.5, 0.5, 0, 20)},
	}

	raw := TotalEnergyOverTime(table, types.BucketDay, types.UnitRaw)
	watts := TotalEnergyOverTime(table, types.BucketDay, types.UnitWatts)
	require.Len(t, raw, 1)
	require.Len(t, watts, 1)
	assert.InDelta(t, 2.0, raw[0].Total, 1e-9)
	assert.InDelta(t, 2000.0, watts[0].Total, 1e-9)
}

func TestTotalEnergyOverTime_Empty(t *testing.T) {
	agg := TotalEnergyOverTime(&types.Table{Schema: testSchema()}, types.BucketDay, types.UnitRaw)
	assert.Empty(t, agg)
}

func TestWeatherEnergyPairs(t *testing.T) {
	table := &types.Table{
		Schema: testSchema(),
		Readings: []types.Reading{
			row(at(1, 0, 0), 1.0, 0.5, 0.3, 21.0),
			row(at(1, 0, 1), 2.0, 0.5, 0.3, 22.0),
		},
	}

	pairs, err := WeatherEnergyPairs(table, "temperature")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.InDelta(t, 21.0, pairs[0].Weather, 1e-9)
	assert.InDelta(t, 1.5, pairs[0].Energy, 1e-9)
	assert.InDelta(t, 2.5, pairs[1].Energy, 1e-9)
}

func TestWeatherEnergyPairs_MissingColumn(t *testing.T) {
	table := &types.Table{Schema: testSchema()}
	_, err := WeatherEnergyPairs(table, "humidity")
	var missing *types.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "humidity", missing.Column)
}

func TestSampleEveryNth(t *testing.T) {
	samples := make([]types.RegressionSample, 10)
	for i := range samples {
		samples[i] = types.RegressionSample{Weather: float64(i)}
	}

	sampled := SampleEveryNth(samples, 3)
	require.Len(t, sampled, 4)
	assert.InDelta(t, 0.0, sampled[0].Weather, 1e-9)
	assert.InDelta(t, 3.0, sampled[1].Weather, 1e-9)
	assert.InDelta(t, 9.0, sampled[3].Weather, 1e-9)

	// Stride of one (or less) keeps everything.
	assert.Len(t, SampleEveryNth(samples, 1), 10)
	assert.Len(t, SampleEveryNth(samples, 0), 10)
}

func TestSolarVsHousehold_EmptyTable(t *testing.T) {
	summary := SolarVsHousehold(&types.Table{Schema: testSchema()})
	assert.Zero(t, summary.SolarKW)
	assert.Zero(t, summary.HouseholdKW)

	// The ratio error only surfaces when a ratio is requested.
	_, err := summary.SolarCoverageRatio()
	assert.ErrorIs(t, err, types.ErrUndefinedRatio)
}

func TestTopAppliancesByMonth(t *testing.T) {
	schema := testSchema()
	schema.ApplianceColumns = []string{"fridge", "oven", "heater"}
	table := &types.Table{Schema: schema}
	add := func(ts time.Time, fridge, oven, heater float64) {
		table.Readings = append(table.Readings, types.Reading{
			Timestamp: ts,
			Values:    map[string]float64{"fridge": fridge, "oven": oven, "heater": heater},
		})
	}
	// January: heater dominates. February: oven dominates.
	add(time.Date(2016, 1, 10, 0, 0, 0, 0, time.UTC), 1.0, 0.5, 5.0)
	add(time.Date(2016, 1, 20, 0, 0, 0, 0, time.UTC), 1.0, 0.5, 4.0)
	add(time.Date(2016, 2, 5, 0, 0, 0, 0, time.UTC), 1.0, 6.0, 0.5)

	result := TopAppliancesByMonth(table, 2)
	require.Len(t, result, 2)

	jan := result[0]
	assert.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), jan.Month)
	require.Len(t, jan.Entries, 2)
	assert.Equal(t, "heater", jan.Entries[0].Name)
	assert.InDelta(t, 9.0, jan.Entries[0].Total, 1e-9)
	assert.Equal(t, "fridge", jan.Entries[1].Name)

	feb := result[1]
	assert.Equal(t, "oven", feb.Entries[0].Name)
}

func TestTopAppliancesByMonth_NeverExceedsNAndNonIncreasing(t *testing.T) {
	schema := testSchema()
	schema.ApplianceColumns = []string{"a", "b", "c", "d", "e", "f", "g"}
	table := &types.Table{Schema: schema}
	for day := 1; day <= 28; day++ {
		values := make(map[string]float64, len(schema.ApplianceColumns))
		for i, name := range schema.ApplianceColumns {
			values[name] = float64((day*7+i*3)%11) * 0.25
		}
		table.Readings = append(table.Readings, types.Reading{
			Timestamp: time.Date(2016, time.Month(1+day%3), day, 12, 0, 0, 0, time.UTC),
			Values:    values,
		})
	}

	result := TopAppliancesByMonth(table, 5)
	require.NotEmpty(t, result)
	for _, month := range result {
		assert.LessOrEqual(t, len(month.Entries), 5)
		for i := 1; i < len(month.Entries); i++ {
			assert.GreaterOrEqual(t, month.Entries[i-1].Total, month.Entries[i].Total)
		}
	}
}

func TestTopAppliancesByMonth_TieBreakByNameAscending(t *testing.T) {
	schema := testSchema()
	schema.ApplianceColumns = []string{"zeta", "alpha", "mid"}
	table := &types.Table{
		Schema: schema,
		Readings: []types.Reading{{
			Timestamp: time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC),
			Values:    map[string]float64{"zeta": 2.0, "alpha": 2.0, "mid": 2.0},
		}},
	}

	result := TopAppliancesByMonth(table, 5)
	require.Len(t, result, 1)
	entries := result[0].Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "mid", entries[1].Name)
	assert.Equal(t, "zeta", entries[2].Name)
}
