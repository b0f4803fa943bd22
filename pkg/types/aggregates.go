package types

import (
	"errors"
	"time"
)

// ErrUndefinedRatio is returned when a ratio over a zero total is requested.
var ErrUndefinedRatio = errors.New("ratio is undefined: household total is zero")

// BucketTotal is the summed appliance energy for one time bucket.
type BucketTotal struct {
	BucketStart time.Time `json:"bucket_start"`
	Total       float64   `json:"total"`
}

// TimeSeriesAggregate is ordered by BucketStart ascending. Buckets with no
// rows in the source data are omitted, not zero-filled.
type TimeSeriesAggregate []BucketTotal

// GrandTotal sums every bucket. Bucketing is total-preserving, so this is
// the same number for any bucket granularity.
func (a TimeSeriesAggregate) GrandTotal() float64 {
	var sum float64
	for _, b := range a {
		sum += b.Total
	}
	return sum
}

// RegressionSample pairs one weather value with the summed appliance
// energy of the same row.
type RegressionSample struct {
	Weather float64 `json:"weather"`
	Energy  float64 `json:"energy"`
}

// SummaryTotals holds cumulative solar generation and cumulative household
// consumption over the whole table, always in kW regardless of the display
// unit toggle.
type SummaryTotals struct {
	SolarKW     float64 `json:"solar_kw"`
	HouseholdKW float64 `json:"household_kw"`
}

// NetKW is household consumption minus solar generation.
func (s SummaryTotals) NetKW() float64 {
	return s.HouseholdKW - s.SolarKW
}

// SolarCoverageRatio is solar generation divided by household consumption.
// The ratio is only computed on request; a zero household total yields
// ErrUndefinedRatio instead of infinity.
func (s SummaryTotals) SolarCoverageRatio() (float64, error) {
	if s.HouseholdKW == 0 {
		return 0, ErrUndefinedRatio
	}
	return s.SolarKW / s.HouseholdKW, nil
}

// ApplianceTotal is one appliance's summed energy over a month.
type ApplianceTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// MonthRanking holds the top appliances for one calendar month, sorted by
// total descending, ties broken by name ascending.
type MonthRanking struct {
	Month   time.Time        `json:"month"`
	Entries []ApplianceTotal `json:"entries"`
}

// MonthlyTopAppliances is ordered by Month ascending. Months with no rows
// are omitted.
type MonthlyTopAppliances []MonthRanking
