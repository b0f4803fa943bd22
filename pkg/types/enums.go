package types

import "fmt"

// Unit is the display unit toggle. It affects presentation of the energy
// trend only, never the underlying data.
type Unit uint8

const (
	// UnitRaw leaves values as they appear in the input file (kW).
	UnitRaw Unit = iota
	// UnitWatts converts values to watts for display.
	UnitWatts
)

func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "raw", "kw":
		return UnitRaw, nil
	case "watts", "w":
		return UnitWatts, nil
	}
	return UnitRaw, fmt.Errorf("unknown unit %q (want raw or watts)", s)
}

func (u Unit) String() string {
	if u == UnitWatts {
		return "watts"
	}
	return "raw"
}

// Bucket is the grouping interval for the energy trend.
type Bucket uint8

const (
	BucketHour Bucket = iota
	BucketDay
	BucketMonth
)

func ParseBucket(s string) (Bucket, error) {
	switch s {
	case "hour":
		return BucketHour, nil
	case "", "day":
		return BucketDay, nil
	case "month":
		return BucketMonth, nil
	}
	return BucketDay, fmt.Errorf("unknown bucket %q (want hour, day or month)", s)
}

func (b Bucket) String() string {
	switch b {
	case BucketHour:
		return "hour"
	case BucketMonth:
		return "month"
	default:
		return "day"
	}
}
