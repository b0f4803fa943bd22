package units

import "github.com/boracolakoglu/energy-dashboard/pkg/types"

func KwToW(kw float64) float64 {
	return kw * 1000
}

func WToKw(w float64) float64 {
	return w / 1000
}

// ForDisplay converts a kW value to the requested display unit.
func ForDisplay(kw float64, unit types.Unit) float64 {
	if unit == types.UnitWatts {
		return KwToW(kw)
	}
	return kw
}

// ClampNonNegative treats negative energy readings as data errors.
func ClampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
