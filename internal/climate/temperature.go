package climate

import "math"

// Design outdoor temperature derivation. The DIN climate maps assign each
// German region a design value between roughly -10 and -16 °C; this
// approximates them from coordinates: a base per latitude band plus a
// continental adjustment east of 12°E, clamped to the plausible range.

const (
	minDesignTempC = -22.0
	maxDesignTempC = -8.0

	continentalLongitude  = 12.0
	continentalAdjustment = -2.0
)

// designTempForLocation derives the design outdoor temperature in °C for a
// coordinate pair, rounded to one decimal.
func designTempForLocation(lat, lon float64) float64 {
	base := latitudeBandBase(lat)

	if lon > continentalLongitude {
		base += continentalAdjustment
	}

	return math.Round(clampTemp(base)*10) / 10
}

// latitudeBandBase returns the regional base value. Southern Germany sits
// higher and colder, the north is moderated by the sea.
func latitudeBandBase(lat float64) float64 {
	switch {
	case lat < 48.5:
		return -16
	case lat < 50.0:
		return -14
	case lat < 52.0:
		return -12
	default:
		return -10
	}
}

func clampTemp(v float64) float64 {
	if v < minDesignTempC {
		return minDesignTempC
	}
	if v > maxDesignTempC {
		return maxDesignTempC
	}
	return v
}
