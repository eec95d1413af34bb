package valuation

import (
	"math"
	"strconv"
)

// The halve category for ancillary builds: post-holding area is cut in half.
// Same literal the client sends in buildTypeUse.
const HalveTypeUse = "增建-持分後坪數打對折"

// Round2 rounds to 2 decimal places (scale, round half-up, unscale),
// matching Math.round(x*100)/100.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// RoundInt rounds to the nearest integer, half-up.
func RoundInt(x float64) float64 {
	return math.Floor(x + 0.5)
}

// ToPing converts square meters to ping (1 ping = 1/0.3025 m²), 2 decimals.
// Non-finite input yields 0 instead of propagating NaN to the UI.
func ToPing(m2 float64) float64 {
	if math.IsNaN(m2) || math.IsInf(m2, 0) {
		return 0
	}
	return Round2(m2 * 0.3025)
}

// BuildCoefficient returns the area coefficient for a build type-use
// category: 0.5 for the designated halve category, 1 otherwise.
func BuildCoefficient(typeUse string) float64 {
	if typeUse == HalveTypeUse {
		return 0.5
	}
	return 1
}

// AdjustedArea computes the owned share of a raw area:
// rawArea * (personal/total) * coeff, rounded to 2 decimals.
// A holding point that does not parse, or a zero denominator, means the
// ownership data is not filled in yet and the result is 0 — not an error.
func AdjustedArea(rawArea float64, personal, total string, coeff float64) float64 {
	p, errP := strconv.ParseFloat(personal, 64)
	a, errA := strconv.ParseFloat(total, 64)
	if errP != nil || errA != nil || a == 0 {
		return 0
	}
	if math.IsNaN(p) || math.IsNaN(a) || math.IsInf(p, 0) || math.IsInf(a, 0) {
		return 0
	}
	return Round2(rawArea * (p / a) * coeff)
}

// SummarizeAreas sums per-record calculated areas and returns the total in
// m² and in ping. Read-time projection for the land/build list views.
func SummarizeAreas(areas []float64) (m2, ping float64) {
	var sum float64
	for _, a := range areas {
		sum += a
	}
	m2 = Round2(sum)
	return m2, ToPing(m2)
}

// AdjustedPrice computes the comparable's adjustment-corrected unit price.
// With no scores the raw unit price is returned as-is; with scores the
// rate-adjusted price is rounded to whole currency. The caller must guard
// buildArea > 0.
func AdjustedPrice(totalPrice, buildArea float64, rates []float64) float64 {
	unit := totalPrice / buildArea
	if len(rates) == 0 {
		return unit
	}
	var totalRate float64
	for _, r := range rates {
		totalRate += r
	}
	return RoundInt(unit * (1 + totalRate))
}
