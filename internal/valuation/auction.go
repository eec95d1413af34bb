package valuation

// Auction round names (auctionType enum values on the wire).
const (
	FirstRound  = "一拍"
	SecondRound = "二拍"
	ThirdRound  = "三拍"
	FourthRound = "四拍"
)

// entryThresholds gates auction entry per round: enter only when the CP
// ratio clears the round's threshold.
var entryThresholds = map[string]float64{
	FirstRound:  0.92,
	SecondRound: 1.15,
	ThirdRound:  1.44,
	FourthRound: 1.8,
}

const (
	RecommendEnter   = "建議進場"
	RecommendNoEnter = "不可進場"
)

// Figures are the derived auction fields, re-computed from scratch on every
// auction write. PingValueTotal is kept in m²; conversion to ping happens
// only at the display boundary.
type Figures struct {
	PingValueTotal float64
	PingPriceTotal float64
	NowPriceTotal  float64
	PingCP         float64
}

// AuctionFigures derives the CP figures for one auction round from the
// case's current build areas (calculatedArea, m²) and comparable adjusted
// prices.
func AuctionFigures(floorPrice float64, buildAreas, comparablePrices []float64) Figures {
	var f Figures
	for _, a := range buildAreas {
		f.PingValueTotal += a
	}
	if f.PingValueTotal > 0 {
		f.PingPriceTotal = floorPrice / (f.PingValueTotal * 0.3025)
	}
	if len(comparablePrices) > 0 {
		var sum float64
		for _, p := range comparablePrices {
			sum += p
		}
		f.NowPriceTotal = sum / float64(len(comparablePrices))
	}
	if f.PingPriceTotal > 0 {
		f.PingCP = f.NowPriceTotal / f.PingPriceTotal
	}
	return f
}

// EntryRecommendation applies the per-round threshold table to the CP ratio.
// Unknown round or zero CP both mean no entry.
func EntryRecommendation(auctionType string, pingCP float64) string {
	threshold, ok := entryThresholds[auctionType]
	if !ok || pingCP == 0 {
		return RecommendNoEnter
	}
	if pingCP > threshold {
		return RecommendEnter
	}
	return RecommendNoEnter
}

// SuggestedIncrement computes the reference bid increment for an auction
// round: min of the case-count markup and the CP-scaled floor price.
// Zero floor price or zero transaction count yields 0.
func SuggestedIncrement(floorPrice float64, caseCount int, pingCP float64) float64 {
	if floorPrice == 0 || caseCount == 0 {
		return 0
	}
	a := floorPrice * (1 + float64(caseCount)/4.5/100)
	b := floorPrice * (pingCP / 1.6)
	if a < b {
		return a
	}
	return b
}
