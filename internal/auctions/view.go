package auctions

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/valuation"
)

// View is the auction-list row: the stored auction (pingValueTotal in m²)
// plus the read-time fields the list screen shows. Nothing here is
// persisted.
type View struct {
	models.Auction
	PingValueTotalPing  float64 `json:"pingValueTotalPing"`
	EntryRecommendation string  `json:"entryRecommendation"`
	ReferenceBidPrice   float64 `json:"referenceBidPrice"`
}

// NewView derives the display fields for one auction round.
func NewView(a models.Auction) View {
	return View{
		Auction:             a,
		PingValueTotalPing:  valuation.ToPing(a.PingValueTotal),
		EntryRecommendation: valuation.EntryRecommendation(a.AuctionType, a.PingCP),
		ReferenceBidPrice: valuation.SuggestedIncrement(
			float64(a.AuctionFloorPrice), int(a.AuctionCaseCount), a.PingCP),
	}
}

// NewViews maps a case's auction rounds to list rows.
func NewViews(as []models.Auction) []View {
	vs := make([]View, len(as))
	for i, a := range as {
		vs[i] = NewView(a)
	}
	return vs
}
