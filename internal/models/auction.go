package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auction matches the Express auctions collection (auctionModel.js): one
// reduced-price auction round for a case. The four derived fields are
// re-read from the case's builds and reference objects on every write.
// PingValueTotal is stored in m²; ping conversion happens at display time.
type Auction struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID            uuid.UUID `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	AuctionType       string    `gorm:"column:auction_type;not null" json:"auctionType"`
	AuctionDate       time.Time `gorm:"column:auction_date;not null" json:"auctionDate"`
	AuctionFloorPrice int64     `gorm:"column:auction_floor_price;not null;default:0" json:"auctionFloorPrice"`
	AuctionClick      int64     `gorm:"column:auction_click;not null;default:0" json:"auctionClick"`
	AuctionMonitor    int64     `gorm:"column:auction_monitor;not null;default:0" json:"auctionMonitor"`
	AuctionCaseCount  int64     `gorm:"column:auction_case_count;not null;default:0" json:"auctionCaseCount"`
	AuctionMargin     int64     `gorm:"column:auction_margin;not null;default:0" json:"auctionMargin"`

	PingValueTotal float64 `gorm:"column:ping_value_total;type:decimal(18,4);default:0" json:"pingValueTotal"`
	PingPriceTotal float64 `gorm:"column:ping_price_total;type:decimal(18,4);default:0" json:"pingPriceTotal"`
	NowPriceTotal  float64 `gorm:"column:now_price_total;type:decimal(18,4);default:0" json:"nowPriceTotal"`
	PingCP         float64 `gorm:"column:ping_cp;type:decimal(18,4);default:0" json:"pingCP"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Auction) TableName() string {
	return "auctions"
}

func (a *Auction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
