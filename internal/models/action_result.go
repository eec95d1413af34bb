package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionResult enum values (actionResultModel.js).
var ActionResultValues = []string{"未判定", "撤回", "第三人搶標", "得標"}

// ActionResult matches the Express actionresults collection: outcome of the
// bid action on a case.
type ActionResult struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID         uuid.UUID  `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	StopBuyDate    *time.Time `gorm:"column:stop_buy_date" json:"stopBuyDate"`
	ActionResult   string     `gorm:"column:action_result;default:未判定" json:"actionResult"`
	BidAuctionTime string     `gorm:"column:bid_auction_time" json:"bidAuctionTime"`
	BidMoney       string     `gorm:"column:bid_money" json:"bidMoney"`
	ObjectNumber   string     `gorm:"column:object_number" json:"objectNumber"`
}

func (ActionResult) TableName() string {
	return "actionresults"
}

func (a *ActionResult) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
