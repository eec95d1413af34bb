package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Land matches the Express lands collection (landModel.js). CalculatedArea
// is derived (owned share of LandArea, m²) and never user-editable; the
// lands service recomputes it on every create and update.
type Land struct {
	ID                       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID                   uuid.UUID `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	LandNumber               string    `gorm:"column:land_number;not null" json:"landNumber"`
	LandURL                  string    `gorm:"column:land_url" json:"landUrl"`
	LandArea                 float64   `gorm:"column:land_area;type:decimal(18,2);not null" json:"landArea"`
	LandHoldingPointPersonal string    `gorm:"column:land_holding_point_personal;not null" json:"landHoldingPointPersonal"`
	LandHoldingPointAll      string    `gorm:"column:land_holding_point_all;not null" json:"landHoldingPointAll"`
	LandRemark               string    `gorm:"column:land_remark" json:"landRemark"`
	LandUpdated              time.Time `gorm:"column:land_updated" json:"landUpdated"`
	CalculatedArea           float64   `gorm:"column:calculated_area;type:decimal(18,2);default:0" json:"calculatedArea"`
}

func (Land) TableName() string {
	return "lands"
}

func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
