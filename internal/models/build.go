package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Build matches the Express builds collection (buildModel.js).
// CalculatedArea is the owned share of BuildArea in m², halved for the
// 增建-持分後坪數打對折 type-use; derived on every write by the builds service.
type Build struct {
	ID                          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID                      uuid.UUID `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	BuildNumber                 string    `gorm:"column:build_number;not null" json:"buildNumber"`
	BuildURL                    string    `gorm:"column:build_url" json:"buildUrl"`
	BuildArea                   float64   `gorm:"column:build_area;type:decimal(18,2);not null" json:"buildArea"`
	BuildHoldingPointPersonal   string    `gorm:"column:build_holding_point_personal;not null" json:"buildHoldingPointPersonal"`
	BuildHoldingPointAll        string    `gorm:"column:build_holding_point_all;not null" json:"buildHoldingPointAll"`
	BuildTypeUse                string    `gorm:"column:build_type_use;not null" json:"buildTypeUse"`
	BuildUsePartition           string    `gorm:"column:build_use_partition;not null" json:"buildUsePartition"`
	BuildRemark                 string    `gorm:"column:build_remark" json:"buildRemark"`
	BuildAncillaryBuildingUseBy string    `gorm:"column:build_ancillary_building_use_by" json:"buildAncillaryBuildingUseBy"`
	BuildAncillaryBuildingArea  float64   `gorm:"column:build_ancillary_building_area;type:decimal(18,2)" json:"buildAncillaryBuildingArea"`
	BuildUpdated                time.Time `gorm:"column:build_updated" json:"buildUpdated"`
	CalculatedArea              float64   `gorm:"column:calculated_area;type:decimal(18,2);default:0" json:"calculatedArea"`
}

func (Build) TableName() string {
	return "builds"
}

func (b *Build) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
