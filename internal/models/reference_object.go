package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceObject matches the Express referenceobjects collection
// (referenceObjectModel.js): a nearby transacted property used to estimate
// fair market value. AdjustedPrice is derived from the unit price and the
// scorer rates; every object or score mutation recomputes it.
type ReferenceObject struct {
	ID                         uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID                     uuid.UUID        `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	ObjectBuildAddress         string           `gorm:"column:object_build_address;not null" json:"objectBuildAddress"`
	ObjectBuildTotalPrice      float64          `gorm:"column:object_build_total_price;type:decimal(18,2);not null" json:"objectBuildTotalPrice"`
	ObjectBuildBuildArea       float64          `gorm:"column:object_build_build_area;type:decimal(18,2);not null" json:"objectBuildBuildArea"`
	ObjectBuildSubBuildArea    float64          `gorm:"column:object_build_sub_build_area;type:decimal(18,2)" json:"objectBuildSubBuildArea"`
	ObjectBuildHouseAge        float64          `gorm:"column:object_build_house_age;type:decimal(18,2)" json:"objectBuildHouseAge"`
	ObjectBuildFloorHeight     string           `gorm:"column:object_build_floor_height" json:"objectBuildFloorHeight"`
	ObjectBuildStatus          string           `gorm:"column:object_build_status" json:"objectBuildStatus"`
	ObjectBuildTransactionDate *time.Time       `gorm:"column:object_build_transaction_date" json:"objectBuildTransactionDate"`
	ObjectBuildURL             string           `gorm:"column:object_build_url" json:"objectBuildUrl"`
	AdjustedPrice              float64          `gorm:"column:adjusted_price;type:decimal(18,2);default:0" json:"adjustedPrice"`
	Scores                     []ReferenceScore `gorm:"foreignKey:ReferenceObjectID" json:"scores"`
	CreatedAt                  time.Time        `json:"createdAt"`
	UpdatedAt                  time.Time        `json:"updatedAt"`
}

func (ReferenceObject) TableName() string {
	return "referenceobjects"
}

func (r *ReferenceObject) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ReferenceScore is one scorer's adjustment on a reference object
// (Mongo subdocument flattened to its own table). Rate is within [-1, 1]
// at 2-decimal precision, enforced at the handler boundary.
type ReferenceScore struct {
	ID                    uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	ReferenceObjectID     uuid.UUID `gorm:"column:reference_object_id;type:uuid;not null;index" json:"referenceObjectId"`
	ObjectBuildScorer     string    `gorm:"column:object_build_scorer;not null" json:"objectBuildScorer"`
	ObjectBuildScorRate   float64   `gorm:"column:object_build_scor_rate;type:decimal(5,2);not null" json:"objectBuildScorRate"`
	ObjectBuildScorReason string    `gorm:"column:object_build_scor_reason" json:"objectBuildScorReason"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (ReferenceScore) TableName() string {
	return "reference_scores"
}

func (s *ReferenceScore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
