package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FinalDecision enum values (finalDecisionModel.js).
var FinalDecisionValues = []string{
	"未判定", "1拍進場", "2拍進場", "3拍進場", "4拍進場", "4拍流標", "放棄",
}

// FinalDecision matches the Express finaldecisions collection: the closing
// verdict on whether and at which round the case was entered.
type FinalDecision struct {
	ID                   uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID               uuid.UUID  `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	FinalDecision        string     `gorm:"column:final_decision;default:未判定" json:"finalDecision"`
	FinalDecisionRemark  string     `gorm:"column:final_decision_remark" json:"finalDecisionRemark"`
	RegionalHead         string     `gorm:"column:regional_head" json:"regionalHead"`
	RegionalHeadDate     *time.Time `gorm:"column:regional_head_date" json:"regionalHeadDate"`
	RegionalHeadAddDate  *time.Time `gorm:"column:regional_head_add_date" json:"regionalHeadAddDate"`
	RegionalHeadWorkArea string     `gorm:"column:regional_head_work_area" json:"regionalHeadWorkArea"`
}

func (FinalDecision) TableName() string {
	return "finaldecisions"
}

func (f *FinalDecision) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
