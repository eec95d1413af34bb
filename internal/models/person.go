package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person matches the Express people collection (personModel.js): a creditor
// contact on a case.
type Person struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID    uuid.UUID `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Person) TableName() string {
	return "people"
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Debtor matches the Express debtors collection (debtorModel.js).
type Debtor struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	CaseID    uuid.UUID `gorm:"column:case_id;type:uuid;not null;index" json:"caseId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Debtor) TableName() string {
	return "debtors"
}

func (d *Debtor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
