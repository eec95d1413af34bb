package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Case matches the Express cases collection (caseModel.js). It is the
// aggregate root: lands, builds, reference objects, auctions, surveys,
// decisions and parties all hang off a case id.
type Case struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;not null" json:"description"`
	Status      string    `gorm:"column:status;default:pending" json:"status"`
	Priority    string    `gorm:"column:priority;default:medium" json:"priority"`
	Category    string    `gorm:"column:category;default:一般" json:"category"`
	AssignedTo  string    `gorm:"column:assigned_to;default:未指派" json:"assignedTo"`
	DueDate     time.Time `gorm:"column:due_date" json:"dueDate"`
	Location    string    `gorm:"column:location;default:未指定" json:"location"`
	Budget      float64   `gorm:"column:budget;type:decimal(18,2);default:0" json:"budget"`
	Progress    int       `gorm:"column:progress;default:0" json:"progress"`

	// Embedded documents from Mongo, kept as JSON columns.
	ContactInfo datatypes.JSON `gorm:"column:contact_info;type:json" json:"contactInfo"`
	Tags        datatypes.JSON `gorm:"column:tags;type:json" json:"tags"`
	Attachments datatypes.JSON `gorm:"column:attachments;type:json" json:"attachments"`

	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid" json:"createdBy"`

	CaseNumber string `gorm:"column:case_number;not null;uniqueIndex" json:"caseNumber"`
	Company    string `gorm:"column:company;not null" json:"company"`
	City       string `gorm:"column:city;not null" json:"city"`
	District   string `gorm:"column:district;not null" json:"district"`

	// Address parts.
	Section       string `gorm:"column:section" json:"section"`
	Subsection    string `gorm:"column:subsection" json:"subsection"`
	Village       string `gorm:"column:village" json:"village"`
	Neighborhood  string `gorm:"column:neighborhood" json:"neighborhood"`
	Street        string `gorm:"column:street" json:"street"`
	StreetSection string `gorm:"column:street_section" json:"streetSection"`
	Lane          string `gorm:"column:lane" json:"lane"`
	Alley         string `gorm:"column:alley" json:"alley"`
	Number        string `gorm:"column:number" json:"number"`
	Floor         string `gorm:"column:floor" json:"floor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Case) TableName() string {
	return "cases"
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.DueDate.IsZero() {
		c.DueDate = time.Now().Add(7 * 24 * time.Hour)
	}
	return nil
}
