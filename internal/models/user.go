package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User matches the Express users collection (userModel.js).
type User struct {
	ID                     uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	Name                   string     `gorm:"column:name;not null" json:"name"`
	Email                  string     `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash           string     `gorm:"column:password_hash;not null" json:"-"`
	IsVerified             bool       `gorm:"column:is_verified;default:false" json:"isVerified"`
	VerificationCode       string     `gorm:"column:verification_code" json:"-"`
	VerificationCodeExpiry *time.Time `gorm:"column:verification_code_expiry" json:"-"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
