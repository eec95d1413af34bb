package database

import (
	"foreclosure-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN.
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") when using connection poolers.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Case{},
		&models.Land{},
		&models.Build{},
		&models.ReferenceObject{},
		&models.ReferenceScore{},
		&models.Auction{},
		&models.Survey{},
		&models.FinalDecision{},
		&models.ActionResult{},
		&models.Person{},
		&models.Debtor{},
	)
}
