package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for all stored entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&sitterModel{},
		&bookingModel{},
	)
}
