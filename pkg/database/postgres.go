package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
)

// NewDatabase opens the postgres connection. TranslateError turns driver
// duplicate-key violations into gorm.ErrDuplicatedKey, which the
// repositories rely on for their upsert-style dedup.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates the four tables and their unique
// indexes. The unique constraints are load-bearing: username, email,
// api_event_id, the (user_id, event_id) bookmark pair and the friendship
// composite key all rely on them under concurrent writers.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.SavedEvent{},
		&models.Friendship{},
	)
}
