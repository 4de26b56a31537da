package database

import (
	"promptstack-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database at path and migrates the schema.
// Use ":memory:" for an ephemeral database in tests.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Folder{},
		&models.Prompt{},
		&models.PromptVersion{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
