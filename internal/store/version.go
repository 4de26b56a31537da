package store

import (
	"errors"
	"fmt"

	"promptstack-backend/internal/models"

	"gorm.io/gorm"
)

// snapshotVersion records the prompt's current title/content as the next
// version number inside the caller's transaction. The unique index on
// (prompt_id, version_number) turns a lost race between two concurrent
// updates into a conflict instead of a duplicated number.
func snapshotVersion(tx *gorm.DB, prompt *models.Prompt) error {
	var maxNumber int64
	err := tx.Model(&models.PromptVersion{}).
		Where("prompt_id = ?", prompt.ID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return err
	}

	version := &models.PromptVersion{
		PromptID:      prompt.ID,
		VersionNumber: uint(maxNumber) + 1,
		Title:         prompt.Title,
		Content:       prompt.Content,
	}

	if err := tx.Create(version).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: concurrent update of prompt %d", ErrConflict, prompt.ID)
		}
		return err
	}
	return nil
}

// ListVersions returns all versions of a prompt ascending by version number.
func (s *Store) ListVersions(promptID uint) ([]models.PromptVersion, error) {
	var prompt models.Prompt
	if err := s.db.Select("id").First(&prompt, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: prompt %d", ErrNotFound, promptID)
		}
		return nil, err
	}

	var versions []models.PromptVersion
	err := s.db.Where("prompt_id = ?", promptID).
		Order("version_number").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}

	return versions, nil
}

// RestoreVersion copies a version's title/content back onto the live prompt.
// The state being overwritten is snapshotted first, so a restore is itself
// recoverable and never rewinds history. Restoring the live state is legal
// and still records a version.
func (s *Store) RestoreVersion(promptID, versionNumber uint) (*models.Prompt, error) {
	var prompt models.Prompt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prompt, promptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: prompt %d", ErrNotFound, promptID)
			}
			return err
		}

		var version models.PromptVersion
		err := tx.Where("prompt_id = ? AND version_number = ?", promptID, versionNumber).
			First(&version).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: version %d of prompt %d", ErrNotFound, versionNumber, promptID)
			}
			return err
		}

		if err := snapshotVersion(tx, &prompt); err != nil {
			return err
		}

		prompt.Title = version.Title
		prompt.Content = version.Content

		return tx.Save(&prompt).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePrompt(promptID)

	return &prompt, nil
}
