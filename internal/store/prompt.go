package store

import (
	"errors"
	"fmt"
	"strings"

	"promptstack-backend/internal/models"

	"gorm.io/gorm"
)

// UncategorizedFolderID is the sentinel folder id meaning "no folder".
// Passing it to ListPrompts filters for uncategorized prompts only; passing
// it as an update's folder id clears the assignment.
const UncategorizedFolderID uint = 0

// PromptUpdate carries the optional fields of an update. Nil fields are left
// unchanged; a FolderID of UncategorizedFolderID clears the assignment.
type PromptUpdate struct {
	Title    *string
	Content  *string
	FolderID *uint
}

// CreatePrompt creates a new prompt. No version snapshot is taken at
// creation; history begins with the first update.
func (s *Store) CreatePrompt(title, content string, folderID *uint) (*models.Prompt, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	if folderID != nil {
		if err := s.checkFolderExists(s.db, *folderID); err != nil {
			return nil, err
		}
	}

	prompt := &models.Prompt{
		Title:    title,
		Content:  content,
		FolderID: folderID,
	}

	if err := s.db.Create(prompt).Error; err != nil {
		return nil, err
	}

	return prompt, nil
}

// GetPrompt retrieves a single prompt by ID, using the cache when enabled.
func (s *Store) GetPrompt(id uint) (*models.Prompt, error) {
	if prompt := s.cacheGetPrompt(id); prompt != nil {
		return prompt, nil
	}

	var prompt models.Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: prompt %d", ErrNotFound, id)
		}
		return nil, err
	}

	s.cacheSetPrompt(&prompt)

	return &prompt, nil
}

// ListPrompts retrieves prompts in insertion order, optionally filtered by
// folder and by case-insensitive title substring. The filters compose with
// logical AND. A folderID of UncategorizedFolderID matches only prompts with
// no folder.
func (s *Store) ListPrompts(folderID *uint, search string) ([]models.Prompt, error) {
	db := s.db.Model(&models.Prompt{}).Order("id")

	if folderID != nil {
		if *folderID == UncategorizedFolderID {
			db = db.Where("folder_id IS NULL")
		} else {
			db = db.Where("folder_id = ?", *folderID)
		}
	}

	if search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var prompts []models.Prompt
	if err := db.Find(&prompts).Error; err != nil {
		return nil, err
	}

	return prompts, nil
}

// UpdatePrompt applies the given field changes and records the pre-update
// title/content as a new version in the same transaction. Folder-only moves
// still snapshot, so the version count always equals the update count.
func (s *Store) UpdatePrompt(id uint, upd PromptUpdate) (*models.Prompt, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	var prompt models.Prompt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prompt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: prompt %d", ErrNotFound, id)
			}
			return err
		}

		if upd.FolderID != nil && *upd.FolderID != UncategorizedFolderID {
			if err := s.checkFolderExists(tx, *upd.FolderID); err != nil {
				return err
			}
		}

		if err := snapshotVersion(tx, &prompt); err != nil {
			return err
		}

		if upd.Title != nil {
			prompt.Title = *upd.Title
		}
		if upd.Content != nil {
			prompt.Content = *upd.Content
		}
		if upd.FolderID != nil {
			if *upd.FolderID == UncategorizedFolderID {
				prompt.FolderID = nil
			} else {
				folderID := *upd.FolderID
				prompt.FolderID = &folderID
			}
		}

		return tx.Save(&prompt).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePrompt(id)

	return &prompt, nil
}

// DeletePrompt deletes a prompt and all of its versions.
func (s *Store) DeletePrompt(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prompt_id = ?", id).Delete(&models.PromptVersion{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Prompt{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: prompt %d", ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidatePrompt(id)

	return nil
}

func (s *Store) checkFolderExists(tx *gorm.DB, folderID uint) error {
	var folder models.Folder
	if err := tx.Select("id").First(&folder, folderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: folder %d", ErrNotFound, folderID)
		}
		return err
	}
	return nil
}
