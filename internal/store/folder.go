package store

import (
	"errors"
	"fmt"
	"strings"

	"promptstack-backend/internal/models"

	"gorm.io/gorm"
)

// CreateFolder creates a new folder. Names are unique, case-sensitive.
func (s *Store) CreateFolder(name string) (*models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: folder name cannot be empty", ErrValidation)
	}

	var existing models.Folder
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: folder name %q already exists", ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	folder := &models.Folder{Name: name}
	if err := s.db.Create(folder).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: folder name %q already exists", ErrConflict, name)
		}
		return nil, err
	}

	return folder, nil
}

// ListFolders returns all folders in insertion order.
func (s *Store) ListFolders() ([]models.Folder, error) {
	var folders []models.Folder
	if err := s.db.Order("id").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// UpdateFolder renames a folder, subject to the same validation and
// uniqueness rules as creation.
func (s *Store) UpdateFolder(id uint, name string) (*models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: folder name cannot be empty", ErrValidation)
	}

	var folder models.Folder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&folder, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: folder %d", ErrNotFound, id)
			}
			return err
		}

		var existing models.Folder
		if err := tx.Where("name = ? AND id <> ?", name, id).First(&existing).Error; err == nil {
			return fmt.Errorf("%w: folder name %q already exists", ErrConflict, name)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		folder.Name = name
		if err := tx.Save(&folder).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: folder name %q already exists", ErrConflict, name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &folder, nil
}

// DeleteFolder removes a folder. Member prompts become uncategorized in the
// same transaction; they are never deleted.
func (s *Store) DeleteFolder(id uint) error {
	var memberIDs []uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Prompt{}).
			Where("folder_id = ?", id).
			Pluck("id", &memberIDs).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Prompt{}).
			Where("folder_id = ?", id).
			Update("folder_id", nil).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Folder{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: folder %d", ErrNotFound, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidatePrompt(memberIDs...)

	return nil
}
