package models

import "time"

// Folder is a named grouping for prompts. Names are unique (case-sensitive).
// Deleting a folder uncategorizes its prompts, it never deletes them.
type Folder struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
