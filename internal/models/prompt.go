package models

import "time"

// Prompt is a stored, titled text document. Its content may contain
// {{id-or-title}} reference tokens that are expanded at compose time.
type Prompt struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"index;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	FolderID  *uint     `gorm:"index" json:"folder_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PromptVersion is an immutable snapshot of a prompt's title/content taken
// just before an update was applied. Version numbers per prompt start at 1
// with no gaps; the (prompt_id, version_number) pair is unique so two
// interleaved updates cannot record the same number.
type PromptVersion struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	PromptID      uint      `gorm:"uniqueIndex:idx_prompt_version;not null" json:"prompt_id"`
	VersionNumber uint      `gorm:"uniqueIndex:idx_prompt_version;not null" json:"version_number"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}
