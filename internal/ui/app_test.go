package ui

import (
	"fmt"
	"testing"
	"time"

	"promptstack-backend/internal/models"
	"promptstack-backend/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestPromptItemRendering(t *testing.T) {
	folderID := uint(3)
	item := promptItem{prompt: models.Prompt{
		ID:        7,
		Title:     "Greeting",
		FolderID:  &folderID,
		UpdatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}}

	assert.Equal(t, "Greeting", item.Title())
	assert.Contains(t, item.Description(), "#7")
	assert.Contains(t, item.Description(), "folder 3")
	assert.Equal(t, "Greeting", item.FilterValue())

	loose := promptItem{prompt: models.Prompt{ID: 8, Title: "Loose"}}
	assert.Contains(t, loose.Description(), "uncategorized")
}

func TestVersionItemTruncatesContent(t *testing.T) {
	long := ""
	for i := 0; i < 20; i++ {
		long += "0123456789"
	}
	item := versionItem{version: models.PromptVersion{VersionNumber: 2, Title: "Draft", Content: long}}

	assert.Equal(t, "v2 · Draft", item.Title())
	assert.Less(t, len(item.Description()), len(long))
}

func TestDescribeErrorKeepsKinds(t *testing.T) {
	assert.Contains(t, describeError(fmt.Errorf("%w: title cannot be empty", store.ErrValidation)), "invalid input")
	assert.Contains(t, describeError(fmt.Errorf("%w: prompt 9", store.ErrNotFound)), "not found")
	assert.Contains(t, describeError(fmt.Errorf("%w: folder", store.ErrConflict)), "conflict")
}

func TestPromptsLoadedPopulatesList(t *testing.T) {
	m := NewModel(nil)

	updated, _ := m.Update(promptsLoadedMsg{prompts: []models.Prompt{
		{ID: 1, Title: "one"},
		{ID: 2, Title: "two"},
	}})

	model := updated.(Model)
	assert.Len(t, model.promptList.Items(), 2)
}
