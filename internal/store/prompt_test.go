package store

import (
	"testing"

	"promptstack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrompt(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Greeting", "Hello there", nil)
	require.NoError(t, err)
	assert.NotZero(t, prompt.ID)
	assert.Equal(t, "Greeting", prompt.Title)
	assert.Equal(t, "Hello there", prompt.Content)
	assert.Nil(t, prompt.FolderID)
	assert.False(t, prompt.CreatedAt.IsZero())

	// History begins on first edit, not at creation
	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestCreatePromptEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("   ", "content", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePromptUnknownFolder(t *testing.T) {
	s := newTestStore(t)

	missing := uint(42)
	_, err := s.CreatePrompt("Greeting", "Hello", &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPromptNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPrompt(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPromptsFilters(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Work")
	require.NoError(t, err)

	_, err = s.CreatePrompt("Foo alpha", "body mentions bar", &folder.ID)
	require.NoError(t, err)
	_, err = s.CreatePrompt("FOO beta", "another", nil)
	require.NoError(t, err)
	_, err = s.CreatePrompt("Bar", "content contains foo but title does not", nil)
	require.NoError(t, err)

	// no filters: insertion order
	all, err := s.ListPrompts(nil, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Foo alpha", all[0].Title)
	assert.Equal(t, "Bar", all[2].Title)

	// case-insensitive title substring; content matches are excluded
	found, err := s.ListPrompts(nil, "foo")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Foo alpha", found[0].Title)
	assert.Equal(t, "FOO beta", found[1].Title)

	// folder filter
	inFolder, err := s.ListPrompts(&folder.ID, "")
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, "Foo alpha", inFolder[0].Title)

	// sentinel: uncategorized only
	sentinel := UncategorizedFolderID
	loose, err := s.ListPrompts(&sentinel, "")
	require.NoError(t, err)
	assert.Len(t, loose, 2)

	// filters compose with AND
	both, err := s.ListPrompts(&sentinel, "foo")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "FOO beta", both[0].Title)
}

func TestUpdatePromptSnapshotsPreUpdateState(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "first wording", nil)
	require.NoError(t, err)

	newTitle := "Final"
	newContent := "second wording"
	updated, err := s.UpdatePrompt(prompt.ID, PromptUpdate{Title: &newTitle, Content: &newContent})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "second wording", updated.Content)

	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, uint(1), versions[0].VersionNumber)
	assert.Equal(t, "Draft", versions[0].Title)
	assert.Equal(t, "first wording", versions[0].Content)
}

func TestUpdatePromptEmptyTitle(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "content", nil)
	require.NoError(t, err)

	blank := "  "
	_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Title: &blank})
	assert.ErrorIs(t, err, ErrValidation)

	// failed update must not leave an orphan version behind
	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestUpdatePromptNotFound(t *testing.T) {
	s := newTestStore(t)

	content := "anything"
	_, err := s.UpdatePrompt(7, PromptUpdate{Content: &content})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePromptFolderOnlyStillSnapshots(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Inbox")
	require.NoError(t, err)
	prompt, err := s.CreatePrompt("Draft", "content", nil)
	require.NoError(t, err)

	updated, err := s.UpdatePrompt(prompt.ID, PromptUpdate{FolderID: &folder.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.FolderID)
	assert.Equal(t, folder.ID, *updated.FolderID)
	assert.Equal(t, "content", updated.Content)

	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestUpdatePromptClearFolder(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Inbox")
	require.NoError(t, err)
	prompt, err := s.CreatePrompt("Draft", "content", &folder.ID)
	require.NoError(t, err)

	sentinel := UncategorizedFolderID
	updated, err := s.UpdatePrompt(prompt.ID, PromptUpdate{FolderID: &sentinel})
	require.NoError(t, err)
	assert.Nil(t, updated.FolderID)
}

func TestDeletePromptCascadesVersions(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "v1", nil)
	require.NoError(t, err)
	for _, content := range []string{"v2", "v3"} {
		c := content
		_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Content: &c})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeletePrompt(prompt.ID))

	_, err = s.GetPrompt(prompt.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, s.db.Model(&models.PromptVersion{}).Where("prompt_id = ?", prompt.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletePromptNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeletePrompt(123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromptCacheInvalidation(t *testing.T) {
	s, mr := newCachedTestStore(t)

	prompt, err := s.CreatePrompt("Cached", "original", nil)
	require.NoError(t, err)

	// first read populates the cache
	_, err = s.GetPrompt(prompt.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(s.cacheKey(prompt.ID)))

	content := "changed"
	_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Content: &content})
	require.NoError(t, err)
	assert.False(t, mr.Exists(s.cacheKey(prompt.ID)))

	got, err := s.GetPrompt(prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Content)
}
