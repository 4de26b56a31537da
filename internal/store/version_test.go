package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionNumbersAreGapless(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "rev 0", nil)
	require.NoError(t, err)

	const updates = 5
	for i := 1; i <= updates; i++ {
		content := fmt.Sprintf("rev %d", i)
		_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Content: &content})
		require.NoError(t, err)
	}

	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	require.Len(t, versions, updates)
	for i, v := range versions {
		assert.Equal(t, uint(i+1), v.VersionNumber)
		assert.Equal(t, fmt.Sprintf("rev %d", i), v.Content)
	}
}

func TestListVersionsUnknownPrompt(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ListVersions(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestoreVersion(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Original title", "original content", nil)
	require.NoError(t, err)

	title := "Edited title"
	content := "edited content"
	_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Title: &title, Content: &content})
	require.NoError(t, err)

	restored, err := s.RestoreVersion(prompt.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Original title", restored.Title)
	assert.Equal(t, "original content", restored.Content)

	// exactly one new version, recording the pre-restore state, and the
	// overwritten number is never reused
	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, uint(2), versions[1].VersionNumber)
	assert.Equal(t, "Edited title", versions[1].Title)
	assert.Equal(t, "edited content", versions[1].Content)
}

func TestRestoreVersionUnknownPrompt(t *testing.T) {
	s := newTestStore(t)

	_, err := s.RestoreVersion(9, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestoreVersionUnknownNumber(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "content", nil)
	require.NoError(t, err)

	_, err = s.RestoreVersion(prompt.ID, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestoreLiveStateStillRecordsVersion(t *testing.T) {
	s := newTestStore(t)

	prompt, err := s.CreatePrompt("Draft", "same", nil)
	require.NoError(t, err)

	content := "same"
	_, err = s.UpdatePrompt(prompt.ID, PromptUpdate{Content: &content})
	require.NoError(t, err)

	// restoring to state identical to the live prompt is legal and still
	// appends to history
	_, err = s.RestoreVersion(prompt.ID, 1)
	require.NoError(t, err)

	versions, err := s.ListVersions(prompt.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}
