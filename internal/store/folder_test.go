package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Work")
	require.NoError(t, err)
	assert.NotZero(t, folder.ID)
	assert.Equal(t, "Work", folder.Name)
}

func TestCreateFolderEmptyName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateFolder("  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFolderDuplicateName(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreateFolder("Work")
	require.NoError(t, err)

	_, err = s.CreateFolder("Work")
	assert.ErrorIs(t, err, ErrConflict)

	// the first folder is unaffected
	folders, err := s.ListFolders()
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, first.ID, folders[0].ID)

	// names are case-sensitive, so this is a distinct folder
	_, err = s.CreateFolder("work")
	assert.NoError(t, err)
}

func TestListFoldersInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.CreateFolder(name)
		require.NoError(t, err)
	}

	folders, err := s.ListFolders()
	require.NoError(t, err)
	require.Len(t, folders, 3)
	assert.Equal(t, "zeta", folders[0].Name)
	assert.Equal(t, "alpha", folders[1].Name)
	assert.Equal(t, "mid", folders[2].Name)
}

func TestUpdateFolder(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Work")
	require.NoError(t, err)

	renamed, err := s.UpdateFolder(folder.ID, "Projects")
	require.NoError(t, err)
	assert.Equal(t, "Projects", renamed.Name)

	_, err = s.UpdateFolder(99, "Anything")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateFolder(folder.ID, " ")
	assert.ErrorIs(t, err, ErrValidation)

	other, err := s.CreateFolder("Archive")
	require.NoError(t, err)
	_, err = s.UpdateFolder(other.ID, "Projects")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteFolderUncategorizesPrompts(t *testing.T) {
	s := newTestStore(t)

	folder, err := s.CreateFolder("Work")
	require.NoError(t, err)

	prompt, err := s.CreatePrompt("Draft", "content", &folder.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder(folder.ID))

	// the prompt survives with its folder reference cleared
	got, err := s.GetPrompt(prompt.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FolderID)

	folders, err := s.ListFolders()
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestDeleteFolderNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteFolder(55)
	assert.ErrorIs(t, err, ErrNotFound)
}
