package ui

import (
	"promptstack-backend/internal/models"
	"promptstack-backend/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages produced by store-backed commands. The store runs in-process, so
// every command completes synchronously; they are still modeled as tea.Cmd so
// the update loop stays pure.

type promptsLoadedMsg struct {
	prompts []models.Prompt
}

type versionsLoadedMsg struct {
	promptID uint
	versions []models.PromptVersion
}

type promptSavedMsg struct {
	prompt *models.Prompt
}

type promptDeletedMsg struct{}

type versionRestoredMsg struct {
	prompt *models.Prompt
}

type composedMsg struct {
	result     string
	unresolved []string
}

type errMsg struct {
	err error
}

func loadPrompts(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		prompts, err := s.ListPrompts(nil, "")
		if err != nil {
			return errMsg{err}
		}
		return promptsLoadedMsg{prompts}
	}
}

func loadVersions(s *store.Store, promptID uint) tea.Cmd {
	return func() tea.Msg {
		versions, err := s.ListVersions(promptID)
		if err != nil {
			return errMsg{err}
		}
		return versionsLoadedMsg{promptID, versions}
	}
}

func createPrompt(s *store.Store, title, content string, folderID *uint) tea.Cmd {
	return func() tea.Msg {
		prompt, err := s.CreatePrompt(title, content, folderID)
		if err != nil {
			return errMsg{err}
		}
		return promptSavedMsg{prompt}
	}
}

func updatePrompt(s *store.Store, id uint, upd store.PromptUpdate) tea.Cmd {
	return func() tea.Msg {
		prompt, err := s.UpdatePrompt(id, upd)
		if err != nil {
			return errMsg{err}
		}
		return promptSavedMsg{prompt}
	}
}

func deletePrompt(s *store.Store, id uint) tea.Cmd {
	return func() tea.Msg {
		if err := s.DeletePrompt(id); err != nil {
			return errMsg{err}
		}
		return promptDeletedMsg{}
	}
}

func restoreVersion(s *store.Store, promptID, number uint) tea.Cmd {
	return func() tea.Msg {
		prompt, err := s.RestoreVersion(promptID, number)
		if err != nil {
			return errMsg{err}
		}
		return versionRestoredMsg{prompt}
	}
}

func composePrompt(s *store.Store, promptID uint) tea.Cmd {
	return func() tea.Msg {
		result, unresolved, err := s.ComposePrompt(promptID, nil)
		if err != nil {
			return errMsg{err}
		}
		return composedMsg{result, unresolved}
	}
}
