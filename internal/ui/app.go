package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"promptstack-backend/internal/models"
	"promptstack-backend/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageList page = iota
	pageEdit
	pageVersions
	pageCompose
)

// promptItem adapts models.Prompt to list.Item.
type promptItem struct {
	prompt models.Prompt
}

func (i promptItem) Title() string { return i.prompt.Title }
func (i promptItem) Description() string {
	folder := "uncategorized"
	if i.prompt.FolderID != nil {
		folder = fmt.Sprintf("folder %d", *i.prompt.FolderID)
	}
	return fmt.Sprintf("#%d · %s · updated %s", i.prompt.ID, folder, i.prompt.UpdatedAt.Format("2006-01-02 15:04"))
}
func (i promptItem) FilterValue() string { return i.prompt.Title }

// versionItem adapts models.PromptVersion to list.Item.
type versionItem struct {
	version models.PromptVersion
}

func (i versionItem) Title() string {
	return fmt.Sprintf("v%d · %s", i.version.VersionNumber, i.version.Title)
}
func (i versionItem) Description() string {
	content := i.version.Content
	if len(content) > 60 {
		content = content[:60] + "…"
	}
	return content
}
func (i versionItem) FilterValue() string { return i.version.Title }

// Model is the root bubbletea model driving the store in-process.
type Model struct {
	store  *store.Store
	styles Styles

	page   page
	width  int
	height int

	promptList  list.Model
	versionList list.Model
	viewport    viewport.Model

	titleInput   textinput.Model
	folderInput  textinput.Model
	contentInput textarea.Model
	focusIndex   int

	editing *models.Prompt // nil while creating
	status  string
	errText string
}

func NewModel(s *store.Store) Model {
	pl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	pl.Title = "Prompts"
	pl.SetShowHelp(false)
	pl.SetFilteringEnabled(true)

	vl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	vl.Title = "Versions"
	vl.SetShowHelp(false)
	vl.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200

	fi := textinput.New()
	fi.Placeholder = "Folder ID (blank = none)"
	fi.CharLimit = 10

	ta := textarea.New()
	ta.Placeholder = "Content; reference other prompts with {{id-or-title}}"

	vp := viewport.New(0, 0)

	return Model{
		store:        s,
		styles:       DefaultStyles(),
		page:         pageList,
		promptList:   pl,
		versionList:  vl,
		viewport:     vp,
		titleInput:   ti,
		folderInput:  fi,
		contentInput: ta,
	}
}

func (m Model) Init() tea.Cmd {
	return loadPrompts(m.store)
}

func (m Model) selectedPrompt() *models.Prompt {
	item, ok := m.promptList.SelectedItem().(promptItem)
	if !ok {
		return nil
	}
	prompt := item.prompt
	return &prompt
}

// describeError renders a store error with its kind kept visible, so the
// user can tell invalid input apart from a missing record.
func describeError(err error) string {
	switch {
	case errors.Is(err, store.ErrValidation):
		return "invalid input: " + err.Error()
	case errors.Is(err, store.ErrNotFound):
		return "not found: " + err.Error()
	case errors.Is(err, store.ErrConflict):
		return "conflict: " + err.Error()
	default:
		return err.Error()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.promptList.SetSize(msg.Width, msg.Height-4)
		m.versionList.SetSize(msg.Width, msg.Height-4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		m.contentInput.SetWidth(msg.Width - 8)
		m.contentInput.SetHeight(msg.Height - 14)
		return m, nil

	case promptsLoadedMsg:
		items := make([]list.Item, 0, len(msg.prompts))
		for _, p := range msg.prompts {
			items = append(items, promptItem{p})
		}
		m.promptList.SetItems(items)
		return m, nil

	case versionsLoadedMsg:
		items := make([]list.Item, 0, len(msg.versions))
		for _, v := range msg.versions {
			items = append(items, versionItem{v})
		}
		m.versionList.SetItems(items)
		m.page = pageVersions
		return m, nil

	case promptSavedMsg:
		m.page = pageList
		m.status = fmt.Sprintf("saved %q", msg.prompt.Title)
		m.errText = ""
		return m, loadPrompts(m.store)

	case promptDeletedMsg:
		m.status = "prompt deleted"
		m.errText = ""
		return m, loadPrompts(m.store)

	case versionRestoredMsg:
		m.page = pageList
		m.status = fmt.Sprintf("restored %q", msg.prompt.Title)
		m.errText = ""
		return m, loadPrompts(m.store)

	case composedMsg:
		var b strings.Builder
		b.WriteString(msg.result)
		if len(msg.unresolved) > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.styles.Verbatim.Render("unresolved: " + strings.Join(msg.unresolved, ", ")))
		}
		m.viewport.SetContent(b.String())
		m.viewport.GotoTop()
		m.page = pageCompose
		return m, nil

	case errMsg:
		m.errText = describeError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch m.page {
		case pageList:
			return m.updateList(msg)
		case pageEdit:
			return m.updateEdit(msg)
		case pageVersions:
			return m.updateVersions(msg)
		case pageCompose:
			return m.updateCompose(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.promptList.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n":
			m.startEdit(nil)
			return m, textinput.Blink
		case "enter":
			if p := m.selectedPrompt(); p != nil {
				m.startEdit(p)
				return m, textinput.Blink
			}
		case "d":
			if p := m.selectedPrompt(); p != nil {
				return m, deletePrompt(m.store, p.ID)
			}
		case "v":
			if p := m.selectedPrompt(); p != nil {
				m.editing = p
				return m, loadVersions(m.store, p.ID)
			}
		case "c":
			if p := m.selectedPrompt(); p != nil {
				return m, composePrompt(m.store, p.ID)
			}
		case "r":
			return m, loadPrompts(m.store)
		}
	}

	var cmd tea.Cmd
	m.promptList, cmd = m.promptList.Update(msg)
	return m, cmd
}

// startEdit prepares the form, pre-filled when editing an existing prompt.
func (m *Model) startEdit(p *models.Prompt) {
	m.editing = p
	m.focusIndex = 0
	m.errText = ""
	if p != nil {
		m.titleInput.SetValue(p.Title)
		m.contentInput.SetValue(p.Content)
		if p.FolderID != nil {
			m.folderInput.SetValue(strconv.FormatUint(uint64(*p.FolderID), 10))
		} else {
			m.folderInput.SetValue("")
		}
	} else {
		m.titleInput.SetValue("")
		m.contentInput.SetValue("")
		m.folderInput.SetValue("")
	}
	m.titleInput.Focus()
	m.contentInput.Blur()
	m.folderInput.Blur()
	m.page = pageEdit
}

func (m *Model) cycleFocus() {
	m.focusIndex = (m.focusIndex + 1) % 3
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.folderInput.Blur()
	switch m.focusIndex {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.contentInput.Focus()
	case 2:
		m.folderInput.Focus()
	}
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.page = pageList
		return m, nil
	case "tab":
		m.cycleFocus()
		return m, textinput.Blink
	case "ctrl+s":
		return m, m.saveCmd()
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.focusIndex {
	case 0:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 1:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case 2:
		m.folderInput, cmd = m.folderInput.Update(msg)
	}
	return m, cmd
}

// saveCmd turns the form state into a create or update command. The folder
// field accepts a numeric id, "0" to clear, or blank to leave unchanged
// (blank means "none" on create).
func (m Model) saveCmd() tea.Cmd {
	title := m.titleInput.Value()
	content := m.contentInput.Value()
	folderRaw := strings.TrimSpace(m.folderInput.Value())

	var folderID *uint
	if folderRaw != "" {
		parsed, err := strconv.ParseUint(folderRaw, 10, 32)
		if err != nil {
			return func() tea.Msg {
				return errMsg{fmt.Errorf("%w: folder id must be numeric", store.ErrValidation)}
			}
		}
		id := uint(parsed)
		folderID = &id
	}

	if m.editing == nil {
		return createPrompt(m.store, title, content, folderID)
	}

	return updatePrompt(m.store, m.editing.ID, store.PromptUpdate{
		Title:    &title,
		Content:  &content,
		FolderID: folderID,
	})
}

func (m Model) updateVersions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.page = pageList
		return m, nil
	case "enter":
		if item, ok := m.versionList.SelectedItem().(versionItem); ok && m.editing != nil {
			return m, restoreVersion(m.store, m.editing.ID, item.version.VersionNumber)
		}
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.versionList, cmd = m.versionList.Update(msg)
	return m, cmd
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.page = pageList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	switch m.page {
	case pageList:
		b.WriteString(m.promptList.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("n new · enter edit · d delete · v versions · c compose · r reload · q quit"))
	case pageEdit:
		header := "New prompt"
		if m.editing != nil {
			header = fmt.Sprintf("Edit prompt #%d", m.editing.ID)
		}
		b.WriteString(m.styles.Title.Render(header))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Label.Render("Title") + "\n" + m.titleInput.View() + "\n\n")
		b.WriteString(m.styles.Label.Render("Content") + "\n" + m.contentInput.View() + "\n\n")
		b.WriteString(m.styles.Label.Render("Folder") + "\n" + m.folderInput.View() + "\n\n")
		b.WriteString(m.styles.Help.Render("tab next field · ctrl+s save · esc cancel"))
	case pageVersions:
		b.WriteString(m.versionList.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter restore selected · esc back"))
	case pageCompose:
		b.WriteString(m.styles.Title.Render("Composed output"))
		b.WriteString("\n")
		b.WriteString(m.styles.Box.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("esc back"))
	}

	if m.errText != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errText))
	} else if m.status != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.status))
	}

	return b.String()
}

// Run starts the interactive client over the given store.
func Run(s *store.Store) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
