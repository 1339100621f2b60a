package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sportlog/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmDeleteModel asks before an entry is deleted
type ConfirmDeleteModel struct {
	ViewState
	entry   EntryRef
	summary string
	Keys    ConfirmKeyMap
}

// NewConfirmDeleteModel creates a new confirmation model with default keys
func NewConfirmDeleteModel() *ConfirmDeleteModel {
	return &ConfirmDeleteModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the entry the confirmation is about
func (m *ConfirmDeleteModel) SetTarget(entry EntryRef, summary string) {
	m.entry = entry
	m.summary = summary
}

// Init initializes the view
func (m *ConfirmDeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmDeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return SwitchToEntriesMsg{} }
	case key.Matches(keyMsg, m.Keys.Confirm):
		entry := m.entry
		return m, func() tea.Msg { return DeleteConfirmedMsg{Entry: entry} }
	}
	return m, nil
}

// View renders the confirmation prompt
func (m *ConfirmDeleteModel) View() string {
	return NewViewBuilder().
		Title("Delete " + m.entry.Kind.String()).
		Line(styles.InputLabel.Render("Entry:")).
		Line("  " + m.summary).
		BlankLine().
		Line(RenderConfirmPrompt("Delete this " + m.entry.Kind.String() + "?")).
		String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
