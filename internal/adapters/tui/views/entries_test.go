package views

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportlog/internal/domain"
	"sportlog/internal/domain/domaintest"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func rowIDs(m *EntriesModel) []int {
	var out []int
	for _, r := range m.rows {
		out = append(out, r.ref.ID)
	}
	return out
}

func newTestEntries(t *testing.T) (*EntriesModel, *domain.FilterCriteria) {
	t.Helper()
	filter := domaintest.NewFilter(domain.EntryKindExercise)
	m := NewEntriesModel(domaintest.NewLogbook(), filter)
	m.SetSize(120, 40)
	return m, filter
}

func TestEntriesModel_ListsNewestFirst(t *testing.T) {
	m, _ := newTestEntries(t)

	assert.Equal(t, []int{3, 2, 1}, rowIDs(m))
	require.NotNil(t, m.stats)
	assert.Equal(t, 3, m.stats.Count)

	m.Update(runeKey("j"))
	ref, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, EntryRef{Kind: domain.EntryKindExercise, ID: 2}, ref)
}

func TestEntriesModel_KindCycling(t *testing.T) {
	m, filter := newTestEntries(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.EntryKindNote, filter.Kind)
	assert.Empty(t, m.rows)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No notes match the filter.")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.EntryKindWeight, filter.Kind)
	assert.Equal(t, []int{2, 1}, rowIDs(m))
	assert.Nil(t, m.stats)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.EntryKindExercise, filter.Kind)
}

func TestEntriesModel_MonthNavigation(t *testing.T) {
	m, filter := newTestEntries(t)

	m.Update(runeKey("]"))
	assert.Equal(t, "2003-02-01", filter.DateStart.Format(time.DateOnly))
	assert.Equal(t, "2003-02-28", filter.DateEnd.Format(time.DateOnly))
	assert.Equal(t, []int{2}, rowIDs(m))

	m.Update(runeKey("["))
	m.Update(runeKey("["))
	assert.Equal(t, "2002-12-01", filter.DateStart.Format(time.DateOnly))
	assert.Equal(t, "2002-12-31", filter.DateEnd.Format(time.DateOnly))
	assert.Empty(t, m.rows)
}

func TestEntriesModel_Copy(t *testing.T) {
	m, _ := newTestEntries(t)
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m.Update(runeKey("y"))

	assert.Contains(t, copied, "2003-03-30 23:00")
	assert.Contains(t, copied, "Trail running")
	assert.Contains(t, copied, "DummyExercise 3")
	assert.Equal(t, "Copied to clipboard", m.Message)
}

func TestEntriesModel_ActionsEmitMessages(t *testing.T) {
	m, filter := newTestEntries(t)

	_, cmd := m.Update(runeKey("d"))
	require.NotNil(t, cmd)
	confirm, ok := cmd().(SwitchToConfirmDeleteMsg)
	require.True(t, ok)
	assert.Equal(t, EntryRef{Kind: domain.EntryKindExercise, ID: 3}, confirm.Entry)

	_, cmd = m.Update(runeKey("e"))
	require.NotNil(t, cmd)
	edit, ok := cmd().(EditCommentMsg)
	require.True(t, ok)
	assert.Equal(t, "DummyExercise 3", edit.Comment)

	filter.Kind = domain.EntryKindNote
	filter.DateEnd = domaintest.Date(2003, time.May, 31, 0)
	m.Refresh()
	_, cmd = m.Update(runeKey("e"))
	require.NotNil(t, cmd)
	edit = cmd().(EditCommentMsg)
	assert.Equal(t, "Race planning", edit.Comment)

	_, cmd = m.Update(runeKey("f"))
	require.NotNil(t, cmd)
	assert.IsType(t, SwitchToFilterMsg{}, cmd())
}

func TestEntriesModel_InvalidPatternShowsError(t *testing.T) {
	m, filter := newTestEntries(t)
	filter.CommentSubString = "[a-"
	filter.RegexMode = true

	m.Refresh()

	assert.True(t, m.MessageErr)
	assert.Contains(t, m.Message, "invalid comment pattern")
	assert.Empty(t, m.rows)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:00", FormatDuration(0))
	assert.Equal(t, "1:00:00", FormatDuration(3600))
	assert.Equal(t, "0:50:00", FormatDuration(3000))
	assert.Equal(t, "2:03:04", FormatDuration(7384))
}
