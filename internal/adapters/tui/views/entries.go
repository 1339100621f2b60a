package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sportlog/internal/adapters/tui/styles"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

// EntriesKeyMap defines key bindings for the entry browser
type EntriesKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Kind      key.Binding
	Filter    key.Binding
	Edit      key.Binding
	Copy      key.Binding
	Delete    key.Binding
	OpenHRM   key.Binding
	Stats     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var EntriesKeys = EntriesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+f"),
		key.WithHelp("pgdn", "next page"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("[", "h", "left"),
		key.WithHelp("[", "prev month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("]", "l", "right"),
		key.WithHelp("]", "next month"),
	),
	Kind: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "kind"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f", "/"),
		key.WithHelp("f", "filter"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit comment"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	OpenHRM: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open HRM file"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// entryRow is one rendered line of the browser
type entryRow struct {
	ref     EntryRef
	date    time.Time
	color   lipgloss.Color
	text    string
	comment string
}

// plain returns the row as unstyled text, as copied to the clipboard
func (r entryRow) plain() string {
	line := r.date.Format("2006-01-02 15:04") + "  " + r.text
	if r.comment != "" {
		line += "  " + r.comment
	}
	return line
}

// EntriesModel browses the entries selected by the current filter
type EntriesModel struct {
	ViewState
	book      *domain.Logbook
	filter    *domain.FilterCriteria
	rows      []entryRow
	paginator *Paginator
	stats     *commands.Statistics
	showStats bool

	// copy is swapped in tests
	copy func(string) error
}

// NewEntriesModel creates a browser over book. filter is shared with the
// caller and modified in place by month navigation and kind switching.
func NewEntriesModel(book *domain.Logbook, filter *domain.FilterCriteria) *EntriesModel {
	m := &EntriesModel{
		book:      book,
		filter:    filter,
		paginator: NewPaginator(15),
		copy:      clipboard.WriteAll,
	}
	m.Refresh()
	return m
}

// Refresh re-runs the filter, keeping the cursor where possible
func (m *EntriesModel) Refresh() {
	result, err := commands.NewFilterEntriesCommand(m.book, m.filter).Execute(context.Background())
	if err != nil {
		m.rows = nil
		m.stats = nil
		m.paginator.SetTotal(0)
		m.SetMessage(err.Error(), true)
		return
	}

	m.rows = buildRows(result)
	m.stats = nil
	if result.Kind == domain.EntryKindExercise {
		m.stats = commands.Summarize(result.Exercises)
	}
	m.paginator.SetTotal(len(m.rows))
}

func buildRows(result *commands.FilterEntriesResult) []entryRow {
	rows := make([]entryRow, 0, result.Len())
	for _, e := range result.Exercises {
		text := fmt.Sprintf("%-12s %-14s %-9s %8s %7.2f km",
			e.SportType.Name, e.SportSubType.Name, e.Intensity, FormatDuration(e.Duration), e.Distance)
		if e.Equipment != nil {
			text += "  [" + e.Equipment.Name + "]"
		}
		rows = append(rows, entryRow{
			ref:     EntryRef{Kind: domain.EntryKindExercise, ID: e.ID},
			date:    e.DateTime,
			color:   styles.SportTypeColor(e.SportType.Color),
			text:    text,
			comment: e.Comment,
		})
	}
	for _, n := range result.Notes {
		row := entryRow{
			ref:   EntryRef{Kind: domain.EntryKindNote, ID: n.ID},
			date:  n.DateTime,
			color: styles.Primary,
			text:  n.Text,
		}
		if n.SportType != nil {
			row.color = styles.SportTypeColor(n.SportType.Color)
			row.text = "(" + n.SportType.Name + ") " + n.Text
		}
		rows = append(rows, row)
	}
	for _, w := range result.Weights {
		rows = append(rows, entryRow{
			ref:     EntryRef{Kind: domain.EntryKindWeight, ID: w.ID},
			date:    w.DateTime,
			color:   styles.Secondary,
			text:    fmt.Sprintf("%.1f kg", w.Value),
			comment: w.Comment,
		})
	}
	return rows
}

// Init initializes the browser
func (m *EntriesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser
func (m *EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.ClearMessage()

	switch {
	case key.Matches(keyMsg, EntriesKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, EntriesKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(keyMsg, EntriesKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(keyMsg, EntriesKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(keyMsg, EntriesKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(keyMsg, EntriesKeys.PrevMonth):
		m.shiftMonth(-1)

	case key.Matches(keyMsg, EntriesKeys.NextMonth):
		m.shiftMonth(1)

	case key.Matches(keyMsg, EntriesKeys.Kind):
		m.filter.Kind = (m.filter.Kind + 1) % 3
		m.paginator.Reset()
		m.Refresh()

	case key.Matches(keyMsg, EntriesKeys.Stats):
		m.showStats = !m.showStats

	case key.Matches(keyMsg, EntriesKeys.Filter):
		return m, func() tea.Msg { return SwitchToFilterMsg{} }

	case key.Matches(keyMsg, EntriesKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(keyMsg, EntriesKeys.Copy):
		if row, ok := m.selected(); ok {
			if err := m.copy(row.plain()); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
			} else {
				m.SetMessage("Copied to clipboard", false)
			}
		}

	case key.Matches(keyMsg, EntriesKeys.Edit):
		if row, ok := m.selected(); ok {
			comment := row.comment
			if row.ref.Kind == domain.EntryKindNote {
				n, _ := m.book.Notes.ByID(row.ref.ID)
				comment = n.Text
			}
			return m, func() tea.Msg { return EditCommentMsg{Entry: row.ref, Comment: comment} }
		}

	case key.Matches(keyMsg, EntriesKeys.OpenHRM):
		if row, ok := m.selected(); ok && row.ref.Kind == domain.EntryKindExercise {
			e, _ := m.book.Exercises.ByID(row.ref.ID)
			if e.HRMFile == "" {
				m.SetMessage("No HRM file recorded", true)
				return m, nil
			}
			path := e.HRMFile
			return m, func() tea.Msg { return OpenHRMMsg{Path: path} }
		}

	case key.Matches(keyMsg, EntriesKeys.Delete):
		if row, ok := m.selected(); ok {
			return m, func() tea.Msg { return SwitchToConfirmDeleteMsg{Entry: row.ref, Summary: row.plain()} }
		}
	}

	return m, nil
}

// shiftMonth moves the filter to the whole month before or after its start
func (m *EntriesModel) shiftMonth(delta int) {
	y, mo, _ := m.filter.DateStart.Date()
	start := time.Date(y, mo, 1, 0, 0, 0, 0, m.filter.DateStart.Location()).AddDate(0, delta, 0)
	m.filter.DateStart = start
	m.filter.DateEnd = start.AddDate(0, 1, -1)
	m.paginator.Reset()
	m.Refresh()
}

func (m *EntriesModel) selected() (entryRow, bool) {
	if len(m.rows) == 0 {
		return entryRow{}, false
	}
	return m.rows[m.paginator.Cursor()], true
}

// Selected returns the entry under the cursor
func (m *EntriesModel) Selected() (EntryRef, bool) {
	row, ok := m.selected()
	return row.ref, ok
}

// SetSize updates the view dimensions and the page size
func (m *EntriesModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, filter bar, status and help take about ten lines
	m.paginator.SetPageSize(max(height-10, 3))
}

// View renders the browser
func (m *EntriesModel) View() string {
	v := NewViewBuilder().Title("Sportlog")
	v.Line(styles.FilterBar.Render(DescribeFilter(m.filter)))
	v.BlankLine()

	if len(m.rows) == 0 {
		v.Muted("No " + m.filter.Kind.String() + "s match the filter.")
	}
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderRow(m.rows[i], i == m.paginator.Cursor()))
	}

	v.BlankLine()
	if m.paginator.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
	}
	if m.showStats && m.stats != nil {
		v.Line(m.renderStats())
	}
	v.Message(m.Message, m.MessageErr)

	return v.Help(
		EntriesKeys.PrevMonth, EntriesKeys.NextMonth, EntriesKeys.Kind, EntriesKeys.Filter,
		EntriesKeys.Edit, EntriesKeys.Copy, EntriesKeys.Delete, EntriesKeys.Help, EntriesKeys.Quit,
	).String()
}

func (m *EntriesModel) renderRow(row entryRow, selected bool) string {
	date := row.date.Format("Mon 02 Jan 15:04")
	if selected {
		return styles.EntrySelected.Render(date + "  " + row.text + "  " + row.comment)
	}

	line := styles.EntryDate.Render(date) + "  " +
		lipgloss.NewStyle().Foreground(row.color).Render("●") + " " +
		styles.EntryText.Render(row.text)
	if row.comment != "" {
		line += "  " + styles.EntryComment.Render(row.comment)
	}
	return line
}

func (m *EntriesModel) renderStats() string {
	s := m.stats
	line := fmt.Sprintf("%d exercises  %.1f km  %s  avg %.1f km/h",
		s.Count, s.TotalDistance, FormatDuration(int(s.TotalDuration.Seconds())), s.AvgSpeed)
	if s.AvgHeartRate > 0 {
		line += fmt.Sprintf("  avg HR %d", s.AvgHeartRate)
	}
	return styles.StatusBar.Render(line)
}
