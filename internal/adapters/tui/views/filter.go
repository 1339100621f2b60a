package views

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sportlog/internal/adapters/tui/styles"
	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

// FilterKeyMap defines the toggles of the filter editor
type FilterKeyMap struct {
	Regex     key.Binding
	Kind      key.Binding
	SportType key.Binding
	Intensity key.Binding
}

var FilterKeys = FilterKeyMap{
	Regex: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "regex"),
	),
	Kind: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "kind"),
	),
	SportType: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "sport type"),
	),
	Intensity: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "intensity"),
	),
}

const (
	fieldFrom = iota
	fieldTo
	fieldComment
)

// FilterModel edits a copy of the current filter criteria
type FilterModel struct {
	ViewState
	book *domain.Logbook
	form *InputForm

	kind        domain.EntryKind
	sportTypeID int // 0 = any
	subTypeID   int
	equipmentID int
	intensity   int // -1 = any
	regex       bool
}

// NewFilterModel creates a filter editor over the book's sport types
func NewFilterModel(book *domain.Logbook) *FilterModel {
	return &FilterModel{
		book: book,
		form: NewInputForm(
			NewInputField("From", "YYYY-MM-DD", 10).WithCheck(checkDate),
			NewInputField("To", "YYYY-MM-DD", 10).WithCheck(checkDate),
			NewInputField("Comment", "words or regular expression", 200),
		),
		intensity: -1,
	}
}

func checkDate(v string) error {
	if _, err := time.ParseInLocation(time.DateOnly, v, time.Local); err != nil {
		return fmt.Errorf("invalid date %q", v)
	}
	return nil
}

// Load copies the criteria into the editor
func (m *FilterModel) Load(c *domain.FilterCriteria) {
	m.ClearMessage()
	m.form.SetValue(fieldFrom, c.DateStart.Format(time.DateOnly))
	m.form.SetValue(fieldTo, c.DateEnd.Format(time.DateOnly))
	m.form.SetValue(fieldComment, c.CommentSubString)

	m.kind = c.Kind
	m.regex = c.RegexMode
	m.sportTypeID, m.subTypeID, m.equipmentID = 0, 0, 0
	if c.SportType != nil {
		m.sportTypeID = c.SportType.ID
		if c.SportSubType != nil {
			m.subTypeID = c.SportSubType.ID
		}
		if c.Equipment != nil {
			m.equipmentID = c.Equipment.ID
		}
	}
	m.intensity = -1
	if c.Intensity != nil {
		m.intensity = int(*c.Intensity)
	}
}

// Init returns the blink command for the focused input
func (m *FilterModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the filter editor
func (m *FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToEntriesMsg{} }

		case key.Matches(keyMsg, m.form.Keys.Submit):
			if err := m.form.Err(); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			criteria, err := m.Criteria(time.Now())
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			return m, func() tea.Msg { return FilterAppliedMsg{Criteria: criteria} }

		case key.Matches(keyMsg, FilterKeys.Regex):
			m.regex = !m.regex
			return m, nil

		case key.Matches(keyMsg, FilterKeys.Kind):
			m.kind = (m.kind + 1) % 3
			return m, nil

		case key.Matches(keyMsg, FilterKeys.SportType):
			m.cycleSportType()
			return m, nil

		case key.Matches(keyMsg, FilterKeys.Intensity):
			m.intensity++
			if m.intensity >= len(domain.Intensities()) {
				m.intensity = -1
			}
			return m, nil
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// cycleSportType steps through "any" and every sport type in list order
func (m *FilterModel) cycleSportType() {
	types := m.book.SportTypes.All()
	idx := -1
	for i, st := range types {
		if st.ID == m.sportTypeID {
			idx = i
			break
		}
	}

	m.subTypeID, m.equipmentID = 0, 0
	if idx+1 >= len(types) {
		m.sportTypeID = 0
		return
	}
	m.sportTypeID = types[idx+1].ID
}

// Criteria builds and checks the edited criteria, including the comment pattern
func (m *FilterModel) Criteria(now time.Time) (*domain.FilterCriteria, error) {
	spec := application.FilterSpec{
		Kind:        m.kind.String(),
		From:        m.form.Value(fieldFrom),
		To:          m.form.Value(fieldTo),
		SportTypeID: m.sportTypeID,
		SubTypeID:   m.subTypeID,
		EquipmentID: m.equipmentID,
		Comment:     m.form.Value(fieldComment),
		Regex:       m.regex,
	}
	if m.intensity >= 0 {
		spec.Intensity = domain.Intensity(m.intensity).String()
	}

	criteria, err := spec.Criteria(m.book.SportTypes, now)
	if err != nil {
		return nil, err
	}
	// surfaces an invalid regular expression before leaving the editor
	if _, err := commands.NewFilterEntriesCommand(m.book, criteria).Execute(context.Background()); err != nil {
		return nil, err
	}
	return criteria, nil
}

// View renders the filter editor
func (m *FilterModel) View() string {
	sport := "any"
	if st, ok := m.book.SportTypes.ByID(m.sportTypeID); ok {
		sport = styles.InputLabel.Foreground(styles.SportTypeColor(st.Color)).Render(st.Name)
	}
	intensity := "any"
	if m.intensity >= 0 {
		intensity = domain.Intensity(m.intensity).String()
	}

	return NewViewBuilder().
		Title("Filter").
		Line(m.form.RenderFields()).
		BlankLine().
		Line(RenderToggle("regular expression", m.regex)).
		Line(styles.InputLabel.Render("Kind: ") + m.kind.String()).
		Line(styles.InputLabel.Render("Sport type: ") + sport).
		Line(styles.InputLabel.Render("Intensity: ") + intensity).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.form.Keys.Submit, m.form.Keys.Cancel, m.form.Keys.Tab,
			FilterKeys.Regex, FilterKeys.Kind, FilterKeys.SportType, FilterKeys.Intensity).
		String()
}
