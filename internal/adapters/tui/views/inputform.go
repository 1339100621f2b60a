package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sportlog/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit  key.Binding
	Cancel  key.Binding
	Tab     key.Binding
	BackTab key.Binding
}

var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	BackTab: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField is a labelled text input. Check, when set, validates non-empty
// values as they are typed.
type InputField struct {
	Label string
	Check func(value string) error
	input textinput.Model
}

// NewInputField creates a field with a placeholder and an optional length limit
func NewInputField(label, placeholder string, charLimit int) InputField {
	in := textinput.New()
	in.Placeholder = placeholder
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	return InputField{Label: label, input: in}
}

// WithCheck returns the field with a validation function
func (f InputField) WithCheck(check func(string) error) InputField {
	f.Check = check
	return f
}

func (f *InputField) problem() error {
	v := strings.TrimSpace(f.input.Value())
	if f.Check == nil || v == "" {
		return nil
	}
	return f.Check(v)
}

// InputForm is a vertical list of fields with one focused at a time
type InputForm struct {
	Keys   InputFormKeyMap
	fields []InputField
	focus  int
}

// NewInputForm creates a form focused on its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Keys: DefaultInputFormKeys, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// Init returns the cursor blink command
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves the focus or forwards msg to the focused field.
// It reports whether msg was a focus key.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, f.Keys.Tab):
			f.moveFocus(1)
			return true, nil
		case key.Matches(k, f.Keys.BackTab):
			f.moveFocus(-1)
			return true, nil
		}
	}

	if len(f.fields) == 0 {
		return false, nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return false, cmd
}

func (f *InputForm) moveFocus(delta int) {
	n := len(f.fields)
	if n < 2 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + n) % n
	f.fields[f.focus].input.Focus()
}

// Focused returns the index of the focused field
func (f *InputForm) Focused() int {
	return f.focus
}

// Value returns the trimmed value of field i
func (f *InputForm) Value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return strings.TrimSpace(f.fields[i].input.Value())
}

// SetValue replaces the value of field i
func (f *InputForm) SetValue(i int, value string) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	f.fields[i].input.SetValue(value)
}

// Err returns the first field validation error
func (f *InputForm) Err() error {
	for i := range f.fields {
		if err := f.fields[i].problem(); err != nil {
			return err
		}
	}
	return nil
}

// RenderFields renders the fields one per line, label first, with any
// validation problem after the input
func (f *InputForm) RenderFields() string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.Label))
	}

	lines := make([]string, 0, len(f.fields))
	for i := range f.fields {
		field := &f.fields[i]
		label := styles.InputLabel.Render(padRight(field.Label+":", width+2))

		box := styles.InputField
		if i == f.focus {
			box = styles.InputFocused
		}
		line := label + box.Render(field.input.View())
		if err := field.problem(); err != nil {
			line += "  " + styles.ErrorMsg.Render(err.Error())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
