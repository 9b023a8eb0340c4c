package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for checkpoint answers and unlock
// explanations. An optional per-field validation mark is rendered after the
// field once the owner calls Mark.
type TextInput struct {
	Model textinput.Model

	marked bool
	valid  bool
}

// NewTextInput creates a focused input with the given placeholder.
func NewTextInput(placeholder string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with its validation mark, if any.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.marked {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

// Value returns the current input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Mark records a validation outcome to show next to the field.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}
