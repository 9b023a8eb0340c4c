package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/ui/theme"
)

// MultiChoice is an option selector for quiz questions. It only moves the
// cursor; grading belongs to the owner, which calls Reveal once the answer
// may be shown. Until then the correct option is never highlighted, so a
// wrong attempt gives nothing away.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int

	// Cursor is the currently highlighted option.
	Cursor int

	// Revealed freezes the selector and colors the outcome.
	Revealed bool

	// Chosen is the graded selection, -1 before Reveal.
	Chosen int
}

// NewMultiChoice creates a selector over the question's options.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Reveal locks the selector and marks chosen as the graded answer.
func (m *MultiChoice) Reveal(chosen int) {
	m.Revealed = true
	m.Chosen = chosen
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. A revealed selector is inert.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor && !m.Revealed {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", cursor, 'a'+i, opt)

		style := theme.Unselected
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
		case m.Revealed:
			style = theme.Hint
		case i == m.Cursor:
			style = theme.Selected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
