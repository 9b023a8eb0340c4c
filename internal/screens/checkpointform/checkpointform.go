// Package checkpointform renders a lesson's checkpoint as a form. Submitting
// runs validation and, on success, records the completion that unlocks the
// next lesson.
package checkpointform

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/checkpoint"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/router"
	"github.com/mviorel/learninghub/internal/screen"
	"github.com/mviorel/learninghub/internal/session"
	"github.com/mviorel/learninghub/internal/ui/components"
	"github.com/mviorel/learninghub/internal/ui/layout"
	"github.com/mviorel/learninghub/internal/ui/theme"
)

// CheckpointScreen is the free-text submission form for one lesson.
type CheckpointScreen struct {
	sess   *session.Session
	lesson content.Lesson

	inputs  []components.TextInput
	focused int
	result  checkpoint.Result
	done    bool
	notice  string
}

var _ screen.Screen = (*CheckpointScreen)(nil)

// New creates the checkpoint form. If the lesson is already completed the
// screen opens in its done state and never re-submits.
func New(sess *session.Session, lesson content.Lesson) *CheckpointScreen {
	c := &CheckpointScreen{sess: sess, lesson: lesson}

	completed, err := sess.Engine.Completed(context.Background(), lesson.ID)
	if err == nil && completed {
		c.done = true
		c.notice = "Checkpoint already completed."
		return c
	}

	c.inputs = make([]components.TextInput, len(lesson.Checkpoint.Fields))
	for i, f := range lesson.Checkpoint.Fields {
		placeholder := f.Placeholder
		if placeholder == "" {
			placeholder = f.Label
		}
		c.inputs[i] = components.NewTextInput(placeholder)
		if i > 0 {
			c.inputs[i].Model.Blur()
		}
	}
	return c
}

func (c *CheckpointScreen) Init() tea.Cmd {
	if len(c.inputs) > 0 {
		return c.inputs[0].Init()
	}
	return nil
}

func (c *CheckpointScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if c.done {
				return c, leaveCmd()
			}
			if c.focused < len(c.inputs)-1 {
				return c, c.focus(c.focused + 1)
			}
			return c, c.submit()
		case "tab", "down":
			if !c.done && len(c.inputs) > 0 {
				return c, c.focus((c.focused + 1) % len(c.inputs))
			}
			return c, nil
		case "shift+tab", "up":
			if !c.done && len(c.inputs) > 0 {
				return c, c.focus((c.focused - 1 + len(c.inputs)) % len(c.inputs))
			}
			return c, nil
		case "ctrl+s":
			if !c.done {
				return c, c.submit()
			}
			return c, nil
		}
	}

	if c.done || len(c.inputs) == 0 {
		return c, nil
	}
	var cmd tea.Cmd
	c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
	return c, cmd
}

func (c *CheckpointScreen) focus(i int) tea.Cmd {
	c.inputs[c.focused].Model.Blur()
	c.focused = i
	return c.inputs[i].Model.Focus()
}

func (c *CheckpointScreen) submit() tea.Cmd {
	values := make(map[string]string, len(c.inputs))
	for i, f := range c.lesson.Checkpoint.Fields {
		values[f.Name] = c.inputs[i].Value()
	}

	out, err := c.sess.Engine.Submit(context.Background(), c.lesson.ID, values, c.lesson.Checkpoint)
	if err != nil {
		// Write failures must reach the learner; losing a completion
		// silently would contradict what the screen shows.
		c.notice = err.Error()
		return nil
	}

	switch out.Status {
	case checkpoint.StatusInvalid:
		c.result = out.Result
		for i, f := range c.lesson.Checkpoint.Fields {
			c.inputs[i].Mark(len(out.Result.FieldErrors[f.Name]) == 0)
		}
		c.notice = "Some answers need work. Fix the marked fields."
	case checkpoint.StatusCompleted, checkpoint.StatusAlreadyCompleted:
		c.done = true
		c.result = checkpoint.Result{}
		c.notice = "Checkpoint passed! The next lesson is unlocked."
	}
	return nil
}

// leaveCmd pops this screen; the router refreshes the lesson list underneath.
func leaveCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (c *CheckpointScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("  Checkpoint: "+c.lesson.Title) + "\n\n")

	if c.done {
		b.WriteString(theme.Correct.Render("  ✓ "+c.notice) + "\n\n")
		b.WriteString(theme.Hint.Render("  Press Enter to go back.") + "\n")
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	for i, f := range c.lesson.Checkpoint.Fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		marker := "  "
		if i == c.focused {
			marker = "▸ "
		}
		b.WriteString(theme.Body.Render(marker+label) + "\n")
		b.WriteString("  " + c.inputs[i].View() + "\n")
		for _, msg := range c.result.FieldErrors[f.Name] {
			b.WriteString(theme.Incorrect.Render("    ✗ "+msg) + "\n")
		}
		b.WriteString("\n")
	}

	if c.notice != "" {
		b.WriteString(theme.Hint.Render("  "+c.notice) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (c *CheckpointScreen) Title() string {
	return "Checkpoint"
}

// KeyHints implements screen.KeyHintProvider.
func (c *CheckpointScreen) KeyHints() []layout.KeyHint {
	if c.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}
