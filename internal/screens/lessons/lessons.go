// Package lessons renders one module's lesson chain with its gating state.
// Entering a lesson goes through the navigation enforcer, so a blocked entry
// redirects to the first unfinished lesson instead of opening the target.
package lessons

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/access"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/router"
	"github.com/mviorel/learninghub/internal/screen"
	"github.com/mviorel/learninghub/internal/screens/checkpointform"
	"github.com/mviorel/learninghub/internal/screens/quiz"
	"github.com/mviorel/learninghub/internal/session"
	"github.com/mviorel/learninghub/internal/ui/components"
	"github.com/mviorel/learninghub/internal/ui/layout"
	"github.com/mviorel/learninghub/internal/ui/theme"
)

// LessonsScreen shows the chain for one module.
type LessonsScreen struct {
	sess     *session.Session
	module   content.Module
	acc      access.Accessibility
	selected int
	notice   string
}

var _ screen.Screen = (*LessonsScreen)(nil)

// New creates the lessons screen and resolves the current accessibility.
func New(sess *session.Session, module content.Module) *LessonsScreen {
	l := &LessonsScreen{sess: sess, module: module}
	l.refresh()
	return l
}

func (l *LessonsScreen) refresh() {
	acc, err := l.sess.Resolver.Resolve(context.Background(), l.module.Chain())
	if err != nil {
		l.notice = "could not load progress: " + err.Error()
		return
	}
	l.acc = acc
}

func (l *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RefreshMsg:
		l.refresh()
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if l.selected > 0 {
				l.selected--
			}
			l.notice = ""
		case "down", "j":
			if l.selected < len(l.module.Lessons)-1 {
				l.selected++
			}
			l.notice = ""
		case "enter":
			return l, l.enter()
		}
	}
	return l, nil
}

// enter runs the direct-access guard for the selected lesson. A denial moves
// the cursor to the redirect target rather than opening anything.
func (l *LessonsScreen) enter() tea.Cmd {
	lesson := l.module.Lessons[l.selected]
	tr, err := l.sess.Enforcer.Enter(context.Background(), l.module.Chain(), lesson.ID)
	if err != nil {
		l.notice = "could not check access: " + err.Error()
		return nil
	}
	if !tr.Allowed {
		l.notice = tr.Reason
		if idx := l.module.Chain().Index(tr.Target); idx >= 0 {
			l.selected = idx
		}
		return nil
	}

	l.notice = ""
	completed, err := l.sess.Engine.Completed(context.Background(), lesson.ID)
	if err != nil {
		l.notice = "could not load progress: " + err.Error()
		return nil
	}

	if !completed && len(lesson.Checkpoint.Fields) > 0 {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: checkpointform.New(l.sess, lesson)}
		}
	}
	if len(lesson.Questions) > 0 {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz.New(l.sess, lesson)}
		}
	}
	return nil
}

func (l *LessonsScreen) View(width, height int) string {
	var b strings.Builder

	done := 0
	for _, c := range l.acc.Completed {
		if c {
			done++
		}
	}
	bar := components.NewProgressBar("Progress", done, len(l.module.Lessons), width-8)
	b.WriteString("  " + bar.View() + "\n\n")

	for i, lesson := range l.module.Lessons {
		marker, style := l.markerFor(i)
		line := fmt.Sprintf("  %s %s", marker, lesson.Title)
		if i == l.selected {
			line = theme.Selected.Render("▸" + line[1:])
		} else {
			line = style.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if l.notice != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+l.notice) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (l *LessonsScreen) markerFor(i int) (string, lipgloss.Style) {
	switch {
	case i < len(l.acc.Completed) && l.acc.Completed[i]:
		return "✓", theme.Completed
	case l.acc.Accessible(i):
		return "○", theme.Unselected
	default:
		return "🔒", theme.Locked
	}
}

func (l *LessonsScreen) Title() string {
	return l.module.Title
}

// KeyHints implements screen.KeyHintProvider.
func (l *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Esc", Description: "Back"},
	}
}
