// Package home is the entry screen: module selection and overall progress.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/router"
	"github.com/mviorel/learninghub/internal/screen"
	"github.com/mviorel/learninghub/internal/screens/lessons"
	"github.com/mviorel/learninghub/internal/session"
	"github.com/mviorel/learninghub/internal/ui/components"
	"github.com/mviorel/learninghub/internal/ui/theme"
)

// HomeScreen lists the loaded modules and the learner's progress per module.
type HomeScreen struct {
	sess   *session.Session
	loader *content.Loader
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for the active session.
func New(sess *session.Session, loader *content.Loader) *HomeScreen {
	h := &HomeScreen{sess: sess, loader: loader}
	h.rebuild()
	return h
}

// rebuild recomputes the menu and per-module progress from the store.
func (h *HomeScreen) rebuild() {
	ctx := context.Background()
	mods := h.loader.Modules()

	items := make([]components.MenuItem, 0, len(mods)+1)
	for _, mod := range mods {
		mod := mod
		done := 0
		chain := mod.Chain()
		if acc, err := h.sess.Resolver.Resolve(ctx, chain); err == nil {
			for _, c := range acc.Completed {
				if c {
					done++
				}
			}
		}
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(mod.Title),
			Detail: fmt.Sprintf("%d/%d lessons", done, len(chain)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessons.New(h.sess, mod)}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		selected := h.menu.Selected
		h.rebuild()
		h.menu.Selected = selected
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Welcome back, "+h.sess.DisplayName()) + "\n\n")
	b.WriteString(h.menu.View())

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
