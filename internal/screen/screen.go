// Package screen defines the contract between the router and the screens it
// stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mviorel/learninghub/internal/ui/layout"
)

// Screen is one full-content view. Screens derive everything they show from
// the store on demand; none of them cache gating state across a RefreshMsg.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// RefreshMsg asks the active screen to re-derive its state from the store.
// The router sends it to the screen a pop reveals, because the popped screen
// may have recorded completions or attempts while it was up.
type RefreshMsg struct{}
