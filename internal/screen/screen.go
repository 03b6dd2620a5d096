package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscCapturer is implemented by screens that handle Esc themselves
// instead of letting the app navigate back.
type EscCapturer interface {
	CapturesEsc() bool
}

// Stamped is implemented by results of asynchronous work. The router drops
// a stamped message when the navigation epoch it carries is stale.
type Stamped interface {
	Stamp() uint64
}

// Epoch is embedded in async result messages to make them Stamped.
type Epoch uint64

func (e Epoch) Stamp() uint64 { return uint64(e) }
