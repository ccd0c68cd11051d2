package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dexview/internal/state"
)

// Displayer is the presenter surface the UI needs.
type Displayer interface {
	Display(ctx context.Context, name string)
	Snapshot() state.Snapshot
}

// Binding connects the selection control to the presenter. Every change is
// forwarded verbatim as its own command, so a new selection can start while
// an earlier lookup is still pending.
type Binding struct {
	ctx     context.Context
	target  Displayer
	current string
}

// NewBinding returns a Binding that forwards to target.
func NewBinding(ctx context.Context, target Displayer) *Binding {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Binding{ctx: ctx, target: target}
}

// Start establishes the empty initial state.
func (b *Binding) Start() tea.Cmd {
	return b.Change("")
}

// Change records value as the current selection and returns the command
// that displays it.
func (b *Binding) Change(value string) tea.Cmd {
	b.current = value
	ctx, target := b.ctx, b.target
	return func() tea.Msg {
		target.Display(ctx, value)
		return settledMsg{species: value}
	}
}

// Current returns the most recently forwarded selection.
func (b *Binding) Current() string {
	return b.current
}

// settledMsg reports that a forwarded selection has finished displaying.
type settledMsg struct {
	species string
}
