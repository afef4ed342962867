// Package tui hosts the list engine inside a Bubble Tea program: it owns the
// terminal, translates key/mouse events into engine calls, rasterizes the
// engine's paint pass onto a cell surface, and persists the view state.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"listkit/internal/store"
)

// Run loads the dataset and runs the interactive browser until quit.
func Run(ctx context.Context, st *store.Store, log zerolog.Logger) error {
	rows, err := st.Rows(ctx)
	if err != nil {
		return fmt.Errorf("load rows: %w", err)
	}
	state, err := st.LoadViewState(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load view state, using defaults")
		state = store.DefaultViewState()
	}

	m := newAppModel(st, rows, state, log)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
