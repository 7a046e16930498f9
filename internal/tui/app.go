package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
)

// Run starts the interactive TUI with the given scanner registry.
func Run(reg *analyzer.Registry, opts analyzer.Options, params metrics.Params) error {
	m := NewModel(reg, opts, params)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
