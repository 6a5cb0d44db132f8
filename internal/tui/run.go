package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shopping/internal/store"
)

// Run starts the interactive list on the alternate screen and blocks until
// the user quits. Nothing is saved on exit.
func Run(s *store.Store, opt Options) error {
	opt.Logger.Info().Int("items", s.Len()).Msg("starting shopping list")
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	opt.Logger.Info().Msg("shopping list closed")
	return nil
}
