package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/courseview/internal/config"
	"github.com/kyaoi/courseview/internal/ui"
)

// Run executes the Bubble Tea program for the course viewer.
func Run(ctx context.Context, target string, cfg *config.Config) error {
	state, err := LoadInitialState(ctx, target, cfg)
	if err != nil {
		return err
	}
	return runProgram(ctx, state)
}

func runProgram(ctx context.Context, state ui.State) error {
	program := tea.NewProgram(ui.NewModel(state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
