package app

import (
	"context"

	"github.com/kyaoi/courseview/internal/config"
	"github.com/kyaoi/courseview/internal/ingest"
	"github.com/kyaoi/courseview/internal/log"
	"github.com/kyaoi/courseview/internal/ui"
)

// LoadInitialState ingests the target once and prepares the UI state, wiring
// reloads and watches to the same source.
func LoadInitialState(ctx context.Context, target string, cfg *config.Config) (ui.State, error) {
	src, err := OpenSource(target, cfg.SkipDirs)
	if err != nil {
		return ui.State{}, err
	}

	logger := log.SubLogger(log.FromContext(ctx), "ingest")
	ingester := ingest.New(logger)
	reload := func(ctx context.Context) ingest.Outcome {
		return ingester.Ingest(ctx, src.Files())
	}

	state := ui.State{
		Outcome:            reload(ctx),
		Source:             src.Display,
		TreeVisible:        true,
		TreePreferredWidth: cfg.TreeWidth,
		Style:              cfg.Style,
		FocusTree:          true,
		Reload:             reload,
		WatchDebounce:      cfg.WatchDebounce,
		Logger:             log.SubLogger(log.FromContext(ctx), "ui"),
	}
	if cfg.Watch {
		state.WatchDirs = src.Dirs
	}
	return state, nil
}
