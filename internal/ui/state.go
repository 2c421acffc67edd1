package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/kyaoi/courseview/internal/ingest"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Outcome            ingest.Outcome
	Source             string
	TreeVisible        bool
	TreePreferredWidth int
	Style              string
	FocusTree          bool

	// Reload runs a fresh ingestion batch. Nil disables reloading.
	Reload func(context.Context) ingest.Outcome
	// WatchDirs lists the directories to watch. Nil disables watching.
	WatchDirs     func() ([]string, error)
	WatchDebounce time.Duration

	Logger *slog.Logger
}
