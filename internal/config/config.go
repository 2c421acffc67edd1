package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/kyaoi/courseview/internal/tree"
)

// Config holds the settings read from COURSEVIEW_* environment variables.
type Config struct {
	TreeWidth     int           `env:"COURSEVIEW_TREE_WIDTH, default=28"`
	Style         string        `env:"COURSEVIEW_STYLE, default=tokyo-night"`
	Watch         bool          `env:"COURSEVIEW_WATCH, default=true"`
	WatchDebounce time.Duration `env:"COURSEVIEW_WATCH_DEBOUNCE, default=250ms"`
	SkipDirs      []string      `env:"COURSEVIEW_SKIP_DIRS"`
	LogLevel      string        `env:"COURSEVIEW_LOG_LEVEL, default=info"`
	LogFile       string        `env:"COURSEVIEW_LOG_FILE"`
}

func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}

	if cfg.SkipDirs == nil {
		cfg.SkipDirs = append([]string(nil), tree.DefaultSkipDirs...)
	}
	if cfg.TreeWidth < 0 {
		return nil, fmt.Errorf("COURSEVIEW_TREE_WIDTH must not be negative, got %d", cfg.TreeWidth)
	}
	if cfg.WatchDebounce < 0 {
		return nil, fmt.Errorf("COURSEVIEW_WATCH_DEBOUNCE must not be negative, got %s", cfg.WatchDebounce)
	}

	return &cfg, nil
}
