package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/imnaval/webnotes/internal/config"
	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/sidebar"
	"github.com/imnaval/webnotes/internal/source"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `webnotes init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the process logger; --verbose enables debug output.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newController wires the catalog and document source described by cfg.
func newController(cfg *config.Config, logger *slog.Logger, opts ...sidebar.Option) (*sidebar.Controller, error) {
	catalog, err := content.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	fetcher, err := source.New(cfg.ContentDir, cfg.BaseURL, cfg.FetchTimeout())
	if err != nil {
		return nil, fmt.Errorf("creating document source: %w", err)
	}
	opts = append([]sidebar.Option{
		sidebar.WithLogger(logger),
		sidebar.WithMaxConcurrency(cfg.MaxConcurrency),
	}, opts...)
	return sidebar.NewController(catalog, fetcher, opts...), nil
}

// parseLangFlag accepts only the known language names; the site falls back to
// the default language but the CLI rejects typos.
func parseLangFlag(s string) (lang.Language, error) {
	switch l := lang.Language(strings.ToLower(strings.TrimSpace(s))); l {
	case lang.English, lang.Hinglish:
		return l, nil
	default:
		return "", fmt.Errorf("unknown language %q (want %s or %s)", s, lang.English, lang.Hinglish)
	}
}
