package tui

import (
	"github.com/pablasso/fieldplan/internal/fetch"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/tui/styles"
)

// Options configures TUI startup behavior.
type Options struct {
	Theme   styles.Theme
	Fetcher fetch.Fetcher
	// Logger receives fetch diagnostics. It must not write to the terminal
	// the TUI draws on; nil discards.
	Logger logger.Logger
	// Demo marks the status bar when Fetcher serves the embedded fixture.
	Demo bool
}
