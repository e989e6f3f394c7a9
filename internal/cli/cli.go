// Package cli implements the trending command-line interface.
//
// The root command fetches the GitHub Trending page for one language and
// prints the ranked repositories. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Usage
//
//	trending <language> [--json] [--verbose] [--config path]
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Loggers are passed through context.Context.
//
// # Failures
//
// A missing argument, an invalid language or a broken config file fail the
// command (exit status 1). An unknown language, a network failure or an
// empty page are reported as messages and the command succeeds.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/trending/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for the command and display.
	appName = "trending"

	// noDescription replaces an empty repository description.
	noDescription = "No description"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file. An explicit path must exist; the
// default location is optional.
func (c *CLI) loadConfig(path string) (*config.Config, error) {
	if path != "" {
		c.Logger.Debug("loading config", "path", path)
		return config.LoadFile(path)
	}

	path, err := config.DefaultPath()
	if err != nil {
		c.Logger.Debug("no config location, using defaults", "err", err)
		return config.Default(), nil
	}
	c.Logger.Debug("loading config", "path", path)
	return config.Load(path)
}
