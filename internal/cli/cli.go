// Package cli implements the graphwalk command-line interface.
//
// The CLI wraps one [session.Session] per invocation. Commands apply edge
// edits given as flags, then either print a result (traverse, matrix),
// write a diagram (render) or hand the session to an interactive bubbletea
// view (tui).
//
// # Commands
//
//   - traverse: print the BFS or DFS visit order, optionally animated
//   - matrix: print the adjacency matrix, optionally highlighted
//   - render: write the node-link diagram as DOT, SVG, PDF, PNG or JSON
//   - tui: interactive view with live animation and editing
//   - config: print the active settings as TOML
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context and also receives session events via
// observability hooks.
//
// # Configuration
//
// Settings are read from --config or $XDG_CONFIG_HOME/graphwalk/config.toml.
// See [config.Config].
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/buildinfo"
	"github.com/matzehuels/graphwalk/pkg/config"
	"github.com/matzehuels/graphwalk/pkg/observability"
	"github.com/matzehuels/graphwalk/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

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
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphwalk animates BFS and DFS on a small weighted graph",
		Long:         `Graphwalk is a CLI tool for exploring breadth-first and depth-first search. It keeps a small weighted undirected graph, lets you edit its edges, and reveals the visit order one node at a time in the terminal or as a diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			observability.SetGraphHooks(newLogHooks(c.Logger))
			observability.SetAnimationHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphwalk/config.toml)")

	// Register all subcommands
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Session Factory
// =============================================================================

// loadConfig reads the config file and applies its log level.
// An explicit --config path must exist; the default path is optional.
func (c *CLI) loadConfig() error {
	path := c.configPath
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return nil
		}
		path = p
	} else if err := requireFile(path); err != nil {
		return err
	}

	cfg, undecoded, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, key := range undecoded {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}

	c.Config = cfg
	if level, err := cfg.LogLevel(); err == nil {
		c.SetLogLevel(level)
	}
	c.Logger.Debug("config loaded", "file", path, "interval", cfg.Animation.Interval)
	return nil
}

// newSession creates a session using the configured canvas. A positive
// interval overrides the configured tick interval.
func (c *CLI) newSession(interval time.Duration) *session.Session {
	if interval <= 0 {
		interval = c.Config.Animation.Interval
	}
	sess := session.New(
		session.WithCanvas(c.Config.Canvas),
		session.WithInterval(interval),
	)
	c.Logger.Debug("session created", "id", shortID(sess.ID()))
	return sess
}

// shortID abbreviates a session ID for log output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// requireFile fails unless path names an existing regular file.
func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config file %s is a directory", path)
	}
	return nil
}
