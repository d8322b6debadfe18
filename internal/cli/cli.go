// Package cli implements the unitkit command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unitkit/unitkit/pkg/buildinfo"
	"github.com/unitkit/unitkit/pkg/config"
	"github.com/unitkit/unitkit/pkg/convert"
)

// appName is the application name used for config discovery and display.
const appName = "unitkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	engine     *convert.Engine
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
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
		Short:        "Unitkit converts and pretty-prints physical quantities",
		Long:         `Unitkit is a dimensional-analysis toolkit: it tracks SI dimension vectors through arithmetic, converts between metric prefixes and named units, and formats quantities for humans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a unitkit.toml (default: ./unitkit.toml if present)")

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.unitsCommand())
	root.AddCommand(c.prefixesCommand())
	root.AddCommand(c.replCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Engine returns the shared conversion engine, building it on first use
// with the standard tables plus any configured declarations.
func (c *CLI) Engine() (*convert.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}
	e := convert.NewEngine()
	if err := config.LoadInto(e, c.configPath); err != nil {
		return nil, err
	}
	c.engine = e
	return e, nil
}
