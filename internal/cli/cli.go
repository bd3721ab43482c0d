// Package cli implements the pubplot command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pubplot/pkg/buildinfo"
	"github.com/matzehuels/pubplot/pkg/destinations"
)

// appName is the application name used for display.
const appName = "pubplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pubplot computes publication-ready plot rendering parameters",
		Long: `Pubplot computes font, size, and DPI rendering parameters so that vector
figures import at the correct physical size into graphics editors. Figma
reads points as CSS pixels and needs a 300/96 correction; everything else
(Adobe, Affinity, Inkscape) imports unscaled.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if c.configPath != "" {
				if err := destinations.LoadConfig(c.configPath); err != nil {
					return err
				}
				c.Logger.Debugf("Loaded destinations from %s", c.configPath)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file declaring extra destinations")

	// Register all subcommands
	root.AddCommand(c.paramsCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.destinationsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
