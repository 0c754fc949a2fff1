// Package cli provides the Cobra command structure for dailyreport.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/dailyreport/internal/logging"
	"github.com/yaklabco/dailyreport/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	logLevel   string
}

// NewRootCommand creates the root dailyreport command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "dailyreport",
		Short: "Render pull request activity reports as Markdown and slides",
		Long: `dailyreport turns an aggregated pull request activity report into a
Markdown summary and, optionally, a PowerPoint slide deck.

The report lists the PRs a user authored or contributed to, the PRs they
reviewed, and their PRs still waiting for review, for a single day or a
date range. Rendering is deterministic: the same report always produces
the same output.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := flags.logLevel
			if flags.debug {
				level = "debug"
				logging.SetLevel(level)
			}
			if !config.IsValidLogLevel(level) {
				return fmt.Errorf("%w: --log-level %q (want one of %v)", ErrInvalidUsage, level, config.LogLevels())
			}

			logger := logging.NewWriter(cmd.ErrOrStderr(), level)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info",
		"log level: debug, info, warn, error")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
