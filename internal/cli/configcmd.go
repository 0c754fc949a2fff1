package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/dailyreport/internal/configloader"
	"github.com/yaklabco/dailyreport/pkg/config"
)

func newConfigCommand(global *globalFlags) *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration render would use from the current directory,
after merging the user config, the project config, --config, and
DAILYREPORT_* environment variables. The header lists the files that were
loaded.

Examples:
  dailyreport config                  Show the merged configuration
  dailyreport config --env            List supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showEnv {
				fmt.Fprint(cmd.OutOrStdout(), formatEnvVars())
				return nil
			}
			return runConfig(cmd, global)
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command, global *globalFlags) error {
	cliCfg := &config.Config{}
	applyGlobalFlags(cmd, global, cliCfg)

	loaded, err := loadConfig(cmd.Context(), global, cliCfg)
	if err != nil {
		return err
	}

	header := "# Effective dailyreport configuration\n# Sources: defaults"
	for _, path := range loaded.LoadedFrom {
		header += "\n#   " + path
	}

	content, err := loaded.Config.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}

func formatEnvVars() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s  %s\n", rpad(name, width), vars[name])
	}
	return b.String()
}
