package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/dailyreport/internal/logging"
	"github.com/yaklabco/dailyreport/internal/ui/pretty"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

func newInspectCommand(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the outline of a slide deck or the contents of a report",
		Long: `Inspect a generated .pptx deck or an input report.

For a deck, prints every slide with its layout and body paragraphs. For a
report file, prints a one-line summary, the PR counts per repository in
slide order, and any problems with the report's contents.

Examples:
  dailyreport inspect daily-report-2026-02-10.pptx
  dailyreport inspect report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, global, args[0])
		},
	}

	return cmd
}

func runInspect(cmd *cobra.Command, global *globalFlags, path string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, out))

	if strings.EqualFold(filepath.Ext(path), ".pptx") {
		deck, err := slides.Read(ctx, path)
		if err != nil {
			return err
		}
		logger.Debug("read slide deck", logging.FieldPath, path, logging.FieldSlides, len(deck.Slides))

		outline := pretty.NewOutlineFormatter(styles, pretty.TerminalWidth(out))
		fmt.Fprint(out, outline.FormatDeck(deck, path))
		return nil
	}

	data, err := report.Load(ctx, path)
	if err != nil {
		if isIOError(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	groups := slides.GroupByRepo(data)
	logger.Debug("loaded report", logging.FieldPath, path, logging.FieldRepos, len(groups))

	fmt.Fprint(out, styles.FormatReportHeadline(data))
	fmt.Fprint(out, styles.FormatRepoTable(groups))
	fmt.Fprint(out, styles.FormatProblems(report.Validate(data).Messages()))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
