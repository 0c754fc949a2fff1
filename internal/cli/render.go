package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/dailyreport/internal/configloader"
	"github.com/yaklabco/dailyreport/internal/logging"
	"github.com/yaklabco/dailyreport/internal/ui/pretty"
	"github.com/yaklabco/dailyreport/pkg/config"
	"github.com/yaklabco/dailyreport/pkg/fsutil"
	"github.com/yaklabco/dailyreport/pkg/report"
	"github.com/yaklabco/dailyreport/pkg/reporter"
	"github.com/yaklabco/dailyreport/pkg/slides"
)

// errSlidesOutputWithoutSlides is the usage error for --slides-output alone.
var errSlidesOutputWithoutSlides = fmt.Errorf("%w: --slides-output requires --slides", ErrInvalidUsage)

type renderFlags struct {
	markdown bool
	slides   bool
	backup   bool
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	cfg := &config.Config{}
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render --input report.json",
		Short: "Render a report as Markdown, HTML or slides",
		Long:  renderLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, global, cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&cfg.Input, "input", "i", "", "report file to render (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "print Markdown even when other outputs are enabled")
	cmd.Flags().StringVar(&cfg.MarkdownOutput, "markdown-output", "", "write Markdown to this file instead of stdout")
	cmd.Flags().StringVar(&cfg.HTMLOutput, "html-output", "", "also export the report as HTML to this file")
	cmd.Flags().BoolVar(&flags.slides, "slides", false, "generate a .pptx slide deck")
	cmd.Flags().StringVar(&cfg.SlidesOutput, "slides-output", "",
		"slide deck path (default daily-report-<date>.pptx)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep replaced output files as <file>.bak")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "fail when the report breaks the input contract")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	return cmd
}

const renderLongDescription = `Render an aggregated activity report.

Markdown is printed to stdout unless another output is chosen. With --slides
a PowerPoint deck is written as well: one title slide, one slide per
repository in alphabetical order, and a closing summary slide. When several
outputs are requested they are rendered concurrently.

Examples:
  dailyreport render -i report.json                      # Markdown to stdout
  dailyreport render -i report.json --slides             # daily-report-<date>.pptx
  dailyreport render -i report.yaml --markdown --slides --slides-output deck.pptx
  dailyreport render -i report.json --html-output report.html --backup`

// job is one output of a render run.
type job struct {
	opts reporter.Options
	out  pretty.Output
}

func runRender(cmd *cobra.Command, global *globalFlags, cliCfg *config.Config, flags *renderFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Tri-state flags only override configuration when given.
	if cmd.Flags().Changed("markdown") {
		cliCfg.Markdown = config.Bool(flags.markdown)
	}
	if cmd.Flags().Changed("slides") {
		cliCfg.Slides = config.Bool(flags.slides)
	}
	if cmd.Flags().Changed("backup") {
		cliCfg.Backups = config.Bool(flags.backup)
	}
	applyGlobalFlags(cmd, global, cliCfg)

	loaded, err := loadConfig(ctx, global, cliCfg)
	if err != nil {
		if errors.Is(err, configloader.ErrSlidesOutputWithoutSlides) && cmd.Flags().Changed("slides-output") {
			return errSlidesOutputWithoutSlides
		}
		return err
	}
	cfg := loaded.Config
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	data, err := report.Load(ctx, cfg.Input)
	if err != nil {
		if isIOError(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}
	logger.Debug("loaded report",
		logging.FieldInput, cfg.Input,
		logging.FieldUser, data.User,
		logging.FieldPeriod, data.Period(report.RangeSeparator),
		logging.FieldPRs, len(data.AuthoredPRs)+len(data.ReviewedPRs)+len(data.WaitingPRs),
	)

	if err := checkReport(logger, data, cfg.Strict); err != nil {
		return err
	}

	jobs := planJobs(cmd, cfg, data)
	for _, j := range jobs {
		if j.opts.OutputPath == "" {
			continue
		}
		if err := fsutil.CheckOutputPath(j.opts.OutputPath); err != nil {
			return fmt.Errorf("%s output: %w", j.opts.Format, err)
		}
	}

	runErr := runJobs(ctx, jobs, data)

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))
	outputs := make([]pretty.Output, 0, len(jobs))
	for _, j := range jobs {
		if j.out.Path != "" || j.out.Err != nil {
			outputs = append(outputs, j.out)
		}
	}
	if len(outputs) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatOutputs(outputs))
	}

	return runErr
}

// applyGlobalFlags copies explicitly set persistent flags into cliCfg.
func applyGlobalFlags(cmd *cobra.Command, global *globalFlags, cliCfg *config.Config) {
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(global.color)
	}
	if cmd.Flags().Changed("log-level") {
		cliCfg.LogLevel = global.logLevel
	}
	if global.debug {
		cliCfg.LogLevel = "debug"
	}
}

// loadConfig resolves the configuration with cliCfg on top of every other source.
func loadConfig(ctx context.Context, global *globalFlags, cliCfg *config.Config) (*configloader.LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	// Input and Strict never come from files.
	result.Config.Input = cliCfg.Input
	result.Config.Strict = cliCfg.Strict

	return result, nil
}

// checkReport logs every contract violation in data. In strict mode any
// violation is an error.
func checkReport(logger *log.Logger, data *report.Data, strict bool) error {
	validation := report.Validate(data)
	if validation.Valid() {
		return nil
	}

	for _, problem := range validation.Messages() {
		logger.Warn("report problem", logging.FieldError, problem)
	}

	if strict {
		return fmt.Errorf("%w: %d %s", ErrInvalidReport, len(validation.Errors),
			plural(len(validation.Errors), "problem", "problems"))
	}
	return nil
}

// planJobs decides which outputs to produce. Markdown goes to stdout when
// nothing else was requested.
func planJobs(cmd *cobra.Command, cfg *config.Config, data *report.Data) []*job {
	var jobs []*job
	add := func(format reporter.Format, path string) {
		jobs = append(jobs, &job{
			opts: reporter.Options{
				Writer:     cmd.OutOrStdout(),
				OutputPath: path,
				Format:     format,
				Backup:     cfg.BackupsEnabled(),
			},
			out: pretty.Output{Format: format.String(), Path: path},
		})
	}

	slidesEnabled := cfg.SlidesEnabled()
	if cfg.MarkdownEnabled() || cfg.MarkdownOutput != "" || (!slidesEnabled && cfg.HTMLOutput == "") {
		add(reporter.FormatMarkdown, cfg.MarkdownOutput)
	}
	if cfg.HTMLOutput != "" {
		add(reporter.FormatHTML, cfg.HTMLOutput)
	}
	if slidesEnabled {
		path := cfg.SlidesOutput
		if path == "" {
			path = slides.DefaultFilename(data)
		}
		add(reporter.FormatSlides, path)
	}

	return jobs
}

// runJobs renders every job concurrently over the same read-only report.
// Outputs are independent, so one failure does not cancel the others. Each
// job records its own error; the first one is returned.
func runJobs(ctx context.Context, jobs []*job, data *report.Data) error {
	var g errgroup.Group
	for _, j := range jobs {
		g.Go(func() error {
			rep, err := reporter.New(j.opts)
			if err == nil {
				err = rep.Report(ctx, data)
			}
			if err != nil {
				j.out.Err = err
				return fmt.Errorf("%s output: %w", j.opts.Format, err)
			}
			return nil
		})
	}
	return g.Wait()
}
