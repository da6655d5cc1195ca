package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/cli"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/logging"
	"github.com/thoreinstein/ddx/internal/project"
	"github.com/thoreinstein/ddx/internal/validator"
	"github.com/thoreinstein/ddx/internal/watch"
)

// parseWatch holds the value of the --watch flag.
var parseWatch bool

func init() {
	parseCmd.Flags().BoolVar(&parseWatch, "watch", false,
		"re-parse whenever a source file changes")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Scan the project and build its documentation registry",
	Long: `Scan the project's doc and model directories, extract every
{% docs %} block, split frontmatter configs off model files, and
report any issues found.

Malformed model frontmatter is reported as a warning and the config is
dropped; with --warn-error it fails the parse instead. Template syntax
errors and duplicate block names always fail the parse.

Examples:
  # Parse the project in the current directory
  ddx parse

  # Parse a project elsewhere, treating warnings as errors
  ddx parse --project-dir ~/src/analytics --warn-error

  # Keep re-parsing as files change
  ddx parse --watch`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	if !parseWatch {
		return scanOnce(cmd, logger)
	}

	// In watch mode scan failures are reported and watched past, not
	// fatal: the next save gets another chance.
	if err := scanOnce(cmd, logger); err != nil {
		logger.Error("parse failed", "error", err)
	}

	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(logger, proj.Dir, proj.SearchPaths(), func() {
		if err := scanOnce(cmd, logger); err != nil {
			logger.Error("parse failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if !flags.GetQuiet() {
		fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes. Press Ctrl+C to stop.")
	}
	return w.Run(ctx)
}

// scanOnce runs a full parse: project load, registry build, model
// load, issue report, summary.
func scanOnce(cmd *cobra.Command, logger *slog.Logger) error {
	start := time.Now()

	proj, err := project.Load(flags.GetProjectDir())
	if err != nil {
		if errors.Is(err, errors.ErrNoProject) {
			return errors.NewUserError(err, "Run ddx inside a project directory or pass --project-dir")
		}
		return err
	}

	pipe := cli.NewPipeline(logger, flags.GetWarnError())

	files, err := pipe.LoadSources(proj)
	if err != nil {
		return reportAndReturn(cmd, pipe, err)
	}

	progress := cli.NewProgress(!flags.GetNoProgress())
	progress.StartScan(len(files))
	pipe.OnFile(func(string) { progress.FileDone() })

	registry, err := pipe.BuildRegistry(files)
	progress.Finish()
	if err != nil {
		return reportAndReturn(cmd, pipe, err)
	}

	mods, err := pipe.LoadModels(proj)
	if err != nil {
		return reportAndReturn(cmd, pipe, err)
	}

	if err := reportIssues(cmd, pipe); err != nil {
		return err
	}

	if !flags.GetQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Parsed %s: %d source files, %d blocks, %d models in %s\n",
			proj.Name, len(files), len(registry), len(mods),
			time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(cmd.OutOrStdout(), "  invocation: %s\n", flags.GetInvocationID())
	}

	logger.Info("parse complete",
		"project", proj.Name,
		"files", len(files),
		"blocks", len(registry),
		"models", len(mods))

	return nil
}

// reportAndReturn prints the issues collected so far and passes the
// scan failure through.
func reportAndReturn(cmd *cobra.Command, pipe *cli.Pipeline, err error) error {
	_ = reportIssues(cmd, pipe)
	return err
}

func reportIssues(cmd *cobra.Command, pipe *cli.Pipeline) error {
	if flags.GetQuiet() {
		return nil
	}
	rep := validator.NewReporter(cmd.OutOrStdout(), validator.FormatText)
	return rep.Report(pipe.Result)
}
