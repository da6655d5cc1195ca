// Package commands implements the CLI commands for ddx.
package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/config"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// projectDir holds the value of the --project-dir flag.
var projectDir string

// warnError holds the value of the --warn-error flag.
var warnError bool

// noProgress holds the value of the --no-progress flag.
var noProgress bool

// cfg is the loaded configuration, populated by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.LogFormatText,
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (default: search ., then the user config dir)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", ".",
		"directory containing ddx_project.yml")
	rootCmd.PersistentFlags().BoolVar(&warnError, "warn-error", false,
		"treat tolerated warnings (e.g. malformed frontmatter) as errors")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false,
		"disable progress bars")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "ddx",
	Short: "Documentation and model scanner for data projects",
	Long: `ddx scans a data project's sources, collects the {% docs %}
documentation blocks defined in markdown and SQL files, splits YAML
frontmatter configs off model files, and builds the block registry
that downstream tooling consumes.

A project is a directory with a ddx_project.yml file naming the
project and the directories to search. Block names are namespaced by
project name, and duplicate names fail the parse.

Use --warn-error to turn tolerated warnings, such as malformed model
frontmatter, into hard errors.`,
	Example: `  # Parse the current project and report issues
  ddx parse

  # Print one documentation block
  ddx docs show orders

  # Export the registry as JSON
  ddx export --format json --out target/registry.json

  See Also: ddx parse, ddx debug, ddx export`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags.SetInvocationID(uuid.NewString())
		if err := applyConfig(cmd); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// applyConfig merges the loaded configuration with command-line flags,
// validates the result, and publishes the effective settings. Flags
// that were set explicitly win over the config file.
func applyConfig(cmd *cobra.Command) error {
	// Help and version never need a valid config.
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	merged := *cfg
	fl := cmd.Root().PersistentFlags()
	if fl.Changed("log-format") {
		merged.LogFormat = logFormat
	}
	if fl.Changed("project-dir") {
		merged.ProjectDir = projectDir
	}
	if fl.Changed("warn-error") {
		merged.WarnError = warnError
	}
	if fl.Changed("no-progress") {
		merged.NoProgress = noProgress
	}

	if errs := config.Validate(&merged); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return errors.NewConfigError(errors.Newf("invalid configuration: %s", strings.Join(msgs, "; ")))
	}

	logFormat = merged.LogFormat
	flags.SetProjectDir(merged.ProjectDir)
	flags.SetWarnError(merged.WarnError)
	flags.SetNoProgress(merged.NoProgress || quiet)
	flags.SetQuiet(quiet)

	return nil
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DDX_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format regardless of --log-format.
		handler = logging.Tee(handler, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler).With("invocation_id", flags.GetInvocationID())
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
