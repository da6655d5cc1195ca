package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ddx/cmd/ddx/commands/flags"
	"github.com/thoreinstein/ddx/internal/doctor"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/logging"
)

var (
	debugJSON    bool
	debugQuiet   bool
	debugVerbose bool
	debugFix     bool
)

func init() {
	debugCmd.Flags().BoolVar(&debugJSON, "json", false,
		"output results as JSON")
	debugCmd.Flags().BoolVar(&debugQuiet, "quiet", false,
		"suppress output, exit code only")
	debugCmd.Flags().BoolVar(&debugVerbose, "verbose", false,
		"show detailed check-by-check output")
	debugCmd.Flags().BoolVar(&debugFix, "fix", false,
		"attempt to fix fixable problems (e.g. create missing search directories)")
	rootCmd.AddCommand(debugCmd)
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Diagnose project and environment issues",
	Long: `Run diagnostic checks on the project and the ddx environment.

Validates the project file, checks that search directories exist,
scans sources for parse problems, and verifies configuration and
application directories.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDebugFlags,
	RunE:    runDebug,
}

// validateDebugFlags ensures output flags are mutually exclusive.
func validateDebugFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if debugJSON {
		count++
	}
	if debugQuiet {
		count++
	}
	if debugVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

func runDebug(cmd *cobra.Command, _ []string) error {
	dir := flags.GetProjectDir()
	checks := []doctor.Check{
		doctor.NewProjectFileCheck(dir),
		doctor.NewSearchPathCheck(dir),
		doctor.NewSourceScanCheck(dir),
		doctor.NewConfigCheck(),
		doctor.NewDataDirCheck(),
		doctor.NewEnvCheck(),
	}

	runner := doctor.NewRunnerWithLogger(logging.FromContext(cmd.Context()))
	for _, c := range checks {
		runner.AddCheck(c)
	}

	report := runner.Run()

	if debugFix {
		if applyFixes(cmd.OutOrStdout(), checks) {
			// Re-run so the report reflects the repaired state.
			report = runner.Run()
		}
	}

	if err := outputDebugReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	// Exit code mirrors the worst severity found.
	if report.HasErrors() {
		return errors.NewExitError(errDebugErrors, 2)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDebugWarnings, 1)
	}
	return nil
}

// applyFixes runs every check's fixer and reports what happened.
// Returns true when at least one fix was applied.
func applyFixes(w io.Writer, checks []doctor.Check) bool {
	fixedAny := false
	for _, c := range checks {
		fixer, ok := c.(doctor.Fixer)
		if !ok || !fixer.CanFix() {
			continue
		}
		for _, res := range fixer.Fix() {
			if res.Fixed {
				fixedAny = true
			}
			if debugQuiet {
				continue
			}
			marker := "✓"
			if !res.Fixed {
				marker = "✗"
			}
			fmt.Fprintf(w, "%s fix: %s (%s)\n", marker, res.Description, res.Path)
		}
	}
	return fixedAny
}

func outputDebugReport(w io.Writer, report *doctor.Report) error {
	if debugQuiet {
		return nil
	}

	if debugJSON {
		return outputDebugJSON(w, report)
	}

	return outputDebugText(w, report)
}

func outputDebugJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encoding JSON")
}

func outputDebugText(w io.Writer, report *doctor.Report) error {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := debugVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		fmt.Fprintf(w, "%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	// Print summary
	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// errDebugWarnings is a sentinel error for exit code 1.
var errDebugWarnings = errors.New("checks reported warnings")

// errDebugErrors is a sentinel error for exit code 2.
var errDebugErrors = errors.New("checks reported errors")
