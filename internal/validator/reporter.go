package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format names a report output format.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter writes validation results to a stream.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out in the given format.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report renders the result. A nil result writes nothing.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warns := result.Warnings()

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	var counts []string
	if len(errs) > 0 {
		counts = append(counts, color.RedString("%d error(s)", len(errs)))
	}
	if len(warns) > 0 {
		counts = append(counts, color.YellowString("%d warning(s)", len(warns)))
	}
	fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(counts, ", "))

	r.printSection("Errors:", errs, color.FgRed)
	r.printSection("Warnings:", warns, color.FgYellow)

	return nil
}

func (r *Reporter) printSection(heading string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintln(r.out, heading)
	for _, i := range issues {
		fmt.Fprintln(r.out, formatIssue(i, c))
	}
	fmt.Fprintln(r.out)
}

// formatIssue renders one bullet:  • path: message [value]
func formatIssue(i Issue, c color.Attribute) string {
	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Path != "" {
		sb.WriteString(color.New(c).Sprint(i.Path))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if i.Value != nil {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", clipValue(i.Value)))
	}

	return sb.String()
}

// clipValue renders an offending value, truncated so one oversized
// blob cannot swallow the report.
func clipValue(v any) string {
	s := fmt.Sprint(v)
	if len(s) > 50 {
		return s[:47] + "..."
	}
	return s
}
