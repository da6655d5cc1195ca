package validator

import (
	"fmt"
	"strings"
)

// Issue is one problem found during validation.
type Issue struct {
	// Severity says how bad it is.
	Severity Severity `json:"severity"`
	// Path is the file the issue belongs to, when one is known.
	Path string `json:"path,omitempty"`
	// Message describes the problem.
	Message string `json:"message"`
	// Value is the offending value, when one exists.
	Value any `json:"value,omitempty"`
}

// Error renders the issue as "severity: path: message (got value)",
// dropping the optional parts when absent.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Path != "" {
		sb.WriteString(i.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result accumulates issues in the order they were found. The zero
// value is ready to use, and a nil *Result reads as empty.
type Result struct {
	Issues []Issue `json:"issues"`
}

// AddError records a blocking issue against path.
func (r *Result) AddError(path, message string, value any) {
	r.add(SeverityError, path, message, value)
}

// AddWarning records a non-blocking issue against path.
func (r *Result) AddWarning(path, message string, value any) {
	r.add(SeverityWarning, path, message, value)
}

// AddInfo records an advisory note against path.
func (r *Result) AddInfo(path, message string, value any) {
	r.add(SeverityInfo, path, message, value)
}

func (r *Result) add(sev Severity, path, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Path:     path,
		Message:  message,
		Value:    value,
	})
}

// HasErrors reports whether any recorded issue is an error.
func (r *Result) HasErrors() bool { return r.has(SeverityError) }

// HasWarnings reports whether any recorded issue is a warning.
func (r *Result) HasWarnings() bool { return r.has(SeverityWarning) }

func (r *Result) has(sev Severity) bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == sev {
			return true
		}
	}
	return false
}

// Errors returns the recorded errors in order.
func (r *Result) Errors() []Issue { return r.filter(SeverityError) }

// Warnings returns the recorded warnings in order.
func (r *Result) Warnings() []Issue { return r.filter(SeverityWarning) }

func (r *Result) filter(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}
