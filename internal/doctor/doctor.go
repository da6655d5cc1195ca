package doctor

import (
	"log/slog"
	"time"
)

// Check is a single diagnostic probe over the project or environment.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check (e.g., "project", "config").
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Runner executes checks in registration order and tallies a Report.
type Runner struct {
	logger *slog.Logger
	checks []Check
}

// NewRunner creates a runner with the default logger.
func NewRunner() *Runner {
	return NewRunnerWithLogger(slog.Default())
}

// NewRunnerWithLogger creates a runner with a custom logger.
func NewRunnerWithLogger(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every registered check and returns the tallied report.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		r.logger.Debug("check complete",
			"name", check.Name(),
			"status", result.Status.String(),
		)
		report.record(result)
	}

	return report
}

// Report aggregates check results with timing and per-severity counts.
type Report struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

func (r *Report) record(result *CheckResult) {
	r.Results = append(r.Results, result)

	switch result.Status {
	case SeverityPass:
		r.Summary.Passed++
	case SeverityInfo:
		r.Summary.Info++
	case SeverityWarning:
		r.Summary.Warnings++
	case SeverityError:
		r.Summary.Errors++
	}
}

// HasErrors reports whether any check failed outright.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check raised a warning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}
