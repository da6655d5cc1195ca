// Package doctor runs health checks over a ddx project and its
// environment.
package doctor

import (
	"encoding/json"

	"github.com/thoreinstein/ddx/internal/errors"
)

// Severity ranks a check outcome.
type Severity int

const (
	// SeverityPass indicates the check passed without issues.
	SeverityPass Severity = iota
	// SeverityInfo indicates informational output, not a problem.
	SeverityInfo
	// SeverityWarning indicates a degraded but operable state.
	SeverityWarning
	// SeverityError indicates a problem that prevents proper operation.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its lowercase name, matching the
// validator's report vocabulary.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its lowercase name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "pass":
		*s = SeverityPass
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return errors.Newf("unknown severity %q", name)
	}
	return nil
}

// CheckResult is the outcome of a single diagnostic check.
type CheckResult struct {
	// Name is the identifier for this check.
	Name string `json:"name"`

	// Category groups related checks (e.g., "project", "config", "sources").
	Category string `json:"category"`

	// Status indicates the severity of the check result.
	Status Severity `json:"status"`

	// Message describes the check outcome.
	Message string `json:"message"`

	// Details carries check-specific context.
	Details map[string]any `json:"details,omitempty"`

	// Fixable indicates whether ddx can repair this issue itself.
	Fixable bool `json:"fixable,omitempty"`

	// FixHint tells the user how to resolve the issue.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts check results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}
