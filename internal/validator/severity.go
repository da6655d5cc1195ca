package validator

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Severity grades a validation issue.
type Severity int

const (
	// SeverityError marks an issue that fails the run.
	SeverityError Severity = iota
	// SeverityWarning marks an issue worth fixing that does not fail
	// the run on its own.
	SeverityWarning
	// SeverityInfo marks a note with no effect on the outcome.
	SeverityInfo
)

// String returns the lowercase name: "error", "warning", or "info".
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its lowercase name, rejecting
// anything else.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", name)
	}
	return nil
}
