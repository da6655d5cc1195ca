package config

import (
	"errors"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidLogFormat indicates an unrecognized log format name.
	ErrInvalidLogFormat = errors.New(`log_format must be "text" or "json"`)

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, &LogFormatError{
			Format: cfg.LogFormat,
			Err:    ErrInvalidLogFormat,
		})
	}

	// Validate the project directory if set
	if cfg.ProjectDir != "" {
		if err := validatePath(cfg.ProjectDir); err != nil {
			errs = append(errs, &PathError{
				Field: "project_dir",
				Path:  cfg.ProjectDir,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically
// valid. "." is fine: it means the current directory, the project_dir
// default.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	return nil
}

// LogFormatError represents an error for an unrecognized log format name.
type LogFormatError struct {
	Format string
	Err    error
}

func (e *LogFormatError) Error() string {
	return e.Err.Error() + ": got " + e.Format
}

func (e *LogFormatError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
