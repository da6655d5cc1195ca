package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Sentinels matched with Is across the codebase.
var (
	// ErrNotFound means a documentation block lookup missed.
	ErrNotFound = crdb.New("block not found")

	// ErrNoProject means the target directory has no project file.
	ErrNoProject = crdb.New("no project file found")

	// ErrInvalidFormat means an unsupported export format was requested.
	ErrInvalidFormat = crdb.New("invalid format")

	// ErrInvalidConfig means configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// New returns an error with the supplied message and a captured stack
// trace.
func New(msg string) error { return crdb.New(msg) }

// Newf is New with formatting.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg, passing a nil err through.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...any) error {
	return crdb.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches reference.
func Is(err, reference error) bool { return crdb.Is(err, reference) }

// As finds the first error in err's chain matching target.
func As(err error, target any) bool { return crdb.As(err, target) }
