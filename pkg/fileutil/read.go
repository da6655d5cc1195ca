package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/ddx/internal/errors"
)

// MaxFileSize caps how much of a source file ddx reads (16MB). Large
// enough for any sane generated SQL, small enough that a stray huge
// file cannot exhaust memory.
const MaxFileSize = 16 * 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file, refusing anything over MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Stat fails fast on oversized files; the limited read re-checks
	// because the size can change between stat and read.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// ReadFileString reads a file's raw contents as a string.
// No line-ending normalization or whitespace stripping is applied;
// parsers downstream depend on byte-exact contents.
func ReadFileString(path string) (string, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
