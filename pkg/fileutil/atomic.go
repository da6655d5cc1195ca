// Package fileutil provides shared file helpers: bounded reads and
// atomic, format-aware writes.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ddx/internal/errors"
)

// AtomicWriteFile writes data to path through a temp file in the same
// directory followed by a rename, so an interrupted write never leaves
// a half-written file at path. perm is applied to the final file. The
// parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ddx-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	renamed := false
	defer func() {
		tmp.Close()
		if !renamed {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true
	return nil
}

// AtomicWriteJSON writes v to path as two-space-indented JSON.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return writeRendered(path, data)
}

// AtomicWriteYAML writes v to path as YAML.
func AtomicWriteYAML(path string, v any) (err error) {
	// yaml.Marshal panics on values it cannot encode.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return writeRendered(path, data)
}

// AtomicWriteTOML writes v to path as TOML. TOML wants a table at the
// top level, so bare scalars and slices fail to marshal.
func AtomicWriteTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling TOML")
	}
	return writeRendered(path, data)
}

// writeRendered terminates data with the newline text files end with
// and writes it atomically with 0644 permissions.
func writeRendered(path string, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return AtomicWriteFile(path, data, 0o644)
}
