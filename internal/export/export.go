// Package export serializes the documentation registry to JSON, YAML,
// or TOML.
package export

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/pkg/fileutil"
)

// Format is a supported export encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat recognizes "json", "yaml" (or "yml"), and "toml",
// case-insensitively. Anything else wraps ErrInvalidFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidFormat, "%q", s)
	}
}

// Marshal encodes the registry in the given format. Keys come out
// sorted in every encoding, so exports of the same registry are
// byte-identical.
func Marshal(registry docs.Registry, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(registry, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(registry)
	case FormatTOML:
		data, err = toml.Marshal(registry)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidFormat, "%d", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling registry as %s", format)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// Write marshals the registry and streams it to w.
func Write(w io.Writer, registry docs.Registry, format Format) error {
	data, err := Marshal(registry, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing export")
}

// WriteFile marshals the registry and writes it to path atomically.
func WriteFile(path string, registry docs.Registry, format Format) error {
	switch format {
	case FormatJSON:
		return fileutil.AtomicWriteJSON(path, registry)
	case FormatYAML:
		return fileutil.AtomicWriteYAML(path, registry)
	case FormatTOML:
		return fileutil.AtomicWriteTOML(path, registry)
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%d", format)
	}
}
