// Package project loads and validates the ddx project definition.
//
// A project is a directory containing a ddx_project.yml file that
// names the project and lists the directories to search for
// documentation blocks and model files.
package project

import (
	"io/fs"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/pkg/fileutil"
	"github.com/thoreinstein/ddx/pkg/yamlutil"
)

// FileName is the project definition file looked for in the project
// directory.
const FileName = "ddx_project.yml"

// nameRe constrains project names to identifier characters, since the
// name becomes the package half of every block's unique id.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Project is the decoded project definition.
type Project struct {
	// Name is the project's package name.
	Name string `yaml:"name"`
	// Version is the project's version string.
	Version string `yaml:"version"`
	// DocPaths are the directories searched for documentation files,
	// relative to the project directory. Defaults to ["docs"].
	DocPaths []string `yaml:"doc-paths"`
	// ModelPaths are the directories searched for model files,
	// relative to the project directory. Defaults to ["models"].
	ModelPaths []string `yaml:"model-paths"`

	// Dir is the absolute project directory the definition was loaded
	// from.
	Dir string `yaml:"-"`
}

// Load reads and validates dir's project definition. A missing project
// file wraps ErrNoProject; a syntactically broken one surfaces the
// decoder's line-numbered context.
func Load(dir string) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving project directory %q", dir)
	}
	path := filepath.Join(abs, FileName)

	contents, err := fileutil.ReadFileString(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(errors.ErrNoProject, "%s", abs)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	// DecodeStrict first so syntax errors carry line-numbered context.
	if _, err := yamlutil.DecodeStrict(contents); err != nil {
		return nil, errors.Wrapf(err, "reading %s", FileName)
	}

	p := &Project{Dir: abs}
	if err := yaml.Unmarshal([]byte(contents), p); err != nil {
		return nil, errors.Wrapf(err, "reading %s", FileName)
	}

	if len(p.DocPaths) == 0 {
		p.DocPaths = []string{"docs"}
	}
	if len(p.ModelPaths) == 0 {
		p.ModelPaths = []string{"models"}
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", FileName)
	}
	return p, nil
}

// Validate checks the definition's required fields.
func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required,
			validation.Match(nameRe).Error("must start with a letter or underscore and contain only letters, digits, and underscores")),
		validation.Field(&p.Version, validation.Required),
	)
}

// SearchPaths returns the union of DocPaths and ModelPaths with order
// preserved and duplicates removed. Documentation discovery covers
// both sets, since docs blocks may live beside models.
func (p *Project) SearchPaths() []string {
	seen := make(map[string]bool, len(p.DocPaths)+len(p.ModelPaths))
	var paths []string
	for _, path := range append(append([]string{}, p.DocPaths...), p.ModelPaths...) {
		if seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}
