package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/ddx/internal/config"
	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/errors"
	"github.com/thoreinstein/ddx/internal/models"
	"github.com/thoreinstein/ddx/internal/paths"
	"github.com/thoreinstein/ddx/internal/project"
	"github.com/thoreinstein/ddx/pkg/frontmatter"
)

// ProjectFileCheck verifies that a project file exists and is valid.
type ProjectFileCheck struct {
	dir string
}

var _ Check = (*ProjectFileCheck)(nil)

// NewProjectFileCheck creates a project file check rooted at dir.
func NewProjectFileCheck(dir string) *ProjectFileCheck {
	return &ProjectFileCheck{dir: dir}
}

// Name returns the unique identifier for this check.
func (c *ProjectFileCheck) Name() string {
	return "project-file"
}

// Category returns the grouping for this check.
func (c *ProjectFileCheck) Category() string {
	return "project"
}

// Run executes the project file check.
func (c *ProjectFileCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	p, err := project.Load(c.dir)
	if err != nil {
		result.Status = SeverityError
		if errors.Is(err, errors.ErrNoProject) {
			result.Message = fmt.Sprintf("no %s found", project.FileName)
			result.Details = map[string]any{"dir": c.dir}
			result.FixHint = fmt.Sprintf("create %s with name and version fields", project.FileName)
			return result
		}
		result.Message = fmt.Sprintf("project file is invalid: %v", err)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("project %q (version %s) loaded", p.Name, p.Version)
	result.Details = map[string]any{
		"name":        p.Name,
		"version":     p.Version,
		"doc_paths":   p.DocPaths,
		"model_paths": p.ModelPaths,
	}
	return result
}

// SearchPathCheck verifies that the project's documentation and model
// paths exist and are directories. Missing directories are fixable.
type SearchPathCheck struct {
	dir   string
	fixer DirFixer
}

var (
	_ Check = (*SearchPathCheck)(nil)
	_ Fixer = (*SearchPathCheck)(nil)
)

// NewSearchPathCheck creates a search path check rooted at dir.
func NewSearchPathCheck(dir string) *SearchPathCheck {
	return &SearchPathCheck{dir: dir}
}

// Name returns the unique identifier for this check.
func (c *SearchPathCheck) Name() string {
	return "search-paths"
}

// Category returns the grouping for this check.
func (c *SearchPathCheck) Category() string {
	return "project"
}

// Run executes the search path check.
func (c *SearchPathCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	p, err := project.Load(c.dir)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "no valid project file, skipping"
		return result
	}

	var missing []string
	var problems int
	pathResults := make([]map[string]any, 0, len(p.SearchPaths()))
	for _, rel := range p.SearchPaths() {
		abs := filepath.Join(p.Dir, rel)
		info, err := os.Stat(abs)

		status := "ok"
		switch {
		case err == nil && !info.IsDir():
			problems++
			status = "not a directory"
		case os.IsNotExist(err):
			problems++
			missing = append(missing, abs)
			status = "missing"
		case err != nil:
			problems++
			status = fmt.Sprintf("stat error: %v", err)
		}
		pathResults = append(pathResults, map[string]any{"path": rel, "status": status})
	}

	c.fixer.setDirs(missing)
	result.Details = map[string]any{"paths": pathResults}

	if problems == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d search paths exist", len(pathResults))
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d of %d search paths are unusable", problems, len(pathResults))
	result.Fixable = len(missing) > 0
	if result.Fixable {
		result.FixHint = "run with --fix to create the missing directories"
	}
	return result
}

// CanFix reports whether Run found missing directories to create.
func (c *SearchPathCheck) CanFix() bool {
	return c.fixer.CanFix()
}

// Fix creates the missing search path directories found by Run.
func (c *SearchPathCheck) Fix() []FixResult {
	return c.fixer.Fix()
}

// SourceScanCheck parses every documentation and model source in the
// project, reporting parse failures without stopping the diagnosis.
type SourceScanCheck struct {
	dir string
}

var _ Check = (*SourceScanCheck)(nil)

// NewSourceScanCheck creates a source scan check rooted at dir.
func NewSourceScanCheck(dir string) *SourceScanCheck {
	return &SourceScanCheck{dir: dir}
}

// Name returns the unique identifier for this check.
func (c *SourceScanCheck) Name() string {
	return "source-scan"
}

// Category returns the grouping for this check.
func (c *SourceScanCheck) Category() string {
	return "sources"
}

// Run executes the source scan check.
func (c *SourceScanCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	p, err := project.Load(c.dir)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "no valid project file, skipping"
		return result
	}

	sources, err := docs.NewLoader().Load(p.Name, p.Dir, p.SearchPaths())
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("loading documentation sources: %v", err)
		return result
	}

	registry, err := docs.NewBuilder().Build(sources)
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		return result
	}

	// Malformed frontmatter is recorded but never escalated here; the
	// doctor reports, it does not enforce.
	var warnings []string
	esc := frontmatter.EscalatorFunc(func(err error) error {
		warnings = append(warnings, err.Error())
		return nil
	})

	parsed, err := models.NewLoader(frontmatter.PolicyWarnOrError, esc).Load(p.Name, p.Dir, p.ModelPaths)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("loading models: %v", err)
		return result
	}

	result.Details = map[string]any{
		"files":  len(sources),
		"blocks": len(registry.IDs()),
		"models": len(parsed),
	}

	if len(warnings) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d model file(s) have malformed frontmatter", len(warnings))
		result.Details["warnings"] = warnings
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("parsed %d documentation blocks and %d models", len(registry.IDs()), len(parsed))
	return result
}

// ConfigCheck verifies ddx's own configuration loads and validates.
type ConfigCheck struct{}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a config check.
func NewConfigCheck() *ConfigCheck {
	return &ConfigCheck{}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the config check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	cfg, err := config.Load("")
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("loading config: %v", err)
		return result
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d config validation error(s)", len(errs))
		result.Details = map[string]any{"errors": msgs}
		return result
	}

	file := viper.ConfigFileUsed()
	if file == "" {
		file = "(defaults)"
	}
	result.Status = SeverityPass
	result.Message = "configuration OK"
	result.Details = map[string]any{
		"file":       file,
		"log_format": cfg.LogFormat,
		"warn_error": cfg.WarnError,
	}
	return result
}

// DataDirCheck verifies ddx's application directories are usable.
type DataDirCheck struct{}

var _ Check = (*DataDirCheck)(nil)

// NewDataDirCheck creates a data directory check.
func NewDataDirCheck() *DataDirCheck {
	return &DataDirCheck{}
}

// Name returns the unique identifier for this check.
func (c *DataDirCheck) Name() string {
	return "data-dirs"
}

// Category returns the grouping for this check.
func (c *DataDirCheck) Category() string {
	return "environment"
}

// Run executes the data directory check.
func (c *DataDirCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	dirs := []struct {
		label string
		path  string
	}{
		{"config", paths.ConfigDir()},
		{"data", paths.DataDir()},
		{"cache", paths.CacheDir()},
	}

	details := make(map[string]any, len(dirs))
	var problems []string
	for _, d := range dirs {
		status := "ok"
		info, err := os.Stat(d.path)
		switch {
		case os.IsNotExist(err):
			status = "missing (created on first use)"
		case err != nil:
			status = fmt.Sprintf("stat error: %v", err)
			problems = append(problems, d.path)
		case !info.IsDir():
			status = "not a directory"
			problems = append(problems, d.path)
		default:
			if err := probeWritable(d.path); err != nil {
				status = err.Error()
				problems = append(problems, d.path)
			}
		}
		details[d.label] = map[string]any{"path": d.path, "status": status}
	}

	result.Details = details
	if len(problems) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d application directories are unusable", len(problems))
		result.FixHint = "chmod u+w " + strings.Join(problems, " ")
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("all %d application directories are usable", len(dirs))
	return result
}

// probeWritable tests if a directory is writable by creating a temp file.
func probeWritable(dir string) error {
	tmp, err := os.CreateTemp(dir, ".ddx-doctor-*")
	if err != nil {
		if os.IsPermission(err) {
			return paths.ErrPermissionDenied
		}
		return err
	}
	name := tmp.Name()
	tmp.Close()
	os.Remove(name)
	return nil
}

// EnvCheck reports DDX_* environment variables with secrets masked.
type EnvCheck struct{}

var _ Check = (*EnvCheck)(nil)

// NewEnvCheck creates an environment check.
func NewEnvCheck() *EnvCheck {
	return &EnvCheck{}
}

// Name returns the unique identifier for this check.
func (c *EnvCheck) Name() string {
	return "environment"
}

// Category returns the grouping for this check.
func (c *EnvCheck) Category() string {
	return "environment"
}

// Run executes the environment check.
func (c *EnvCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "DDX_") {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}

	result.Status = SeverityInfo
	if len(env) == 0 {
		result.Message = "no DDX_* environment variables set"
		return result
	}

	masked := MaskSecrets(env)
	details := make(map[string]any, len(masked))
	for k, v := range masked {
		details[k] = v
	}
	result.Message = fmt.Sprintf("%d DDX_* environment variable(s) set", len(env))
	result.Details = details
	return result
}
