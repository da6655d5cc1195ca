// Package cli carries the shared plumbing behind ddx commands:
// project scanning, issue collection, and progress display.
package cli

import (
	"log/slog"

	"github.com/thoreinstein/ddx/internal/docs"
	"github.com/thoreinstein/ddx/internal/models"
	"github.com/thoreinstein/ddx/internal/project"
	"github.com/thoreinstein/ddx/internal/validator"
	"github.com/thoreinstein/ddx/pkg/frontmatter"
)

// Pipeline runs the scan stages commands are built from: documentation
// source discovery, block parsing, and model loading. Issues accumulate
// in Result for the validation report. Malformed model frontmatter is
// warned about and tolerated unless strict mode escalates it.
type Pipeline struct {
	logger        *slog.Logger
	strict        bool
	ignoreInvalid bool
	onFile        func(path string)

	// Result collects every issue the scan produced.
	Result *validator.Result
}

// NewPipeline creates a Pipeline. strict escalates malformed model
// frontmatter to a hard error, matching --warn-error.
func NewPipeline(logger *slog.Logger, strict bool) *Pipeline {
	return &Pipeline{
		logger: logger,
		strict: strict,
		Result: &validator.Result{},
	}
}

// IgnoreInvalid switches model loading to silently drop undecodable
// frontmatter instead of warning about it.
func (p *Pipeline) IgnoreInvalid() { p.ignoreInvalid = true }

// OnFile registers a callback invoked once per parsed documentation
// source, for driving a progress bar.
func (p *Pipeline) OnFile(fn func(path string)) { p.onFile = fn }

// LoadSources discovers and reads the project's documentation sources.
// Discovery covers the union of doc and model paths, since docs blocks
// may live beside models.
func (p *Pipeline) LoadSources(proj *project.Project) ([]docs.SourceFile, error) {
	loader := docs.NewLoaderWithLogger(p.logger)
	files, err := loader.Load(proj.Name, proj.Dir, proj.SearchPaths())
	if err != nil {
		p.Result.AddError("", err.Error(), nil)
		return nil, err
	}
	return files, nil
}

// BuildRegistry parses files into a block registry. The first template
// syntax error or block name collision is recorded in Result and
// returned, and the partially built registry is discarded.
func (p *Pipeline) BuildRegistry(files []docs.SourceFile) (docs.Registry, error) {
	builder := docs.NewBuilderWithLogger(p.logger)
	registry := make(docs.Registry)

	for _, f := range files {
		blocks, err := builder.Parse(f)
		if err != nil {
			p.Result.AddError("", err.Error(), nil)
			return nil, err
		}
		for _, b := range blocks {
			if err := registry.Insert(b); err != nil {
				p.Result.AddError("", err.Error(), nil)
				return nil, err
			}
		}
		if p.onFile != nil {
			p.onFile(f.OriginalPath)
		}
	}

	p.logger.Debug("built registry", "files", len(files), "blocks", len(registry))
	return registry, nil
}

// Registry is LoadSources followed by BuildRegistry, for commands that
// need the block index without per-file progress.
func (p *Pipeline) Registry(proj *project.Project) (docs.Registry, error) {
	files, err := p.LoadSources(proj)
	if err != nil {
		return nil, err
	}
	return p.BuildRegistry(files)
}

// LoadModels loads the project's model files. Undecodable frontmatter
// is handled per the pipeline's mode: dropped under IgnoreInvalid,
// otherwise warned about and recorded, or escalated when strict.
func (p *Pipeline) LoadModels(proj *project.Project) ([]models.Model, error) {
	policy := frontmatter.PolicyWarnOrError
	if p.ignoreInvalid {
		policy = frontmatter.PolicyIgnore
	}

	loader := models.NewLoaderWithLogger(p.logger, policy, NewEscalator(p.logger, p.strict, p.Result))
	mods, err := loader.Load(proj.Name, proj.Dir, proj.ModelPaths)
	if err != nil {
		p.Result.AddError("", err.Error(), nil)
		return nil, err
	}
	return mods, nil
}

// NewEscalator builds the warn-or-error channel for frontmatter
// decoding. In strict mode the error is returned as-is, aborting the
// load; the caller records the wrapped error. Otherwise it is logged,
// recorded as a warning in result, and swallowed. The warning text
// names only line numbers, never the file.
func NewEscalator(logger *slog.Logger, strict bool, result *validator.Result) frontmatter.Escalator {
	return frontmatter.EscalatorFunc(func(err error) error {
		if strict {
			return err
		}
		logger.Warn(err.Error())
		if result != nil {
			result.AddWarning("", err.Error(), nil)
		}
		return nil
	})
}
