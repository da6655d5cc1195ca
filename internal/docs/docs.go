// Package docs extracts named documentation blocks from templated
// source files and assembles them into a registry keyed by unique id.
//
// A documentation block is declared with {% docs <name> %}...{% enddocs %}
// inside any discovered .md or .sql file. Each block becomes an
// addressable record whose unique id is <package>.<name>; ids must be
// unique within one build.
package docs

// ResourceTypeDocumentation tags every registry record.
const ResourceTypeDocumentation = "documentation"

// SourceFile is one discovered file handed to the Builder: raw,
// unstripped contents plus the provenance needed to report where a
// block came from.
type SourceFile struct {
	// RootPath is the project root the file was discovered under.
	RootPath string
	// Path is the file's path relative to the searched directory.
	Path string
	// OriginalPath is the searched directory joined with Path, the
	// project-relative path shown to users.
	OriginalPath string
	// PackageName is the owning project's name.
	PackageName string
	// Contents is the raw file text, no normalization applied.
	Contents string
}

// Block is one extracted documentation block. Field tags follow the
// export wire format.
type Block struct {
	// UniqueID is "<package name>.<block name>".
	UniqueID     string `json:"unique_id" yaml:"unique_id" toml:"unique_id"`
	Name         string `json:"name" yaml:"name" toml:"name"`
	ResourceType string `json:"resource_type" yaml:"resource_type" toml:"resource_type"`
	RootPath     string `json:"root_path" yaml:"root_path" toml:"root_path"`
	Path         string `json:"path" yaml:"path" toml:"path"`
	OriginalPath string `json:"original_file_path" yaml:"original_file_path" toml:"original_file_path"`
	PackageName  string `json:"package_name" yaml:"package_name" toml:"package_name"`
	// FileContents is the whole source file the block was found in.
	FileContents string `json:"file_contents" yaml:"file_contents" toml:"file_contents"`
	// BlockContents is the block's literal text payload.
	BlockContents string `json:"block_contents" yaml:"block_contents" toml:"block_contents"`
}
