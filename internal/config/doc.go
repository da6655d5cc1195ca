// Package config provides configuration management for the ddx CLI.
//
// This package handles loading and validating ddx's own configuration
// file. It is distinct from the per-project ddx_project.yml, which is
// managed by the project package.
//
// # Configuration File
//
// The default configuration file location is ~/.config/ddx/config.yaml,
// with the current directory searched first. The DDX_CONFIG_DIR
// environment variable replaces the search path entirely when set.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	project_dir: /path/to/project # optional, defaults to cwd
//	warn_error: false             # escalate warnings to errors
//	log_format: text              # "text" or "json"
//	no_progress: false            # suppress progress bars
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Passing a non-empty path to [Load] reads that exact file and errors if
// it is missing. With an empty path the default locations are searched
// and defaults are used when no file exists.
//
// # Validation
//
// Loaded configurations are validated after command-line flags are merged
// on top, so a flag can correct a bad file value:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// Environment variables with the DDX_ prefix override file values, e.g.
// DDX_WARN_ERROR=true or DDX_LOG_FORMAT=json.
package config
