// Package validator collects the problems a parse run turns up and
// renders them for humans or machines.
//
// It defines shared types for per-file parse issues (errors, warnings,
// info) across frontmatter extraction, template scanning, and
// documentation registry construction.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: Represents a single validation problem tied to a source file.
//   - [Result]: Aggregates multiple issues and provides helper methods.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if err := parseFile(path); err != nil {
//		result.AddError(path, err.Error(), nil)
//	}
//
//	if result.HasErrors() {
//		// handle validation failure
//	}
//
// A [Reporter] renders a Result for humans (colored text) or machines
// (indented JSON).
package validator
