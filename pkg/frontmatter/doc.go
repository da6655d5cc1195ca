// Package frontmatter extracts the optional YAML header from the top
// of an otherwise non-YAML document.
//
// Frontmatter is a block of YAML between two lines containing exactly
// "---", placed at the very start of the document. Anything other than
// whitespace before the first delimiter disqualifies the block, and the
// document is returned untouched.
//
// # Basic Usage
//
//	mapping, body, err := frontmatter.Extract(contents,
//		frontmatter.PolicyWarnOrError, escalator)
//	if err != nil {
//		return err // the escalator chose to fail
//	}
//	if mapping == nil {
//		// no frontmatter; body == contents
//	}
//
// # Error Policy
//
// Decode failures never escape under [PolicyIgnore]: the original
// document is returned as the body and the header is discarded. Under
// [PolicyWarnOrError] the failure is wrapped with line context and
// routed through the caller's [Escalator], which downgrades it to a
// warning or returns it as fatal.
//
// # Prefiltering
//
// [MightHaveFrontmatter] lets callers skip extraction for the common
// case of documents with no delimiter lines at all. It can report false
// positives but never false negatives.
package frontmatter
