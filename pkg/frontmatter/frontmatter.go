package frontmatter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/thoreinstein/ddx/pkg/yamlutil"
)

// delimiter matches a line that is exactly three hyphens. CRLF lines
// carry a trailing \r and do not match.
var delimiter = regexp.MustCompile(`(?m)^---$`)

// banner opens every frontmatter decode failure surfaced to users.
const banner = "Error parsing YAML frontmatter!"

// Policy selects how Extract treats frontmatter that fails to decode.
type Policy int

const (
	// PolicyIgnore discards undecodable frontmatter and returns the
	// original document unchanged.
	PolicyIgnore Policy = iota

	// PolicyWarnOrError routes undecodable frontmatter through the
	// caller's Escalator, which decides between a logged warning and a
	// fatal error.
	PolicyWarnOrError
)

func (p Policy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyWarnOrError:
		return "warn-or-error"
	default:
		return "unknown"
	}
}

// Escalator is the warn-or-escalate channel consulted under
// PolicyWarnOrError. An implementation either logs the error and
// returns nil, or returns it to abort the caller.
type Escalator interface {
	Escalate(err error) error
}

// EscalatorFunc adapts a function to the Escalator interface.
type EscalatorFunc func(error) error

// Escalate calls f(err).
func (f EscalatorFunc) Escalate(err error) error { return f(err) }

// MightHaveFrontmatter reports whether content could open with a
// frontmatter block. It is a cheap necessary-but-not-sufficient filter:
// it never returns false for a document Split would accept, but may
// return true for documents it rejects.
func MightHaveFrontmatter(content string) bool {
	return strings.Contains(content, "---\n") || strings.Contains(content, "---\r\n")
}

// Split separates content into its frontmatter segment and the body
// that follows. ok is false when the document has no frontmatter: fewer
// than two delimiter lines, or any non-whitespace text before the first
// one. The line terminator after each delimiter is consumed, so neither
// segment carries it.
func Split(content string) (matter, body string, ok bool) {
	marks := delimiter.FindAllStringIndex(content, 2)
	if len(marks) < 2 {
		return "", content, false
	}
	if strings.ContainsFunc(content[:marks[0][0]], isNonSpace) {
		return "", content, false
	}
	matter = content[skipNewline(content, marks[0][1]):marks[1][0]]
	body = content[skipNewline(content, marks[1][1]):]
	return matter, body, true
}

func isNonSpace(r rune) bool { return !unicode.IsSpace(r) }

// skipNewline advances past the \n terminating a delimiter match, when
// present. The delimiter pattern never matches before a \r, so a bare
// \n is the only terminator to consume.
func skipNewline(content string, pos int) int {
	if pos < len(content) && content[pos] == '\n' {
		return pos + 1
	}
	return pos
}

// Extract splits content into a decoded frontmatter mapping and the
// body remainder. Documents without frontmatter come back unchanged as
// (nil, content, nil). When the frontmatter segment fails to decode,
// policy decides: PolicyIgnore swallows the failure and returns the
// original content; PolicyWarnOrError builds a *yamlutil.ValidationError
// windowed against the full document and hands it to esc exactly once,
// returning whatever esc returns as the error. A nil esc escalates
// unconditionally.
func Extract(content string, policy Policy, esc Escalator) (map[string]any, string, error) {
	matter, body, ok := Split(content)
	if !ok {
		return nil, content, nil
	}

	mapping, err := yamlutil.Decode(matter)
	if err != nil {
		if policy == PolicyIgnore {
			return nil, content, nil
		}
		verr := &yamlutil.ValidationError{Message: contextualize(content, err)}
		if esc == nil {
			return nil, content, verr
		}
		return nil, content, esc.Escalate(verr)
	}

	return mapping, body, nil
}

// contextualize renders the decode failure against the original
// document. The decoder's line number is relative to the matter
// segment, which begins one line into the document (right after the
// opening delimiter), so it is shifted by that one line before the
// window is drawn from the full document. Whitespace lines before the
// opening delimiter are not compensated for; errors in such documents
// render slightly above their true position.
func contextualize(content string, err error) string {
	derr, ok := err.(*yamlutil.DecodeError)
	if !ok {
		return banner + "\n" + err.Error()
	}
	if derr.Line > 0 {
		derr = &yamlutil.DecodeError{Line: derr.Line + 1, Raw: derr.Raw}
	}
	return banner + "\n" + yamlutil.Contextualize(content, derr)
}
