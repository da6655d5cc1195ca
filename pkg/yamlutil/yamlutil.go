// Package yamlutil wraps YAML decoding with typed failures and
// human-readable, line-numbered error context.
package yamlutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeError describes a YAML parse failure.
type DecodeError struct {
	// Line is the 1-based line of the offending token, or 0 when the
	// underlying parser reported no position.
	Line int

	// Raw is the parser's original message.
	Raw string
}

// Error returns the underlying parser message.
func (e *DecodeError) Error() string {
	return e.Raw
}

// ValidationError is a decode failure dressed with surrounding source
// lines, suitable for surfacing directly to end users.
type ValidationError struct {
	Message string
}

// Error returns the contextualized message.
func (e *ValidationError) Error() string {
	return e.Message
}

// yaml.v3 exposes source positions only inside its message strings.
var lineRe = regexp.MustCompile(`line (\d+):`)

// Decode parses text as YAML into a generic mapping. An empty document
// decodes to (nil, nil). Decoding is safe: only plain scalars,
// sequences, and mappings are produced. Malformed YAML, or a document
// whose top level is not a mapping, yields a *DecodeError.
func Decode(text string) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal([]byte(text), &out); err != nil {
		return nil, newDecodeError(err)
	}
	return out, nil
}

// DecodeStrict is Decode with failures re-raised as *ValidationError
// carrying a numbered window of the source around the offending line.
func DecodeStrict(text string) (map[string]any, error) {
	out, err := Decode(text)
	if err != nil {
		derr, ok := err.(*DecodeError)
		if !ok {
			return nil, err
		}
		return nil, &ValidationError{Message: Contextualize(text, derr)}
	}
	return out, nil
}

func newDecodeError(err error) *DecodeError {
	msg := err.Error()
	derr := &DecodeError{Raw: msg}
	if m := lineRe.FindStringSubmatch(msg); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			derr.Line = n
		}
	}
	return derr
}

// Contextualize renders derr against the source text it came from.
// When the error carries a position, the message embeds a window of
// three lines before through four lines after the offending one, each
// prefixed with its 1-based number, followed by the raw parser text.
// Without a position only the raw text is returned.
func Contextualize(text string, derr *DecodeError) string {
	if derr.Line <= 0 {
		return derr.Raw
	}

	mark := derr.Line - 1
	lo := mark - 3
	if lo < 0 {
		lo = 0
	}
	hi := mark + 4

	return fmt.Sprintf("Syntax error near line %d\n"+
		"------------------------------\n"+
		"%s\n\n"+
		"Raw Error:\n"+
		"------------------------------\n"+
		"%s\n",
		derr.Line, prefixWithLineNumbers(text, lo, hi), derr.Raw)
}

func prefixWithLineNumbers(text string, start, end int) string {
	lines := strings.Split(text, "\n")
	if start > len(lines) {
		start = len(lines)
	}
	if end > len(lines) {
		end = len(lines)
	}

	numbered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		numbered = append(numbered, lineNo(i+1, lines[i]))
	}
	return strings.Join(numbered, "\n")
}

func lineNo(n int, line string) string {
	return fmt.Sprintf("%-3d| %s", n, line)
}
