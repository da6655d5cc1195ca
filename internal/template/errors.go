package template

import "fmt"

// ParseError describes a template syntax failure.
type ParseError struct {
	// Line is the 1-based line of the offending construct.
	Line int
	// Msg describes what went wrong.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template syntax error at line %d: %s", e.Line, e.Msg)
}
