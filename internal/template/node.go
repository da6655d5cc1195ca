package template

import "strings"

// DocsPrefix marks a macro as a documentation block. A {% docs name %}
// tag parses into a macro named DocsPrefix + name, and scanners use the
// prefix to tell documentation macros from ordinary ones.
const DocsPrefix = "ddx_docs__"

// NodeType identifies the kind of a parse tree node.
type NodeType int

// Type returns itself and provides an easy default implementation for
// embedding in a Node.
func (t NodeType) Type() NodeType { return t }

const (
	// NodeList holds a sequence of nodes.
	NodeList NodeType = iota
	// NodeText holds literal template text.
	NodeText
	// NodeOutput groups a run of adjacent text and expressions.
	NodeOutput
	// NodeExpr holds an uninterpreted {{ expression }}.
	NodeExpr
	// NodeMacro is a named, reusable block definition.
	NodeMacro
	// NodeIf is a conditional branch.
	NodeIf
	// NodeFor is a loop.
	NodeFor
	// NodeSet is a variable assignment.
	NodeSet
	// NodeComment holds a {# comment #}.
	NodeComment
)

func (t NodeType) String() string {
	switch t {
	case NodeList:
		return "list"
	case NodeText:
		return "text"
	case NodeOutput:
		return "output"
	case NodeExpr:
		return "expr"
	case NodeMacro:
		return "macro"
	case NodeIf:
		return "if"
	case NodeFor:
		return "for"
	case NodeSet:
		return "set"
	case NodeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Pos is the 1-based line a node begins on.
type Pos int

// Position returns itself and provides an easy default implementation
// for embedding in a Node.
func (p Pos) Position() Pos { return p }

// Node is an element of the parse tree. The tree is purely structural:
// expressions and conditions are carried as uninterpreted source text,
// never evaluated.
type Node interface {
	Type() NodeType
	Position() Pos
}

// ListNode holds a sequence of nodes. The root of every parse is a
// ListNode.
type ListNode struct {
	NodeType
	Pos
	Nodes []Node
}

// TextNode holds literal text. It appears only inside an OutputNode.
type TextNode struct {
	NodeType
	Pos
	Text string
}

// ExprNode holds the source text of a {{ expression }}. It appears only
// inside an OutputNode.
type ExprNode struct {
	NodeType
	Pos
	Expr string
}

// OutputNode groups an uninterrupted run of literal text and
// expressions. Every piece of template output lives under one, giving
// macro bodies their two-level shape: body element, then the output's
// children.
type OutputNode struct {
	NodeType
	Pos
	Nodes []Node
}

// MacroNode is a {% macro name(params) %}...{% endmacro %} definition,
// or the desugared form of a {% docs name %} block.
type MacroNode struct {
	NodeType
	Pos
	Name   string
	Params []string
	Body   []Node
}

// IsDocs reports whether the macro is a documentation block.
func (m *MacroNode) IsDocs() bool {
	return strings.HasPrefix(m.Name, DocsPrefix)
}

// BareName returns the macro name with the documentation prefix
// removed.
func (m *MacroNode) BareName() string {
	return strings.TrimPrefix(m.Name, DocsPrefix)
}

// IfNode is a {% if cond %} branch. An elif chain parses as an IfNode
// whose Else holds the next IfNode.
type IfNode struct {
	NodeType
	Pos
	Cond string
	Body []Node
	Else []Node
}

// ForNode is a {% for target in iterable %} loop, with an optional
// {% else %} branch taken when the iterable is empty.
type ForNode struct {
	NodeType
	Pos
	Target   string
	Iterable string
	Body     []Node
	Else     []Node
}

// SetNode is a {% set target = expr %} assignment.
type SetNode struct {
	NodeType
	Pos
	Target string
	Expr   string
}

// CommentNode holds the interior of a {# comment #}.
type CommentNode struct {
	NodeType
	Pos
	Text string
}
