// Package template implements a static parser for the Jinja-flavored
// template dialect used by ddx documents. Parsing produces a syntax
// tree of tagged variants (see Node) that callers inspect with Walk;
// nothing is ever evaluated or rendered.
//
// The dialect covers {{ expressions }}, {# comments #}, and the block
// tags macro/endmacro, docs/enddocs, if/elif/else/endif, for/endfor,
// set, and raw/endraw. A {% docs name %} block desugars to a macro
// named [DocsPrefix] + name, so scanners only ever look for macro
// nodes. Unknown tags are a syntax error.
package template

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// tag is one {% ... %} occurrence split into its leading keyword and
// the argument text after it.
type tag struct {
	keyword string
	rest    string
	line    int
}

// enders are keywords that close or continue an enclosing block tag.
var enders = map[string]bool{
	"endmacro": true,
	"enddocs":  true,
	"endif":    true,
	"endfor":   true,
	"elif":     true,
	"else":     true,
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse parses template source into its syntax tree.
func Parse(text string) (*ListNode, error) {
	p := &parser{lex: newLexer(text)}
	nodes, _, err := p.parseList(nil)
	if err != nil {
		return nil, err
	}
	return &ListNode{NodeType: NodeList, Pos: 1, Nodes: nodes}, nil
}

type parser struct {
	lex *lexer
}

// parseList consumes nodes until a tag whose keyword is in until, or
// end of input when until is empty. opener is the enclosing block tag,
// used to report unclosed blocks; nil at the top level.
func (p *parser) parseList(opener *tag, until ...string) ([]Node, *tag, error) {
	var nodes []Node
	var run *OutputNode

	flush := func() {
		if run != nil {
			nodes = append(nodes, run)
			run = nil
		}
	}
	emit := func(n Node, line int) {
		if run == nil {
			run = &OutputNode{NodeType: NodeOutput, Pos: Pos(line)}
		}
		run.Nodes = append(run.Nodes, n)
	}

	for {
		it := p.lex.nextItem()
		switch it.typ {
		case itemError:
			return nil, nil, &ParseError{Line: it.line, Msg: it.val}

		case itemEOF:
			if opener != nil {
				return nil, nil, &ParseError{
					Line: opener.line,
					Msg:  fmt.Sprintf("unclosed {%% %s %%}", opener.keyword),
				}
			}
			flush()
			return nodes, nil, nil

		case itemText:
			emit(&TextNode{NodeType: NodeText, Pos: Pos(it.line), Text: it.val}, it.line)

		case itemExpr:
			expr := strings.TrimSpace(it.val)
			if expr == "" {
				return nil, nil, &ParseError{Line: it.line, Msg: "missing expression"}
			}
			emit(&ExprNode{NodeType: NodeExpr, Pos: Pos(it.line), Expr: expr}, it.line)

		case itemComment:
			flush()
			nodes = append(nodes, &CommentNode{NodeType: NodeComment, Pos: Pos(it.line), Text: it.val})

		case itemTag:
			t, err := splitTag(it)
			if err != nil {
				return nil, nil, err
			}
			if slices.Contains(until, t.keyword) {
				flush()
				return nodes, t, nil
			}
			if enders[t.keyword] {
				return nil, nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("unexpected {%% %s %%}", t.keyword)}
			}
			n, err := p.parseTag(t)
			if err != nil {
				return nil, nil, err
			}
			flush()
			nodes = append(nodes, n)
		}
	}
}

// parseTag dispatches a block tag to its construct parser.
func (p *parser) parseTag(t *tag) (Node, error) {
	switch t.keyword {
	case "macro":
		return p.parseMacro(t)
	case "docs":
		return p.parseDocs(t)
	case "if":
		return p.parseIf(t)
	case "for":
		return p.parseFor(t)
	case "set":
		return parseSet(t)
	default:
		return nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("unknown tag %q", t.keyword)}
	}
}

func (p *parser) parseMacro(t *tag) (Node, error) {
	name, params, err := splitSignature(t)
	if err != nil {
		return nil, err
	}
	body, term, err := p.parseList(t, "endmacro")
	if err != nil {
		return nil, err
	}
	if err := wantBare(term); err != nil {
		return nil, err
	}
	return &MacroNode{NodeType: NodeMacro, Pos: Pos(t.line), Name: name, Params: params, Body: body}, nil
}

func (p *parser) parseDocs(t *tag) (Node, error) {
	name := strings.TrimSpace(t.rest)
	if !identRe.MatchString(name) {
		return nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("docs tag expects a single block name, got %q", t.rest)}
	}
	body, term, err := p.parseList(t, "enddocs")
	if err != nil {
		return nil, err
	}
	if err := wantBare(term); err != nil {
		return nil, err
	}
	return &MacroNode{NodeType: NodeMacro, Pos: Pos(t.line), Name: DocsPrefix + name, Body: body}, nil
}

func (p *parser) parseIf(t *tag) (Node, error) {
	cond := strings.TrimSpace(t.rest)
	if cond == "" {
		return nil, &ParseError{Line: t.line, Msg: "if tag missing condition"}
	}
	body, term, err := p.parseList(t, "elif", "else", "endif")
	if err != nil {
		return nil, err
	}

	n := &IfNode{NodeType: NodeIf, Pos: Pos(t.line), Cond: cond, Body: body}
	switch term.keyword {
	case "elif":
		nested, err := p.parseIf(term)
		if err != nil {
			return nil, err
		}
		n.Else = []Node{nested}
	case "else":
		if err := wantBare(term); err != nil {
			return nil, err
		}
		n.Else, term, err = p.parseList(t, "endif")
		if err != nil {
			return nil, err
		}
		if err := wantBare(term); err != nil {
			return nil, err
		}
	case "endif":
		if err := wantBare(term); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *parser) parseFor(t *tag) (Node, error) {
	target, iterable, found := strings.Cut(t.rest, " in ")
	target = strings.TrimSpace(target)
	iterable = strings.TrimSpace(iterable)
	if !found || target == "" || iterable == "" {
		return nil, &ParseError{Line: t.line, Msg: "for tag must be {% for <target> in <iterable> %}"}
	}

	body, term, err := p.parseList(t, "else", "endfor")
	if err != nil {
		return nil, err
	}
	n := &ForNode{NodeType: NodeFor, Pos: Pos(t.line), Target: target, Iterable: iterable, Body: body}
	if term.keyword == "else" {
		if err := wantBare(term); err != nil {
			return nil, err
		}
		n.Else, term, err = p.parseList(t, "endfor")
		if err != nil {
			return nil, err
		}
	}
	if err := wantBare(term); err != nil {
		return nil, err
	}
	return n, nil
}

func parseSet(t *tag) (Node, error) {
	target, expr, found := strings.Cut(t.rest, "=")
	target = strings.TrimSpace(target)
	expr = strings.TrimSpace(expr)
	if !found || expr == "" || !identRe.MatchString(target) {
		return nil, &ParseError{Line: t.line, Msg: "set tag must be {% set <name> = <expr> %}"}
	}
	return &SetNode{NodeType: NodeSet, Pos: Pos(t.line), Target: target, Expr: expr}, nil
}

// splitTag separates a tag interior into keyword and argument text.
func splitTag(it item) (*tag, error) {
	content := strings.TrimSpace(it.val)
	if content == "" {
		return nil, &ParseError{Line: it.line, Msg: "empty tag"}
	}
	keyword, rest := content, ""
	if i := strings.IndexFunc(content, unicode.IsSpace); i >= 0 {
		keyword, rest = content[:i], strings.TrimSpace(content[i:])
	}
	return &tag{keyword: keyword, rest: rest, line: it.line}, nil
}

// splitSignature parses "name" or "name(a, b=1)" from a macro tag.
func splitSignature(t *tag) (string, []string, error) {
	sig := strings.TrimSpace(t.rest)
	open := strings.Index(sig, "(")
	if open < 0 {
		if !identRe.MatchString(sig) {
			return "", nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("macro tag expects a name, got %q", t.rest)}
		}
		return sig, nil, nil
	}

	name := strings.TrimSpace(sig[:open])
	if !identRe.MatchString(name) || !strings.HasSuffix(sig, ")") {
		return "", nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("malformed macro signature %q", t.rest)}
	}

	var params []string
	for _, param := range strings.Split(sig[open+1:len(sig)-1], ",") {
		if param = strings.TrimSpace(param); param != "" {
			params = append(params, param)
		}
	}
	return name, params, nil
}

// wantBare rejects trailing content on tags that take no arguments.
func wantBare(t *tag) error {
	if t.rest != "" {
		return &ParseError{Line: t.line, Msg: fmt.Sprintf("unexpected arguments after {%% %s %%}", t.keyword)}
	}
	return nil
}
