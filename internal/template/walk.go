package template

// Walk traverses the tree rooted at n in depth-first document order,
// calling fn for each node. If fn returns false, the node's children
// are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *ListNode:
		walkAll(n.Nodes, fn)
	case *OutputNode:
		walkAll(n.Nodes, fn)
	case *MacroNode:
		walkAll(n.Body, fn)
	case *IfNode:
		walkAll(n.Body, fn)
		walkAll(n.Else, fn)
	case *ForNode:
		walkAll(n.Body, fn)
		walkAll(n.Else, fn)
	}
}

func walkAll(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}

// Macros returns every macro definition in the tree, in document
// order, regardless of nesting depth.
func Macros(root Node) []*MacroNode {
	var macros []*MacroNode
	Walk(root, func(n Node) bool {
		if m, ok := n.(*MacroNode); ok {
			macros = append(macros, m)
		}
		return true
	})
	return macros
}
