package lyxweaver

// Visitor is called for every node during a traversal. Returning false
// skips the node's children.
type Visitor func(n Node) bool

// Walk traverses nodes depth-first in pre-order, i.e. in the order the
// nodes appear in the document text. It never mutates the tree.
func Walk(nodes []Node, v Visitor) {
	for _, n := range nodes {
		walkNode(n, v)
	}
}

func walkNode(n Node, v Visitor) {
	if !v(n) {
		return
	}
	switch t := n.(type) {
	case *Container:
		for _, ch := range t.Children {
			walkNode(ch, v)
		}
	case *Part:
		walkNode(t.Header, v)
		for _, ch := range t.Children {
			walkNode(ch, v)
		}
	}
}
