package nav

// Walk visits every node in the tree in depth-first order, including hidden
// ones, starting with n itself.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Paths returns the paths of all visible, linkable nodes in tree order.
// It is used for the site map and by the static generator.
func Paths(root *Node) []string {
	var r []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind != KindSeparator {
			r = append(r, n.Path)
		}
		for _, c := range n.Children {
			if !c.Hidden {
				walk(c)
			}
		}
	}
	walk(root)
	return r
}
