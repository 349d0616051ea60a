/*
nav builds sidebar navigation for a tree of lesson pages.

The content tree is assembled once (see the content package) and is read-only
afterwards; Render never mutates it, so a single tree can serve any number of
concurrent renders.
*/
package nav

// Kind identifies how a node behaves in the sidebar.
type Kind int

const (
	// KindPage is an ordinary page that renders as a link.
	KindPage Kind = iota
	// KindSection is a folder of pages that renders as a link with nested children.
	KindSection
	// KindSeparator renders as an inert grouping label; its children are never listed.
	KindSeparator
)

// Heading is one in-page heading anchor, used for the table of contents.
type Heading struct {
	ID    string // anchor id, matching the id blackfriday renders
	Title string // heading text
}

// Node is one page or section in the content tree. Paths are unique,
// "/"-rooted, and carry no trailing slash except the root itself.
type Node struct {
	Path       string
	Title      string
	Weight     int   // sibling order, ascending; ties keep discovery order
	Kind       Kind
	Hidden     bool  // drop the node and its whole subtree from the sidebar
	AlwaysOpen *bool // overrides the default expansion when set
	Headings   []Heading
	Children   []*Node // discovery order
}

// Find returns the node with the given path, or nil. Hidden nodes are
// found too; they are omitted from the sidebar but still served.
func (n *Node) Find(path string) *Node {
	if n.Path == path {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(path); f != nil {
			return f
		}
	}
	return nil
}

// contains reports whether the visible part of n's subtree includes the path.
// Hidden subtrees are omitted from traversal entirely, so they do not count.
func (n *Node) contains(path string) bool {
	if path == "" {
		return false
	}
	for _, c := range n.Children {
		if c.Hidden {
			continue
		}
		if c.Path == path || c.contains(path) {
			return true
		}
	}
	return false
}
