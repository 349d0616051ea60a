package nav

import "sort"

// MaxDepth bounds sidebar nesting. Nodes deeper than this are not listed,
// though they remain reachable by direct link.
const MaxDepth = 4

// ItemKind identifies how a rendered item should be displayed.
type ItemKind int

const (
	// ItemLink is a clickable entry for a page or section.
	ItemLink ItemKind = iota
	// ItemSeparator is an inert grouping label.
	ItemSeparator
	// ItemPlaceholder is the filler shown when a section has nothing visible.
	ItemPlaceholder
	// ItemAnchor is a table-of-contents entry linking to "#<id>" on the active page.
	ItemAnchor
)

// Item is one rendered sidebar entry.
type Item struct {
	Kind     ItemKind
	Title    string
	Href     string
	Active   bool // this is the page being viewed
	Open     bool // the entry's children should be expanded
	Children []Item
}

// IsLink is a template helper.
func (it Item) IsLink() bool { return it.Kind == ItemLink }

// IsSeparator is a template helper.
func (it Item) IsSeparator() bool { return it.Kind == ItemSeparator }

// IsPlaceholder is a template helper.
func (it Item) IsPlaceholder() bool { return it.Kind == ItemPlaceholder }

// IsAnchor is a template helper.
func (it Item) IsAnchor() bool { return it.Kind == ItemAnchor }

// Options controls a sidebar render.
type Options struct {
	CurrentPath string // path of the page being viewed; may match nothing
	IncludeTOC  bool   // nest the active page's headings under its entry
	Placeholder string // title for the filler entry in empty sections
}

// Render lists root's children as a nested sidebar. It is a pure function of
// its inputs: the tree is never mutated and identical inputs produce
// identical output.
func Render(root *Node, opts Options) []Item {
	return renderLevel(root, opts, 0)
}

func renderLevel(n *Node, opts Options, level int) []Item {
	if level >= MaxDepth {
		return nil
	}
	visible := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		// A section whose children were all filtered out still gets a filler
		// entry so it doesn't collapse into a dead end. Leaf pages have no
		// candidates at all and get nothing.
		if len(n.Children) > 0 || level == 0 {
			return []Item{{Kind: ItemPlaceholder, Title: opts.Placeholder}}
		}
		return nil
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Weight < visible[j].Weight })
	items := make([]Item, 0, len(visible))
	for _, c := range visible {
		if c.Kind == KindSeparator {
			items = append(items, Item{Kind: ItemSeparator, Title: c.Title})
			continue
		}
		active := c.Path == opts.CurrentPath
		it := Item{
			Kind:   ItemLink,
			Title:  c.Title,
			Href:   c.Path,
			Active: active,
			Open:   shouldOpen(c, opts.CurrentPath, active),
		}
		if opts.IncludeTOC && active {
			for _, h := range c.Headings {
				it.Children = append(it.Children, Item{Kind: ItemAnchor, Title: h.Title, Href: "#" + h.ID})
			}
		}
		it.Children = append(it.Children, renderLevel(c, opts, level+1)...)
		items = append(items, it)
	}
	return items
}

// shouldOpen decides whether an entry renders expanded. Absent an explicit
// alwaysopen setting, entries default to open. An ancestor of the active page
// or the active page itself is always open, even when alwaysopen is false.
func shouldOpen(n *Node, currentPath string, active bool) bool {
	open := true
	if n.AlwaysOpen != nil {
		open = *n.AlwaysOpen
	}
	return open || active || n.contains(currentPath)
}
