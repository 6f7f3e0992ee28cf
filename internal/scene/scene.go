// Package scene describes a rendered chart as plain geometry. It holds
// no drawing-library state: an adapter (internal/svg) turns a scene
// into actual drawing calls, so the layout math stays testable on its
// own.
package scene

// Anchor controls horizontal text alignment relative to the text position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Node is one element of the scene graph.
type Node interface {
	node()
}

// Group is a named container of nodes. Groups nest: the chart root is a
// group holding the axis rows, highlight layers and one group per task.
type Group struct {
	ID    string
	Class string
	Kids  []Node
}

// Rect is an axis-aligned rectangle. HoverID, when non-empty, names the
// tooltip binding a host should trigger while the pointer is over it.
type Rect struct {
	X, Y    int
	W, H    int
	Class   string
	HoverID string
}

// Text is a label anchored at (X, Y).
type Text struct {
	X, Y    int
	Anchor  Anchor
	Class   string
	Content string
	HoverID string
}

func (*Group) node() {}
func (*Rect) node()  {}
func (*Text) node()  {}

// Add appends child nodes to the group.
func (g *Group) Add(kids ...Node) {
	g.Kids = append(g.Kids, kids...)
}

// Walk visits every node of the subtree rooted at g in depth-first
// order, groups before their children.
func Walk(g *Group, visit func(Node)) {
	visit(g)
	for _, kid := range g.Kids {
		if sub, ok := kid.(*Group); ok {
			Walk(sub, visit)
			continue
		}
		visit(kid)
	}
}
