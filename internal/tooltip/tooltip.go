// Package tooltip holds the hover-tooltip state machine for one chart.
// The host environment dispatches pointer events to it; the renderer
// registers element bindings. Rendering the box itself is the host's
// job, via Snapshot.
package tooltip

// Margin is the fixed offset between the pointer and the tooltip box.
const Margin = 5

// Controller is a single shared tooltip, initially hidden. One
// controller is created per rendered chart; controllers are never
// shared between charts.
type Controller struct {
	bindings map[string]string

	visible bool
	text    string
	x, y    int
}

// State is a point-in-time snapshot of the tooltip for the host to draw.
type State struct {
	Visible bool
	Text    string
	X, Y    int
}

// New returns a hidden, empty tooltip controller.
func New() *Controller {
	return &Controller{bindings: make(map[string]string)}
}

// Bind associates an element ID with the text shown while hovering it.
// Empty text is ignored: hovering such an element shows nothing.
func (c *Controller) Bind(id, text string) {
	if id == "" || text == "" {
		return
	}
	c.bindings[id] = text
}

// HoverEnter shows the text bound to the given element, if any.
func (c *Controller) HoverEnter(id string) {
	text, ok := c.bindings[id]
	if !ok {
		return
	}
	c.Show(text)
}

// HoverMove repositions the tooltip to follow the pointer.
func (c *Controller) HoverMove(x, y int) {
	c.Reposition(x, y)
}

// HoverLeave hides the tooltip.
func (c *Controller) HoverLeave() {
	c.Hide()
}

// Show sets the content and makes the tooltip visible.
func (c *Controller) Show(text string) {
	c.text = text
	c.visible = true
}

// Reposition moves the tooltip next to the given pointer coordinates.
func (c *Controller) Reposition(x, y int) {
	c.x = x + Margin
	c.y = y + Margin
}

// Hide makes the tooltip invisible. The content is left as-is; the next
// Show always overwrites it first.
func (c *Controller) Hide() {
	c.visible = false
}

// Snapshot returns the current tooltip state.
func (c *Controller) Snapshot() State {
	return State{Visible: c.visible, Text: c.text, X: c.x, Y: c.y}
}
