package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_InitiallyHidden(t *testing.T) {
	c := New()

	state := c.Snapshot()
	assert.False(t, state.Visible)
	assert.Empty(t, state.Text)
}

func TestController_HoverCycle(t *testing.T) {
	c := New()
	c.Bind("span-0-0", "Kickoff meeting")

	c.HoverEnter("span-0-0")
	state := c.Snapshot()
	assert.True(t, state.Visible)
	assert.Equal(t, "Kickoff meeting", state.Text)

	c.HoverMove(100, 40)
	state = c.Snapshot()
	assert.Equal(t, 100+Margin, state.X)
	assert.Equal(t, 40+Margin, state.Y)

	c.HoverLeave()
	assert.False(t, c.Snapshot().Visible)
}

func TestController_StaleContentOverwrittenByNextShow(t *testing.T) {
	c := New()
	c.Bind("a", "first")
	c.Bind("b", "second")

	c.HoverEnter("a")
	c.HoverLeave()

	// Hide leaves content stale; the next enter must replace it.
	assert.Equal(t, "first", c.Snapshot().Text)

	c.HoverEnter("b")
	state := c.Snapshot()
	assert.True(t, state.Visible)
	assert.Equal(t, "second", state.Text)
}

func TestController_UnboundIDShowsNothing(t *testing.T) {
	c := New()
	c.Bind("bound", "text")

	c.HoverEnter("unbound")
	assert.False(t, c.Snapshot().Visible)
}

func TestController_EmptyBindingIgnored(t *testing.T) {
	c := New()
	c.Bind("span-1-0", "")

	c.HoverEnter("span-1-0")
	assert.False(t, c.Snapshot().Visible)
}
