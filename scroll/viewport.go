package scroll

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewportContainer adapts a bubbles viewport to Container. Units are lines:
// ScrollTop is the viewport's YOffset, ScrollHeight its total line count and
// ClientHeight its visible height.
//
// Every offset change emits a scroll event and every SetContent emits a
// mutation event, so a mounted Synchronizer sees both.
type ViewportContainer struct {
	vp       viewport.Model
	scroll   Signal
	mutation Signal
}

func NewViewportContainer(width, height int) *ViewportContainer {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return &ViewportContainer{vp: vp}
}

func (c *ViewportContainer) ScrollTop() int    { return c.vp.YOffset }
func (c *ViewportContainer) ScrollHeight() int { return c.vp.TotalLineCount() }
func (c *ViewportContainer) ClientHeight() int { return c.vp.Height }
func (c *ViewportContainer) Width() int        { return c.vp.Width }

func (c *ViewportContainer) OnScroll(fn func()) *Subscription   { return c.scroll.Subscribe(fn) }
func (c *ViewportContainer) OnMutation(fn func()) *Subscription { return c.mutation.Subscribe(fn) }

// SetScrollTop moves to offset, clamped to the scrollable range.
func (c *ViewportContainer) SetScrollTop(offset int) {
	before := c.vp.YOffset
	c.vp.SetYOffset(offset)
	if c.vp.YOffset != before {
		c.scroll.Emit()
	}
}

// SetSize resizes the visible area. The offset is re-clamped so a taller
// window never leaves blank space below the last line.
func (c *ViewportContainer) SetSize(width, height int) {
	c.vp.Width = width
	c.vp.Height = height
	c.SetScrollTop(c.vp.YOffset)
}

// SetContent replaces the transcript text and notifies mutation observers.
func (c *ViewportContainer) SetContent(content string) {
	before := c.vp.YOffset
	c.vp.SetContent(content)
	c.mutation.Emit()
	if c.vp.YOffset != before {
		c.scroll.Emit()
	}
}

// Update forwards mouse and viewport key input.
func (c *ViewportContainer) Update(msg tea.Msg) tea.Cmd {
	before := c.vp.YOffset
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	if c.vp.YOffset != before {
		c.scroll.Emit()
	}
	return cmd
}

func (c *ViewportContainer) View() string {
	return c.vp.View()
}

func (c *ViewportContainer) LineDown(n int) { c.SetScrollTop(c.vp.YOffset + n) }
func (c *ViewportContainer) LineUp(n int)   { c.SetScrollTop(c.vp.YOffset - n) }

func (c *ViewportContainer) HalfPageDown() { c.LineDown(max(c.vp.Height/2, 1)) }
func (c *ViewportContainer) HalfPageUp()   { c.LineUp(max(c.vp.Height/2, 1)) }
func (c *ViewportContainer) PageDown()     { c.LineDown(max(c.vp.Height, 1)) }
func (c *ViewportContainer) PageUp()       { c.LineUp(max(c.vp.Height, 1)) }
func (c *ViewportContainer) GotoTop()      { c.SetScrollTop(0) }
