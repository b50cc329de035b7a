package scroll

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContainer struct {
	top, client, height int

	scroll   Signal
	mutation Signal
	writes   []int
}

func (c *fakeContainer) ScrollTop() int    { return c.top }
func (c *fakeContainer) ScrollHeight() int { return c.height }
func (c *fakeContainer) ClientHeight() int { return c.client }

func (c *fakeContainer) SetScrollTop(offset int) {
	offset = min(max(offset, 0), max(c.height-c.client, 0))
	c.writes = append(c.writes, offset)
	if offset != c.top {
		c.top = offset
		c.scroll.Emit()
	}
}

func (c *fakeContainer) OnScroll(fn func()) *Subscription   { return c.scroll.Subscribe(fn) }
func (c *fakeContainer) OnMutation(fn func()) *Subscription { return c.mutation.Subscribe(fn) }

// grow appends content the way a render would
func (c *fakeContainer) grow(lines int) {
	c.height += lines
	c.mutation.Emit()
}

type fakeInput struct{ focused int }

type focusedMsg struct{}

func (i *fakeInput) Focus() tea.Cmd {
	i.focused++
	return func() tea.Msg { return focusedMsg{} }
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSynchronizer() *Synchronizer {
	return New(Options{Now: func() time.Time { return epoch }})
}

// settle runs settle-point commands until something else comes back.
func settle(t *testing.T, s *Synchronizer, cmd tea.Cmd) tea.Msg {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(SettledMsg); !ok {
			return msg
		}
		cmd = s.Update(msg)
	}
	return nil
}

func mount(t *testing.T, c *fakeContainer) (*Synchronizer, *fakeInput, *Signal) {
	t.Helper()
	s := newTestSynchronizer()
	in := &fakeInput{}
	resize := &Signal{}
	msg := settle(t, s, s.Mount(Host{Container: c, Input: in, Resize: resize}))
	assert.IsType(t, focusedMsg{}, msg)
	return s, in, resize
}

func TestCheckScrollPosition(t *testing.T) {
	tests := []struct {
		name         string
		top          int
		height       int
		wantAtBottom bool
	}{
		{"far from bottom", 0, 1000, false},
		{"inside tolerance", 0, 600, true},
		{"tolerance edge", 0, 700, true},
		{"just past tolerance", 0, 701, false},
		{"scrolled to end", 500, 1000, true},
		{"content shorter than view", 0, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSynchronizer()
			s.container = &fakeContainer{top: tt.top, client: 500, height: tt.height}

			s.CheckScrollPosition()
			first := s.State()
			s.CheckScrollPosition()

			assert.Equal(t, tt.wantAtBottom, first.IsAtBottom)
			assert.Equal(t, !first.IsAtBottom, first.ShowScrollButton)
			assert.Equal(t, first, s.State())
		})
	}
}

func TestCustomTolerance(t *testing.T) {
	s := New(Options{Tolerance: 5})
	s.container = &fakeContainer{top: 0, client: 10, height: 16}

	s.CheckScrollPosition()
	assert.False(t, s.State().IsAtBottom)
}

func TestNoTolerance(t *testing.T) {
	s := New(Options{Tolerance: NoTolerance})
	c := &fakeContainer{top: 5, client: 10, height: 16}
	s.container = c

	s.CheckScrollPosition()
	assert.False(t, s.State().IsAtBottom, "one line short of the end")

	c.top = 6
	s.CheckScrollPosition()
	assert.True(t, s.State().IsAtBottom)
}

func TestScrollToBottomImmediate(t *testing.T) {
	c := &fakeContainer{client: 500, height: 1000}
	s := newTestSynchronizer()
	s.container = c

	cmd := s.ScrollToBottom(true)

	assert.Nil(t, cmd)
	assert.Equal(t, []int{500}, c.writes)
	assert.False(t, s.Animating())
}

func TestScrollToBottomAnimated(t *testing.T) {
	c := &fakeContainer{client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c

	require.NotNil(t, s.ScrollToBottom(false))
	require.True(t, s.Animating())

	gen := s.anim.gen
	prev := 0
	for elapsed := time.Duration(0); elapsed <= DefaultDuration+20*time.Millisecond; elapsed += 10 * time.Millisecond {
		s.Update(FrameMsg{id: s.id, gen: gen, Time: epoch.Add(elapsed)})
		assert.GreaterOrEqual(t, c.top, prev)
		assert.LessOrEqual(t, c.top, 100)
		prev = c.top
	}

	assert.Equal(t, 100, c.top)
	assert.False(t, s.Animating())
}

func TestAnimationFinalFrame(t *testing.T) {
	c := &fakeContainer{client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c
	s.ScrollToBottom(false)

	mid := s.Update(FrameMsg{id: s.id, gen: s.anim.gen, Time: epoch.Add(DefaultDuration / 2)})
	assert.NotNil(t, mid, "animation keeps ticking before the end")
	assert.Equal(t, 50, c.top)

	last := s.Update(FrameMsg{id: s.id, gen: s.animGen, Time: epoch.Add(DefaultDuration)})
	assert.Nil(t, last)
	assert.Equal(t, 100, c.top)
}

func TestScrollToBottomAlreadyThere(t *testing.T) {
	c := &fakeContainer{top: 100, client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c

	assert.Nil(t, s.ScrollToBottom(false))
	assert.False(t, s.Animating())
}

func TestOverlappingAnimationsRestart(t *testing.T) {
	c := &fakeContainer{client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c

	s.ScrollToBottom(false)
	oldGen := s.anim.gen
	s.Update(FrameMsg{id: s.id, gen: oldGen, Time: epoch.Add(DefaultDuration / 2)})
	require.Equal(t, 50, c.top)

	s.ScrollToBottom(false)
	newGen := s.anim.gen
	assert.NotEqual(t, oldGen, newGen)
	assert.Equal(t, 50, s.anim.from)

	// Frames from the superseded animation are ignored
	writes := len(c.writes)
	assert.Nil(t, s.Update(FrameMsg{id: s.id, gen: oldGen, Time: epoch.Add(DefaultDuration)}))
	assert.Len(t, c.writes, writes)

	s.Update(FrameMsg{id: s.id, gen: newGen, Time: epoch.Add(DefaultDuration)})
	assert.Equal(t, 100, c.top)
}

func TestImmediateSnapCancelsAnimation(t *testing.T) {
	c := &fakeContainer{client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c

	s.ScrollToBottom(false)
	gen := s.anim.gen
	s.ScrollToBottom(true)

	assert.False(t, s.Animating())
	assert.Nil(t, s.Update(FrameMsg{id: s.id, gen: gen, Time: epoch.Add(time.Millisecond)}))
	assert.Equal(t, 100, c.top)
}

func TestFrameForOtherSynchronizerIgnored(t *testing.T) {
	c := &fakeContainer{client: 10, height: 110}
	s := newTestSynchronizer()
	s.container = c
	s.ScrollToBottom(false)

	other := newTestSynchronizer()
	assert.Nil(t, s.Update(FrameMsg{id: other.id, gen: s.anim.gen, Time: epoch.Add(DefaultDuration)}))
	assert.Equal(t, 0, c.top)
}

func TestMount(t *testing.T) {
	c := &fakeContainer{client: 10, height: 1000}
	s, in, _ := mount(t, c)

	assert.True(t, s.Mounted())
	assert.Equal(t, 990, c.top)
	assert.Equal(t, 1, in.focused)
	assert.Equal(t, 1, c.scroll.Len())
	assert.Equal(t, 1, c.mutation.Len())
	assert.True(t, s.State().IsAtBottom)
}

func TestMountChecksBeforeSnapping(t *testing.T) {
	c := &fakeContainer{client: 10, height: 1000}
	s := newTestSynchronizer()
	s.state = State{}

	cmd := s.Mount(Host{Container: c})
	require.NotNil(t, cmd)

	// First settle point: initial check and mutation observer only
	next := s.Update(cmd())
	assert.Equal(t, 0, c.top)
	assert.False(t, s.State().IsAtBottom)
	assert.Equal(t, 1, c.mutation.Len())

	// Second settle point: snap, no input to focus
	assert.Nil(t, s.Update(next()))
	assert.Equal(t, 990, c.top)
	assert.True(t, s.State().IsAtBottom)
}

func TestMountWithoutContainer(t *testing.T) {
	s := newTestSynchronizer()

	assert.Nil(t, s.Mount(Host{}))
	assert.False(t, s.Mounted())
	assert.Nil(t, s.ScrollToBottom(false))
	assert.Nil(t, s.PinToBottom())
	assert.NotPanics(t, s.CheckScrollPosition)
	assert.NotPanics(t, s.Unmount)
}

func TestListenersRecheck(t *testing.T) {
	c := &fakeContainer{client: 10, height: 1000}
	s, _, resize := mount(t, c)

	// User scrolls up
	c.SetScrollTop(0)
	assert.True(t, s.State().ShowScrollButton)

	// Window grows tall enough to show everything
	c.client = 900
	resize.Emit()
	assert.True(t, s.State().IsAtBottom)

	// Content grows past the tolerance
	c.grow(500)
	assert.False(t, s.State().IsAtBottom)
}

func TestPinToBottom(t *testing.T) {
	c := &fakeContainer{client: 10, height: 100}
	s, _, _ := mount(t, c)
	require.Equal(t, 90, c.top)

	c.grow(30)
	cmd := s.PinToBottom()
	require.NotNil(t, cmd)
	assert.Nil(t, settle(t, s, cmd))
	assert.Equal(t, 120, c.top)
}

func TestPinToBottomWhenScrolledAway(t *testing.T) {
	c := &fakeContainer{client: 10, height: 1000}
	s, _, _ := mount(t, c)
	c.SetScrollTop(0)

	c.grow(10)
	assert.Nil(t, s.PinToBottom())
	assert.Equal(t, 0, c.top)
}

func TestPinToBottomCancelsAnimation(t *testing.T) {
	c := &fakeContainer{client: 10, height: 100}
	s, _, _ := mount(t, c)
	c.SetScrollTop(85)
	require.True(t, s.State().IsAtBottom)

	s.ScrollToBottom(false)
	require.True(t, s.Animating())

	settle(t, s, s.PinToBottom())
	assert.False(t, s.Animating())
	assert.Equal(t, 90, c.top)
}

func TestUnmount(t *testing.T) {
	c := &fakeContainer{client: 10, height: 1000}
	s, _, resize := mount(t, c)

	pending := s.PinToBottom()
	s.ScrollToBottom(false)

	s.Unmount()

	assert.False(t, s.Mounted())
	assert.Equal(t, 0, c.scroll.Len())
	assert.Equal(t, 0, c.mutation.Len())
	assert.Equal(t, 0, resize.Len())
	assert.False(t, s.Animating())

	// Pending settle callbacks from the old mount do nothing
	writes := len(c.writes)
	assert.Nil(t, settle(t, s, pending))
	assert.Len(t, c.writes, writes)

	assert.NotPanics(t, s.Unmount)
}

func TestRemount(t *testing.T) {
	first := &fakeContainer{client: 10, height: 100}
	s, _, _ := mount(t, first)
	stale := s.PinToBottom()

	second := &fakeContainer{client: 10, height: 50}
	settle(t, s, s.Mount(Host{Container: second}))

	assert.Equal(t, 0, first.scroll.Len())
	assert.Equal(t, 0, first.mutation.Len())
	assert.Equal(t, 1, second.scroll.Len())
	assert.Equal(t, 40, second.top)

	writes := len(first.writes)
	settle(t, s, stale)
	assert.Len(t, first.writes, writes)
}
