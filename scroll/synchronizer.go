// Package scroll keeps a chat transcript pinned to its newest line.
//
// A Synchronizer watches a scrollable Container, tracks whether the reader is
// at (or near) the bottom, animates jumps back to the bottom and tells the
// host when to offer a "jump to latest" affordance.
//
// The Synchronizer is driven from a Bubble Tea update loop: operations that
// need to wait return a tea.Cmd, and the host feeds the resulting messages
// back through Update. Render settle points are commands whose message lands
// after the current update/render cycle; animation frames are ticks.
package scroll

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mockchat/config"
)

const (
	// DefaultBottomTolerance is how far from the end, in container units,
	// the view still counts as at the bottom.
	DefaultBottomTolerance = 200
	DefaultDuration        = 300 * time.Millisecond
	DefaultFrameInterval   = time.Second / 60

	// NoTolerance asks for a strict bottom: only the last line counts.
	NoTolerance = -1
)

// Container is the scrollable area being synchronized.
type Container interface {
	ScrollTop() int
	SetScrollTop(offset int)
	ScrollHeight() int
	ClientHeight() int
	OnScroll(fn func()) *Subscription
	OnMutation(fn func()) *Subscription
}

// Input is the field that receives focus once the transcript is mounted.
type Input interface {
	Focus() tea.Cmd
}

// Source delivers change notifications, e.g. terminal resizes.
type Source interface {
	Subscribe(fn func()) *Subscription
}

// Host bundles what Mount attaches to. Only Container is required.
type Host struct {
	Container Container
	Input     Input
	Resize    Source
}

// State is derived from container geometry on every check.
// ShowScrollButton is always !IsAtBottom.
type State struct {
	IsAtBottom       bool
	ShowScrollButton bool
}

type Options struct {
	Tolerance     int
	Duration      time.Duration
	FrameInterval time.Duration
	Now           func() time.Time
}

// FrameMsg is one animation frame.
type FrameMsg struct {
	id   int64
	gen  int
	Time time.Time
}

// SettledMsg fires once the pending render has been applied.
type SettledMsg struct {
	id    int64
	mount int
	run   func() tea.Cmd
}

type animation struct {
	gen      int
	start    time.Time
	from     int
	distance int
}

var lastID atomic.Int64

type Synchronizer struct {
	id   int64
	opts Options

	container Container
	input     Input
	state     State

	mounted     bool
	mountGen    int
	scrollSub   *Subscription
	resizeSub   *Subscription
	mutationSub *Subscription

	animGen int
	anim    *animation
}

// New returns an unmounted Synchronizer. Zero option fields take the
// defaults; a Tolerance of NoTolerance counts only the exact end as bottom.
func New(opts Options) *Synchronizer {
	switch {
	case opts.Tolerance == 0:
		opts.Tolerance = DefaultBottomTolerance
	case opts.Tolerance < 0:
		opts.Tolerance = 0
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Synchronizer{
		id:    lastID.Add(1),
		opts:  opts,
		state: State{IsAtBottom: true},
	}
}

func (s *Synchronizer) State() State    { return s.state }
func (s *Synchronizer) Mounted() bool   { return s.mounted }
func (s *Synchronizer) Animating() bool { return s.anim != nil }

// CheckScrollPosition recomputes State from the container geometry.
// No-op without a container.
func (s *Synchronizer) CheckScrollPosition() {
	if s.container == nil {
		return
	}
	top := s.container.ScrollTop()
	client := s.container.ClientHeight()
	height := s.container.ScrollHeight()

	s.state.IsAtBottom = top+client >= height-s.opts.Tolerance
	s.state.ShowScrollButton = !s.state.IsAtBottom
}

// Updated is the per-update-cycle hook; it re-checks the position.
func (s *Synchronizer) Updated() {
	s.CheckScrollPosition()
}

// ScrollToBottom moves the view to the last line. With immediate it snaps
// and returns nil; otherwise it starts an eased animation and returns the
// first frame. The target is fixed when the animation starts. Starting a
// new scroll supersedes any running animation.
func (s *Synchronizer) ScrollToBottom(immediate bool) tea.Cmd {
	if s.container == nil {
		return nil
	}

	target := max(s.container.ScrollHeight()-s.container.ClientHeight(), 0)
	s.cancelAnimation()

	if immediate {
		s.container.SetScrollTop(target)
		return nil
	}

	from := s.container.ScrollTop()
	if from == target {
		return nil
	}

	s.anim = &animation{
		gen:      s.animGen,
		start:    s.opts.Now(),
		from:     from,
		distance: target - from,
	}
	if config.DebugLog != nil {
		config.DebugLog.Debug("scroll animation", "from", from, "to", target, "gen", s.animGen)
	}
	return s.frame(s.animGen)
}

// PinToBottom keeps the view glued to new content: if the view is at the
// bottom now, it snaps to the (possibly taller) bottom at the next settle
// point. Returns nil when there is nothing to do.
func (s *Synchronizer) PinToBottom() tea.Cmd {
	if !s.state.IsAtBottom || s.container == nil {
		return nil
	}
	return s.settle(func() tea.Cmd {
		if s.container == nil {
			return nil
		}
		s.cancelAnimation()
		s.container.SetScrollTop(s.container.ScrollHeight())
		return nil
	})
}

// Mount attaches the scroll and resize listeners, then after the first
// settle point runs the initial check and starts observing content
// mutations, and after that snaps to the bottom and focuses the input.
// Mounting again tears the previous mount down first.
func (s *Synchronizer) Mount(h Host) tea.Cmd {
	if s.mounted {
		s.Unmount()
	}
	if h.Container == nil {
		return nil
	}

	s.container = h.Container
	s.input = h.Input
	s.mounted = true
	s.mountGen++

	s.scrollSub = s.container.OnScroll(s.CheckScrollPosition)
	if h.Resize != nil {
		s.resizeSub = h.Resize.Subscribe(s.CheckScrollPosition)
	}

	if config.DebugLog != nil {
		config.DebugLog.Debug("scroll synchronizer mounted", "id", s.id, "mount", s.mountGen)
	}

	snapAndFocus := s.settle(func() tea.Cmd {
		s.ScrollToBottom(true)
		if s.input != nil {
			return s.input.Focus()
		}
		return nil
	})
	return s.settle(func() tea.Cmd {
		s.CheckScrollPosition()
		s.mutationSub = s.container.OnMutation(s.CheckScrollPosition)
		return snapAndFocus
	})
}

// Unmount detaches every listener, the mutation observer included, and
// drops pending frames and settle callbacks. It runs at most once per Mount.
func (s *Synchronizer) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	s.scrollSub.Unsubscribe()
	s.resizeSub.Unsubscribe()
	s.mutationSub.Unsubscribe()
	s.scrollSub, s.resizeSub, s.mutationSub = nil, nil, nil

	s.cancelAnimation()
	s.container = nil
	s.input = nil

	if config.DebugLog != nil {
		config.DebugLog.Debug("scroll synchronizer unmounted", "id", s.id, "mount", s.mountGen)
	}
}

// Update routes frame and settle messages addressed to this Synchronizer.
func (s *Synchronizer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.id != s.id {
			return nil
		}
		return s.step(msg)

	case SettledMsg:
		if msg.id != s.id || !s.mounted || msg.mount != s.mountGen {
			return nil
		}
		return msg.run()
	}
	return nil
}

func (s *Synchronizer) step(msg FrameMsg) tea.Cmd {
	a := s.anim
	if a == nil || msg.gen != a.gen {
		return nil
	}
	if s.container == nil {
		s.anim = nil
		return nil
	}

	progress := 1.0
	if s.opts.Duration > 0 {
		progress = min(float64(msg.Time.Sub(a.start))/float64(s.opts.Duration), 1)
	}
	s.container.SetScrollTop(interpolate(a.from, a.distance, Ease(progress)))

	if progress < 1 {
		return s.frame(a.gen)
	}
	s.anim = nil
	return nil
}

func (s *Synchronizer) frame(gen int) tea.Cmd {
	id := s.id
	return tea.Tick(s.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{id: id, gen: gen, Time: t}
	})
}

func (s *Synchronizer) settle(run func() tea.Cmd) tea.Cmd {
	msg := SettledMsg{id: s.id, mount: s.mountGen, run: run}
	return func() tea.Msg { return msg }
}

func (s *Synchronizer) cancelAnimation() {
	s.animGen++
	s.anim = nil
}
