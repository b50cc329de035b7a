package scroll

// Subscription is the handle returned by a subscribe call. Unsubscribe is
// idempotent and safe on a nil handle.
type Subscription struct {
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Signal is a minimal notification hub. Listeners run synchronously, in
// subscription order, on the goroutine that calls Emit.
type Signal struct {
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

func (s *Signal) Subscribe(fn func()) *Subscription {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return &Subscription{cancel: func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}}
}

func (s *Signal) Emit() {
	// Listeners may unsubscribe while we iterate
	snapshot := append([]listener(nil), s.listeners...)
	for _, l := range snapshot {
		l.fn()
	}
}

// Len returns the number of active listeners
func (s *Signal) Len() int {
	return len(s.listeners)
}
