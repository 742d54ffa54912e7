package converter

import (
	"sync"
	"sync/atomic"
)

// Listener receives the representation produced by an update and the form
// that triggered it.
type Listener func(source Form, r Representation)

// Session fans an update from one form out to listeners for the other
// forms. While the fan-out runs the session is marked as updating and any
// update it triggers is ignored, so refreshing the polar fields never feeds
// back into the cartesian ones. A TUI tab or a WebSocket connection owns
// one session.
type Session struct {
	updating  atomic.Bool
	mu        sync.RWMutex
	listeners []Listener
	last      Representation
	hasLast   bool
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// Subscribe adds a listener called after every accepted update.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Update converts the parts of the given form and notifies the listeners.
// applied is false when the call came from inside a running fan-out.
func (s *Session) Update(from Form, first, second string) (r Representation, applied bool, err error) {
	if !s.updating.CompareAndSwap(false, true) {
		return Representation{}, false, nil
	}
	defer s.updating.Store(false)

	r, err = Convert(from, first, second)
	if err != nil {
		return Representation{}, true, err
	}

	s.mu.Lock()
	s.last, s.hasLast = r, true
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(from, r)
	}
	return r, true, nil
}

// Updating reports whether a fan-out is running.
func (s *Session) Updating() bool {
	return s.updating.Load()
}

// Last returns the most recent accepted representation.
func (s *Session) Last() (Representation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast
}
