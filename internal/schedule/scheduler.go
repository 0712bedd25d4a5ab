// Package schedule runs named actions after a delay. Scheduling an action
// under a name that is already pending replaces it.
package schedule

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type Scheduler struct {
	clock clock.Clock

	mu      sync.Mutex
	pending map[string]*Deferred
}

// Deferred is a single scheduled action.
type Deferred struct {
	name  string
	due   time.Time
	timer *clock.Timer
}

func (d *Deferred) Name() string { return d.name }

func (d *Deferred) Due() time.Time { return d.due }

func New(c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.New()
	}
	return &Scheduler{clock: c, pending: make(map[string]*Deferred)}
}

func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After runs fn once delay has elapsed, unless the action is cancelled or
// replaced first.
func (s *Scheduler) After(delay time.Duration, name string, fn func()) *Deferred {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[name]; ok {
		prev.timer.Stop()
	}

	d := &Deferred{name: name, due: s.clock.Now().Add(delay)}
	d.timer = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		current := s.pending[name] == d
		if current {
			delete(s.pending, name)
		}
		s.mu.Unlock()

		if current {
			fn()
		}
	})
	s.pending[name] = d
	return d
}

// Cancel stops the named action and reports whether it was still pending.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.pending[name]
	if !ok {
		return false
	}
	d.timer.Stop()
	delete(s.pending, name)
	return true
}

func (s *Scheduler) IsPending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[name]
	return ok
}

// Len is the number of actions still waiting to run.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Stop cancels everything pending.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, d := range s.pending {
		d.timer.Stop()
		delete(s.pending, name)
	}
}
