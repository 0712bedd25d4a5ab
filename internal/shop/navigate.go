package shop

import (
	"context"
	"sync"
	"time"

	"grocer-be/internal/schedule"
	"grocer-be/internal/view"
)

// Navigator moves the visitor to another page, immediately or after a delay.
type Navigator interface {
	Navigate(ctx context.Context, to view.Target, after time.Duration)
}

// ScheduledNavigator tracks the current page and applies delayed moves through
// a scheduler. A newer navigation replaces one still pending.
type ScheduledNavigator struct {
	sched *schedule.Scheduler

	mu      sync.Mutex
	current view.Target
	moved   bool
	next    *plannedMove
}

type plannedMove struct {
	to view.Target
	at *schedule.Deferred
}

const navigateAction = "navigate"

func NewScheduledNavigator(s *schedule.Scheduler, start view.Target) *ScheduledNavigator {
	return &ScheduledNavigator{sched: s, current: start}
}

func (n *ScheduledNavigator) Navigate(_ context.Context, to view.Target, after time.Duration) {
	if after <= 0 {
		n.sched.Cancel(navigateAction)
		n.mu.Lock()
		n.moved = true
		n.mu.Unlock()
		n.set(to)
		return
	}

	d := n.sched.After(after, navigateAction, func() { n.set(to) })
	n.mu.Lock()
	n.next = &plannedMove{to: to, at: d}
	n.mu.Unlock()
}

func (n *ScheduledNavigator) set(t view.Target) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = t
	n.next = nil
}

func (n *ScheduledNavigator) Current() view.Target {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Moved reports whether an immediate navigation happened.
func (n *ScheduledNavigator) Moved() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.moved
}

// Pending reports whether a delayed navigation has yet to happen.
func (n *ScheduledNavigator) Pending() bool {
	return n.sched.IsPending(navigateAction)
}

// Upcoming returns the target and due time of the pending delayed navigation.
func (n *ScheduledNavigator) Upcoming() (view.Target, time.Time, bool) {
	if !n.Pending() {
		return "", time.Time{}, false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.next == nil {
		return "", time.Time{}, false
	}
	return n.next.to, n.next.at.Due(), true
}
