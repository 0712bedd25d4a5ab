// Package notify delivers the short toast messages the storefront shows after
// cart, session and checkout actions.
package notify

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"grocer-be/internal/logger"
	"grocer-be/internal/schedule"
)

type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Timing is the toast lifecycle: it appears ShowAfter the call, starts hiding
// Duration after the call and is removed FadeOut after that.
type Timing struct {
	ShowAfter time.Duration
	Duration  time.Duration
	FadeOut   time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ShowAfter: 100 * time.Millisecond,
		Duration:  2 * time.Second,
		FadeOut:   300 * time.Millisecond,
	}
}

// Lifetime is how long a toast stays in the tray in total.
func (t Timing) Lifetime() time.Duration {
	return t.Duration + t.FadeOut
}

type Phase string

const (
	PhasePending Phase = "pending"
	PhaseVisible Phase = "visible"
	PhaseHiding  Phase = "hiding"
)

type Notice struct {
	ID      int
	Message string
	Phase   Phase
}

// Tray holds live toasts and moves them through their phases on the
// scheduler's clock.
type Tray struct {
	sched  *schedule.Scheduler
	timing Timing

	mu      sync.Mutex
	nextID  int
	notices []*Notice
}

func NewTray(s *schedule.Scheduler, timing Timing) *Tray {
	return &Tray{sched: s, timing: timing}
}

func (t *Tray) Notify(ctx context.Context, message string) {
	t.mu.Lock()
	t.nextID++
	n := &Notice{ID: t.nextID, Message: message, Phase: PhasePending}
	t.notices = append(t.notices, n)
	t.mu.Unlock()

	logger.FromCtx(ctx).Debug("notification queued",
		zap.String("layer", "notify"),
		zap.Int("notice_id", n.ID),
		zap.String("message", message),
	)

	key := noticeKey(n.ID)
	t.sched.After(t.timing.ShowAfter, key+stepShow, func() {
		t.setPhase(n, PhaseVisible)
	})
	t.sched.After(t.timing.Duration, key+stepHide, func() {
		t.sched.After(t.timing.FadeOut, key+stepRemove, func() {
			t.remove(n)
		})
		t.setPhase(n, PhaseHiding)
	})
}

const (
	stepShow   = ":show"
	stepHide   = ":hide"
	stepRemove = ":remove"
)

var lifecycleSteps = []string{stepShow, stepHide, stepRemove}

func noticeKey(id int) string {
	return "notice:" + strconv.Itoa(id)
}

func (t *Tray) setPhase(n *Notice, p Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.Phase = p
}

func (t *Tray) remove(n *Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, cur := range t.notices {
		if cur == n {
			t.notices = append(t.notices[:i], t.notices[i+1:]...)
			return
		}
	}
}

// Active returns copies of the toasts still in the tray, oldest first.
func (t *Tray) Active() []Notice {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Notice, len(t.notices))
	for i, n := range t.notices {
		out[i] = *n
	}
	return out
}

// Messages lists the text of every toast still in the tray.
func (t *Tray) Messages() []string {
	active := t.Active()
	out := make([]string, len(active))
	for i, n := range active {
		out[i] = n.Message
	}
	return out
}

// Drain empties the tray, cancelling the lifecycle of every toast, and
// returns their messages oldest first. A page handler drains the tray to
// carry its toasts across a redirect.
func (t *Tray) Drain() []string {
	t.mu.Lock()
	notices := t.notices
	t.notices = nil
	t.mu.Unlock()

	var out []string
	for _, n := range notices {
		key := noticeKey(n.ID)
		for _, step := range lifecycleSteps {
			t.sched.Cancel(key + step)
		}
		out = append(out, n.Message)
	}
	return out
}
