package notify

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocer-be/internal/schedule"
)

func phaseOf(tray *Tray, id int) (Phase, bool) {
	for _, n := range tray.Active() {
		if n.ID == id {
			return n.Phase, true
		}
	}
	return "", false
}

func TestTray_Lifecycle(t *testing.T) {
	mock := clock.NewMock()
	tray := NewTray(schedule.New(mock), DefaultTiming())

	tray.Notify(context.Background(), "Product added to cart!")

	p, ok := phaseOf(tray, 1)
	require.True(t, ok)
	assert.Equal(t, PhasePending, p)

	mock.Add(100 * time.Millisecond)
	require.Eventually(t, func() bool {
		p, _ := phaseOf(tray, 1)
		return p == PhaseVisible
	}, time.Second, time.Millisecond)

	mock.Add(1900 * time.Millisecond)
	require.Eventually(t, func() bool {
		p, _ := phaseOf(tray, 1)
		return p == PhaseHiding
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{"Product added to cart!"}, tray.Messages())

	mock.Add(300 * time.Millisecond)
	require.Eventually(t, func() bool {
		return len(tray.Active()) == 0
	}, time.Second, time.Millisecond)
}

func TestTray_Independent(t *testing.T) {
	mock := clock.NewMock()
	tray := NewTray(schedule.New(mock), DefaultTiming())
	ctx := context.Background()

	tray.Notify(ctx, "first")
	mock.Add(time.Second)
	tray.Notify(ctx, "second")

	assert.Equal(t, []string{"first", "second"}, tray.Messages())

	// first starts hiding at 2s and is removed at 2.3s, second lives until 3.3s.
	mock.Add(time.Second)
	require.Eventually(t, func() bool {
		p, _ := phaseOf(tray, 1)
		return p == PhaseHiding
	}, time.Second, time.Millisecond)

	mock.Add(300 * time.Millisecond)
	require.Eventually(t, func() bool {
		msgs := tray.Messages()
		return len(msgs) == 1 && msgs[0] == "second"
	}, time.Second, time.Millisecond)
}

func TestTiming_Lifetime(t *testing.T) {
	assert.Equal(t, 2300*time.Millisecond, DefaultTiming().Lifetime())
}

func TestTray_Drain(t *testing.T) {
	mock := clock.NewMock()
	sched := schedule.New(mock)
	tray := NewTray(sched, DefaultTiming())
	ctx := context.Background()

	tray.Notify(ctx, "a")
	tray.Notify(ctx, "b")
	assert.Equal(t, 4, sched.Len(), "show and hide pending for each toast")

	assert.Equal(t, []string{"a", "b"}, tray.Drain())
	assert.Empty(t, tray.Active())
	assert.Equal(t, 0, sched.Len())
	assert.Nil(t, tray.Drain())

	mock.Add(3 * time.Second)
	assert.Empty(t, tray.Active())
}
