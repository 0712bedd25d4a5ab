package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

func TestScheduler_After(t *testing.T) {
	mock := clock.NewMock()
	s := New(mock)

	var fired atomic.Int32
	d := s.After(2*time.Second, "navigate", func() { fired.Add(1) })

	assert.Equal(t, "navigate", d.Name())
	assert.Equal(t, mock.Now().Add(2*time.Second), d.Due())
	assert.True(t, s.IsPending("navigate"))

	mock.Add(1999 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	mock.Add(time.Millisecond)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, time.Millisecond)
	assert.False(t, s.IsPending("navigate"))
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_Cancel(t *testing.T) {
	mock := clock.NewMock()
	s := New(mock)

	var fired atomic.Int32
	s.After(time.Second, "hide", func() { fired.Add(1) })

	assert.True(t, s.Cancel("hide"))
	assert.False(t, s.Cancel("hide"))

	mock.Add(5 * time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestScheduler_ReplaceSameName(t *testing.T) {
	mock := clock.NewMock()
	s := New(mock)

	var first, second atomic.Int32
	s.After(time.Second, "navigate", func() { first.Add(1) })
	s.After(3*time.Second, "navigate", func() { second.Add(1) })
	assert.Equal(t, 1, s.Len())

	mock.Add(time.Second)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())

	mock.Add(2 * time.Second)
	require.Eventually(t, func() bool { return second.Load() == 1 }, waitFor, time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestScheduler_Stop(t *testing.T) {
	mock := clock.NewMock()
	s := New(mock)

	var fired atomic.Int32
	s.After(time.Second, "a", func() { fired.Add(1) })
	s.After(time.Second, "b", func() { fired.Add(1) })
	require.Equal(t, 2, s.Len())

	s.Stop()
	mock.Add(time.Minute)
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int32(0), fired.Load())
}

func TestNew_DefaultsToWallClock(t *testing.T) {
	s := New(nil)
	assert.WithinDuration(t, time.Now(), s.Now(), time.Second)
}
