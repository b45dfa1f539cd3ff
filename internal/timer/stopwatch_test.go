package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC)}
}

func TestStopwatch(t *testing.T) {
	t.Run("should start at zero and stopped", func(t *testing.T) {
		sw := NewStopwatch(newFakeClock())

		assert.False(t, sw.Running())
		assert.Equal(t, 0, sw.ElapsedSeconds())
	})

	t.Run("should measure elapsed time while running", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(90 * time.Second)

		assert.True(t, sw.Running())
		assert.Equal(t, 90, sw.ElapsedSeconds())
	})

	t.Run("should retain elapsed time when stopped", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(30 * time.Second)
		sw.Stop()
		clock.Advance(10 * time.Minute)

		assert.False(t, sw.Running())
		assert.Equal(t, 30, sw.ElapsedSeconds())
	})

	t.Run("should accumulate across start stop cycles", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(30 * time.Second)
		sw.Stop()

		sw.Start()
		clock.Advance(45 * time.Second)
		sw.Stop()

		assert.Equal(t, 75, sw.ElapsedSeconds())
	})

	t.Run("should ignore redundant start", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(10 * time.Second)
		sw.Start()
		clock.Advance(5 * time.Second)

		assert.Equal(t, 15, sw.ElapsedSeconds())
	})

	t.Run("should ignore redundant stop", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(10 * time.Second)
		sw.Stop()
		sw.Stop()

		assert.Equal(t, 10, sw.ElapsedSeconds())
	})

	t.Run("should clear on reset", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(time.Minute)
		sw.Reset()

		assert.False(t, sw.Running())
		assert.Equal(t, 0, sw.ElapsedSeconds())

		clock.Advance(time.Minute)
		assert.Equal(t, 0, sw.ElapsedSeconds())
	})

	t.Run("should truncate to whole seconds", func(t *testing.T) {
		clock := newFakeClock()
		sw := NewStopwatch(clock)

		sw.Start()
		clock.Advance(2500 * time.Millisecond)

		assert.Equal(t, 2, sw.ElapsedSeconds())
	})
}

func TestHandle(t *testing.T) {
	t.Run("should fire at the interval until stopped", func(t *testing.T) {
		var calls atomic.Int64
		h := Every(5*time.Millisecond, func() {
			calls.Add(1)
		})

		require.Eventually(t, func() bool {
			return calls.Load() >= 3
		}, time.Second, time.Millisecond)

		h.Stop()
	})

	t.Run("should not fire after stop returns", func(t *testing.T) {
		var calls atomic.Int64
		h := Every(5*time.Millisecond, func() {
			calls.Add(1)
		})

		time.Sleep(20 * time.Millisecond)
		h.Stop()
		after := calls.Load()

		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, after, calls.Load())
	})

	t.Run("should tolerate repeated stop", func(t *testing.T) {
		h := Every(time.Hour, func() {})

		h.Stop()
		h.Stop()
	})
}
