package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func TestTimer_BurstPublishesOnlyLastValue(t *testing.T) {
	clock := newFakeClock()
	timer := New(600*time.Millisecond, clock)

	var fired []string
	for _, v := range []string{"a", "an", "ann"} {
		timer.Start(v)
		clock.Advance(100 * time.Millisecond)
		if v, ok := timer.Due(); ok {
			fired = append(fired, v)
		}
	}
	require.Empty(t, fired)
	require.True(t, timer.Pending())

	clock.Advance(600 * time.Millisecond)
	v, ok := timer.Due()
	require.True(t, ok)
	fired = append(fired, v)

	require.Equal(t, []string{"ann"}, fired)
	require.False(t, timer.Pending())

	_, ok = timer.Due()
	require.False(t, ok, "a fired value must not fire twice")
}

func TestTimer_SpacedValuesPublishEach(t *testing.T) {
	clock := newFakeClock()
	timer := New(600*time.Millisecond, clock)

	var fired []string
	for _, v := range []string{"bob", "ann", "eve"} {
		timer.Start(v)
		clock.Advance(700 * time.Millisecond)
		if v, ok := timer.Due(); ok {
			fired = append(fired, v)
		}
	}
	require.Equal(t, []string{"bob", "ann", "eve"}, fired)
}

func TestTimer_StaleTokenDoesNotFire(t *testing.T) {
	timer := New(time.Second, newFakeClock())

	first := timer.Start("first")
	second := timer.Start("second")

	_, ok := timer.Fire(first)
	require.False(t, ok)

	v, ok := timer.Fire(second)
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestTimer_StopCancelsPending(t *testing.T) {
	clock := newFakeClock()
	timer := New(time.Second, clock)

	tok := timer.Start("value")
	timer.Stop()
	require.False(t, timer.Pending())

	_, ok := timer.Fire(tok)
	require.False(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = timer.Due()
	require.False(t, ok)
}

func TestTimer_DeadlineFollowsClock(t *testing.T) {
	clock := newFakeClock()
	timer := New(600*time.Millisecond, clock)

	tok := timer.Start("x")
	require.Equal(t, clock.now.Add(600*time.Millisecond), tok.Deadline)
	require.Equal(t, 600*time.Millisecond, timer.Delay())
}
