package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		wait  time.Duration
		steps []step
	}{
		{
			name: "first call waits the full window",
			wait: 100 * time.Millisecond,
			steps: []step{
				{at: 0, call: true, arg: 1},
				{at: 90, want: []int{}},
				{at: 100, want: []int{1}},
			},
		},
		{
			name: "coalesced burst fires once with the latest argument",
			wait: 100 * time.Millisecond,
			steps: []step{
				{at: 0, call: true, arg: 1},
				{at: 10, call: true, arg: 2},
				{at: 50, want: []int{}},
				{at: 100, want: []int{2}},
				// scheduled flag is clear again, a later call starts a
				// fresh window
				{at: 300, call: true, arg: 3},
				{at: 350, want: []int{2}},
				{at: 400, want: []int{2, 3}},
			},
		},
		{
			name: "call inside the trailing window schedules the remainder",
			wait: 100 * time.Millisecond,
			steps: []step{
				{at: 0, call: true, arg: 1},
				{at: 100, want: []int{1}},
				{at: 150, call: true, arg: 2},
				{at: 190, want: []int{1}},
				{at: 200, want: []int{1, 2}},
			},
		},
		{
			name: "steady stream fires once per window",
			wait: 100 * time.Millisecond,
			steps: []step{
				{at: 0, call: true, arg: 1},
				{at: 30, call: true, arg: 2},
				{at: 60, call: true, arg: 3},
				{at: 100, want: []int{3}},
				{at: 130, call: true, arg: 4},
				{at: 160, call: true, arg: 5},
				{at: 200, want: []int{3, 5}},
				{at: 900, want: []int{3, 5}},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runSteps(t, tt.steps,
				func(clock Clock, record func(int)) (func(int), func()) {
					th := NewThrottler(tt.wait, record, WithClock(clock))

					return th.Call, nil
				})
		})
	}
}

func TestThrottler_argumentOverwrittenWhileScheduled(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()

	got := []int{}
	th := NewThrottler(100*time.Millisecond, func(v int) { got = append(got, v) }, WithClock(clock))

	// The call that triggers scheduling does not own the delivered argument;
	// whatever arrives last before the fire wins.
	th.Call(1)
	clock.Advance(99 * time.Millisecond)
	th.Call(2)
	clock.Advance(time.Millisecond)

	assert.Equal(t, []int{2}, got)
}

func TestNewThrottled(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()

	n := 0
	throttled := NewThrottled(100*time.Millisecond, func() { n++ }, WithClock(clock))

	throttled()
	throttled()
	throttled()
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, n, "burst collapses to one invocation")

	clock.Advance(time.Second)
	assert.Equal(t, 1, n, "no further fire without further calls")

	throttled()
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, n)
}
