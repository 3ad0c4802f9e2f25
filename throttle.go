// Package throttle provides wrappers that control when a callback runs:
// debounced, so it runs once a quiet period has passed since the last call;
// throttled, so it runs at most once per time window; or rate-gated, so
// calls beyond a sustained rate are absorbed.
//
// These wrappers are useful when calls may be triggered rapidly, such as in
// response to user input or file-system events, but the underlying operation
// is expensive and only needs to see the most recent value.
package throttle

import (
	"sync"
	"time"
)

// Throttler limits how often a function runs: at most once per wait window,
// firing on the trailing edge of the window with the most recently supplied
// argument.
//
// A call landing inside the trailing window of the previous fire schedules
// the window remainder; any other call, including the very first, schedules
// a fresh full wait. There is no immediate leading fire. Calls arriving
// while a fire is already scheduled only update the stored argument.
type Throttler[T any] struct {
	wait  time.Duration
	fn    func(T)
	clock Clock

	mu        sync.Mutex
	latest    T
	scheduled bool
	lastFire  time.Time
}

// NewThrottler returns a Throttler that invokes fn at most once per wait
// window. wait is not validated; non-positive values make every scheduled
// fire due immediately.
func NewThrottler[T any](wait time.Duration, fn func(T), opts ...Option) *Throttler[T] {
	c := newConfig(opts)

	return &Throttler[T]{wait: wait, fn: fn, clock: c.clock}
}

// Call records arg as the value delivered at the next fire and, if no fire
// is scheduled yet, schedules one. It is safe for concurrent use and does
// not wait for the wrapped function to run; nothing is returned to the
// caller.
func (t *Throttler[T]) Call(arg T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest = arg
	if t.scheduled {
		return
	}

	delay := t.wait
	if !t.lastFire.IsZero() {
		if elapsed := t.clock.Now().Sub(t.lastFire); elapsed < t.wait {
			delay = t.wait - elapsed
		}
	}

	t.scheduled = true
	t.clock.AfterFunc(delay, t.fire)
}

// fire runs on the clock's timer goroutine. The wrapped function is invoked
// outside the lock so it may call back into the throttler.
func (t *Throttler[T]) fire() {
	t.mu.Lock()
	t.lastFire = t.clock.Now()
	t.scheduled = false
	arg := t.latest
	t.mu.Unlock()

	t.fn(arg)
}

// NewThrottled returns a throttled function that invokes f at most once per
// wait window, on the trailing edge of the window.
//
// The throttled function is safe for concurrent use and returns nothing; f
// needs to be thread-safe as it runs on a timer goroutine.
func NewThrottled(wait time.Duration, f func(), opts ...Option) (throttled func()) {
	t := NewThrottler(wait, func(struct{}) { f() }, opts...)

	return func() { t.Call(struct{}{}) }
}
