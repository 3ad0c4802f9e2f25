package throttle

import (
	"sync"
	"time"
)

// Debouncer delays invoking a function until wait time has elapsed since the
// last call, delivering the most recently supplied argument. A burst of
// calls with gaps shorter than wait collapses to a single invocation.
type Debouncer[T any] struct {
	wait  time.Duration
	fn    func(T)
	clock Clock

	mu     sync.Mutex
	latest T
	timer  Timer
}

// NewDebouncer returns a Debouncer that invokes fn once wait has elapsed
// since the last Call. wait is not validated; non-positive values make
// every scheduled fire due immediately.
func NewDebouncer[T any](wait time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	c := newConfig(opts)

	return &Debouncer[T]{wait: wait, fn: fn, clock: c.clock}
}

// Call restarts the quiet period and records arg as the value passed to the
// wrapped function when it eventually fires. Only the last call of a burst
// results in an invocation. It is safe for concurrent use and does not wait
// for the wrapped function to run; nothing is returned to the caller.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest = arg
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.wait, d.fire)
}

// Cancel discards any pending invocation. It can be called multiple times,
// and after the pending invocation has already fired.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the clock's timer goroutine. The wrapped function is invoked
// outside the lock so it may call back into the debouncer.
func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	d.timer = nil
	arg := d.latest
	d.mu.Unlock()

	d.fn(arg)
}

// NewDebounced returns a debounced function that delays invoking f until
// after wait time has elapsed since the last time the debounced function was
// invoked.
//
// The returned cancel function can be used to cancel any pending invocation
// of f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times. The debounced function
// returns nothing and does not wait for f to run; f needs to be thread-safe
// as it runs on a timer goroutine.
func NewDebounced(wait time.Duration, f func(), opts ...Option) (debounced func(), cancel func()) {
	d := NewDebouncer(wait, func(struct{}) { f() }, opts...)

	return func() { d.Call(struct{}{}) }, d.Cancel
}
