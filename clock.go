package throttle

import (
	"time"
)

// Timer is the handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running, reporting whether it was
	// still pending. Stopping a timer that has already fired or already been
	// stopped is a safe no-op.
	Stop() bool
}

// Clock reports the current time and schedules deferred callbacks. The
// wrappers in this package take all timing from a Clock, so tests can
// substitute a deterministic implementation via WithClock.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules fn to run on its own goroutine once d has elapsed,
	// returning a handle that can cancel it before it fires.
	AfterFunc(d time.Duration, fn func()) Timer
}

// systemClock is the default Clock, backed by the time package. *time.Timer
// already satisfies Timer.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
