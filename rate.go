package throttle

import (
	"sync"

	"golang.org/x/time/rate"
)

// Limiter gates a function behind a token-bucket rate limit. Calls that
// arrive while the bucket is empty are absorbed; the argument they carried
// is remembered and delivered by the next granted call, or by Flush.
type Limiter[T any] struct {
	limiter *rate.Limiter
	fn      func(T)

	mu      sync.Mutex
	latest  T
	pending bool
}

// NewLimiter returns a Limiter that invokes fn at the sustained rate limit,
// allowing bursts of up to burst immediate invocations.
func NewLimiter[T any](limit rate.Limit, burst int, fn func(T)) *Limiter[T] {
	return &Limiter[T]{limiter: rate.NewLimiter(limit, burst), fn: fn}
}

// Call records arg as the latest value and invokes the wrapped function with
// it if the limiter grants a token. It is safe for concurrent use and
// returns nothing.
func (l *Limiter[T]) Call(arg T) {
	l.mu.Lock()
	l.latest = arg
	l.pending = true
	if !l.limiter.Allow() {
		l.mu.Unlock()
		return
	}
	arg = l.latest
	l.pending = false
	l.mu.Unlock()

	l.fn(arg)
}

// Flush invokes the wrapped function with the most recently absorbed
// argument, bypassing the rate limit. It does nothing if no call has been
// absorbed since the last invocation.
func (l *Limiter[T]) Flush() {
	l.mu.Lock()
	if !l.pending {
		l.mu.Unlock()
		return
	}
	arg := l.latest
	l.pending = false
	l.mu.Unlock()

	l.fn(arg)
}
