package throttle

// Option configures a wrapper at construction time.
type Option func(*config)

type config struct {
	clock Clock
}

func newConfig(opts []Option) config {
	c := config{clock: systemClock{}}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithClock returns an option that sets the clock used to schedule deferred
// invocations. The default is the system clock; tests can pass a fake to get
// deterministic timing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}
