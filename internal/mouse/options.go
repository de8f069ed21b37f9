package mouse

import "time"

// Per-call defaults. Options are resolved into a fresh opts value on
// every call, so no call can leak state into the next.
const (
	DefaultHoldDelay   = 10 * time.Millisecond
	DefaultDelayBefore = 10 * time.Millisecond
	DefaultDelayAfter  = 10 * time.Millisecond
)

type opts struct {
	sync        bool
	times       int
	holdDelay   time.Duration
	delayBefore time.Duration
	delayAfter  time.Duration
}

func resolveOpts(options []Option) opts {
	o := opts{
		sync:        true,
		times:       1,
		holdDelay:   DefaultHoldDelay,
		delayBefore: DefaultDelayBefore,
		delayAfter:  DefaultDelayAfter,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}

// Option adjusts a single operation.
type Option func(*opts)

// WithNoSync skips the server round trip normally performed after each
// injected event. Queued requests may then be processed after the call
// returns.
func WithNoSync() Option {
	return func(o *opts) { o.sync = false }
}

// WithTimes repeats a click n times. Values below 1 are treated as 1.
func WithTimes(n int) Option {
	return func(o *opts) {
		if n < 1 {
			n = 1
		}
		o.times = n
	}
}

// WithHoldDelay sets the pause between press and release during a
// click. Zero disables the pause.
func WithHoldDelay(d time.Duration) Option {
	return func(o *opts) { o.holdDelay = d }
}

// WithDelayBefore sets the pause between press and motion during a
// drag. Zero disables the pause.
func WithDelayBefore(d time.Duration) Option {
	return func(o *opts) { o.delayBefore = d }
}

// WithDelayAfter sets the pause between motion and release during a
// drag. Zero disables the pause.
func WithDelayAfter(d time.Duration) Option {
	return func(o *opts) { o.delayAfter = d }
}
