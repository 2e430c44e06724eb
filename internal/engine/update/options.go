package update

import "time"

// State is the phase of a module update.
type State string

const (
	// StateStaging indicates a staging directory exists and the module is being fetched.
	StateStaging State = "Staging"
	// StateValidating indicates the fetched configuration is being checked and persisted.
	StateValidating State = "Validating"
	// StateInstalled indicates the new snapshot replaced the previous one.
	StateInstalled State = "Installed"
	// StateAborted indicates the update failed and the previous snapshot was kept.
	StateAborted State = "Aborted"
)

type options struct {
	userAgent   string
	toolVersion string
	now         func() time.Time
	observe     func(moduleKey string, state State)
}

// Option configures an updater.
type Option func(*options)

// WithClient sets the identity written into every storage status.
func WithClient(userAgent, toolVersion string) Option {
	return func(o *options) {
		o.userAgent = userAgent
		o.toolVersion = toolVersion
	}
}

// WithClock replaces the time source of update timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithStateObserver registers fn to be called on every module state change.
func WithStateObserver(fn func(moduleKey string, state State)) Option {
	return func(o *options) {
		o.observe = fn
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
