package sortedvec

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configures a SortedVec. Containers derived from another (SplitOff,
// Clone) carry the same options.
type Options struct {
	// Capacity pre-reserves storage for this many elements.
	Capacity int

	// Log, if set, receives debug level reports of structural changes:
	// subarrays opening and closing, and bulk rebuilds. The container does no
	// logging when it is nil.
	Log logger.Logger

	// ProbeRatio is the size ratio at which Difference and Intersection
	// switch from merging to probing. Zero or less disables probing.
	ProbeRatio int
}

// Option sets one field of Options.
type Option func(*Options)

// WithCapacity pre-reserves storage for capacity values and the matching
// number of subarrays.
func WithCapacity(capacity int) Option {
	return func(o *Options) {
		o.Capacity = capacity
	}
}

// WithLogger reports structural changes to log at debug level.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithProbeRatio sets the probe vs merge tipping point for set algebra. It
// only affects speed, never the output.
func WithProbeRatio(ratio int) Option {
	return func(o *Options) {
		o.ProbeRatio = ratio
	}
}

func newOptions(opts ...Option) Options {
	o := Options{
		ProbeRatio: DefaultProbeRatio,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
