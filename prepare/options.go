package prepare

import "github.com/sirupsen/logrus"

// Option configures Prepare.
type Option func(*Options)

// Options holds Prepare knobs.
type Options struct {
	// Logger receives preprocessing diagnostics. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with the standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithLogger sets the diagnostics logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
