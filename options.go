package birel

import "log/slog"

type options struct {
	capacity int
	logger   *Logger
}

// Option configures Index and Bijection constructors.
type Option func(*options)

// WithCapacity sets the initial key capacity of both the forward and the
// reverse index. It is a hint only; the indices grow as needed.
//
// Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithLogger sets a custom structured logger.
//
// Example:
//
//	logger := birel.NewJSONLogger(slog.LevelDebug)
//	ix := birel.New[string, int](birel.WithLogger(logger))
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
