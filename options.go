package braidrep

import "runtime"

type options struct {
	workers int
	logger  *Logger
}

// Option configures a generator computation.
type Option func(*options)

// WithWorkers sets the number of workers the entry enumeration is
// partitioned over. Values <= 0 select runtime.GOMAXPROCS(0). The result is
// identical for every worker count; only wall time changes.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is discarded.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}
