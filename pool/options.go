package pool

import (
	"io"
	"log/slog"
)

const (
	// DefaultInitialSize is the number of records hydrated eagerly at
	// construction.
	DefaultInitialSize = 10

	// DefaultAutoHydrateSize is the number of records added per growth event
	// when an acquisition finds no free slot.
	DefaultAutoHydrateSize = 10
)

type options struct {
	initialSize     int
	autoHydrateSize int
	logger          *slog.Logger
}

// Option configures pool construction behavior.
type Option func(*options)

// WithInitialSize sets the number of records hydrated eagerly at
// construction. Negative values are treated as zero.
func WithInitialSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.initialSize = n
	}
}

// WithAutoHydrateSize sets the growth batch size used when an acquisition
// finds no free slot. Values below 1 fall back to the default.
func WithAutoHydrateSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultAutoHydrateSize
		}
		o.autoHydrateSize = n
	}
}

// WithLogger sets the logger used for debug-level hydration events.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			return
		}
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		initialSize:     DefaultInitialSize,
		autoHydrateSize: DefaultAutoHydrateSize,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
