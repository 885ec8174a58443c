package worker

import "github.com/okian/gelora/pkg/logger"

// Option applies a configuration option to the IngestWorker.
type Option func(*IngestWorker)

// WithName sets the worker's name used for logging.
func WithName(name string) Option {
	return func(w *IngestWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *IngestWorker) {
		if l != nil {
			w.logger = l
		}
	}
}
