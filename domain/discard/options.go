package discard

import (
	"io"
	"log/slog"
	"runtime"
)

type option func(Evaluator) Evaluator

// NewEvaluator returns an Evaluator with the defaults: one worker per CPU,
// the 95th percentile as the "high" metric, and no logging.
func NewEvaluator(opts ...option) Evaluator {
	e := Evaluator{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:    runtime.GOMAXPROCS(0),
		percentile: 0.95,
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// WithLogger sets the logger for the debug records of the table build and of
// each evaluation. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) option {
	return func(e Evaluator) Evaluator {
		if logger != nil {
			e.logger = logger
		}
		return e
	}
}

// WithWorkers bounds how many discard pairs are evaluated at once.
func WithWorkers(n int) option {
	return func(e Evaluator) Evaluator {
		if n > 0 {
			e.workers = n
		}
		return e
	}
}

// WithPercentile sets the quantile reported as Stats.High. Values outside
// [0, 1) are ignored.
func WithPercentile(p float64) option {
	return func(e Evaluator) Evaluator {
		if p >= 0 && p < 1 {
			e.percentile = p
		}
		return e
	}
}
