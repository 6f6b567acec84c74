package fit

import (
	"fmt"
	"log/slog"
)

// Deterministic defaults.
const (
	DefaultLearningRate = 0.1
	DefaultIterations   = 1000
	DefaultLogEvery     = 100
)

// config aggregates every knob used by Line. Passed by value.
type config struct {
	lr       float64      // > 0
	iters    int          // > 0
	w0, b0   float64      // starting parameters
	logger   *slog.Logger // nil means silent
	logEvery int          // > 0; debug record every logEvery iterations
}

// Option customizes a Line run.
type Option func(*config)

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		lr:       DefaultLearningRate,
		iters:    DefaultIterations,
		logEvery: DefaultLogEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLearningRate sets the step size. Panics unless lr > 0.
func WithLearningRate(lr float64) Option {
	if !(lr > 0) {
		panic(fmt.Sprintf("fit: WithLearningRate(%v): must be > 0", lr))
	}
	return func(c *config) { c.lr = lr }
}

// WithIterations sets the number of descent steps. Panics unless n > 0.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("fit: WithIterations(%d): must be > 0", n))
	}
	return func(c *config) { c.iters = n }
}

// WithInitial sets the starting slope and intercept (default 0, 0).
func WithInitial(w, b float64) Option {
	return func(c *config) { c.w0, c.b0 = w, b }
}

// WithLogger routes progress records to l: a Debug record every
// logEvery iterations and an Info record when the run ends.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fit: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithLogEvery sets the debug logging interval. Panics unless n > 0.
func WithLogEvery(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("fit: WithLogEvery(%d): must be > 0", n))
	}
	return func(c *config) { c.logEvery = n }
}
