package svm

import (
	"github.com/YuminosukeSato/svmgo/oneslack"
)

// Option is a function that configures Learn.
type Option func(*config)

type config struct {
	c             float64
	epsilon       float64
	maxIterations int
	rescaling     Rescaling
	progress      func(oneslack.Progress)
}

func defaultConfig() config {
	p := oneslack.DefaultParams()
	return config{
		c:             p.C,
		epsilon:       p.Epsilon,
		maxIterations: p.MaxIterations,
		rescaling:     MarginRescaling,
	}
}

// WithC sets the regularization trade-off C.
func WithC(c float64) Option {
	return func(cfg *config) {
		cfg.c = c
	}
}

// WithEpsilon sets the solver convergence tolerance.
func WithEpsilon(epsilon float64) Option {
	return func(cfg *config) {
		cfg.epsilon = epsilon
	}
}

// WithMaxIterations caps the solver's outer iterations.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		cfg.maxIterations = n
	}
}

// WithRescaling selects slack or margin rescaling for loss-augmented
// decoding.
func WithRescaling(r Rescaling) Option {
	return func(cfg *config) {
		cfg.rescaling = r
	}
}

// WithProgress registers a callback invoked after every solver iteration.
func WithProgress(fn func(oneslack.Progress)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}
