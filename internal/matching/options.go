package matching

import (
	"fmt"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Weights are the placement score factors. A candidate is only placed in a
// group scoring at most Upper.
type Weights struct {
	Role  int
	Match int
	Extra int
	Upper int
}

func DefaultWeights() Weights {
	return Weights{
		Role:  1 << 2,
		Match: 1 << 3,
		Extra: 1 << 5,
		Upper: 1 << 6,
	}
}

// Validate rejects negative factors. A zero score must stay minimal for the
// placement scan to stop early on it.
func (w Weights) Validate() error {
	if w.Role < 0 || w.Match < 0 || w.Extra < 0 || w.Upper < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v: %w", w, domain.ErrInvalidArgument)
	}
	return nil
}

type Option func(*Engine)

func WithWeights(weights Weights) Option {
	return func(e *Engine) {
		e.weights = weights
	}
}

// WithParallelism evaluates up to n rotations of one cutoff concurrently.
// n <= 1 keeps the sequential search.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// WithMetrics registers the engine collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

func WithLogger(logger ports.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithClock(clock ports.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}
