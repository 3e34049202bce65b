// Package manhattan provides tunable options and error definitions
// for L1 coverage counting over a grid.Grid.
package manhattan

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for coverage counting.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("manhattan: grid is nil")

	// ErrNegativeRadius is returned when the radius is below zero.
	ErrNegativeRadius = errors.New("manhattan: radius cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("manhattan: invalid option supplied")
)

// Option configures counting behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it will be recorded
// internally and surfaced as ErrOptionViolation when Count or Covered
// is invoked.
type Option func(*Options)

// Options holds parameters that customize Count and Covered.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Wraparound folds every covered coordinate onto the grid torus
	// before counting, instead of pruning at the boundary.
	Wraparound bool

	// Workers is the number of goroutines generating neighborhoods.
	// 1 keeps execution fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - boundary pruning (Wraparound == false)
//   - sequential execution (Workers == 1)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Wraparound: false,
		Workers:    1,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWraparound treats the grid as a torus: coverage spilling over one
// edge re-enters from the opposite side instead of being clipped.
func WithWraparound() Option {
	return func(o *Options) {
		o.Wraparound = true
	}
}

// WithWorkers splits neighborhood generation across n goroutines.
//
//	n > 1: parallel generation with n workers
//	n == 1: explicit sequential execution
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}
