package stats

import (
	"context"
	"math"

	apperrors "github.com/agbru/datakit/internal/errors"
)

// Implementation tags identifying which engine produced a Result.
const (
	ImplScalar     = "scalar"
	ImplVectorized = "vectorized"
)

// DefaultTolerance is the absolute tolerance within which the floating-point
// fields of two Results are considered equal. It is a policy constant, not a
// derived value; callers may override it per comparison but the default must
// stay at 1e-9.
const DefaultTolerance = 1e-9

// Result holds the descriptive statistics computed over one input sequence.
// It is constructed once per engine invocation and is immutable thereafter.
//
// For Count >= 1 and finite inputs the invariant Minimum <= Mean <= Maximum
// holds; Count is always >= 1 because empty input is rejected before a Result
// is constructed.
type Result struct {
	// Count is the number of observations.
	Count int
	// Mean is the arithmetic mean of the values.
	Mean float64
	// Minimum is the smallest value.
	Minimum float64
	// Maximum is the largest value.
	Maximum float64
	// Total is the sum of all values.
	Total float64
	// Impl identifies the engine that produced this result
	// (ImplScalar or ImplVectorized).
	Impl string
}

// Engine computes descriptive statistics over a value sequence. The two
// implementations differ only in execution strategy; their observable contract
// is identical.
type Engine interface {
	// Name returns the implementation tag recorded in produced Results.
	Name() string
	// Compute validates values and returns their descriptive statistics.
	Compute(ctx context.Context, values []float64) (Result, error)
}

// Engines returns the two engine implementations in execution order.
func Engines() []Engine {
	return []Engine{Scalar{}, Vectorized{}}
}

// ValidateValues checks that values is a usable numeric sequence: non-empty
// and containing only finite numbers. NaN and ±Inf are the residual
// "cannot be converted" class once the input is typed []float64; admitting
// them would void the Minimum <= Mean <= Maximum invariant and make the
// tolerance comparison meaningless.
//
// Returns an apperrors.ValidationError identifying the offending element, or
// nil. Both engines run this check before computing, so they fail identically
// on bad input.
func ValidateValues(values []float64) error {
	if len(values) == 0 {
		return apperrors.NewEmptyInputError()
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return apperrors.NewBadValueError(i, v)
		}
	}
	return nil
}
