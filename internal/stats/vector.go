package stats

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vectorized computes statistics using gonum's bulk reduction operations over
// a dense float64 slice, mirroring how an array library computes the same
// quantities. Its summation order (and therefore its rounding) may differ from
// the scalar engine's, which is exactly why results are compared within a
// tolerance rather than for bit equality.
type Vectorized struct{}

// Verify interface compliance.
var _ Engine = Vectorized{}

// Name returns the implementation tag for the vectorized engine.
func (Vectorized) Name() string { return ImplVectorized }

// Compute applies count/sum/mean/min/max as whole-slice reductions.
func (Vectorized) Compute(ctx context.Context, values []float64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := ValidateValues(values); err != nil {
		return Result{}, err
	}

	return Result{
		Count:   len(values),
		Mean:    stat.Mean(values, nil),
		Minimum: floats.Min(values),
		Maximum: floats.Max(values),
		Total:   floats.Sum(values),
		Impl:    ImplVectorized,
	}, nil
}
