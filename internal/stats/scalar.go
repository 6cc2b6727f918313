package stats

import "context"

// Scalar computes statistics via an explicit sequential pass over the input.
// It exists as the straightforward reference against which the vectorized
// engine is benchmarked and cross-checked.
type Scalar struct{}

// Verify interface compliance.
var _ Engine = Scalar{}

// Name returns the implementation tag for the scalar engine.
func (Scalar) Name() string { return ImplScalar }

// Compute performs a single left-to-right pass: it seeds the accumulators from
// the first element, then folds each subsequent element into count, total,
// minimum and maximum. Summation order is the input order and must not be
// reordered — that is what makes the tolerance comparison against the
// vectorized engine meaningful.
func (Scalar) Compute(ctx context.Context, values []float64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := ValidateValues(values); err != nil {
		return Result{}, err
	}

	first := values[0]
	count := 1
	total := first
	minimum := first
	maximum := first

	for _, v := range values[1:] {
		count++
		total += v
		if v < minimum {
			minimum = v
		}
		if v > maximum {
			maximum = v
		}
	}

	return Result{
		Count:   count,
		Mean:    total / float64(count),
		Minimum: minimum,
		Maximum: maximum,
		Total:   total,
		Impl:    ImplScalar,
	}, nil
}
