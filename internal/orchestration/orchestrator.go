package orchestration

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/datakit/internal/stats"
)

var tracer = otel.Tracer("github.com/agbru/datakit/internal/orchestration")

// Comparison encapsulates the outcome of running both engines over the same
// input. It is constructed once per comparison call and read-only afterward.
type Comparison struct {
	// Scalar is the result produced by the scalar engine.
	Scalar stats.Result
	// Vectorized is the result produced by the vectorized engine.
	Vectorized stats.Result
	// AreEqual reports whether the two results agree: counts exactly, the
	// floating-point fields within the comparison tolerance.
	AreEqual bool
	// ScalarTime is the wall-clock duration of the scalar engine call.
	ScalarTime time.Duration
	// VectorizedTime is the wall-clock duration of the vectorized engine call.
	VectorizedTime time.Duration
}

// Compare runs both engines over values, timing each call, and compares their
// results within stats.DefaultTolerance.
//
// Engine failures propagate unchanged; both engines share the same validation
// rule, so whichever runs first reports the failure.
func Compare(ctx context.Context, values []float64) (Comparison, error) {
	return CompareWithTolerance(ctx, values, stats.DefaultTolerance)
}

// CompareWithTolerance is Compare with an explicit absolute tolerance. The
// tolerance is applied as an absolute difference, never a relative one:
// callers probing boundary behavior rely on a difference of exactly tol
// passing and anything larger failing.
func CompareWithTolerance(ctx context.Context, values []float64, tol float64) (Comparison, error) {
	scalarRes, scalarTime, err := timedCompute(ctx, stats.Scalar{}, values)
	if err != nil {
		return Comparison{}, err
	}

	vectorRes, vectorTime, err := timedCompute(ctx, stats.Vectorized{}, values)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		Scalar:         scalarRes,
		Vectorized:     vectorRes,
		AreEqual:       ResultsWithinTolerance(scalarRes, vectorRes, tol),
		ScalarTime:     scalarTime,
		VectorizedTime: vectorTime,
	}, nil
}

// timedCompute invokes one engine with wall-clock timing and a trace span
// around the call.
func timedCompute(ctx context.Context, engine stats.Engine, values []float64) (stats.Result, time.Duration, error) {
	ctx, span := tracer.Start(ctx, "stats.compute")
	span.SetAttributes(
		attribute.String("engine", engine.Name()),
		attribute.Int("input_len", len(values)),
	)
	defer span.End()

	start := time.Now()
	res, err := engine.Compute(ctx, values)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		return stats.Result{}, elapsed, err
	}
	return res, elapsed, nil
}

// ResultsWithinTolerance reports whether two results agree: Count must match
// exactly, while Mean, Minimum, Maximum and Total must each differ by no more
// than the absolute tolerance tol.
func ResultsWithinTolerance(a, b stats.Result, tol float64) bool {
	if a.Count != b.Count {
		return false
	}
	close := func(x, y float64) bool {
		return math.Abs(x-y) <= tol
	}
	return close(a.Mean, b.Mean) &&
		close(a.Minimum, b.Minimum) &&
		close(a.Maximum, b.Maximum) &&
		close(a.Total, b.Total)
}
