package stats

import (
	"context"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Bounds for generated inputs. The two engines sum in different orders, so
// their totals differ by up to ~n^2 * eps * maxAbs; with these bounds the
// worst case stays two orders of magnitude below DefaultTolerance. Wider
// domains make the agreement property fail on rounding alone, which is the
// absolute-tolerance policy working as intended, not an engine bug.
const (
	genMaxAbs = 1e3
	genMaxLen = 32
)

// genValues generates non-empty slices of finite values within the bounds
// above.
func genValues() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(-genMaxAbs, genMaxAbs)).SuchThat(func(vs []float64) bool {
		return len(vs) > 0 && len(vs) <= genMaxLen
	})
}

func within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestEnginesAgree_PropertyBased verifies the central contract: for every
// valid input the scalar and vectorized engines produce identical counts and
// floating-point fields equal within DefaultTolerance.
func TestEnginesAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = genMaxLen
	properties := gopter.NewProperties(parameters)

	properties.Property("scalar and vectorized agree within tolerance", prop.ForAll(
		func(values []float64) bool {
			s, err := Scalar{}.Compute(context.Background(), values)
			if err != nil {
				t.Logf("scalar error: %v", err)
				return false
			}
			v, err := Vectorized{}.Compute(context.Background(), values)
			if err != nil {
				t.Logf("vectorized error: %v", err)
				return false
			}
			return s.Count == v.Count &&
				within(s.Mean, v.Mean, DefaultTolerance) &&
				within(s.Minimum, v.Minimum, DefaultTolerance) &&
				within(s.Maximum, v.Maximum, DefaultTolerance) &&
				within(s.Total, v.Total, DefaultTolerance)
		},
		genValues(),
	))

	properties.TestingRun(t)
}

// TestMeanBetweenBounds_PropertyBased verifies Minimum <= Mean <= Maximum for
// every produced Result on finite inputs.
func TestMeanBetweenBounds_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = genMaxLen
	properties := gopter.NewProperties(parameters)

	for _, engine := range Engines() {
		engine := engine
		properties.Property(engine.Name()+" keeps mean between minimum and maximum", prop.ForAll(
			func(values []float64) bool {
				res, err := engine.Compute(context.Background(), values)
				if err != nil {
					return false
				}
				return res.Minimum <= res.Mean && res.Mean <= res.Maximum
			},
			genValues(),
		))
	}

	properties.TestingRun(t)
}

// TestEnginesDeterministic_PropertyBased verifies that computing twice over
// the same input yields identical Results (engines are pure).
func TestEnginesDeterministic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.MaxSize = genMaxLen
	properties := gopter.NewProperties(parameters)

	for _, engine := range Engines() {
		engine := engine
		properties.Property(engine.Name()+" is deterministic", prop.ForAll(
			func(values []float64) bool {
				a, errA := engine.Compute(context.Background(), values)
				b, errB := engine.Compute(context.Background(), values)
				return errA == nil && errB == nil && a == b
			},
			genValues(),
		))
	}

	properties.TestingRun(t)
}
