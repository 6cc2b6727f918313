package stats_test

import (
	"context"
	"fmt"

	"github.com/agbru/datakit/internal/stats"
)

func ExampleScalar_Compute() {
	res, err := stats.Scalar{}.Compute(context.Background(), []float64{1, 2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("count=%d total=%g mean=%g min=%g max=%g\n",
		res.Count, res.Total, res.Mean, res.Minimum, res.Maximum)
	// Output: count=3 total=6 mean=2 min=1 max=3
}

func ExampleVectorized_Compute() {
	res, err := stats.Vectorized{}.Compute(context.Background(), []float64{1.5, 2.5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s: mean=%g\n", res.Impl, res.Mean)
	// Output: vectorized: mean=2
}
