package orchestration

import "github.com/agbru/datakit/internal/stats"

// ResultDocument is the JSON shape of a single engine result.
type ResultDocument struct {
	Impl    string  `json:"impl"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
	Total   float64 `json:"total"`
}

// ComparisonDocument is the JSON shape of a full comparison. Timings are
// expressed in seconds to keep the document language-neutral.
type ComparisonDocument struct {
	Scalar         ResultDocument `json:"scalar"`
	Vectorized     ResultDocument `json:"vectorized"`
	AreEqual       bool           `json:"are_equal"`
	ScalarTime     float64        `json:"scalar_time_seconds"`
	VectorizedTime float64        `json:"vectorized_time_seconds"`
}

func newResultDocument(res stats.Result) ResultDocument {
	return ResultDocument{
		Impl:    res.Impl,
		Count:   res.Count,
		Mean:    res.Mean,
		Minimum: res.Minimum,
		Maximum: res.Maximum,
		Total:   res.Total,
	}
}

// NewComparisonDocument converts a Comparison into its serializable form.
func NewComparisonDocument(comp Comparison) ComparisonDocument {
	return ComparisonDocument{
		Scalar:         newResultDocument(comp.Scalar),
		Vectorized:     newResultDocument(comp.Vectorized),
		AreEqual:       comp.AreEqual,
		ScalarTime:     comp.ScalarTime.Seconds(),
		VectorizedTime: comp.VectorizedTime.Seconds(),
	}
}
