// Package stats computes descriptive statistics (count, sum, mean, minimum,
// maximum) over a sequence of float64 values using two independent engines.
//
// The scalar engine performs an explicit single left-to-right pass; the
// vectorized engine converts the sequence into a dense slice and applies the
// bulk reduction operations from gonum. Both engines honor the same contract
// and fail identically on invalid input, which makes their outputs directly
// comparable: for every valid input they must agree within an absolute
// tolerance (DefaultTolerance).
//
// Engines are pure functions of their input and carry no state, so they are
// safe for concurrent use without synchronization.
package stats
