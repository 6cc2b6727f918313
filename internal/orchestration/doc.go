// Package orchestration coordinates the execution of the two statistics
// engines and the comparison of their outputs.
//
// It times each engine invocation with wall-clock measurements, checks the
// numeric fields of both results for equality within an absolute tolerance,
// and aggregates everything into an immutable Comparison. Timing fields are
// non-deterministic by nature and never participate in correctness checks;
// AreEqual is the only correctness signal.
//
// Presentation is decoupled through small interfaces so the orchestration
// layer stays free of UI concerns.
package orchestration
