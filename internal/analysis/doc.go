// Package analysis classifies integers by the cycle their digit-sum-square
// trajectory falls into.
//
// The package builds on [dynamo] and provides:
//
//   - [Classify]: scan 1..N, detect each cycle and assign labels
//   - [Label]: the first-appearance label encoding a, b, …, z, aa, ab, …
//   - [Table]: paired cycle↔label mapping built during a run
//   - [SortLabels]: presentation order with "other" last
//   - [FormatCycle]: base-b rendering used by the printed key
//
// # Determinism
//
// Labels are a strict function of increasing integer order. Detection may
// run on several goroutines ([WithWorkers]) but label assignment always
// happens afterwards on one goroutine, so the output never depends on the
// worker count:
//
//	cls, err := analysis.Classify(ctx, analysis.Params{N: 255, Base: 10, MaxIter: 100})
//	for _, e := range cls.Key() {
//	    fmt.Printf("  %s: %s\n", e.Label, e.Text)
//	}
package analysis
