// Package dynamo provides the core primitives of the digit-sum-square
// dynamical system.
//
// The package defines the iterated map and the machinery for finding the
// cycle an integer eventually falls into:
//
//   - [Map]: one step f(x) = (sum of base-b digits of x)²
//   - [Detector]: bounded iteration that reports the first recurrence
//   - [Cycle]: the repeating tail of a trajectory
//   - [Canonical]: rotation-invariant representative of a cycle
//
// # Example
//
//	m, _ := dynamo.NewMap(10)
//	det, _ := dynamo.NewDetector(m, 100)
//	orbit, ok := det.Detect(7)
//	if ok {
//	    fmt.Println(orbit.Cycle) // [169 256]
//	}
//
// # Thread Safety
//
// [Map] and [Detector] hold no mutable state. Every call to [Detector.Detect]
// owns its own trajectory history, so a single Detector may be shared across
// goroutines.
package dynamo
