// Package pattern sweeps a turn-angle range over a prime spiral and classifies
// every angle by the histogram of its consecutive-vertex distances.
//
// 🚀 Pipeline per angle θ:
//
//	spiral.Generate(primes, θ) → Path
//	Histogram(path, tol)       → Multiset{Distances ascending, Counts}
//	ClassifyMultiset(θ, m)     → Classification
//
// ✨ Classification is a tagged variant:
//
//	KindRegular   – every distinct distance occurs the same number of times;
//	                Count carries that common number.
//	KindIrregular – occurrence counts differ; Counts carries the full vector
//	                in ascending-distance order.
//
// A multiset with a single distinct distance is trivially regular with
// Count == total number of segments.
//
// ⚙️ Concurrency:
//
//	Angles are independent, so AnalyzeContext fans them out over an errgroup
//	limited to WithWorkers(n) goroutines (default GOMAXPROCS). Each task writes
//	only its own slot of the result slice; output order is the sweep order no
//	matter how tasks are scheduled. WithWorkers(1) runs the sweep serially.
//
// Tolerance:
//
//	Step lengths are recomputed from floating-point vertices, so two segments
//	of the same prime may differ in the last bits. Histogram merges values
//	within a relative tolerance (default 1e-9); WithTolerance(0) requests
//	exact equality.
//
// Complexity: O(A·N log N) for A angles and N primes.
package pattern
