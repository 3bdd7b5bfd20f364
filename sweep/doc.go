// Package sweep describes an inclusive range of turn angles walked at a fixed step.
//
// A Range{Start, End, Step} enumerates
//
//	angle_k = Start + k·Step,  k = 0, 1, ... while angle_k <= End (+ Step·1e-9)
//
// so the endpoint is part of the sweep whenever it lands on a step boundary,
// even if floating-point arithmetic puts it a hair past End. Each angle is
// computed by multiplication rather than running addition, and rounded to the
// decimal precision of Start and Step, so keys print as 1.3 and not
// 1.3000000000000003.
//
// Validation fails fast: a zero, negative or non-finite Step would never
// terminate (or silently run backward), so Validate rejects it before any
// angle is produced.
//
//	r := sweep.Range{Start: 1, End: 2, Step: 0.5}
//	angles, _ := r.Angles() // [1 1.5 2]
package sweep
