// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/primespiral"
)

// MaxAngles caps the number of angles a single Range may enumerate.
const MaxAngles = 1_000_000

// endpointTolerance is the slack, in units of Step, allowed past End.
const endpointTolerance = 1e-9

// maxDecimals bounds the rounding precision applied to enumerated angles.
const maxDecimals = 12

var (
	// ErrInvalidStep indicates Step <= 0 or a non-finite Step.
	ErrInvalidStep = fmt.Errorf("sweep: step must be finite and > 0: %w", primespiral.ErrInvalidInput)

	// ErrNonFiniteBound indicates a NaN or ±Inf Start or End.
	ErrNonFiniteBound = fmt.Errorf("sweep: range bounds must be finite: %w", primespiral.ErrNumericDegenerate)

	// ErrInvertedRange indicates End < Start.
	ErrInvertedRange = fmt.Errorf("sweep: end must be >= start: %w", primespiral.ErrInvalidInput)

	// ErrTooManyAngles indicates a range that would enumerate more than MaxAngles angles.
	ErrTooManyAngles = fmt.Errorf("sweep: range exceeds %d angles: %w", MaxAngles, primespiral.ErrInvalidInput)
)

// Range is an inclusive angle sweep in degrees.
type Range struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Step  float64 `json:"step" yaml:"step"`
}

// Single returns the one-angle range {a, a, 1}.
func Single(a float64) Range {
	return Range{Start: a, End: a, Step: 1}
}

// Validate checks the range without enumerating it.
//
// Errors:
//   - ErrInvalidStep    if Step is NaN, ±Inf or <= 0.
//   - ErrNonFiniteBound if Start or End is NaN or ±Inf.
//   - ErrInvertedRange  if End < Start.
//   - ErrTooManyAngles  if the range holds more than MaxAngles angles.
func (r Range) Validate() error {
	if math.IsNaN(r.Step) || math.IsInf(r.Step, 0) || r.Step <= 0 {
		return fmt.Errorf("Validate(step=%v): %w", r.Step, ErrInvalidStep)
	}
	if !finite(r.Start) || !finite(r.End) {
		return fmt.Errorf("Validate(%v..%v): %w", r.Start, r.End, ErrNonFiniteBound)
	}
	if r.End < r.Start {
		return fmt.Errorf("Validate(%v..%v): %w", r.Start, r.End, ErrInvertedRange)
	}
	if r.span() >= MaxAngles {
		return fmt.Errorf("Validate(%s): %w", r, ErrTooManyAngles)
	}

	return nil
}

// Len returns the number of angles Angles would produce.
func (r Range) Len() (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	return int(r.span()) + 1, nil
}

// Angles enumerates the sweep in ascending order, endpoint included.
// Complexity: O(Len).
func (r Range) Angles() ([]float64, error) {
	n, err := r.Len()
	if err != nil {
		return nil, err
	}

	scale := math.Pow(10, float64(max(decimals(r.Start), decimals(r.Step))))
	out := make([]float64, n)
	for k := range out {
		a := r.Start + float64(k)*r.Step
		out[k] = math.Round(a*scale) / scale
	}

	return out, nil
}

// String renders the range as "start..end step s".
func (r Range) String() string {
	return FormatAngle(r.Start) + ".." + FormatAngle(r.End) + " step " + FormatAngle(r.Step)
}

// FormatAngle returns the shortest decimal form of a (no exponent, no trailing zeros).
func FormatAngle(a float64) string {
	if a == 0 {
		return "0"
	}

	return strconv.FormatFloat(a, 'f', -1, 64)
}

// span is the largest k with Start + k·Step within tolerance of End.
func (r Range) span() float64 {
	return math.Floor((r.End-r.Start)/r.Step + endpointTolerance)
}

// decimals counts the fractional digits of v's shortest representation, capped at maxDecimals.
func decimals(v float64) int {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}

	return min(len(s)-i-1, maxDecimals)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
