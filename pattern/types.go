// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// ErrEmptyPrimes indicates Analyze was called with no primes.
var ErrEmptyPrimes = fmt.Errorf("pattern: primes sequence is empty: %w", primespiral.ErrInvalidInput)

// lookupTolerance is the absolute slack used when matching an angle key.
const lookupTolerance = 1e-9

// Multiset holds the unique consecutive-vertex distances of one spiral,
// ascending, with Counts[i] occurrences of Distances[i].
type Multiset struct {
	Distances []float64 `json:"distances" yaml:"distances"`
	Counts    []int     `json:"counts" yaml:"counts"`
}

// Len returns the number of distinct distances.
func (m Multiset) Len() int { return len(m.Distances) }

// Total returns the number of distances (the segment count).
func (m Multiset) Total() int {
	total := 0
	for _, c := range m.Counts {
		total += c
	}

	return total
}

// MinCount returns the smallest occurrence count, or 0 for an empty multiset.
func (m Multiset) MinCount() int {
	if len(m.Counts) == 0 {
		return 0
	}
	lo := m.Counts[0]
	for _, c := range m.Counts[1:] {
		lo = min(lo, c)
	}

	return lo
}

// MaxCount returns the largest occurrence count, or 0 for an empty multiset.
func (m Multiset) MaxCount() int {
	hi := 0
	for _, c := range m.Counts {
		hi = max(hi, c)
	}

	return hi
}

// AngleResult pairs a sweep angle with its distance multiset.
type AngleResult struct {
	Angle    float64  `json:"angle" yaml:"angle"`
	Multiset Multiset `json:"multiset" yaml:"multiset"`
}

// Analysis is the outcome of one sweep, Results in ascending angle order.
type Analysis struct {
	Range   sweep.Range   `json:"range" yaml:"range"`
	Primes  int           `json:"primes" yaml:"primes"`
	Results []AngleResult `json:"results" yaml:"results"`
}

// Angles returns the swept angles in order.
func (a *Analysis) Angles() []float64 {
	out := make([]float64, len(a.Results))
	for i, r := range a.Results {
		out[i] = r.Angle
	}

	return out
}

// Lookup returns the multiset recorded for angle, matched within 1e-9.
// Complexity: O(log A).
func (a *Analysis) Lookup(angle float64) (Multiset, bool) {
	i := sort.Search(len(a.Results), func(i int) bool {
		return a.Results[i].Angle >= angle-lookupTolerance
	})
	if i < len(a.Results) && math.Abs(a.Results[i].Angle-angle) <= lookupTolerance {
		return a.Results[i].Multiset, true
	}

	return Multiset{}, false
}

// Kind tags a Classification.
type Kind int

const (
	// KindRegular marks uniform occurrence counts.
	KindRegular Kind = iota

	// KindIrregular marks differing occurrence counts.
	KindIrregular
)

// String returns "regular" or "irregular".
func (k Kind) String() string {
	if k == KindIrregular {
		return "irregular"
	}

	return "regular"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes "regular" or "irregular".
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "regular":
		*k = KindRegular
	case "irregular":
		*k = KindIrregular
	default:
		return fmt.Errorf("pattern: unknown kind %q: %w", b, primespiral.ErrInvalidInput)
	}

	return nil
}

// Classification is Regular(Count) or Irregular(Counts) for one angle.
// Count is set only for KindRegular and Counts only for KindIrregular.
type Classification struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Kind   Kind    `json:"kind" yaml:"kind"`
	Count  int     `json:"count,omitempty" yaml:"count,omitempty"`
	Counts []int   `json:"counts,omitempty" yaml:"counts,omitempty"`
}

// IsRegular reports Kind == KindRegular.
func (c Classification) IsRegular() bool { return c.Kind == KindRegular }

// Mean returns Count for a regular angle and the arithmetic mean of Counts otherwise.
func (c Classification) Mean() float64 {
	if c.Kind == KindRegular {
		return float64(c.Count)
	}
	if len(c.Counts) == 0 {
		return 0
	}
	sum := 0
	for _, n := range c.Counts {
		sum += n
	}

	return float64(sum) / float64(len(c.Counts))
}
