// SPDX-License-Identifier: MIT

package pattern

import (
	"math"
	"sort"

	"github.com/katalvlaran/primespiral/spiral"
)

// Histogram reduces the consecutive-vertex distances of path to a Multiset.
//
// Distances are sorted and merged left to right: a value joins the current
// group when it is within tol relative distance of the group's first value.
// tol == 0 merges only exactly equal values. A path with fewer than two
// vertices yields an empty Multiset.
//
// Complexity: O(N log N) time, O(N) memory.
func Histogram(path spiral.Path, tol float64) Multiset {
	return reduce(path.StepLengths(), tol)
}

// reduce sorts ds in place and groups it.
func reduce(ds []float64, tol float64) Multiset {
	m := Multiset{Distances: []float64{}, Counts: []int{}}
	if len(ds) == 0 {
		return m
	}
	sort.Float64s(ds)

	ref := ds[0]
	m.Distances = append(m.Distances, ref)
	m.Counts = append(m.Counts, 1)
	for _, d := range ds[1:] {
		if same(ref, d, tol) {
			m.Counts[len(m.Counts)-1]++
			continue
		}
		ref = d
		m.Distances = append(m.Distances, d)
		m.Counts = append(m.Counts, 1)
	}

	return m
}

// same reports |a-b| <= tol·max(|a|,|b|), or a == b when tol is 0.
func same(a, b, tol float64) bool {
	if tol == 0 {
		return a == b
	}

	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}
