// SPDX-License-Identifier: MIT

package pattern

// Classify tags every result of a, preserving sweep order.
// A nil Analysis yields an empty slice.
func Classify(a *Analysis) []Classification {
	if a == nil {
		return []Classification{}
	}
	out := make([]Classification, len(a.Results))
	for i, r := range a.Results {
		out[i] = ClassifyMultiset(r.Angle, r.Multiset)
	}

	return out
}

// ClassifyMultiset returns Regular(count) when every distinct distance occurs
// equally often and Irregular(counts) otherwise. Counts is a copy in
// ascending-distance order. An empty multiset is Regular(0).
func ClassifyMultiset(angle float64, m Multiset) Classification {
	lo, hi := m.MinCount(), m.MaxCount()
	if lo == hi {
		return Classification{Angle: angle, Kind: KindRegular, Count: hi}
	}
	counts := make([]int, len(m.Counts))
	copy(counts, m.Counts)

	return Classification{Angle: angle, Kind: KindIrregular, Counts: counts}
}

// Regular keeps only the regular classifications, in order.
func Regular(cs []Classification) []Classification {
	out := make([]Classification, 0, len(cs))
	for _, c := range cs {
		if c.Kind == KindRegular {
			out = append(out, c)
		}
	}

	return out
}

// Tally counts regular and irregular classifications.
func Tally(cs []Classification) (regular, irregular int) {
	for _, c := range cs {
		if c.Kind == KindRegular {
			regular++
		} else {
			irregular++
		}
	}

	return regular, irregular
}
