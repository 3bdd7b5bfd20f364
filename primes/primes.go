// SPDX-License-Identifier: MIT

package primes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/primespiral"
)

// ErrInvalidCount is returned by First when n <= 0.
var ErrInvalidCount = fmt.Errorf("primes: count must be > 0: %w", primespiral.ErrInvalidInput)

// smallBound covers n < 6, where Rosser's bound does not hold (p_5 = 11).
const smallBound = 13

// First returns the first n primes in increasing order.
//
// Errors:
//   - ErrInvalidCount if n <= 0.
//
// Complexity: O(L log log L) time, O(L) memory, L = UpperBound(n).
func First(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("First(%d): %w", n, ErrInvalidCount)
	}

	found := Sieve(UpperBound(n))
	// UpperBound guarantees len(found) >= n; copy so callers own a tight slice.
	out := make([]int, n)
	copy(out, found[:n])

	return out, nil
}

// UpperBound returns a sieve limit that contains at least n primes.
// For n < 6 a small constant is used; otherwise n(ln n + ln ln n).
// Returns 0 for n <= 0.
func UpperBound(n int) int {
	if n <= 0 {
		return 0
	}
	if n < 6 {
		return smallBound
	}
	fn := float64(n)

	return int(math.Ceil(fn * (math.Log(fn) + math.Log(math.Log(fn)))))
}

// Sieve returns every prime p with 2 <= p <= limit.
// limit < 2 yields an empty (non-nil) slice.
//
// Complexity: O(limit log log limit) time, O(limit) memory.
func Sieve(limit int) []int {
	if limit < 2 {
		return []int{}
	}

	composite := make([]bool, limit+1)
	var p, m int
	for p = 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m = p * p; m <= limit; m += p {
			composite[m] = true
		}
	}

	// π(x) ≈ x/ln x; a little headroom avoids regrowth.
	out := make([]int, 0, int(float64(limit)/math.Log(float64(limit))*1.3)+1)
	for p = 2; p <= limit; p++ {
		if !composite[p] {
			out = append(out, p)
		}
	}

	return out
}

// IsPrime reports whether v is prime using 6k±1 trial division.
func IsPrime(v int) bool {
	switch {
	case v < 2:
		return false
	case v < 4:
		return true
	case v%2 == 0 || v%3 == 0:
		return false
	}
	for d := 5; d*d <= v; d += 6 {
		if v%d == 0 || v%(d+2) == 0 {
			return false
		}
	}

	return true
}
