// Package primes is the primes source for the spiral generator: given n it
// returns the first n primes as a strictly increasing slice.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primespiral/primes"
//
//	ps, err := primes.First(100) // [2 3 5 ... 541]
//	if err != nil {
//	  // errors.Is(err, primes.ErrInvalidCount) for n <= 0
//	}
//
// Algorithm:
//
//   - UpperBound(n) picks a sieve limit that provably holds n primes
//     (Rosser: p_n < n(ln n + ln ln n) for n ≥ 6).
//   - Sieve(limit) runs the sieve of Eratosthenes, crossing out from p².
//   - First(n) keeps the first n survivors.
//
// Performance:
//
//   - Time:   O(L log log L) with L = UpperBound(n)
//   - Memory: O(L) bits-as-bools for the sieve, O(n) for the result
package primes
