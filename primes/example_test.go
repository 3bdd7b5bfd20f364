package primes_test

import (
	"fmt"

	"github.com/katalvlaran/primespiral/primes"
)

// ExampleFirst prints the first ten primes, the step lengths of a ten-segment spiral.
func ExampleFirst() {
	ps, err := primes.First(10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ps)
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}

// ExampleSieve lists the primes up to a limit.
func ExampleSieve() {
	fmt.Println(primes.Sieve(30))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}
