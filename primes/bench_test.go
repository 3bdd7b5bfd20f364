package primes_test

import (
	"testing"

	"github.com/katalvlaran/primespiral/primes"
)

// BenchmarkFirst_100 measures the CLI default (100 primes).
func BenchmarkFirst_100(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := primes.First(100); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFirst_10000 measures a large sieve.
func BenchmarkFirst_10000(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := primes.First(10000); err != nil {
			b.Fatal(err)
		}
	}
}
