package spiral_test

import (
	"testing"

	"github.com/katalvlaran/primespiral/primes"
	"github.com/katalvlaran/primespiral/spiral"
)

// BenchmarkGenerate_100 measures one frame at the CLI default size.
func BenchmarkGenerate_100(b *testing.B) {
	ps, _ := primes.First(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spiral.Generate(ps, 30); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_10000 measures a long path.
func BenchmarkGenerate_10000(b *testing.B) {
	ps, _ := primes.First(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spiral.Generate(ps, 137.5); err != nil {
			b.Fatal(err)
		}
	}
}
