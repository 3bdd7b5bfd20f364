package pattern_test

import (
	"testing"

	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/primes"
	"github.com/katalvlaran/primespiral/sweep"
)

var defaultSweep = sweep.Range{Start: 1, End: 90, Step: 0.1}

// BenchmarkAnalyze_Serial measures the default sweep on one goroutine.
func BenchmarkAnalyze_Serial(b *testing.B) {
	ps, _ := primes.First(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pattern.Analyze(ps, defaultSweep, pattern.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze_Parallel measures the default sweep on GOMAXPROCS goroutines.
func BenchmarkAnalyze_Parallel(b *testing.B) {
	ps, _ := primes.First(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pattern.Analyze(ps, defaultSweep); err != nil {
			b.Fatal(err)
		}
	}
}
