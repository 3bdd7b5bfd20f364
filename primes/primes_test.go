package primes_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFirst_InvalidCount verifies non-positive counts fail fast with both the
// package sentinel and the root InvalidInput kind.
func TestFirst_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := primes.First(n)
		require.Error(t, err, "n=%d must error", n)
		assert.ErrorIs(t, err, primes.ErrInvalidCount)
		assert.True(t, errors.Is(err, primespiral.ErrInvalidInput), "n=%d must classify as InvalidInput", n)
	}
}

// TestFirst_SmallCounts covers the n < 6 range where a naive n·ln(n) bound
// would be too small to contain n primes.
func TestFirst_SmallCounts(t *testing.T) {
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for n := 1; n <= len(want); n++ {
		got, err := primes.First(n)
		require.NoError(t, err)
		assert.Equal(t, want[:n], got, "first %d primes", n)
	}
}

// TestFirst_Hundred checks the default count used by the CLI.
func TestFirst_Hundred(t *testing.T) {
	got, err := primes.First(100)
	require.NoError(t, err)
	require.Len(t, got, 100)
	assert.Equal(t, 2, got[0])
	assert.Equal(t, 541, got[99], "the 100th prime is 541")

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "strictly increasing at %d", i)
		assert.True(t, primes.IsPrime(got[i]), "%d must be prime", got[i])
	}
}

// TestFirst_Large exercises the Rosser bound on a bigger n.
func TestFirst_Large(t *testing.T) {
	got, err := primes.First(10000)
	require.NoError(t, err)
	require.Len(t, got, 10000)
	assert.Equal(t, 104729, got[9999], "the 10000th prime is 104729")
}

// TestFirst_FreshSlices ensures callers own the returned slice.
func TestFirst_FreshSlices(t *testing.T) {
	a, err := primes.First(5)
	require.NoError(t, err)
	a[0] = 999

	b, err := primes.First(5)
	require.NoError(t, err)
	assert.Equal(t, 2, b[0], "mutating one result must not leak into the next")
}

func TestSieve(t *testing.T) {
	assert.Empty(t, primes.Sieve(-5))
	assert.Empty(t, primes.Sieve(1))
	assert.Equal(t, []int{2}, primes.Sieve(2))
	assert.Equal(t, []int{2, 3, 5, 7}, primes.Sieve(10))
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13}, primes.Sieve(13), "limit itself is inclusive")
	assert.Len(t, primes.Sieve(1000), 168, "π(1000) = 168")
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, 0, primes.UpperBound(0))
	for n := 1; n <= 2000; n++ {
		assert.GreaterOrEqual(t, len(primes.Sieve(primes.UpperBound(n))), n, "bound for n=%d", n)
	}
}

func TestIsPrime(t *testing.T) {
	cases := map[int]bool{
		-7: false, 0: false, 1: false, 2: true, 3: true, 4: false,
		25: false, 29: true, 49: false, 97: true, 7919: true, 7921: false,
	}
	for v, want := range cases {
		assert.Equal(t, want, primes.IsPrime(v), "IsPrime(%d)", v)
	}
}
