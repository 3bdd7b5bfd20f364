// SPDX-License-Identifier: MIT

package pattern

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// Analyze runs AnalyzeContext with context.Background().
func Analyze(primes []int, r sweep.Range, opts ...Option) (*Analysis, error) {
	return AnalyzeContext(context.Background(), primes, r, opts...)
}

// AnalyzeContext computes the distance multiset of every angle in r.
//
// Inputs are validated before any spiral is generated.
//
// Errors:
//   - ErrEmptyPrimes        if len(primes) == 0.
//   - spiral.ErrInvalidPrime if any prime <= 0.
//   - sweep errors          if r is invalid (e.g. sweep.ErrInvalidStep for Step <= 0).
//   - ctx.Err()             if ctx is cancelled before the sweep finishes.
//
// Complexity: O(A·N log N) total work over at most Workers goroutines.
func AnalyzeContext(ctx context.Context, primes []int, r sweep.Range, opts ...Option) (*Analysis, error) {
	if len(primes) == 0 {
		return nil, fmt.Errorf("Analyze: %w", ErrEmptyPrimes)
	}
	for i, p := range primes {
		if p <= 0 {
			return nil, fmt.Errorf("Analyze: primes[%d]=%d: %w", i, p, spiral.ErrInvalidPrime)
		}
	}
	angles, err := r.Angles()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	o := resolve(opts)

	results := make([]AngleResult, len(angles))
	var observe sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, a := range angles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := spiral.Generate(primes, a, spiral.WithDirection(o.Direction))
			if err != nil {
				return fmt.Errorf("Analyze: angle %s: %w", sweep.FormatAngle(a), err)
			}
			// each task owns results[i]
			results[i] = AngleResult{Angle: a, Multiset: Histogram(path, o.Tolerance)}
			if o.Observer != nil {
				observe.Lock()
				o.Observer(results[i])
				observe.Unlock()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Analysis{Range: r, Primes: len(primes), Results: results}, nil
}
