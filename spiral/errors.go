// SPDX-License-Identifier: MIT
// Package spiral: sentinel errors.
//
// Every sentinel wraps a root kind from package primespiral, so both
// errors.Is(err, spiral.ErrInvalidPrime) and
// errors.Is(err, primespiral.ErrInvalidInput) hold for the same error.

package spiral

import (
	"fmt"

	"github.com/katalvlaran/primespiral"
)

var (
	// ErrInvalidPrime indicates a step length <= 0 in the primes sequence.
	ErrInvalidPrime = fmt.Errorf("spiral: prime values must be > 0: %w", primespiral.ErrInvalidInput)

	// ErrNonFiniteAngle indicates a NaN or ±Inf turn angle.
	ErrNonFiniteAngle = fmt.Errorf("spiral: turn angle is not finite: %w", primespiral.ErrNumericDegenerate)

	// ErrNonFiniteVertex indicates that the fold produced NaN or ±Inf coordinates.
	ErrNonFiniteVertex = fmt.Errorf("spiral: vertex is not finite: %w", primespiral.ErrNumericDegenerate)

	// ErrUnknownDirection indicates a direction name ParseDirection does not know.
	ErrUnknownDirection = fmt.Errorf("spiral: unknown direction: %w", primespiral.ErrInvalidInput)
)
