// SPDX-License-Identifier: MIT
// Package primespiral: root error taxonomy.
//
// Error policy:
//   • Packages expose their own sentinels ("spiral: ...", "pattern: ...").
//   • Every package sentinel wraps exactly one of the roots below.
//   • Callers MUST use errors.Is; string comparison is not part of the contract.

package primespiral

import "errors"

var (
	// ErrInvalidInput classifies caller mistakes detected before any computation:
	// non-positive prime counts, zero/negative sweep steps, empty prime sequences,
	// non-positive prime values, inverted ranges and invalid options.
	ErrInvalidInput = errors.New("primespiral: invalid input")

	// ErrNumericDegenerate classifies non-finite values (NaN, ±Inf) in angles,
	// headings or vertices.
	ErrNumericDegenerate = errors.New("primespiral: numeric degenerate value")
)
