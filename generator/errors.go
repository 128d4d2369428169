// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Every validation error carries ErrInvalidParameter plus one specific sentinel.
//   - Algorithms never panic; option constructors panic on nil arguments.

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the umbrella kind for every rejected input.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* exit non-zero */ }.
var ErrInvalidParameter = errors.New("generator: invalid parameter")

// ErrTooFewVertices indicates a size parameter (n, a, b, total) below its minimum.
var ErrTooFewVertices = errors.New("generator: size too small")

// ErrNegativeCount indicates a negative requested hyperedge count.
var ErrNegativeCount = errors.New("generator: negative count")

// ErrInvalidProbability indicates p outside [0,1] (NaN included).
var ErrInvalidProbability = errors.New("generator: probability out of range")

// ErrNeedRandSource indicates a stochastic path was requested without an rng.
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrUnknownMethod indicates an unrecognised method selector.
var ErrUnknownMethod = errors.New("generator: unknown method")

// invalidf wraps kind and ErrInvalidParameter with method context:
// "<Method>: <message>: <kind> [<invalid parameter>]".
func invalidf(method string, kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w [%w]", method, fmt.Sprintf(format, args...), kind, ErrInvalidParameter)
}
