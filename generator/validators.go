// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// validators.go - parameter contracts of FromScratch, FromTree and FromRandomTree.
//
// Each function returns an error built by invalidf, so every failure wraps
// both a specific sentinel and ErrInvalidParameter. All checks run before the
// first random draw.

package generator

// validateMin ensures that got ≥ min.
// Returns "<Method>: <name>=<got> < min=<min>: generator: size too small [...]"
// otherwise, wrapping ErrTooFewVertices.
//
// Parameters:
//   - method: generator name constant, e.g. methodFromScratch.
//   - name:   parameter name as the caller sees it ("n", "a", "b", "total").
//   - got:    actual value supplied by the caller.
//   - min:    smallest acceptable value (MinVertices, MinPartition, MinTreeNodes).
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return invalidf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateCount ensures a requested count is not negative. Zero is legal:
// FromScratch with m=0 returns isolated vertices.
// Wraps ErrNegativeCount on failure.
//
// Parameters:
//   - method: generator name constant.
//   - name:   parameter name ("m").
//   - got:    requested count.
//
// Complexity: O(1) time and space.
func validateCount(method, name string, got int) error {
	if got < 0 {
		return invalidf(method, ErrNegativeCount, "%s=%d < 0", name, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// The comparison is written in negated form so NaN fails it too.
// Wraps ErrInvalidProbability on failure.
//
// Parameters:
//   - method: generator name constant.
//   - p:      inclusion probability to validate.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return invalidf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
