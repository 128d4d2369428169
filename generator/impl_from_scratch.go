// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// impl_from_scratch.go - FromScratch(n, m, p).
//
// Model:
//   - m independent trial sets over {0..n-1}; vertex v joins trial set i iff rng.Float64() < p.
//   - A trial set that comes out empty is discarded (not retried), so the
//     realized count is ≤ m.
//   - Then, per options, enforce.Simple and/or enforce.Connected in the configured order.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), m ≥ 0 (ErrNegativeCount), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - rng required for 0 < p < 1 (ErrNeedRandSource). For p ∈ {0,1} a nil rng takes the
//     deterministic path; a present rng is still consumed so the stream position only
//     depends on (n, m).
//
// Complexity:
//   - Sampling: O(n·m) Bernoulli trials.
//   - Simplicity: O(m²·n/64). Connectivity: O(n + m + Σ|e|).
//
// Determinism:
//   - Draw order: trial set 0 (v = 0..n-1), trial set 1, ... trial set m-1.

package generator

import (
	"fmt"

	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/hypergraph"
)

// FromScratch samples a hypergraph with up to m hyperedges over n vertices.
func FromScratch(n, m int, p float64, opts ...Option) (*hypergraph.Hypergraph, error) {
	cfg := newGeneratorConfig(opts...)

	// 1) Validate everything before touching the rng.
	if err := validateMin(methodFromScratch, "n", n, MinVertices); err != nil {
		return nil, err
	}
	if err := validateCount(methodFromScratch, "m", m); err != nil {
		return nil, err
	}
	if err := validateProbability(methodFromScratch, p); err != nil {
		return nil, err
	}
	rng := cfg.rng
	if rng == nil && p > MinProbability && p < MaxProbability {
		return nil, invalidf(methodFromScratch, ErrNeedRandSource, "0 < p < 1 needs WithSeed or WithRand")
	}

	h, err := hypergraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromScratch, err)
	}

	// 2) Sample trial sets in the documented order.
	members := make([]int, 0, n)
	for i := 0; i < m; i++ {
		members = members[:0]
		for v := 0; v < n; v++ {
			var in bool
			if rng != nil {
				in = rng.Float64() < p
			} else {
				in = p == MaxProbability
			}
			if in {
				members = append(members, v)
			}
		}
		if len(members) == 0 {
			continue // discarded, never retried
		}
		if _, err := h.AddHyperedge(members...); err != nil {
			return nil, fmt.Errorf("%s: AddHyperedge(#%d): %w", methodFromScratch, i, err)
		}
	}
	cfg.emit(StageSampled, func() Snapshot { return snapshotOf(h) })

	// 3) Finishing passes.
	out := enforce.Apply(h, cfg.order, cfg.simple, cfg.connected)
	cfg.emit(StageFinal, func() Snapshot { return snapshotOf(out) })

	return out, nil
}
