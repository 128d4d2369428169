// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng       = nil                  (deterministic unless seeded)
//   - simple    = false
//   - connected = false
//   - order     = SimpleThenConnected
//   - trace     = nil                  (snapshots are never built)

package generator

import (
	"math/rand"

	"github.com/katalvlaran/hypergen/enforce"
)

// generatorConfig aggregates all knobs used by the generators.
// It is passed by value.
type generatorConfig struct {
	rng       *rand.Rand
	simple    bool
	connected bool
	order     enforce.Order
	trace     TraceFunc
}

// newGeneratorConfig applies options in order (last wins).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		order: enforce.SimpleThenConnected,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// emit hands a snapshot to the registered observer. snap runs only when an
// observer exists, so untraced calls never copy state.
func (c generatorConfig) emit(stage Stage, snap func() Snapshot) {
	if c.trace == nil {
		return
	}
	c.trace(stage, snap())
}
