// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// options.go - functional options.
//
// Option constructors validate and panic on meaningless inputs (nil rng,
// nil trace). Generators themselves never panic.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/hypergen/enforce"
)

// Option customizes a generator call.
type Option func(*generatorConfig)

// WithRand provides an explicit randomness source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand from seed for this call.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSimple toggles the simplicity pass.
func WithSimple(on bool) Option {
	return func(c *generatorConfig) {
		c.simple = on
	}
}

// WithConnected toggles the connectivity pass (FromScratch only).
func WithConnected(on bool) Option {
	return func(c *generatorConfig) {
		c.connected = on
	}
}

// WithOrder sets the order of the finishing passes.
func WithOrder(o enforce.Order) Option {
	return func(c *generatorConfig) {
		c.order = o
	}
}

// WithTrace registers an observer for intermediate stages. Panics on nil.
func WithTrace(fn TraceFunc) Option {
	if fn == nil {
		panic("generator: WithTrace(nil)")
	}
	return func(c *generatorConfig) {
		c.trace = fn
	}
}
