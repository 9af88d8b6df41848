// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic steps. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG so stochastic steps are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithChannelFn overrides the per-link channel policy. Panics on nil.
func WithChannelFn(fn ChannelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithChannelFn(nil)")
	}
	return func(c *builderConfig) {
		c.channelFn = fn
	}
}

// WithChannels draws every link channel uniformly from channels.
// Requires WithSeed or WithRand. Panics on an empty set.
func WithChannels(channels ...int) BuilderOption {
	return WithChannelFn(RandomChannel(channels...))
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("n") → "n0","n1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
