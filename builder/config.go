// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn            ("0","1","2",...)
//   • rng       = nil                    (no randomness unless seeded)
//   • channelFn = ConstantChannel(DefaultChannel)

package builder

import "math/rand"

// DefaultChannel is the channel placed on every link when no ChannelFn is set.
const DefaultChannel = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand // nil means no randomness
	channelFn ChannelFn
}

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		channelFn: ConstantChannel(DefaultChannel),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
