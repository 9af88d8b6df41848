// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Model contract, shared channel/hop helpers, ChannelError and options.

// Package interference defines the pluggable interference models used to
// weight conflict-graph edges.
//
// A Model maps two links of a network graph, given their current channels,
// to an interference value in [0,1]. The shared rules for every model:
//
//   - a link never interferes with itself (0);
//   - each link's value must parse as an integer channel, otherwise the call
//     fails with a *ChannelError naming the link and its raw value;
//   - distinct channels never interfere, except in TwoHopFrac, which grades
//     interference by spectral separation.
//
// The distance between two links is the minimum hop count over the four
// endpoint pairs.
package interference

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/metrics"
)

// Model names as used in configuration and metrics labels.
const (
	NameTwoHop           = "two_hop"
	NameTwoHopFrac       = "two_hop_frac"
	NameChannelOccupancy = "channel_occupancy"
)

// Sentinel errors for interference computation.
var (
	// ErrInvalidChannel indicates a link value that is not an integer channel.
	ErrInvalidChannel = errors.New("interference: invalid channel")

	// ErrUnknownChannel indicates an integer channel without a known center frequency.
	ErrUnknownChannel = errors.New("interference: unknown channel")

	// ErrDataSource indicates that measurement data could not be loaded or queried.
	ErrDataSource = errors.New("interference: measurement data unavailable")
)

// Model computes the interference between two links of a network graph.
type Model interface {
	// Name returns the configuration name of the model.
	Name() string

	// Interference returns a value in [0,1] for links e1 and e2 of g.
	Interference(g *core.Graph, e1, e2 core.Pair) (float64, error)
}

// ChannelError reports a link whose value cannot be used as a channel.
type ChannelError struct {
	Link  core.Pair
	Value string
	Err   error
}

// Error implements error.
func (e *ChannelError) Error() string {
	return fmt.Sprintf("unable to calculate interference: channel %q for link %s: %v", e.Value, e.Link, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ChannelError) Unwrap() error { return e.Err }

// Option configures ambient collaborators shared by all models.
type Option func(*settings)

type settings struct {
	logger    *zap.Logger
	metrics   *metrics.Registry
	threshold float64 // channel occupancy only
}

// WithLogger sets the logger used by the model.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithThreshold overrides DefaultOccupancyThreshold. Models without a
// threshold ignore it.
func WithThreshold(percent float64) Option {
	return func(s *settings) { s.threshold = percent }
}

// WithMetrics counts evaluations in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *settings) { s.metrics = r }
}

func newSettings(opts []Option) settings {
	s := settings{logger: zap.NewNop(), threshold: DefaultOccupancyThreshold}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Channel parses the value of link in g as an integer channel.
func Channel(g *core.Graph, link core.Pair) (int, error) {
	raw, err := g.EdgeValue(link.A, link.B)
	if err != nil {
		return 0, err
	}
	c, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ChannelError{Link: link, Value: raw, Err: ErrInvalidChannel}
	}

	return c, nil
}

// channels parses both link channels, failing on the first bad one.
func channels(g *core.Graph, e1, e2 core.Pair) (int, int, error) {
	c1, err := Channel(g, e1)
	if err != nil {
		return 0, 0, err
	}
	c2, err := Channel(g, e2)
	if err != nil {
		return 0, 0, err
	}

	return c1, c2, nil
}

// HopDistance returns the minimum hop count between any endpoint of e1 and
// any endpoint of e2.
func HopDistance(g *core.Graph, e1, e2 core.Pair) (int, error) {
	best := core.Infinity
	for _, x := range [2]string{e1.A, e1.B} {
		for _, y := range [2]string{e2.A, e2.B} {
			d, err := g.Distance(x, y)
			if err != nil {
				return 0, err
			}
			if d < best {
				best = d
			}
		}
	}

	return best, nil
}

// sameLink compares links regardless of endpoint order.
func sameLink(e1, e2 core.Pair) bool {
	return core.NewPair(e1.A, e1.B) == core.NewPair(e2.A, e2.B)
}
