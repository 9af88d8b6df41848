// SPDX-License-Identifier: MIT
//
// File: two_hop_frac.go
// Role: Frequency-aware fractional two-hop model and the channel frequency table.

package interference

import "github.com/katalvlaran/meshchan/core"

// MinFrequencyGap is the center-frequency separation (MHz) at and above which
// two channels no longer interfere: 3 channels in the 5 GHz band, 12 in the
// 2.4 GHz band.
const MinFrequencyGap = 60

// band describes a run of channels with evenly spaced center frequencies.
type band struct {
	first, last, step int // channel numbers
	startMHz, spacing int
}

var bands = []band{
	{first: 1, last: 14, step: 1, startMHz: 2412, spacing: 5},     // 2.4 GHz
	{first: 36, last: 64, step: 4, startMHz: 5180, spacing: 20},   // lower 5 GHz
	{first: 100, last: 140, step: 4, startMHz: 5500, spacing: 20}, // middle 5 GHz
	{first: 149, last: 165, step: 4, startMHz: 5745, spacing: 20}, // upper 5 GHz
}

var frequencies = buildFrequencies()

func buildFrequencies() map[int]int {
	out := make(map[int]int)
	for _, b := range bands {
		for c := b.first; c <= b.last; c += b.step {
			out[c] = b.startMHz + b.spacing*((c-b.first)/b.step)
		}
	}

	return out
}

// Frequency returns the center frequency in MHz of channel.
func Frequency(channel int) (int, bool) {
	f, ok := frequencies[channel]

	return f, ok
}

// TwoHopFrac is the frequency-aware two-hop heuristic. Links more than one hop
// apart never interfere; closer links interfere by 1 − Δf/60, where Δf is
// the distance between their center frequencies in MHz, and not at all once
// Δf reaches MinFrequencyGap.
type TwoHopFrac struct {
	settings
}

// NewTwoHopFrac creates a fractional two-hop model.
func NewTwoHopFrac(opts ...Option) *TwoHopFrac {
	return &TwoHopFrac{settings: newSettings(opts)}
}

// Name implements Model.
func (m *TwoHopFrac) Name() string { return NameTwoHopFrac }

// Interference implements Model.
func (m *TwoHopFrac) Interference(g *core.Graph, e1, e2 core.Pair) (float64, error) {
	m.metrics.RecordEvaluation(NameTwoHopFrac)
	if sameLink(e1, e2) {
		return 0, nil
	}

	c1, c2, err := channels(g, e1, e2)
	if err != nil {
		return 0, err
	}
	f1, err := frequencyOf(g, e1, c1)
	if err != nil {
		return 0, err
	}
	f2, err := frequencyOf(g, e2, c2)
	if err != nil {
		return 0, err
	}

	diff := f1 - f2
	if diff < 0 {
		diff = -diff
	}
	if diff >= MinFrequencyGap {
		return 0, nil
	}

	hops, err := HopDistance(g, e1, e2)
	if err != nil {
		return 0, err
	}
	if hops >= twoHopRange {
		return 0, nil
	}

	return 1 - float64(diff)/MinFrequencyGap, nil
}

func frequencyOf(g *core.Graph, link core.Pair, channel int) (int, error) {
	f, ok := Frequency(channel)
	if !ok {
		raw, _ := g.EdgeValue(link.A, link.B)
		return 0, &ChannelError{Link: link, Value: raw, Err: ErrUnknownChannel}
	}

	return f, nil
}
