// SPDX-License-Identifier: MIT
//
// File: channel_occupancy.go
// Role: Measurement-backed interference model over channel occupancy time.
//
// Data model:
//   - "Node" rows of type 0 map integer ids to node names.
//   - "CORResultsKernel" rows hold cot_max, the maximum channel occupancy time
//     (percent) a listener observed while a sender transmitted.
//
// Both tables are loaded once per model instance. A failed load is sticky:
// every later call reports the same ErrDataSource without querying again.

package interference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/measurement"
)

// DefaultOccupancyThreshold is the cot_max (percent) above which a sender is
// considered to disturb a listener.
const DefaultOccupancyThreshold = 2.0

const (
	queryNodes = `SELECT id, name FROM "Node" WHERE type = 0`
	queryCOT   = `SELECT id_listener, id_sender, cot_max FROM "CORResultsKernel"`

	queryNodeByName = `SELECT id, name FROM "Node" WHERE name = $1 OR name = $2`
	queryCOTByIDs   = `SELECT cot_max FROM "CORResultsKernel" WHERE id_sender = $1 AND id_listener = $2`
)

// ChannelOccupancy reports interference between co-channel links when an
// endpoint of one link, as sender, occupied the channel of an endpoint of the
// other link, as listener, above the threshold.
//
// Both directions are checked, so Interference(g, e1, e2) equals
// Interference(g, e2, e1) even when measurements are asymmetric.
type ChannelOccupancy struct {
	settings
	querier measurement.Querier

	once    sync.Once
	loadErr error
	cotMax  map[string]float64 // "listener-sender" → cot_max
}

// NewChannelOccupancy creates a model reading measurements through q.
// Nothing is queried until the first evaluation or Preload.
func NewChannelOccupancy(q measurement.Querier, opts ...Option) *ChannelOccupancy {
	return &ChannelOccupancy{settings: newSettings(opts), querier: q}
}

// Name implements Model.
func (m *ChannelOccupancy) Name() string { return NameChannelOccupancy }

// Threshold returns the configured occupancy threshold in percent.
func (m *ChannelOccupancy) Threshold() float64 { return m.threshold }

// Preload loads the measurement cache now instead of on first evaluation.
func (m *ChannelOccupancy) Preload(ctx context.Context) error {
	return m.load(ctx)
}

// Interference implements Model.
//
// Errors:
//   - *ChannelError for non-integer link values.
//   - ErrDataSource if the measurement cache cannot be loaded.
func (m *ChannelOccupancy) Interference(g *core.Graph, e1, e2 core.Pair) (float64, error) {
	m.metrics.RecordEvaluation(NameChannelOccupancy)
	if sameLink(e1, e2) {
		return 0, nil
	}

	c1, c2, err := channels(g, e1, e2)
	if err != nil {
		return 0, err
	}
	if c1 != c2 {
		return 0, nil
	}

	if err = m.load(context.Background()); err != nil {
		return 0, err
	}

	if max(m.worstOccupancy(e1, e2), m.worstOccupancy(e2, e1)) > m.threshold {
		return 1, nil
	}

	return 0, nil
}

// worstOccupancy returns the highest cot_max any endpoint of listeners
// observed from any endpoint of senders. Absent measurements count as 0.
func (m *ChannelOccupancy) worstOccupancy(listeners, senders core.Pair) float64 {
	var worst float64
	for _, listener := range [2]string{listeners.A, listeners.B} {
		for _, sender := range [2]string{senders.A, senders.B} {
			if v := m.cotMax[occupancyKey(listener, sender)]; v > worst {
				worst = v
			}
		}
	}

	return worst
}

// InterferenceByNode reports whether sender disturbs listener (1) or not (0).
// Unlike Interference it bypasses the cache and queries the store on every
// call, so the two can disagree if measurements change after the cache load.
func (m *ChannelOccupancy) InterferenceByNode(ctx context.Context, sender, listener string) (int, error) {
	if m.querier == nil {
		return 0, fmt.Errorf("%w: no querier configured", ErrDataSource)
	}
	rows, err := m.querier.Execute(ctx, queryNodeByName, sender, listener)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	ids := make(map[string]int64, 2)
	for _, row := range rows {
		id, name, err := nodeRow(row)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrDataSource, err)
		}
		ids[name] = id
	}
	senderID, ok := ids[sender]
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrDataSource, sender)
	}
	listenerID, ok := ids[listener]
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrDataSource, listener)
	}

	rows, err = m.querier.Execute(ctx, queryCOTByIDs, senderID, listenerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDataSource, err)
	}

	var cot float64
	for _, row := range rows {
		if cot, err = measurement.Float64(row, "cot_max"); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrDataSource, err)
		}
	}
	if cot > m.threshold {
		return 1, nil
	}

	return 0, nil
}

func (m *ChannelOccupancy) load(ctx context.Context) error {
	m.once.Do(func() {
		start := time.Now()
		m.loadErr = m.fill(ctx)
		m.metrics.RecordCacheLoad(m.loadErr)
		if m.loadErr != nil {
			m.logger.Error("channel occupancy cache load failed", zap.Error(m.loadErr))
			return
		}
		m.logger.Info("channel occupancy cache loaded",
			zap.Int("measurements", len(m.cotMax)),
			zap.Duration("elapsed", time.Since(start)),
		)
	})

	return m.loadErr
}

func (m *ChannelOccupancy) fill(ctx context.Context) error {
	if m.querier == nil {
		return fmt.Errorf("%w: no querier configured", ErrDataSource)
	}

	rows, err := m.querier.Execute(ctx, queryNodes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		id, name, err := nodeRow(row)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDataSource, err)
		}
		names[id] = name
	}

	rows, err = m.querier.Execute(ctx, queryCOT)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	cot := make(map[string]float64, len(rows))
	for _, row := range rows {
		listenerID, err := measurement.Int64(row, "id_listener")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDataSource, err)
		}
		senderID, err := measurement.Int64(row, "id_sender")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDataSource, err)
		}
		value, err := measurement.Float64(row, "cot_max")
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDataSource, err)
		}

		listener, okL := names[listenerID]
		sender, okS := names[senderID]
		if !okL || !okS {
			m.logger.Debug("skipping measurement for unknown node",
				zap.Int64("listener_id", listenerID),
				zap.Int64("sender_id", senderID),
			)
			continue
		}
		cot[occupancyKey(listener, sender)] = value
	}
	m.cotMax = cot

	return nil
}

func nodeRow(row measurement.Row) (int64, string, error) {
	id, err := measurement.Int64(row, "id")
	if err != nil {
		return 0, "", err
	}
	name, err := measurement.String(row, "name")
	if err != nil {
		return 0, "", err
	}

	return id, name, nil
}

func occupancyKey(listener, sender string) string {
	return listener + "-" + sender
}
