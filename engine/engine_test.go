// SPDX-License-Identifier: MIT

package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/builder"
	"github.com/katalvlaran/meshchan/config"
	"github.com/katalvlaran/meshchan/engine"
	"github.com/katalvlaran/meshchan/interference"
	"github.com/katalvlaran/meshchan/measurement"
	"github.com/katalvlaran/meshchan/metrics"
)

func TestNew_TwoHop(t *testing.T) {
	network, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	e, err := engine.New(context.Background(), config.Default(), network, engine.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, interference.NameTwoHop, e.Model().Name())
	assert.Equal(t, 5.0, e.Conflict().InterferenceSum())
	require.NotNil(t, e.Metrics())
	assert.NotNil(t, e.Logger())
	assert.Equal(t, config.Default(), e.Config())

	v, ok := e.Conflict().Vertex("1", "2")
	require.True(t, ok)
	require.NoError(t, v.SetChannel(6))
	assert.Equal(t, 2.0, e.Conflict().InterferenceSum())
	assert.Equal(t, 2.0, testutil.ToFloat64(e.Metrics().InterferenceSum))
	assert.Equal(t, 9.0, testutil.ToFloat64(e.Metrics().InterferenceEvaluations.WithLabelValues(interference.NameTwoHop)))
}

func TestNew_MetricsDisabled(t *testing.T) {
	network, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	cfg.Interference.Model = interference.NameTwoHopFrac

	e, err := engine.New(context.Background(), cfg, network, engine.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.Nil(t, e.Metrics())
	assert.Equal(t, interference.NameTwoHopFrac, e.Model().Name())
	require.NoError(t, e.Close())
}

func TestNew_ChannelOccupancy(t *testing.T) {
	network, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("n")}, builder.Path(3))
	require.NoError(t, err)

	store := measurement.QuerierFunc(func(_ context.Context, sql string, _ ...any) ([]measurement.Row, error) {
		if sql == `SELECT id, name FROM "Node" WHERE type = 0` {
			return []measurement.Row{{"id": int64(1), "name": "n0"}, {"id": int64(3), "name": "n2"}}, nil
		}
		return []measurement.Row{{"id_listener": int64(1), "id_sender": int64(3), "cot_max": 4.0}}, nil
	})

	cfg := config.Default()
	cfg.Interference.Model = interference.NameChannelOccupancy
	cfg.Database.URL = "postgres://unused"

	e, err := engine.New(context.Background(), cfg, network, engine.WithLogger(zap.NewNop()), engine.WithQuerier(store))
	require.NoError(t, err)
	defer e.Close()

	// n0 hears n2 on the shared channel: n0_n1 vs n1_n2 interferes.
	assert.Equal(t, 1.0, e.Conflict().InterferenceSum())
	assert.Equal(t, 1.0, testutil.ToFloat64(e.Metrics().OccupancyCacheLoads.WithLabelValues(metrics.StatusSuccess)))
}

func TestNew_ChannelOccupancyStoreFailure(t *testing.T) {
	network, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	store := measurement.QuerierFunc(func(context.Context, string, ...any) ([]measurement.Row, error) {
		return nil, errors.New("connection reset")
	})
	cfg := config.Default()
	cfg.Interference.Model = interference.NameChannelOccupancy
	cfg.Database.URL = "postgres://unused"

	_, err = engine.New(context.Background(), cfg, network, engine.WithLogger(zap.NewNop()), engine.WithQuerier(store))
	require.ErrorIs(t, err, interference.ErrDataSource)
}

func TestNew_Invalid(t *testing.T) {
	network, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Interference.Model = "ray_tracing"
	_, err = engine.New(context.Background(), cfg, network, engine.WithLogger(zap.NewNop()))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	bad, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, bad.SetEdgeValue("0", "1", "auto", false))
	_, err = engine.New(context.Background(), config.Default(), bad, engine.WithLogger(zap.NewNop()))
	require.ErrorIs(t, err, interference.ErrInvalidChannel)
}

func TestNewModel(t *testing.T) {
	for _, name := range []string{interference.NameTwoHop, interference.NameTwoHopFrac, interference.NameChannelOccupancy} {
		m, err := engine.NewModel(name, nil)
		require.NoError(t, err)
		assert.Equal(t, name, m.Name())
	}

	_, err := engine.NewModel("ray_tracing", nil)
	require.ErrorIs(t, err, engine.ErrUnknownModel)
}
