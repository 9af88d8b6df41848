// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Assembly of logger, metrics, querier, interference model and conflict graph.

// Package engine wires configuration, logging, metrics, the measurement store,
// the interference model and the conflict graph into one assignment session.
//
// A driver builds its network graph, calls New, then flips channels through
// Conflict().Vertex(a, b).SetChannel(c) and reads Conflict().InterferenceSum()
// as the objective.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/config"
	"github.com/katalvlaran/meshchan/conflict"
	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/interference"
	"github.com/katalvlaran/meshchan/logging"
	"github.com/katalvlaran/meshchan/measurement"
	"github.com/katalvlaran/meshchan/metrics"
)

// ErrUnknownModel indicates a model name without an implementation.
var ErrUnknownModel = errors.New("engine: unknown interference model")

// Engine is one assignment session over a network graph.
type Engine struct {
	cfg      config.Config
	logger   *zap.Logger
	metrics  *metrics.Registry
	querier  measurement.Querier
	closer   io.Closer // set when the engine opened the store itself
	model    interference.Model
	conflict *conflict.Graph
}

// Option customizes New.
type Option func(*Engine)

// WithLogger replaces the logger built from cfg.Log.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithQuerier supplies the measurement store instead of opening one from
// cfg.Database. The engine does not close it.
func WithQuerier(q measurement.Querier) Option {
	return func(e *Engine) { e.querier = q }
}

// New validates cfg and assembles a session bound to network.
//
// For the channel occupancy model the measurement cache is loaded eagerly,
// so a store failure surfaces here rather than on the first channel flip.
func New(ctx context.Context, cfg config.Config, network *core.Graph, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		logger, err := logging.New(cfg.Log)
		if err != nil {
			return nil, err
		}
		e.logger = logger
	}
	if cfg.Metrics.Enabled {
		e.metrics = metrics.NewRegistry()
	}

	if cfg.Interference.Model == interference.NameChannelOccupancy && e.querier == nil {
		pg, err := measurement.NewPGQuerier(ctx, measurement.Options{
			DatabaseURL:  cfg.Database.URL,
			MaxConns:     cfg.Database.MaxConns,
			QueryTimeout: cfg.Database.QueryTimeout,
			Logger:       e.logger.Named("measurement"),
		})
		if err != nil {
			return nil, fmt.Errorf("engine: measurement store: %w", err)
		}
		e.querier, e.closer = pg, pg
	}

	model, err := NewModel(cfg.Interference.Model, e.querier,
		interference.WithLogger(e.logger.Named("interference")),
		interference.WithMetrics(e.metrics),
		interference.WithThreshold(cfg.Interference.COThreshold),
	)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	if co, ok := model.(*interference.ChannelOccupancy); ok {
		if err = co.Preload(ctx); err != nil {
			_ = e.Close()
			return nil, err
		}
	}
	e.model = model

	e.conflict, err = conflict.New(network, model,
		conflict.WithLogger(e.logger.Named("conflict")),
		conflict.WithMetrics(e.metrics),
	)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	return e, nil
}

// NewModel maps a configuration name to an interference model. q is used by
// the channel occupancy model only and may be nil for the others.
func NewModel(name string, q measurement.Querier, opts ...interference.Option) (interference.Model, error) {
	switch name {
	case interference.NameTwoHop:
		return interference.NewTwoHop(opts...), nil
	case interference.NameTwoHopFrac:
		return interference.NewTwoHopFrac(opts...), nil
	case interference.NameChannelOccupancy:
		return interference.NewChannelOccupancy(q, opts...), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Conflict returns the conflict graph.
func (e *Engine) Conflict() *conflict.Graph { return e.conflict }

// Model returns the interference model.
func (e *Engine) Model() interference.Model { return e.model }

// Metrics returns the metrics registry, nil when metrics are disabled.
func (e *Engine) Metrics() *metrics.Registry { return e.metrics }

// Logger returns the session logger.
func (e *Engine) Logger() *zap.Logger { return e.logger }

// Config returns the validated configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// Close releases the measurement store if the engine opened it and flushes
// the logger.
func (e *Engine) Close() error {
	var err error
	if e.closer != nil {
		err = e.closer.Close()
		e.closer = nil
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}

	return err
}
