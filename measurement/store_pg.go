// SPDX-License-Identifier: MIT
//
// File: store_pg.go
// Role: PostgreSQL Querier over a pgx connection pool.

package measurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Options configures the PostgreSQL connection pool.
type Options struct {
	DatabaseURL  string
	MaxConns     int32
	QueryTimeout time.Duration
	Logger       *zap.Logger
}

// PGQuerier executes raw statements against PostgreSQL.
type PGQuerier struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	logger  *zap.Logger
}

// NewPGQuerier opens a connection pool and verifies connectivity.
func NewPGQuerier(ctx context.Context, opts Options) (*PGQuerier, error) {
	config, err := pgxpool.ParseConfig(opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PGQuerier{pool: pool, timeout: opts.QueryTimeout, logger: logger}, nil
}

// Execute runs sql with args and collects every row as a column map.
func (q *PGQuerier) Execute(ctx context.Context, sql string, args ...any) ([]Row, error) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := q.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuery, sql, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuery, sql, err)
	}

	out := make([]Row, len(maps))
	for i, m := range maps {
		out[i] = Row(m)
	}
	q.logger.Debug("measurement query",
		zap.String("sql", sql),
		zap.Int("rows", len(out)),
		zap.Duration("latency", time.Since(start)))

	return out, nil
}

// Ping checks database connectivity.
func (q *PGQuerier) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

// Close closes the connection pool.
func (q *PGQuerier) Close() error {
	q.pool.Close()
	return nil
}
