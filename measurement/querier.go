// SPDX-License-Identifier: MIT
//
// File: querier.go
// Role: Raw-query collaborator interface and its function adapter.

// Package measurement provides access to the testbed measurement database.
//
// The engine only needs raw row access: a statement goes in, an ordered list
// of column-name → value rows comes out. Querier captures that contract so
// interference models can be exercised against an in-memory fake, and
// PGQuerier implements it over a PostgreSQL connection pool.
package measurement

import (
	"context"
	"errors"
)

// ErrQuery indicates that the measurement store failed to execute a statement.
// Failures are never retried.
var ErrQuery = errors.New("measurement: query failed")

// ErrColumn indicates that a row lacks a column or holds an unexpected type.
var ErrColumn = errors.New("measurement: bad column")

// Row maps column names to the values of one result row.
type Row map[string]any

// Querier executes a statement and returns every result row in order.
type Querier interface {
	Execute(ctx context.Context, sql string, args ...any) ([]Row, error)
}

// QuerierFunc adapts a function to the Querier interface.
type QuerierFunc func(ctx context.Context, sql string, args ...any) ([]Row, error)

// Execute calls f.
func (f QuerierFunc) Execute(ctx context.Context, sql string, args ...any) ([]Row, error) {
	return f(ctx, sql, args...)
}
