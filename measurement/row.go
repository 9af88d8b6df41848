// SPDX-License-Identifier: MIT
//
// File: row.go
// Role: Column coercion for rows returned by a Querier.

package measurement

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// Int64 reads an integer column. Accepts every integer width pgx decodes to,
// and decimal strings.
func Int64(row Row, col string) (int64, error) {
	v, ok := row[col]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %q missing", ErrColumn, col)
	}

	switch x := v.(type) {
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrColumn, col, err)
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w: %q has type %T", ErrColumn, col, v)
}

// Float64 reads a numeric column. NUMERIC values arrive as pgtype.Numeric.
func Float64(row Row, col string) (float64, error) {
	v, ok := row[col]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %q missing", ErrColumn, col)
	}

	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return 0, fmt.Errorf("%w: %q: invalid numeric", ErrColumn, col)
		}
		return f.Float64, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrColumn, col, err)
		}
		return f, nil
	}

	n, err := Int64(row, col)
	if err != nil {
		return 0, err
	}

	return float64(n), nil
}

// String reads a text column.
func String(row Row, col string) (string, error) {
	v, ok := row[col]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %q missing", ErrColumn, col)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}

	return fmt.Sprint(v), nil
}
