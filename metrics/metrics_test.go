// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Records(t *testing.T) {
	r := NewRegistry()

	r.RecordEvaluation("two_hop")
	r.RecordEvaluation("two_hop")
	r.RecordRecompute(KindIncremental, time.Millisecond, 3)
	r.RecordRecompute(KindFull, time.Millisecond, 5)
	r.RecordCacheLoad(nil)
	r.RecordCacheLoad(errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.InterferenceEvaluations.WithLabelValues("two_hop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ConflictRecomputes.WithLabelValues(KindFull)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ConflictRecomputes.WithLabelValues(KindIncremental)))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.InterferenceSum))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.OccupancyCacheLoads.WithLabelValues(StatusError)))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *Registry

	assert.NotPanics(t, func() {
		r.RecordEvaluation("two_hop")
		r.RecordRecompute(KindFull, time.Second, 1)
		r.RecordCacheLoad(nil)
	})
}
