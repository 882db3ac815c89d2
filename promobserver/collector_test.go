package promobserver_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/demedist/deme"
	"github.com/katalvlaran/demedist/engine"
	"github.com/katalvlaran/demedist/promobserver"
	"github.com/katalvlaran/demedist/testutil"
)

// sample is one gathered series: counter value or histogram count.
type sample struct {
	value float64
	count uint64
}

func gather(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) sample {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metrics
				}
			}
			return sample{value: m.GetCounter().GetValue(), count: m.GetHistogram().GetSampleCount()}
		}
	}
	return sample{}
}

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := promobserver.NewCollector(reg, promobserver.Config{})
	require.NoError(t, err)

	c.RecordSearch(time.Millisecond, 1.5, nil)
	c.RecordSearch(time.Millisecond, math.Inf(1), nil)
	c.RecordSearch(time.Millisecond, 0, assert.AnError)
	c.RecordFallback(assert.AnError)
	c.RecordReject(engine.ReasonFailure)
	c.RecordReject(engine.ReasonFailure)
	c.RecordReject(engine.ReasonDemeCount)

	for _, status := range []string{promobserver.StatusOK, promobserver.StatusRejected, promobserver.StatusError} {
		s := gather(t, reg, "demedist_search_duration_seconds", map[string]string{"status": status})
		assert.Equal(t, uint64(1), s.count, status)
	}
	assert.Equal(t, uint64(1), gather(t, reg, "demedist_search_score", nil).count)
	assert.Equal(t, 1.0, gather(t, reg, "demedist_fallbacks_total", nil).value)
	assert.Equal(t, 2.0, gather(t, reg, "demedist_rejects_total", map[string]string{"reason": engine.ReasonFailure}).value)
	assert.Equal(t, 1.0, gather(t, reg, "demedist_rejects_total", map[string]string{"reason": engine.ReasonDemeCount}).value)
}

func TestCollector_WithEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := promobserver.NewCollector(reg, promobserver.Config{Namespace: "abc", Subsystem: "fit"})
	require.NoError(t, err)
	e := engine.New(engine.WithMetrics(c))

	d := testutil.NewRNG(1).Structured(4)
	assert.Equal(t, 0.0, e.TotalDistance(context.Background(), d, d))
	seven := deme.Columnar{Columns: testutil.MustNormalize(d).Arrays[:7]}
	assert.True(t, math.IsInf(e.TotalDistance(context.Background(), seven, d), 1))

	assert.Equal(t, uint64(1), gather(t, reg, "abc_fit_search_duration_seconds", map[string]string{"status": promobserver.StatusOK}).count)
	assert.Equal(t, uint64(1), gather(t, reg, "abc_fit_search_duration_seconds", map[string]string{"status": promobserver.StatusRejected}).count)
	assert.Equal(t, 1.0, gather(t, reg, "abc_fit_rejects_total", map[string]string{"reason": engine.ReasonDemeCount}).value)
}

func TestNewCollector_Errors(t *testing.T) {
	_, err := promobserver.NewCollector(nil, promobserver.Config{})
	assert.ErrorIs(t, err, promobserver.ErrNilRegisterer)

	reg := prometheus.NewRegistry()
	_, err = promobserver.NewCollector(reg, promobserver.Config{})
	require.NoError(t, err)
	_, err = promobserver.NewCollector(reg, promobserver.Config{})
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
