package perf

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorRetainsLastSample(t *testing.T) {
	m := NewMonitor()

	_, seen := m.Last()
	assert.False(t, seen, "fresh monitor should have no sample")

	m.Observe(Sample{FPS: 60, FrameTime: 16.6, DrawCalls: 120, Triangles: 50000})
	m.Observe(Sample{FPS: 30, FrameTime: 33.3, DrawCalls: 80, Triangles: 20000})

	last, seen := m.Last()
	require.True(t, seen)
	assert.Equal(t, 30.0, last.FPS)
	assert.Equal(t, 80, last.DrawCalls)
}

func TestMonitorUpdatesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitorWithRegistry(reg)

	m.Observe(Sample{FPS: 45, FrameTime: 22.2, DrawCalls: 99, Triangles: 12345})

	assert.Equal(t, 45.0, testutil.ToFloat64(m.fps))
	assert.Equal(t, 22.2, testutil.ToFloat64(m.frameTime))
	assert.Equal(t, 99.0, testutil.ToFloat64(m.drawCalls))
	assert.Equal(t, 12345.0, testutil.ToFloat64(m.triangles))
}
