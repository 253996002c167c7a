package perf

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Monitor retains the most recent renderer sample and publishes it as
// Prometheus gauges.
type Monitor struct {
	mu   sync.Mutex
	last Sample
	seen bool

	fps       prometheus.Gauge
	frameTime prometheus.Gauge
	drawCalls prometheus.Gauge
	triangles prometheus.Gauge
}

// NewMonitor builds a monitor backed by its own private registry.
func NewMonitor() *Monitor {
	return NewMonitorWithRegistry(prometheus.NewRegistry())
}

// NewMonitorWithRegistry builds a monitor registered on the supplied
// registerer. Each monitor owns its registry so instances stay independent
// in tests.
func NewMonitorWithRegistry(reg prometheus.Registerer) *Monitor {
	m := &Monitor{
		fps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "viewer_fps",
			Help: "Frames per second reported by the renderer.",
		}),
		frameTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "viewer_frame_time_ms",
			Help: "Milliseconds per frame reported by the renderer.",
		}),
		drawCalls: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "viewer_draw_calls",
			Help: "Draw calls in the last rendered frame.",
		}),
		triangles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "viewer_triangles",
			Help: "Triangles in the last rendered frame.",
		}),
	}
	reg.MustRegister(m.fps, m.frameTime, m.drawCalls, m.triangles)
	return m
}

// Observe records a sample and updates the gauges.
func (m *Monitor) Observe(s Sample) {
	m.mu.Lock()
	m.last = s
	m.seen = true
	m.mu.Unlock()

	m.fps.Set(s.FPS)
	m.frameTime.Set(s.FrameTime)
	m.drawCalls.Set(float64(s.DrawCalls))
	m.triangles.Set(float64(s.Triangles))
}

// Last returns the most recent sample, and whether one has been observed.
func (m *Monitor) Last() (Sample, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.seen
}

// Handler serves the gauges for the given registry in Prometheus text
// format.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
