package bridge

import (
	"context"
	"time"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/logging/events"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/perf"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
)

// Kind represents the type of event relayed from the external renderer.
type Kind int

const (
	KindPerformance Kind = iota
	KindQualityChange
	KindSceneReady
)

// Event conveys one renderer callback to the UI loop.
type Event struct {
	Kind    Kind
	Sample  perf.Sample
	Quality viewer.Quality
}

// Bridge receives callbacks from the external renderer and republishes them
// on a channel the UI can consume as messages. Performance samples are
// throttled to a minimum interval; excess samples are dropped, never queued.
type Bridge struct {
	ctx    context.Context
	cancel context.CancelFunc

	events   chan Event
	throttle *throttle
}

// New creates a bridge. minSampleInterval bounds how often performance
// samples are relayed; zero disables throttling.
func New(minSampleInterval time.Duration) *Bridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bridge{
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		throttle: newThrottle(minSampleInterval),
	}
}

// Events returns the channel of relayed renderer events.
func (b *Bridge) Events() <-chan Event {
	return b.events
}

// Done is closed once the bridge has been stopped.
func (b *Bridge) Done() <-chan struct{} {
	return b.ctx.Done()
}

// Stop tears the bridge down. Callbacks arriving afterwards are dropped.
func (b *Bridge) Stop() {
	b.cancel()
}

// PerformanceUpdate relays a renderer performance sample. Samples inside
// the throttle window, or arriving while the consumer is saturated, are
// dropped: the UI only ever wants the freshest reading.
func (b *Bridge) PerformanceUpdate(s perf.Sample) {
	if !b.throttle.allow() {
		return
	}
	events.Viewer.PerformanceSample(s.FPS, s.FrameTime)
	select {
	case <-b.ctx.Done():
	case b.events <- Event{Kind: KindPerformance, Sample: s}:
	default:
	}
}

// QualityChange relays an adaptive-quality tier change.
func (b *Bridge) QualityChange(q viewer.Quality) {
	events.Viewer.QualityChange(q.String())
	select {
	case <-b.ctx.Done():
	case b.events <- Event{Kind: KindQualityChange, Quality: q}:
	}
}

// SceneReady relays renderer readiness.
func (b *Bridge) SceneReady() {
	events.Viewer.SceneReady()
	select {
	case <-b.ctx.Done():
	case b.events <- Event{Kind: KindSceneReady}:
	}
}

// Wire chains the bridge into the canvas hooks, preserving any hooks the
// caller already set. The returned options publish every renderer callback
// through the bridge in addition to the caller's own handlers.
func (b *Bridge) Wire(opts viewer.Options) viewer.Options {
	prevPerf := opts.OnPerformanceUpdate
	opts.OnPerformanceUpdate = func(s perf.Sample) {
		if prevPerf != nil {
			prevPerf(s)
		}
		b.PerformanceUpdate(s)
	}
	prevQuality := opts.OnQualityChange
	opts.OnQualityChange = func(q viewer.Quality) {
		if prevQuality != nil {
			prevQuality(q)
		}
		b.QualityChange(q)
	}
	prevReady := opts.OnSceneReady
	opts.OnSceneReady = func() {
		if prevReady != nil {
			prevReady()
		}
		b.SceneReady()
	}
	return opts
}
