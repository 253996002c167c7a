package events

import "github.com/Arrbel/cosmos-explorer-sub001/internal/logging"

type ViewerTracer struct{}

var Viewer = ViewerTracer{}

func (ViewerTracer) Compose(quality, cameraMode string, children int) {
	logging.Trace("viewer.compose", map[string]interface{}{
		"quality":  quality,
		"camera":   cameraMode,
		"children": children,
	})
}

func (ViewerTracer) SceneReady() {
	logging.Trace("viewer.scene-ready", nil)
}

func (ViewerTracer) QualityChange(quality string) {
	logging.Trace("viewer.quality-change", map[string]interface{}{"quality": quality})
}

func (ViewerTracer) PerformanceSample(fps, frameTime float64) {
	logging.Trace("viewer.performance", map[string]interface{}{
		"fps":       fps,
		"frameTime": frameTime,
	})
}
