package viewer

import (
	"github.com/Arrbel/cosmos-explorer-sub001/internal/logging/events"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/perf"
)

// Element kinds recognised by the external renderer. The console only
// arranges them; their behaviour lives on the renderer side.
const (
	ElementCanvas             = "canvas"
	ElementScene              = "scene"
	ElementCameraControls     = "camera-controls"
	ElementGrid               = "grid"
	ElementEnvironment        = "environment"
	ElementPerformanceMonitor = "performance-monitor"
)

// Element is one node of the composed canvas handed to the external
// renderer. Kind names the renderer element; Props are forwarded verbatim.
type Element struct {
	Kind     string
	Props    map[string]interface{}
	Children []Element
}

// Options is the full configuration surface of the 3D canvas. It is a
// stateless relay: every Compose call re-evaluates the current values, and
// nothing here is retained between calls.
type Options struct {
	Quality    Quality
	CameraMode CameraMode

	ShowPerformanceMonitor bool
	ShowGrid               bool
	EnableEnvironment      bool

	// AutoQualityAdjust and TargetFPS are forwarded to the renderer's
	// adaptive-quality mechanism; the adjustment algorithm is its concern.
	AutoQualityAdjust bool
	TargetFPS         int

	Scene  SceneConfig
	Camera CameraConfig

	// Hooks invoked by the renderer at its own discretion; wired through
	// uninterpreted.
	OnPerformanceUpdate func(perf.Sample)
	OnQualityChange     func(Quality)
	OnSceneReady        func()

	// Children are arbitrary extra elements composed beneath the canvas
	// root, appended after the built-in ones without interpretation.
	Children []Element
}

// DefaultOptions returns the canvas configuration used when the caller
// supplies none.
func DefaultOptions() Options {
	return Options{
		Quality:           QualityMedium,
		CameraMode:        CameraOrbit,
		ShowGrid:          true,
		EnableEnvironment: true,
		TargetFPS:         60,
		Scene:             DefaultSceneConfig(),
		Camera:            DefaultCameraConfig(),
	}
}

// Compose builds the element tree forwarded to the external renderer.
// Scene and camera controls are always present; grid, environment and
// performance monitor appear iff their toggle is set; caller children come
// last. Pure function of opts.
func Compose(opts Options) Element {
	children := make([]Element, 0, 5+len(opts.Children))
	children = append(children, Element{
		Kind: ElementScene,
		Props: map[string]interface{}{
			"background":  opts.Scene.Background,
			"fogColor":    opts.Scene.FogColor,
			"fogNear":     opts.Scene.FogNear,
			"fogFar":      opts.Scene.FogFar,
			"shadows":     opts.Scene.Shadows,
			"environment": opts.Scene.Environment,
		},
	})
	children = append(children, Element{
		Kind: ElementCameraControls,
		Props: map[string]interface{}{
			"mode":     opts.CameraMode.String(),
			"position": opts.Camera.Position,
			"target":   opts.Camera.Target,
			"fov":      opts.Camera.FOV,
			"near":     opts.Camera.Near,
			"far":      opts.Camera.Far,
		},
	})
	if opts.ShowGrid {
		children = append(children, Element{Kind: ElementGrid})
	}
	if opts.EnableEnvironment {
		children = append(children, Element{
			Kind:  ElementEnvironment,
			Props: map[string]interface{}{"preset": opts.Scene.Environment},
		})
	}
	if opts.ShowPerformanceMonitor {
		children = append(children, Element{Kind: ElementPerformanceMonitor})
	}
	children = append(children, opts.Children...)

	events.Viewer.Compose(opts.Quality.String(), opts.CameraMode.String(), len(children))
	return Element{
		Kind: ElementCanvas,
		Props: map[string]interface{}{
			"quality":           opts.Quality.String(),
			"autoQualityAdjust": opts.AutoQualityAdjust,
			"targetFPS":         opts.TargetFPS,
		},
		Children: children,
	}
}

// FindChild returns the first direct child of el with the given kind.
func FindChild(el Element, kind string) (Element, bool) {
	for _, child := range el.Children {
		if child.Kind == kind {
			return child, true
		}
	}
	return Element{}, false
}
