package app

import (
	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
)

// builtinMenu is the default control tree used when no menu file is given.
// Leaf handlers mutate the relay options and recompose, pushing the new
// configuration to the renderer. The console never applies the change to
// its own status display directly; acknowledgements arrive through the
// bridge.
func builtinMenu(opts *viewer.Options, recompose func()) []nav.Item {
	setQuality := func(q viewer.Quality) func() {
		return func() {
			opts.Quality = q
			recompose()
		}
	}
	setCamera := func(mode viewer.CameraMode) func() {
		return func() {
			opts.CameraMode = mode
			recompose()
		}
	}
	toggle := func(field *bool) func() {
		return func() {
			*field = !*field
			recompose()
		}
	}
	return []nav.Item{
		{ID: "scene", Label: "Scene", Icon: "✦", Children: []nav.Item{
			{ID: "scene:grid", Label: "Toggle grid", OnClick: toggle(&opts.ShowGrid)},
			{ID: "scene:environment", Label: "Toggle environment", OnClick: toggle(&opts.EnableEnvironment)},
			{ID: "scene:shadows", Label: "Toggle shadows", OnClick: func() {
				opts.Scene.Shadows = !opts.Scene.Shadows
				recompose()
			}},
		}},
		{ID: "camera", Label: "Camera", Icon: "◎", Children: []nav.Item{
			{ID: "camera:orbit", Label: "Orbit", OnClick: setCamera(viewer.CameraOrbit)},
			{ID: "camera:fly", Label: "Fly", OnClick: setCamera(viewer.CameraFly)},
		}},
		{ID: "quality", Label: "Quality", Icon: "◆", Children: []nav.Item{
			{ID: "quality:low", Label: "Low", OnClick: setQuality(viewer.QualityLow)},
			{ID: "quality:medium", Label: "Medium", OnClick: setQuality(viewer.QualityMedium)},
			{ID: "quality:high", Label: "High", OnClick: setQuality(viewer.QualityHigh)},
			{ID: "quality:ultra", Label: "Ultra", OnClick: setQuality(viewer.QualityUltra)},
			{ID: "quality:auto", Label: "Toggle auto adjust", OnClick: toggle(&opts.AutoQualityAdjust)},
		}},
		{ID: "perf", Label: "Performance monitor", Icon: "∿", OnClick: toggle(&opts.ShowPerformanceMonitor)},
		// TODO: enable once the renderer exposes a frame-capture callback.
		{ID: "capture", Label: "Capture frame", Icon: "✚", Disabled: true},
	}
}
