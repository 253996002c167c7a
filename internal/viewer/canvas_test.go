package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeTogglesOptionalElements(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		kind   string
	}{
		{"grid", func(o *Options) { o.ShowGrid = true }, ElementGrid},
		{"environment", func(o *Options) { o.EnableEnvironment = true }, ElementEnvironment},
		{"performance monitor", func(o *Options) { o.ShowPerformanceMonitor = true }, ElementPerformanceMonitor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{}
			root := Compose(opts)
			_, present := FindChild(root, tc.kind)
			assert.False(t, present, "%s should be absent when disabled", tc.kind)

			tc.mutate(&opts)
			root = Compose(opts)
			_, present = FindChild(root, tc.kind)
			assert.True(t, present, "%s should be present when enabled", tc.kind)
		})
	}
}

func TestComposeAlwaysIncludesSceneAndCamera(t *testing.T) {
	root := Compose(Options{})
	_, ok := FindChild(root, ElementScene)
	assert.True(t, ok, "scene element must always be composed")
	_, ok = FindChild(root, ElementCameraControls)
	assert.True(t, ok, "camera controls must always be composed")
}

func TestComposeForwardsConfigVerbatim(t *testing.T) {
	opts := DefaultOptions()
	opts.Quality = QualityUltra
	opts.CameraMode = CameraFly
	opts.AutoQualityAdjust = true
	opts.TargetFPS = 30
	opts.Scene.Background = "#101020"
	opts.Camera.FOV = 75

	root := Compose(opts)
	assert.Equal(t, "ultra", root.Props["quality"])
	assert.Equal(t, true, root.Props["autoQualityAdjust"])
	assert.Equal(t, 30, root.Props["targetFPS"])

	scene, ok := FindChild(root, ElementScene)
	require.True(t, ok)
	assert.Equal(t, "#101020", scene.Props["background"])

	camera, ok := FindChild(root, ElementCameraControls)
	require.True(t, ok)
	assert.Equal(t, "fly", camera.Props["mode"])
	assert.Equal(t, 75.0, camera.Props["fov"])
}

func TestComposeAppendsCallerChildrenLast(t *testing.T) {
	opts := DefaultOptions()
	opts.Children = []Element{
		{Kind: "starfield"},
		{Kind: "orbit-paths"},
	}
	root := Compose(opts)
	require.GreaterOrEqual(t, len(root.Children), 2)
	assert.Equal(t, "starfield", root.Children[len(root.Children)-2].Kind)
	assert.Equal(t, "orbit-paths", root.Children[len(root.Children)-1].Kind)
}

func TestComposeIsIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPerformanceMonitor = true
	first := Compose(opts)
	second := Compose(opts)
	assert.Equal(t, first, second, "same options must compose the same tree")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, QualityMedium, opts.Quality)
	assert.Equal(t, CameraOrbit, opts.CameraMode)
	assert.True(t, opts.ShowGrid)
	assert.True(t, opts.EnableEnvironment)
	assert.False(t, opts.ShowPerformanceMonitor)
	assert.Equal(t, 60, opts.TargetFPS)
}
