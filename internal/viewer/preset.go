package viewer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// preset is the YAML shape of a stored canvas configuration. Enum fields
// travel as their string names.
type preset struct {
	Quality                string       `yaml:"quality"`
	CameraMode             string       `yaml:"cameraMode"`
	ShowPerformanceMonitor bool         `yaml:"showPerformanceMonitor"`
	ShowGrid               bool         `yaml:"showGrid"`
	EnableEnvironment      bool         `yaml:"enableEnvironment"`
	AutoQualityAdjust      bool         `yaml:"autoQualityAdjust"`
	TargetFPS              int          `yaml:"targetFPS"`
	Scene                  SceneConfig  `yaml:"scene"`
	Camera                 CameraConfig `yaml:"camera"`
}

func presetFromOptions(opts Options) preset {
	return preset{
		Quality:                opts.Quality.String(),
		CameraMode:             opts.CameraMode.String(),
		ShowPerformanceMonitor: opts.ShowPerformanceMonitor,
		ShowGrid:               opts.ShowGrid,
		EnableEnvironment:      opts.EnableEnvironment,
		AutoQualityAdjust:      opts.AutoQualityAdjust,
		TargetFPS:              opts.TargetFPS,
		Scene:                  opts.Scene,
		Camera:                 opts.Camera,
	}
}

// LoadPreset reads canvas options from a YAML file. Keys absent from the
// file keep their default values; unknown keys are ignored.
func LoadPreset(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read preset: %w", err)
	}
	return parsePreset(data)
}

func parsePreset(data []byte) (Options, error) {
	opts := DefaultOptions()
	p := presetFromOptions(opts)
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Options{}, fmt.Errorf("parse preset: %w", err)
	}

	quality, err := ParseQuality(p.Quality)
	if err != nil {
		return Options{}, fmt.Errorf("preset: %w", err)
	}
	mode, err := ParseCameraMode(p.CameraMode)
	if err != nil {
		return Options{}, fmt.Errorf("preset: %w", err)
	}

	opts.Quality = quality
	opts.CameraMode = mode
	opts.ShowPerformanceMonitor = p.ShowPerformanceMonitor
	opts.ShowGrid = p.ShowGrid
	opts.EnableEnvironment = p.EnableEnvironment
	opts.AutoQualityAdjust = p.AutoQualityAdjust
	opts.TargetFPS = p.TargetFPS
	opts.Scene = p.Scene
	opts.Camera = p.Camera
	return opts, nil
}
