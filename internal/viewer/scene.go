package viewer

// Vec3 is a position or direction in renderer world space.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// SceneConfig is pass-through scene configuration. Validation and
// interpretation happen entirely inside the external renderer.
type SceneConfig struct {
	Background  string  `yaml:"background"`
	FogColor    string  `yaml:"fogColor"`
	FogNear     float64 `yaml:"fogNear"`
	FogFar      float64 `yaml:"fogFar"`
	Shadows     bool    `yaml:"shadows"`
	Environment string  `yaml:"environment"`
}

// CameraConfig is pass-through camera configuration.
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// DefaultSceneConfig returns the scene parameters used when the caller
// supplies none: black space background, no fog, shadows on, night preset.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Background:  "#000000",
		Shadows:     true,
		Environment: "night",
	}
}

// DefaultCameraConfig returns the standard starting camera: pulled back on
// Z, looking at the origin.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: Vec3{X: 0, Y: 5, Z: 20},
		Target:   Vec3{},
		FOV:      60,
		Near:     0.1,
		Far:      10000,
	}
}
