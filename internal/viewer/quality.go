package viewer

import "fmt"

// Quality selects the renderer quality tier. The console never interprets
// the tier; it is forwarded verbatim to the external renderer.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityUltra:
		return "ultra"
	default:
		return fmt.Sprintf("quality(%d)", int(q))
	}
}

// ParseQuality maps a tier name to its Quality value.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	case "ultra":
		return QualityUltra, nil
	default:
		return 0, fmt.Errorf("unknown quality tier %q", s)
	}
}

// CameraMode selects the camera-control scheme forwarded to the renderer.
type CameraMode int

const (
	CameraOrbit CameraMode = iota
	CameraFly
)

func (c CameraMode) String() string {
	switch c {
	case CameraOrbit:
		return "orbit"
	case CameraFly:
		return "fly"
	default:
		return fmt.Sprintf("camera(%d)", int(c))
	}
}

// ParseCameraMode maps a mode name to its CameraMode value.
func ParseCameraMode(s string) (CameraMode, error) {
	switch s {
	case "orbit":
		return CameraOrbit, nil
	case "fly":
		return CameraFly, nil
	default:
		return 0, fmt.Errorf("unknown camera mode %q", s)
	}
}
