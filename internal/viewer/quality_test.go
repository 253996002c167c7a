package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityRoundTrip(t *testing.T) {
	for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh, QualityUltra} {
		parsed, err := ParseQuality(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, parsed)
	}
	_, err := ParseQuality("cinematic")
	assert.Error(t, err)
}

func TestCameraModeRoundTrip(t *testing.T) {
	for _, c := range []CameraMode{CameraOrbit, CameraFly} {
		parsed, err := ParseCameraMode(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCameraMode("dolly")
	assert.Error(t, err)
}
