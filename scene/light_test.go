package scene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestUploadLights(t *testing.T) {
	u := newRecordingUniforms()
	UploadLights(u, []Light{
		{
			Position:          mgl32.Vec3{0, 8, 0},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.4},
			FocalStrength:     60,
			SpecularIntensity: 0.05,
		},
		{
			Position: mgl32.Vec3{3, 2, -1},
		},
	})

	assert.Equal(t, mgl32.Vec3{0, 8, 0}, u.values["lightSources[0].position"])
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.4}, u.values["lightSources[0].ambientColor"])
	assert.Equal(t, float32(60), u.values["lightSources[0].focalStrength"])
	assert.Equal(t, float32(0.05), u.values["lightSources[0].specularIntensity"])
	assert.Equal(t, mgl32.Vec3{3, 2, -1}, u.values["lightSources[1].position"])
	assert.Equal(t, true, u.values[UniformUseLighting])
}

func TestUploadLightsDropsExtras(t *testing.T) {
	u := newRecordingUniforms()
	lights := make([]Light, 6)
	for i := range lights {
		lights[i].Position = mgl32.Vec3{float32(i), 0, 0}
	}
	UploadLights(u, lights)

	for i := 0; i < MaxLights; i++ {
		assert.Contains(t, u.values, fmt.Sprintf("lightSources[%d].position", i))
	}
	assert.NotContains(t, u.values, "lightSources[4].position")
	assert.NotContains(t, u.values, "lightSources[5].position")
}
