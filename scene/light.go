package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/shader"
)

// MaxLights is the light-source array size in the fragment shader.
const MaxLights = 4

// Light is one point light source. Lights are pushed to the shader once at
// scene setup and not retained afterwards.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// UploadLights writes up to MaxLights light sources into the shader's
// lightSources array and enables lighting. Extra lights are dropped.
func UploadLights(u shader.Uniforms, lights []Light) {
	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}
	for i, l := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		u.SetVec3(prefix+"position", l.Position)
		u.SetVec3(prefix+"ambientColor", l.AmbientColor)
		u.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
		u.SetVec3(prefix+"specularColor", l.SpecularColor)
		u.SetFloat(prefix+"focalStrength", l.FocalStrength)
		u.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
	}
	u.SetBool(UniformUseLighting, true)
}
