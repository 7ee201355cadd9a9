// Package scene composes a fixed still-life scene (a water bottle and a
// speaker on a wooden floor) from primitive meshes, textures, materials,
// and lights, pushing per-draw parameters through a shader facade.
package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/shader"
)

// Uniform names shared between the scene layer and the GLSL sources.
const (
	UniformModel         = "model"
	UniformView          = "view"
	UniformProjection    = "projection"
	UniformViewPosition  = "viewPosition"
	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"

	uniformMaterialAmbientColor    = "material.ambientColor"
	uniformMaterialAmbientStrength = "material.ambientStrength"
	uniformMaterialDiffuseColor    = "material.diffuseColor"
	uniformMaterialSpecularColor   = "material.specularColor"
	uniformMaterialShininess       = "material.shininess"
)

// MeshProvider loads and draws the primitive meshes the scene is built
// from. internal/opengl provides the real implementation.
type MeshProvider interface {
	LoadMeshes() error
	DrawPlane()
	DrawCylinder()
	// DrawCone renders a cone, optionally including its bottom cap.
	DrawCone(capped bool)
	DrawBox()
	DrawSphere()
	Destroy()
}

// Manager owns the texture registry, material table, and mesh provider for
// one scene. The shader facade is borrowed; its lifetime is managed by the
// caller.
type Manager struct {
	uniforms  shader.Uniforms
	textures  *TextureRegistry
	materials *MaterialTable
	meshes    MeshProvider
}

// NewManager wires a scene manager. uniforms must not be nil; pass
// shader.Nop to run without a GPU program.
func NewManager(uniforms shader.Uniforms, gpu TextureUploader, meshes MeshProvider) *Manager {
	return &Manager{
		uniforms:  uniforms,
		textures:  NewTextureRegistry(gpu),
		materials: &MaterialTable{},
		meshes:    meshes,
	}
}

// Textures exposes the registry, mainly for teardown ordering and tests.
func (m *Manager) Textures() *TextureRegistry { return m.textures }

// Materials exposes the material table.
func (m *Manager) Materials() *MaterialTable { return m.materials }

// SetColor disables texturing and sets a flat RGBA color for the next draw.
func (m *Manager) SetColor(r, g, b, a float32) {
	m.uniforms.SetBool(UniformUseTexture, false)
	m.uniforms.SetVec4(UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture enables texturing and points the object sampler at the unit
// holding the tagged texture. An unknown tag leaves the sampler untouched
// so a stale unit is never bound.
func (m *Manager) SetTexture(tag string) {
	slot, ok := m.textures.Slot(tag)
	if !ok {
		log.Printf("scene: texture %q not registered", tag)
		return
	}
	m.uniforms.SetBool(UniformUseTexture, true)
	m.uniforms.SetSampler(UniformObjectTexture, int32(slot))
}

// SetUVScale sets the texture coordinate scale for the next draw.
func (m *Manager) SetUVScale(u, v float32) {
	m.uniforms.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial pushes the tagged material's Phong parameters. An unknown
// tag leaves the previous material in place.
func (m *Manager) SetMaterial(tag string) {
	mat, ok := m.materials.Find(tag)
	if !ok {
		log.Printf("scene: material %q not defined", tag)
		return
	}
	m.uniforms.SetVec3(uniformMaterialAmbientColor, mat.AmbientColor)
	m.uniforms.SetFloat(uniformMaterialAmbientStrength, mat.AmbientStrength)
	m.uniforms.SetVec3(uniformMaterialDiffuseColor, mat.DiffuseColor)
	m.uniforms.SetVec3(uniformMaterialSpecularColor, mat.SpecularColor)
	m.uniforms.SetFloat(uniformMaterialShininess, mat.Shininess)
}

// Prepare loads every asset the scene needs: textures, materials, lights,
// and the primitive meshes. Texture load failures are logged and skipped;
// the affected object simply renders untextured.
func (m *Manager) Prepare() error {
	m.loadTextures()
	m.defineMaterials()
	UploadLights(m.uniforms, sceneLights())
	return m.meshes.LoadMeshes()
}

// Destroy releases all GPU resources owned by the scene.
func (m *Manager) Destroy() {
	m.textures.Destroy()
	m.meshes.Destroy()
}

func (m *Manager) loadTextures() {
	load := func(path, tag string) {
		if err := m.textures.Create(path, tag); err != nil {
			log.Printf("scene: %v", err)
		}
	}
	load("assets/textures/mattwhite.png", "floor")
	load("assets/textures/black-mesh.png", "mesh")
	load("assets/textures/gold-seamless.png", "golds")

	m.textures.BindAll()
}

func (m *Manager) defineMaterials() {
	m.materials.Define(Material{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       80,
	})
	m.materials.Define(Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.3,
	})
	m.materials.Define(Material{
		Tag:             "glass",
		AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       85,
	})
}

func sceneLights() []Light {
	return []Light{
		{
			Position:          mgl32.Vec3{0, 8, 0},
			AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.4},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.8},
			SpecularColor:     mgl32.Vec3{0, 0, 0.2},
			FocalStrength:     60,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{3, 2, -1},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:     mgl32.Vec3{0, 0, 0},
			FocalStrength:     60,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{-5, 5, -5},
			AmbientColor:      mgl32.Vec3{0, 0, 0},
			DiffuseColor:      mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:     mgl32.Vec3{0, 0, 0},
			FocalStrength:     60,
			SpecularIntensity: 0.5,
		},
		{
			Position:          mgl32.Vec3{5, 5, 5},
			AmbientColor:      mgl32.Vec3{0, 0, 0},
			DiffuseColor:      mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:     mgl32.Vec3{0, 0, 0},
			FocalStrength:     60,
			SpecularIntensity: 0.5,
		},
	}
}

// Render draws the fixed scene: a stylized water bottle on the left, a
// speaker on the right, both standing on a wooden floor plane.
func (m *Manager) Render() {
	noRotation := mgl32.Vec3{0, 0, 0}

	// Water bottle: body, shoulder cone, neck, cap.
	ApplyTransform(m.uniforms, mgl32.Vec3{1.5, 6, 1.5}, noRotation, mgl32.Vec3{-3, 0, 0})
	m.SetColor(0.635, 0.635, 0.635, 1)
	m.meshes.DrawCylinder()

	ApplyTransform(m.uniforms, mgl32.Vec3{1.5, 1.5, 1.5}, noRotation, mgl32.Vec3{-3, 6, 0})
	m.SetColor(0.635, 0.635, 0.635, 0.5)
	m.meshes.DrawCone(true)

	ApplyTransform(m.uniforms, mgl32.Vec3{1, 0.3, 1}, noRotation, mgl32.Vec3{-3, 6.5, 0})
	m.SetColor(0.2, 0.2, 0.2, 1)
	m.meshes.DrawCylinder()

	ApplyTransform(m.uniforms, mgl32.Vec3{1, 0.7, 1}, noRotation, mgl32.Vec3{-3, 6.8, 0})
	m.SetColor(0.69, 0.69, 0.69, 1)
	m.meshes.DrawCylinder()

	// Speaker: textured cabinet, driver cone, dust cap.
	ApplyTransform(m.uniforms, mgl32.Vec3{4, 4, 4}, noRotation, mgl32.Vec3{2, 2, -1.52})
	m.SetUVScale(1, 1)
	m.SetTexture("golds")
	m.SetMaterial("gold")
	m.meshes.DrawBox()

	ApplyTransform(m.uniforms, mgl32.Vec3{1.5, 1.5, 1.5}, mgl32.Vec3{-90, 50, 0}, mgl32.Vec3{2, 2, 0.5})
	m.SetTexture("mesh")
	m.meshes.DrawCone(true)

	ApplyTransform(m.uniforms, mgl32.Vec3{0.4, 0.15, 0.4}, mgl32.Vec3{-90, 0, 0}, mgl32.Vec3{2, 2, 0.5})
	m.SetColor(0.2, 0.2, 0.2, 1)
	m.meshes.DrawSphere()

	// Floor.
	ApplyTransform(m.uniforms, mgl32.Vec3{20, 1, 10}, noRotation, mgl32.Vec3{0, 0, 0})
	m.SetMaterial("wood")
	m.SetTexture("floor")
	m.meshes.DrawPlane()
}
