package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-composer/shader"
)

// recordingUniforms captures every uniform write for inspection.
type recordingUniforms struct {
	values map[string]any
}

var _ shader.Uniforms = (*recordingUniforms)(nil)

func newRecordingUniforms() *recordingUniforms {
	return &recordingUniforms{values: make(map[string]any)}
}

func (r *recordingUniforms) SetMat4(name string, m mgl32.Mat4) { r.values[name] = m }
func (r *recordingUniforms) SetVec2(name string, v mgl32.Vec2) { r.values[name] = v }
func (r *recordingUniforms) SetVec3(name string, v mgl32.Vec3) { r.values[name] = v }
func (r *recordingUniforms) SetVec4(name string, v mgl32.Vec4) { r.values[name] = v }
func (r *recordingUniforms) SetFloat(name string, f float32) { r.values[name] = f }
func (r *recordingUniforms) SetInt(name string, i int32) { r.values[name] = i }
func (r *recordingUniforms) SetBool(name string, b bool) { r.values[name] = b }
func (r *recordingUniforms) SetSampler(name string, unit int32) { r.values[name] = unit }

// fakeMeshes records draw calls in order.
type fakeMeshes struct {
	draws []string
}

func (f *fakeMeshes) LoadMeshes() error { return nil }
func (f *fakeMeshes) DrawPlane() { f.draws = append(f.draws, "plane") }
func (f *fakeMeshes) DrawCylinder() { f.draws = append(f.draws, "cylinder") }
func (f *fakeMeshes) DrawBox() { f.draws = append(f.draws, "box") }
func (f *fakeMeshes) DrawSphere() { f.draws = append(f.draws, "sphere") }
func (f *fakeMeshes) Destroy() {}

func (f *fakeMeshes) DrawCone(capped bool) {
	if capped {
		f.draws = append(f.draws, "cone+cap")
	} else {
		f.draws = append(f.draws, "cone")
	}
}

func newTestManager() (*Manager, *recordingUniforms, *fakeMeshes) {
	u := newRecordingUniforms()
	meshes := &fakeMeshes{}
	return NewManager(u, newFakeGPU(), meshes), u, meshes
}

func TestManagerSetColor(t *testing.T) {
	mgr, u, _ := newTestManager()
	mgr.SetColor(0.2, 0.4, 0.6, 1)

	assert.Equal(t, false, u.values[UniformUseTexture])
	assert.Equal(t, mgl32.Vec4{0.2, 0.4, 0.6, 1}, u.values[UniformObjectColor])
}

func TestManagerSetTextureUnknownTag(t *testing.T) {
	mgr, u, _ := newTestManager()
	mgr.SetTexture("nope")

	// a lookup miss must not bind the sampler to a stale unit
	assert.NotContains(t, u.values, UniformObjectTexture)
	assert.NotContains(t, u.values, UniformUseTexture)
}

func TestManagerSetMaterial(t *testing.T) {
	mgr, u, _ := newTestManager()
	mgr.Materials().Define(Material{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       80,
	})

	mgr.SetMaterial("gold")
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.1}, u.values["material.ambientColor"])
	assert.Equal(t, float32(0.4), u.values["material.ambientStrength"])
	assert.Equal(t, float32(80), u.values["material.shininess"])

	before := len(u.values)
	mgr.SetMaterial("undefined")
	assert.Len(t, u.values, before, "unknown material must leave uniforms untouched")
}

func TestManagerPrepare(t *testing.T) {
	mgr, u, _ := newTestManager()
	require.NoError(t, mgr.Prepare())

	// texture files are absent in tests; materials and lights still land
	for _, tag := range []string{"gold", "wood", "glass"} {
		_, ok := mgr.Materials().Find(tag)
		assert.True(t, ok, "material %q", tag)
	}
	assert.Equal(t, true, u.values[UniformUseLighting])
	assert.Contains(t, u.values, "lightSources[3].position")
}

func TestManagerRenderDrawSequence(t *testing.T) {
	mgr, u, meshes := newTestManager()
	mgr.Render()

	assert.Equal(t, []string{
		"cylinder", "cone+cap", "cylinder", "cylinder", // bottle
		"box", "cone+cap", "sphere", // speaker
		"plane", // floor
	}, meshes.draws)

	assert.Contains(t, u.values, UniformModel)
	assert.Contains(t, u.values, UniformUVScale)
}
