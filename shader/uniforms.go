package shader

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is the parameter surface the scene layer pushes values through.
// Setters are fire-and-forget: a name that does not exist in the linked
// program is silently ignored, matching GL's -1 location behaviour.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	// SetSampler binds a named sampler uniform to a texture unit.
	SetSampler(name string, unit int32)
}

// Nop discards every uniform write. It stands in for a real program when
// rendering headless, so callers never need a nil check.
type Nop struct{}

func (Nop) SetMat4(string, mgl32.Mat4) {}
func (Nop) SetVec2(string, mgl32.Vec2) {}
func (Nop) SetVec3(string, mgl32.Vec3) {}
func (Nop) SetVec4(string, mgl32.Vec4) {}
func (Nop) SetFloat(string, float32) {}
func (Nop) SetInt(string, int32) {}
func (Nop) SetBool(string, bool) {}
func (Nop) SetSampler(string, int32) {}
