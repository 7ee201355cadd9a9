package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/shader"
)

// Camera is a fixed perspective camera looking at a target point.
type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	FOV         float32 // vertical field of view in degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera creates a camera with a sensible default framing of the scene.
func NewCamera(aspectRatio float32) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 5, 12},
		Target:      mgl32.Vec3{0, 3, 0},
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         60,
		AspectRatio: aspectRatio,
		NearPlane:   0.1,
		FarPlane:    100,
	}
}

// UpdateAspectRatio recomputes the aspect ratio after a window resize.
func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Apply pushes the view, projection, and view position uniforms.
func (c *Camera) Apply(u shader.Uniforms) {
	u.SetMat4(UniformView, c.ViewMatrix())
	u.SetMat4(UniformProjection, c.ProjectionMatrix())
	u.SetVec3(UniformViewPosition, c.Position)
}
