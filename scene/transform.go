package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/shader"
)

// Compose builds a model matrix from scale, per-axis rotation in degrees,
// and translation. The order is fixed: scale first, then rotation about
// X, Y, Z as independent axis rotations, then translation. Rotations are
// applied axis by axis rather than as a combined quaternion, so the result
// is order-dependent.
func Compose(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	translate := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	sc := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translate.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(sc)
}

// ApplyTransform composes a model matrix and pushes it as the active model
// uniform for the next draw call. Nothing is retained between calls.
func ApplyTransform(u shader.Uniforms, scale, rotationDeg, position mgl32.Vec3) {
	u.SetMat4(UniformModel, Compose(scale, rotationDeg, position))
}
