package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-composer/core"
	"scene-composer/mesh"
)

// GPUMesh holds the GL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// UploadMesh creates GL buffers for the given mesh data. The vertex layout
// matches core.Vertex: position at location 0, normal at 1, UV at 2.
func UploadMesh(data core.MeshData) *GPUMesh {
	if len(data.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(data.Vertices)*int(stride),
		gl.Ptr(data.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(data.Indices)*4,
		gl.Ptr(data.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu
}

// Draw issues an indexed draw of the whole mesh.
func (g *GPUMesh) Draw() {
	g.DrawRange(0, g.IndexCount)
}

// DrawRange draws count indices starting at first.
func (g *GPUMesh) DrawRange(first, count int32) {
	gl.BindVertexArray(g.VAO)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(int(first)*4))
	gl.BindVertexArray(0)
}

// Destroy frees the GL buffers.
func (g *GPUMesh) Destroy() {
	gl.DeleteVertexArrays(1, &g.VAO)
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteBuffers(1, &g.EBO)
}

// MeshSet implements scene.MeshProvider: one GPU copy of each primitive,
// shared by every draw of that shape.
type MeshSet struct {
	plane    *GPUMesh
	cylinder *GPUMesh
	cone     *GPUMesh
	box      *GPUMesh
	sphere   *GPUMesh

	// cone indices are side-first; drawing this prefix skips the cap
	coneSideCount int32
}

// NewMeshSet returns an empty set; call LoadMeshes with the GL context
// current before drawing.
func NewMeshSet() *MeshSet {
	return &MeshSet{}
}

// LoadMeshes generates and uploads each primitive once, no matter how many
// times it is drawn per frame.
func (s *MeshSet) LoadMeshes() error {
	s.plane = UploadMesh(mesh.Plane(2, 2, 1))
	s.cylinder = UploadMesh(mesh.Cylinder(1, 1, 32))

	coneData, sideCount := mesh.Cone(1, 1, 32)
	s.cone = UploadMesh(coneData)
	s.coneSideCount = int32(sideCount)

	s.box = UploadMesh(mesh.Box(1))
	s.sphere = UploadMesh(mesh.Sphere(1, 32, 16))
	return nil
}

func (s *MeshSet) DrawPlane()    { s.plane.Draw() }
func (s *MeshSet) DrawCylinder() { s.cylinder.Draw() }
func (s *MeshSet) DrawBox()      { s.box.Draw() }
func (s *MeshSet) DrawSphere()   { s.sphere.Draw() }

func (s *MeshSet) DrawCone(capped bool) {
	if capped {
		s.cone.Draw()
		return
	}
	s.cone.DrawRange(0, s.coneSideCount)
}

// Destroy frees every uploaded primitive.
func (s *MeshSet) Destroy() {
	for _, g := range []*GPUMesh{s.plane, s.cylinder, s.cone, s.box, s.sphere} {
		if g != nil {
			g.Destroy()
		}
	}
	s.plane, s.cylinder, s.cone, s.box, s.sphere = nil, nil, nil, nil, nil
}
