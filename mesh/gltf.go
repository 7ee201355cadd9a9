package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"scene-composer/core"
)

// LoadGLTF reads the first mesh primitive of a .glb/.gltf file as prop
// geometry. Materials and the node hierarchy are ignored; props are shaded
// like any other scene object.
func LoadGLTF(path string) (core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("gltf open %q: %w", path, err)
	}

	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			data, err := loadPrimitive(doc, gm.Name, *prim)
			if err != nil {
				return core.MeshData{}, fmt.Errorf("gltf %q: %w", path, err)
			}
			return data, nil
		}
	}
	return core.MeshData{}, fmt.Errorf("gltf %q: no mesh primitives", path)
}

func loadPrimitive(doc *gltf.Document, name string, prim gltf.Primitive) (core.MeshData, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return core.MeshData{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return core.MeshData{}, fmt.Errorf("indices: %w", err)
		}
	}

	if name == "" {
		name = "GLTFProp"
	}
	return core.MeshData{Name: name, Vertices: verts, Indices: indices}, nil
}
