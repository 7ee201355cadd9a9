// Package mesh generates the primitive geometry the scene is assembled
// from. All generators return CPU-side data; GPU upload is the renderer
// backend's job.
package mesh

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"scene-composer/core"
)

// Plane generates a flat plane on the XZ axis, centered at the origin,
// facing up.
func Plane(width, depth float32, subdivisions int) core.MeshData {
	if subdivisions < 1 {
		subdivisions = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)

			vertices = append(vertices, core.Vertex{
				Position: mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth},
				Normal:   mgl32.Vec3{0, 1, 0},
				UV:       mgl32.Vec2{u, v},
			})
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return core.MeshData{Name: "Plane", Vertices: vertices, Indices: indices}
}

// Box generates an axis-aligned cube centered at the origin, with
// per-face normals and UVs.
func Box(size float32) core.MeshData {
	h := size / 2.0

	type face struct {
		normal mgl32.Vec3
		verts  [4]mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, p := range f.verts {
			vertices = append(vertices, core.Vertex{
				Position: p,
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return core.MeshData{Name: "Box", Vertices: vertices, Indices: indices}
}

// Cylinder generates a capped cylinder with its base on the XZ plane,
// extending up to height. Objects stack on the scene floor, so the base
// sits at Y=0 rather than centering on the origin.
func Cylinder(radius, height float32, segments int) core.MeshData {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{cosT, 0, sinT}
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, 0, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, height, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{u, 1},
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendDisc(&vertices, &indices, radius, height, mgl32.Vec3{0, 1, 0}, segments)
	appendDisc(&vertices, &indices, radius, 0, mgl32.Vec3{0, -1, 0}, segments)

	return core.MeshData{Name: "Cylinder", Vertices: vertices, Indices: indices}
}

// Cone generates a cone with its base on the XZ plane and its tip at
// height. The index buffer is laid out side-first; sideIndexCount marks
// where the bottom cap begins, so renderers can draw the cone capless by
// stopping there.
func Cone(radius, height float32, segments int) (data core.MeshData, sideIndexCount int) {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	slopeAngle := float32(stdmath.Atan2(float64(radius), float64(height)))
	ny := float32(stdmath.Cos(float64(slopeAngle)))
	nr := float32(stdmath.Sin(float64(slopeAngle)))

	tipIdx := uint32(0)
	vertices = append(vertices, core.Vertex{
		Position: mgl32.Vec3{0, height, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		UV:       mgl32.Vec2{0.5, 0},
	})

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := mgl32.Vec3{cosT * nr, ny, sinT * nr}.Normalize()

		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, 0, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{float32(i) / float32(segments), 1},
		})
	}

	for i := 0; i < segments; i++ {
		indices = append(indices, tipIdx, uint32(i+1), uint32(i+2))
	}
	sideIndexCount = len(indices)

	appendDisc(&vertices, &indices, radius, 0, mgl32.Vec3{0, -1, 0}, segments)

	return core.MeshData{Name: "Cone", Vertices: vertices, Indices: indices}, sideIndexCount
}

// Sphere generates a UV-sphere centered at the origin.
func Sphere(radius float32, segments, rings int) core.MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return core.MeshData{Name: "Sphere", Vertices: vertices, Indices: indices}
}

// appendDisc adds a horizontal cap at the given Y level. The winding
// follows the normal so front faces point along it.
func appendDisc(vertices *[]core.Vertex, indices *[]uint32, radius, y float32, normal mgl32.Vec3, segments int) {
	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		UV:       mgl32.Vec2{0.5, 0.5},
	})

	up := normal.Y() > 0
	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		cosN := float32(stdmath.Cos(nextTheta))
		sinN := float32(stdmath.Sin(nextTheta))

		v1 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, y, sinT * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosT*0.5 + 0.5, sinT*0.5 + 0.5},
		})
		v2 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: mgl32.Vec3{cosN * radius, y, sinN * radius},
			Normal:   normal,
			UV:       mgl32.Vec2{cosN*0.5 + 0.5, sinN*0.5 + 0.5},
		})

		if up {
			*indices = append(*indices, center, v1, v2)
		} else {
			*indices = append(*indices, center, v2, v1)
		}
	}
}
