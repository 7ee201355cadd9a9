package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane(t *testing.T) {
	data := Plane(2, 2, 1)

	assert.Len(t, data.Vertices, 4)
	assert.Len(t, data.Indices, 6)
	for _, v := range data.Vertices {
		assert.Equal(t, float32(0), v.Position.Y())
		assert.Equal(t, float32(1), v.Normal.Y())
	}
}

func TestBox(t *testing.T) {
	data := Box(1)

	assert.Len(t, data.Vertices, 24)
	assert.Len(t, data.Indices, 36)
	for _, v := range data.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-6)
		for i := 0; i < 3; i++ {
			assert.LessOrEqual(t, v.Position[i], float32(0.5))
			assert.GreaterOrEqual(t, v.Position[i], float32(-0.5))
		}
	}
}

func TestCylinderSpansBaseToHeight(t *testing.T) {
	data := Cylinder(1, 2, 16)
	require.NotEmpty(t, data.Vertices)

	minY, maxY := data.Vertices[0].Position.Y(), data.Vertices[0].Position.Y()
	for _, v := range data.Vertices {
		y := v.Position.Y()
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	// base on the floor so stacked objects line up
	assert.Equal(t, float32(0), minY)
	assert.Equal(t, float32(2), maxY)
}

func TestConeSideFirstIndexLayout(t *testing.T) {
	segments := 16
	data, sideCount := Cone(1, 1, segments)

	assert.Equal(t, segments*3, sideCount)
	assert.Greater(t, len(data.Indices), sideCount, "cap indices follow the side")
	assert.Equal(t, 0, (len(data.Indices)-sideCount)%3)

	// every side index must reference the tip or a rim vertex
	for _, idx := range data.Indices[:sideCount] {
		assert.Less(t, int(idx), 2+segments)
	}
}

func TestSphere(t *testing.T) {
	data := Sphere(2, 8, 4)

	for _, v := range data.Vertices {
		assert.InDelta(t, 2, v.Position.Len(), 1e-5)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
	}
	assert.Equal(t, 0, len(data.Indices)%3)
}
