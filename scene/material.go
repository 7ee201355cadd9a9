package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes Phong surface properties for one kind of object,
// identified by tag. Values are descriptive only; no range validation.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialTable is an insertion-ordered list of materials looked up by tag.
// Entries are defined during scene preparation and never mutated after.
type MaterialTable struct {
	entries []Material
}

// Define appends a material. Duplicate tags are not rejected; Find returns
// the first match.
func (t *MaterialTable) Define(m Material) {
	t.entries = append(t.entries, m)
}

// Find returns the first material whose tag equals the query.
func (t *MaterialTable) Find(tag string) (Material, bool) {
	for _, m := range t.entries {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len reports the number of defined materials.
func (t *MaterialTable) Len() int {
	return len(t.entries)
}
