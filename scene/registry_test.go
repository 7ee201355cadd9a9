package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-composer/imaging"
)

// fakeGPU records uploads, binds, and deletes in place of a GL context.
type fakeGPU struct {
	nextHandle uint32
	uploads    int
	bound      map[int]uint32
	deleted    []uint32
	uploadErr  error
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{nextHandle: 100, bound: make(map[int]uint32)}
}

func (f *fakeGPU) Upload(img *imaging.Image) (uint32, error) {
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}
	f.uploads++
	f.nextHandle++
	return f.nextHandle, nil
}

func (f *fakeGPU) Bind(unit int, handle uint32) {
	f.bound[unit] = handle
}

func (f *fakeGPU) Delete(handle uint32) {
	f.deleted = append(f.deleted, handle)
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func writeRGBAPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeGrayPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestRegistryCreateAndResolve(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)

	require.NoError(t, reg.Create(writeJPEG(t, dir, "rgb.jpg"), "floor"))
	require.NoError(t, reg.Create(writeRGBAPNG(t, dir, "rgba.png"), "label"))
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 2, gpu.uploads)

	handle, ok := reg.Handle("floor")
	assert.True(t, ok)
	assert.NotZero(t, handle)

	handle2, ok := reg.Handle("label")
	assert.True(t, ok)
	assert.NotEqual(t, handle, handle2)
}

func TestRegistryRejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)

	err := reg.Create(writeGrayPNG(t, dir, "gray.png"), "gray")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 0, gpu.uploads)
}

func TestRegistryCreateDecodeFailure(t *testing.T) {
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)

	err := reg.Create("does/not/exist.png", "missing")
	require.Error(t, err)
	assert.Equal(t, 0, reg.Len())

	_, ok := reg.Handle("missing")
	assert.False(t, ok)
}

func TestRegistrySlotMatchesInsertionOrder(t *testing.T) {
	dir := t.TempDir()
	reg := NewTextureRegistry(newFakeGPU())

	require.NoError(t, reg.Create(writeJPEG(t, dir, "a.jpg"), "floor"))
	require.NoError(t, reg.Create(writeJPEG(t, dir, "b.jpg"), "mesh"))
	require.NoError(t, reg.Create(writeJPEG(t, dir, "c.jpg"), "golds"))

	slot, ok := reg.Slot("mesh")
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	slot, ok = reg.Slot("floor")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)

	_, ok = reg.Slot("nonexistent")
	assert.False(t, ok)
	_, ok = reg.Handle("nonexistent")
	assert.False(t, ok)
}

func TestRegistryCapacity(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)
	path := writeJPEG(t, dir, "tex.jpg")

	for i := 0; i < MaxTextureSlots; i++ {
		require.NoError(t, reg.Create(path, fmt.Sprintf("tex-%d", i)))
	}
	require.Equal(t, MaxTextureSlots, reg.Len())

	err := reg.Create(path, "one-too-many")
	require.ErrorIs(t, err, ErrRegistryFull)
	assert.Equal(t, MaxTextureSlots, reg.Len())
	assert.Equal(t, MaxTextureSlots, gpu.uploads)

	// first sixteen are still resolvable in order
	for i := 0; i < MaxTextureSlots; i++ {
		slot, ok := reg.Slot(fmt.Sprintf("tex-%d", i))
		assert.True(t, ok)
		assert.Equal(t, i, slot)
	}
}

func TestRegistryBindAll(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)

	require.NoError(t, reg.Create(writeJPEG(t, dir, "a.jpg"), "a"))
	require.NoError(t, reg.Create(writeJPEG(t, dir, "b.jpg"), "b"))

	reg.BindAll()
	require.Len(t, gpu.bound, 2)

	for _, tag := range []string{"a", "b"} {
		slot, _ := reg.Slot(tag)
		handle, _ := reg.Handle(tag)
		assert.Equal(t, handle, gpu.bound[slot])
	}
}

func TestRegistryDestroyIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	gpu := newFakeGPU()
	reg := NewTextureRegistry(gpu)

	require.NoError(t, reg.Create(writeJPEG(t, dir, "a.jpg"), "a"))
	require.NoError(t, reg.Create(writeJPEG(t, dir, "b.jpg"), "b"))

	reg.Destroy()
	assert.Equal(t, 0, reg.Len())
	assert.Len(t, gpu.deleted, 2)

	reg.Destroy()
	assert.Len(t, gpu.deleted, 2, "second Destroy must not double-free")

	_, ok := reg.Handle("a")
	assert.False(t, ok)
}
