package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-composer/imaging"
)

// TextureStore implements scene.TextureUploader over GL texture objects.
type TextureStore struct{}

// Upload creates a GPU texture from decoded pixels: repeat wrapping,
// linear filtering, full mipmap chain. RGB and RGBA layouts are uploaded
// in their native format; anything else is an error.
func (TextureStore) Upload(img *imaging.Image) (uint32, error) {
	if len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture has no pixel data")
	}

	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("cannot upload %d-channel texture", img.Channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths.
	if img.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&img.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if img.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// Bind binds the handle to the given texture unit.
func (TextureStore) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete frees the GPU texture.
func (TextureStore) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
