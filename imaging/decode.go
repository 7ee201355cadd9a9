// Package imaging decodes texture files into tightly packed pixel buffers
// ready for GPU upload.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Image is a decoded picture in a GL-ready layout: Channels bytes per
// pixel, rows stored bottom-to-top so V=0 is the bottom of the picture.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// Decode reads and decodes the image file at path. The channel count
// reflects the file's native pixel layout: 1 for grayscale, 3 for formats
// without an alpha channel (JPEG), 4 for everything carrying alpha.
func Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	return convert(img), nil
}

// channelCount maps the decoder's native representation to a packed
// per-pixel byte count.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}

func convert(img image.Image) *Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	channels := channelCount(img)

	pixels := make([]byte, w*h*channels)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Flip vertically: GL samples texture row 0 at V=0 (bottom).
		row := h - 1 - (y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			idx := (row*w + (x - bounds.Min.X)) * channels
			switch channels {
			case 1:
				pixels[idx] = uint8(r >> 8)
			case 3:
				pixels[idx] = uint8(r >> 8)
				pixels[idx+1] = uint8(g >> 8)
				pixels[idx+2] = uint8(b >> 8)
			default:
				pixels[idx] = uint8(r >> 8)
				pixels[idx+1] = uint8(g >> 8)
				pixels[idx+2] = uint8(b >> 8)
				pixels[idx+3] = uint8(a >> 8)
			}
		}
	}

	return &Image{
		Pixels:   pixels,
		Width:    w,
		Height:   h,
		Channels: channels,
	}
}
