package scene

import (
	"errors"
	"fmt"

	"scene-composer/imaging"
)

// MaxTextureSlots is the registry capacity. Slot indices double as texture
// units, so the ceiling matches the minimum unit count GL guarantees.
const MaxTextureSlots = 16

var (
	// ErrRegistryFull is returned when all texture slots are occupied.
	ErrRegistryFull = errors.New("texture registry full")
	// ErrUnsupportedFormat is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedFormat = errors.New("unsupported texture format")
)

// TextureUploader is the GPU side of texture management. The registry owns
// which textures exist and where they live; the uploader owns how they get
// there. internal/opengl provides the real implementation.
type TextureUploader interface {
	// Upload creates a GPU texture from decoded pixels and returns its handle.
	Upload(img *imaging.Image) (uint32, error)
	// Bind binds the handle to the given texture unit.
	Bind(unit int, handle uint32)
	// Delete releases the GPU texture.
	Delete(handle uint32)
}

type textureEntry struct {
	tag    string
	handle uint32
}

// TextureRegistry maps string tags to GPU texture handles across a fixed
// set of slots. A texture's slot index is the texture unit it is bound to
// by BindAll, so consumers can feed Slot straight into a sampler uniform.
//
// Tags are not checked for uniqueness; lookups return the first match.
type TextureRegistry struct {
	gpu     TextureUploader
	entries []textureEntry
}

// NewTextureRegistry creates an empty registry backed by the given uploader.
func NewTextureRegistry(gpu TextureUploader) *TextureRegistry {
	return &TextureRegistry{
		gpu:     gpu,
		entries: make([]textureEntry, 0, MaxTextureSlots),
	}
}

// Create decodes the image at path, uploads it to the GPU, and records it
// under tag in the next free slot. Only RGB and RGBA images are accepted.
// On any failure the registry is left unchanged.
func (r *TextureRegistry) Create(path, tag string) error {
	if len(r.entries) >= MaxTextureSlots {
		return fmt.Errorf("create texture %q: %w", tag, ErrRegistryFull)
	}

	img, err := imaging.Decode(path)
	if err != nil {
		return fmt.Errorf("create texture %q: %w", tag, err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("create texture %q: %d channels: %w", tag, img.Channels, ErrUnsupportedFormat)
	}

	handle, err := r.gpu.Upload(img)
	if err != nil {
		return fmt.Errorf("create texture %q: %w", tag, err)
	}

	r.entries = append(r.entries, textureEntry{tag: tag, handle: handle})
	return nil
}

// BindAll binds every registered texture to the unit matching its slot
// index. Idempotent; call once after loading and again whenever the
// texture unit state may have been clobbered.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.gpu.Bind(i, e.handle)
	}
}

// Destroy releases every GPU texture and empties the registry. Safe to
// call more than once.
func (r *TextureRegistry) Destroy() {
	for _, e := range r.entries {
		r.gpu.Delete(e.handle)
	}
	r.entries = r.entries[:0]
}

// Handle returns the GPU handle registered under tag.
func (r *TextureRegistry) Handle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

// Slot returns the slot index registered under tag. After BindAll the
// index is also the texture unit the handle is bound to.
func (r *TextureRegistry) Slot(tag string) (int, bool) {
	for i, e := range r.entries {
		if e.tag == tag {
			return i, true
		}
	}
	return 0, false
}

// Len reports the number of occupied slots.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}
