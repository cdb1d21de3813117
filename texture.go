package imgg

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/gogpu/imgg/imdraw"
)

// Texture is an image the toolkit can bind by ID. The handle stays valid
// for the life of its Context; its pixels may be replaced at any time.
type Texture struct {
	id imdraw.TextureID

	mu  sync.RWMutex
	img *gg.ImageBuf
}

// ID returns the identifier to bind in draw lists.
func (t *Texture) ID() imdraw.TextureID { return t.id }

// SetImage replaces the texture pixels.
func (t *Texture) SetImage(img image.Image) {
	buf := gg.ImageBufFromImage(img)
	t.mu.Lock()
	t.img = buf
	t.mu.Unlock()
}

// Load decodes an image file, honoring EXIF orientation.
func (t *Texture) Load(path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTextureLoad, path, err)
	}
	t.SetImage(img)
	return nil
}

// LoadFit decodes an image file and scales it down to fit within
// width x height, keeping its aspect ratio.
func (t *Texture) LoadFit(path string, width, height int) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTextureLoad, path, err)
	}
	t.SetImage(imaging.Fit(img, width, height, imaging.Lanczos))
	return nil
}

// Size returns the texture size, or zero before any pixels are set.
func (t *Texture) Size() (width, height int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.img == nil {
		return 0, 0
	}
	return t.img.Bounds()
}

// Image returns the current pixels, or nil.
func (t *Texture) Image() *gg.ImageBuf {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.img
}

// textureRegistry hands out IDs starting at 1. Entries are never removed,
// so a *Texture stays valid while the slice grows.
type textureRegistry struct {
	mu    sync.RWMutex
	items []*Texture
}

func (r *textureRegistry) add() *Texture {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := &Texture{id: imdraw.TextureID(len(r.items) + 1)}
	r.items = append(r.items, t)
	return t
}

func (r *textureRegistry) get(id imdraw.TextureID) *Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id == 0 || int(id) > len(r.items) {
		return nil
	}
	return r.items[id-1]
}

func (r *textureRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Lookup returns the pixels bound to id.
func (r *textureRegistry) Lookup(id imdraw.TextureID) (*gg.ImageBuf, bool) {
	t := r.get(id)
	if t == nil {
		return nil, false
	}
	img := t.Image()
	return img, img != nil
}
