package imgg

import "errors"

var (
	// ErrFontLoad is returned when the font file cannot be read or holds
	// no usable glyphs.
	ErrFontLoad = errors.New("imgg: cannot load font")

	// ErrFontFace is returned when no drawable face can be created from
	// the font.
	ErrFontFace = errors.New("imgg: cannot create font face")

	// ErrNoSurface means there is neither a window nor a shared surface to
	// render into.
	ErrNoSurface = errors.New("imgg: no surface")

	// ErrClosed is returned by operations on a closed Context.
	ErrClosed = errors.New("imgg: context closed")

	// ErrTextureLoad is returned when a texture image cannot be decoded.
	ErrTextureLoad = errors.New("imgg: cannot load texture")
)
