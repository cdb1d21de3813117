// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("platform: invalid surface size")

	// ErrShortBuffer is returned for a surface whose stride or pixel
	// buffer cannot hold its rows.
	ErrShortBuffer = errors.New("platform: surface buffer too small")
)

// Format is a surface pixel layout.
type Format uint8

// FormatPRGB32 is premultiplied ARGB stored as little-endian uint32
// (bytes B, G, R, A).
const FormatPRGB32 Format = 1

// Image is a presentable pixel surface. Stride is in bytes and may exceed
// Width*4.
type Image struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format Format
}

// AlignWidth pads a width in pixels to a multiple of four.
func AlignWidth(w int) int {
	return (w + 3) &^ 3
}

// NewImage allocates a cleared surface.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	stride := AlignWidth(width) * 4
	return &Image{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
		Format: FormatPRGB32,
	}, nil
}

// Validate checks that the dimensions, stride and buffer of an image built
// outside NewImage agree.
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, img.Width, img.Height)
	}
	if img.Stride < img.Width*4 || len(img.Pix) < img.Stride*(img.Height-1)+img.Width*4 {
		return fmt.Errorf("%w: stride %d, %d bytes for %dx%d",
			ErrShortBuffer, img.Stride, len(img.Pix), img.Width, img.Height)
	}
	return nil
}

// PixelAt returns the packed ARGB word at (x, y), or 0 outside the surface.
func (img *Image) PixelAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return 0
	}
	i := y*img.Stride + x*4
	if i+4 > len(img.Pix) {
		return 0
	}
	return binary.LittleEndian.Uint32(img.Pix[i:])
}

// StoreRGBA copies rows [y0, y1) of premultiplied RGBA bytes into the
// surface. srcStride is the source row length in bytes and width the
// number of pixels per row to copy; both are clipped to the surface. Rows
// missing from either buffer are skipped.
func (img *Image) StoreRGBA(src []byte, srcStride, width, y0, y1 int) {
	width = min(width, img.Width, img.Stride/4)
	y0 = max(y0, 0)
	y1 = min(y1, img.Height)
	for y := y0; y < y1; y++ {
		so := y * srcStride
		if so+width*4 > len(src) || y*img.Stride+width*4 > len(img.Pix) {
			return
		}
		s := src[so : so+width*4]
		d := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			r, g, b, a := uint32(s[x]), uint32(s[x+1]), uint32(s[x+2]), uint32(s[x+3])
			binary.LittleEndian.PutUint32(d[x:], a<<24|r<<16|g<<8|b)
		}
	}
}

// NRGBA converts the surface to a straight-alpha image.
func (img *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := range img.Height {
		for x := range img.Width {
			p := img.PixelAt(x, y)
			a := p >> 24
			r, g, b := (p>>16)&0xFF, (p>>8)&0xFF, p&0xFF
			if a != 0 && a != 0xFF {
				r = min(r*0xFF/a, 0xFF)
				g = min(g*0xFF/a, 0xFF)
				b = min(b*0xFF/a, 0xFF)
			}
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(r)
			out.Pix[i+1] = uint8(g)
			out.Pix[i+2] = uint8(b)
			out.Pix[i+3] = uint8(a)
		}
	}
	return out
}
