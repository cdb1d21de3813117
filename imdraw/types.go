// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imdraw

// Index is the element type of DrawList.IdxBuffer.
type Index = uint32

// TextureID identifies a texture registered with the renderer.
// Zero means no texture.
type TextureID uint64

// Vertex is a single toolkit vertex.
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32 // 0xAABBGGRR
}

// Callback is invoked by the renderer in place of drawing a command.
type Callback func(list *DrawList, cmd *DrawCmd)

// DrawCmd is a contiguous run of triangles sharing clip rectangle and texture.
type DrawCmd struct {
	// ClipRect is left, top, right, bottom in display coordinates.
	ClipRect  [4]float32
	TextureID TextureID
	VtxOffset uint32
	IdxOffset uint32
	ElemCount uint32

	// UserCallback, when set, replaces drawing for this command.
	UserCallback Callback
}

// DrawData is everything the toolkit produced for one frame.
type DrawData struct {
	Lists       []*DrawList
	DisplayPos  [2]float32
	DisplaySize [2]float32
}

// TotalVtxCount returns the number of vertices across all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.VtxBuffer)
	}
	return n
}

// TotalIdxCount returns the number of indices across all lists.
func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.IdxBuffer)
	}
	return n
}

// Glyph is one baked glyph of a font atlas. X0..Y1 are offsets from the pen
// position at the top of the line; U0..V1 are normalized atlas coordinates.
type Glyph struct {
	Codepoint rune
	Visible   bool
	AdvanceX  float32

	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Font is the subset of a font atlas the DrawList builder needs.
type Font interface {
	TextureID() TextureID
	FindGlyph(r rune) (Glyph, bool)
	WhiteUV() [2]float32
	LineHeight() float32
}

// RGBA packs 8-bit channels into a toolkit color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf packs float channels in [0, 1] into a toolkit color.
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(unit(r), unit(g), unit(b), unit(a))
}

func unit(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors.
var (
	White = RGBA(255, 255, 255, 255)
	Black = RGBA(0, 0, 0, 255)
)
