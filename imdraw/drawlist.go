// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imdraw

import "github.com/chewxy/math32"

var noClip = [4]float32{-8192, -8192, 8192, 8192}

// DrawList accumulates the geometry of one toolkit window.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []Index

	font      Font
	clip      [4]float32
	texture   TextureID
	clipStack [][4]float32
	texStack  []TextureID
}

// NewDrawList returns an empty list. Solid shapes sample font's white pixel
// and text is laid out with its glyphs; font may be nil when the list only
// carries images and untextured geometry.
func NewDrawList(font Font) *DrawList {
	dl := &DrawList{font: font}
	dl.Clear()
	return dl
}

// Clear resets the list for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.texStack = dl.texStack[:0]
	dl.clip = noClip
	dl.texture = 0
	if dl.font != nil {
		dl.texture = dl.font.TextureID()
	}
}

// PushClipRect restricts subsequent primitives to the rectangle min..max.
func (dl *DrawList) PushClipRect(min, max [2]float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{min[0], min[1], max[0], max[1]}
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	if n := len(dl.clipStack); n > 0 {
		dl.clip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
	}
}

// PushTextureID binds id for subsequent primitives.
func (dl *DrawList) PushTextureID(id TextureID) {
	dl.texStack = append(dl.texStack, dl.texture)
	dl.texture = id
}

// PopTextureID restores the previous texture.
func (dl *DrawList) PopTextureID() {
	if n := len(dl.texStack); n > 0 {
		dl.texture = dl.texStack[n-1]
		dl.texStack = dl.texStack[:n-1]
	}
}

// AddCallback records a command that the renderer hands back to cb instead
// of drawing.
func (dl *DrawList) AddCallback(cb Callback) {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		IdxOffset:    uint32(len(dl.IdxBuffer)),
		UserCallback: cb,
	})
}

// current returns the command matching the active clip and texture,
// starting a new one when state changed.
func (dl *DrawList) current() *DrawCmd {
	if n := len(dl.CmdBuffer); n > 0 {
		cmd := &dl.CmdBuffer[n-1]
		if cmd.UserCallback == nil {
			if cmd.ElemCount == 0 {
				cmd.ClipRect = dl.clip
				cmd.TextureID = dl.texture
				return cmd
			}
			if cmd.ClipRect == dl.clip && cmd.TextureID == dl.texture {
				return cmd
			}
		}
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:  dl.clip,
		TextureID: dl.texture,
		IdxOffset: uint32(len(dl.IdxBuffer)),
	})
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

func (dl *DrawList) whiteUV() [2]float32 {
	if dl.font == nil {
		return [2]float32{}
	}
	return dl.font.WhiteUV()
}

// prim appends vertices and indices relative to the first new vertex.
func (dl *DrawList) prim(verts []Vertex, idx ...Index) {
	cmd := dl.current()
	base := Index(len(dl.VtxBuffer)) - Index(cmd.VtxOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	for _, i := range idx {
		dl.IdxBuffer = append(dl.IdxBuffer, base+i)
	}
	cmd.ElemCount += uint32(len(idx))
}

func (dl *DrawList) quad(a, b, c, d [2]float32, uvA, uvB, uvC, uvD [2]float32, colA, colB, colC, colD uint32) {
	dl.prim([]Vertex{
		{Pos: a, UV: uvA, Col: colA},
		{Pos: b, UV: uvB, Col: colB},
		{Pos: c, UV: uvC, Col: colC},
		{Pos: d, UV: uvD, Col: colD},
	}, 0, 1, 2, 0, 2, 3)
}

// AddTriangleFilled draws a solid triangle.
func (dl *DrawList) AddTriangleFilled(a, b, c [2]float32, col uint32) {
	if col>>24 == 0 {
		return
	}
	uv := dl.whiteUV()
	dl.prim([]Vertex{
		{Pos: a, UV: uv, Col: col},
		{Pos: b, UV: uv, Col: col},
		{Pos: c, UV: uv, Col: col},
	}, 0, 1, 2)
}

// AddRectFilled draws a solid axis-aligned rectangle.
func (dl *DrawList) AddRectFilled(min, max [2]float32, col uint32) {
	if col>>24 == 0 {
		return
	}
	dl.AddRectFilledMultiColor(min, max, col, col, col, col)
}

// AddRectFilledMultiColor draws a rectangle with one color per corner,
// given clockwise from the top-left.
func (dl *DrawList) AddRectFilledMultiColor(min, max [2]float32, tl, tr, br, bl uint32) {
	if (tl|tr|br|bl)>>24 == 0 {
		return
	}
	uv := dl.whiteUV()
	dl.quad(min, [2]float32{max[0], min[1]}, max, [2]float32{min[0], max[1]},
		uv, uv, uv, uv, tl, tr, br, bl)
}

// AddConvexPolyFilled fans a convex polygon from its first point.
func (dl *DrawList) AddConvexPolyFilled(points [][2]float32, col uint32) {
	if len(points) < 3 || col>>24 == 0 {
		return
	}
	uv := dl.whiteUV()
	verts := make([]Vertex, len(points))
	for i, p := range points {
		verts[i] = Vertex{Pos: p, UV: uv, Col: col}
	}
	idx := make([]Index, 0, (len(points)-2)*3)
	for i := 2; i < len(points); i++ {
		idx = append(idx, 0, Index(i-1), Index(i))
	}
	dl.prim(verts, idx...)
}

// AddCircleFilled approximates a disc with segments points. A non-positive
// segment count picks one from the radius.
func (dl *DrawList) AddCircleFilled(center [2]float32, radius float32, col uint32, segments int) {
	if radius <= 0 || col>>24 == 0 {
		return
	}
	if segments <= 0 {
		segments = int(math32.Ceil(math32.Pi / math32.Acos(1-math32.Min(0.5, radius)/radius)))
		segments = min(max(segments, 12), 64)
	}
	points := make([][2]float32, segments)
	for i := range points {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
		points[i] = [2]float32{center[0] + c*radius, center[1] + s*radius}
	}
	dl.AddConvexPolyFilled(points, col)
}

// AddLine draws a segment as a quad of the given thickness.
func (dl *DrawList) AddLine(a, b [2]float32, col uint32, thickness float32) {
	if col>>24 == 0 {
		return
	}
	dx, dy := b[0]-a[0], b[1]-a[1]
	inv := float32(1)
	if d := math32.Sqrt(dx*dx + dy*dy); d > 0 {
		inv = 1 / d
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	uv := dl.whiteUV()
	dl.quad(
		[2]float32{a[0] + nx, a[1] + ny},
		[2]float32{b[0] + nx, b[1] + ny},
		[2]float32{b[0] - nx, b[1] - ny},
		[2]float32{a[0] - nx, a[1] - ny},
		uv, uv, uv, uv, col, col, col, col)
}

// AddPolyline draws consecutive segments through points.
func (dl *DrawList) AddPolyline(points [][2]float32, col uint32, thickness float32, closed bool) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		dl.AddLine(points[i], points[i+1], col, thickness)
	}
	if closed && n > 2 {
		dl.AddLine(points[n-1], points[0], col, thickness)
	}
}

// AddImage draws the uvMin..uvMax region of texture id into min..max.
func (dl *DrawList) AddImage(id TextureID, min, max, uvMin, uvMax [2]float32, col uint32) {
	if col>>24 == 0 {
		return
	}
	dl.PushTextureID(id)
	dl.quad(min, [2]float32{max[0], min[1]}, max, [2]float32{min[0], max[1]},
		uvMin, [2]float32{uvMax[0], uvMin[1]}, uvMax, [2]float32{uvMin[0], uvMax[1]},
		col, col, col, col)
	dl.PopTextureID()
}

// AddText lays out s on a single line starting at pos, the top-left of the
// line box. Runes missing from the font are skipped.
func (dl *DrawList) AddText(pos [2]float32, col uint32, s string) {
	if dl.font == nil || col>>24 == 0 || s == "" {
		return
	}
	dl.PushTextureID(dl.font.TextureID())
	x := pos[0]
	for _, r := range s {
		g, ok := dl.font.FindGlyph(r)
		if !ok {
			continue
		}
		if g.Visible {
			dl.quad(
				[2]float32{x + g.X0, pos[1] + g.Y0},
				[2]float32{x + g.X1, pos[1] + g.Y0},
				[2]float32{x + g.X1, pos[1] + g.Y1},
				[2]float32{x + g.X0, pos[1] + g.Y1},
				[2]float32{g.U0, g.V0}, [2]float32{g.U1, g.V0},
				[2]float32{g.U1, g.V1}, [2]float32{g.U0, g.V1},
				col, col, col, col)
		}
		x += g.AdvanceX
	}
	dl.PopTextureID()
}

// CalcTextWidth returns the advance of s in the list's font.
func (dl *DrawList) CalcTextWidth(s string) float32 {
	if dl.font == nil {
		return 0
	}
	w := float32(0)
	for _, r := range s {
		if g, ok := dl.font.FindGlyph(r); ok {
			w += g.AdvanceX
		}
	}
	return w
}

// Finalize drops commands that ended up with no triangles.
func (dl *DrawList) Finalize() {
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 || cmd.UserCallback != nil {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
