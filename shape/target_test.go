// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/imgg/imdraw"
)

type drawnImage struct {
	img  *gg.ImageBuf
	opts gg.DrawImageOptions
}

// recorder is a Target that logs every call.
type recorder struct {
	ops     []string
	brushes []gg.Brush
	images  []drawnImage
	face    text.Face
	width   float64
}

func (r *recorder) SetFillBrush(b gg.Brush) {
	r.ops = append(r.ops, "fill-brush")
	r.brushes = append(r.brushes, b)
}

func (r *recorder) SetStrokeBrush(b gg.Brush) {
	r.ops = append(r.ops, "stroke-brush")
	r.brushes = append(r.brushes, b)
}

func (r *recorder) SetLineWidth(w float64) {
	r.ops = append(r.ops, "line-width")
	r.width = w
}

func (r *recorder) SetFont(face text.Face) {
	r.ops = append(r.ops, "font")
	r.face = face
}

func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("move %g,%g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("line %g,%g", x, y)) }
func (r *recorder) ClosePath()          { r.ops = append(r.ops, "close") }
func (r *recorder) Fill() error         { r.ops = append(r.ops, "fill"); return nil }
func (r *recorder) Stroke() error       { r.ops = append(r.ops, "stroke"); return nil }
func (r *recorder) DrawString(s string, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %g,%g", s, x, y))
}

func (r *recorder) DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions) {
	r.ops = append(r.ops, "image")
	r.images = append(r.images, drawnImage{img: img, opts: opts})
}

type textureMap map[imdraw.TextureID]*gg.ImageBuf

func (m textureMap) Lookup(id imdraw.TextureID) (*gg.ImageBuf, bool) {
	img, ok := m[id]
	return img, ok
}

var _ Target = (*gg.Context)(nil)
