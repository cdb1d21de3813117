// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/imgg/imdraw"
)

// Polygon is a closed outline filled with a flat color or a texture.
type Polygon struct {
	Points  []gg.Point
	UVs     []gg.Point
	Color   Color
	Texture imdraw.TextureID
	Depth   uint32
}

// Draw fills the polygon. A registered texture with a non-degenerate UV
// box is mapped onto the polygon's bounding box; anything else is a flat
// fill with Color. Fewer than three points draw nothing.
func (p *Polygon) Draw(dst Target, textures Textures) error {
	if len(p.Points) < 3 {
		return nil
	}
	if p.Texture != 0 && textures != nil {
		if img, ok := textures.Lookup(p.Texture); ok {
			box, uv := Bounds(p.Points), Bounds(p.UVs)
			if !box.Empty() && !uv.Empty() {
				if onBoxCorners(p.Points, box) {
					drawTexturedRect(dst, img, box, uv)
					return nil
				}
				dst.SetFillBrush(TextureBrush(img, box, uv))
				p.trace(dst)
				return dst.Fill()
			}
		}
	}
	dst.SetFillBrush(gg.Solid(p.Color.RGBA()))
	p.trace(dst)
	return dst.Fill()
}

func (p *Polygon) trace(dst Target) {
	dst.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		dst.LineTo(pt.X, pt.Y)
	}
	dst.ClosePath()
}

// drawTexturedRect blits the UV sub-rectangle of img into box.
func drawTexturedRect(dst Target, img *gg.ImageBuf, box, uv Rect) {
	tw, th := img.Bounds()
	src := image.Rect(
		int(math.Floor(uv.X*float64(tw))),
		int(math.Floor(uv.Y*float64(th))),
		int(math.Ceil(uv.Right()*float64(tw))),
		int(math.Ceil(uv.Bottom()*float64(th))),
	).Intersect(image.Rect(0, 0, tw, th))
	if src.Empty() {
		return
	}
	dst.DrawImageEx(img, gg.DrawImageOptions{
		X:             box.X,
		Y:             box.Y,
		DstWidth:      box.W,
		DstHeight:     box.H,
		SrcRect:       &src,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}
