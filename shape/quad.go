// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/imgg/imdraw"
)

// Orientation is the axis a GradientQuad shades along.
type Orientation uint8

// Gradient orientations.
const (
	Horizontal Orientation = iota + 1
	Vertical
)

// Corner indexes GradientQuad.Corners, clockwise from the top-left.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// GradientQuad is an axis-aligned rectangle shaded with a two-stop linear
// gradient. Toolkits draw color pickers as overlaid quads of this kind.
type GradientQuad struct {
	Bounds      Rect
	Corners     [4]Color
	Orientation Orientation
	Texture     imdraw.TextureID
	Depth       uint32
}

// Brush returns the gradient spanning the quad: left to right for a
// horizontal quad, top to bottom for a vertical one.
func (q *GradientQuad) Brush() *gg.LinearGradientBrush {
	r := q.Bounds
	if q.Orientation == Horizontal {
		return gg.NewLinearGradientBrush(r.X, r.Y, r.Right(), r.Y).
			AddColorStop(0, q.Corners[TopLeft].RGBA()).
			AddColorStop(1, q.Corners[TopRight].RGBA())
	}
	return gg.NewLinearGradientBrush(r.X, r.Y, r.X, r.Bottom()).
		AddColorStop(0, q.Corners[TopLeft].RGBA()).
		AddColorStop(1, q.Corners[BottomLeft].RGBA())
}

// Draw fills the quad with its gradient.
func (q *GradientQuad) Draw(dst Target) error {
	r := q.Bounds
	if r.Empty() {
		return nil
	}
	dst.SetFillBrush(q.Brush())
	dst.MoveTo(r.X, r.Y)
	dst.LineTo(r.Right(), r.Y)
	dst.LineTo(r.Right(), r.Bottom())
	dst.LineTo(r.X, r.Bottom())
	dst.ClosePath()
	return dst.Fill()
}
