// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/gg"

// Line is an open polyline stroke.
type Line struct {
	Points []gg.Point
	Color  Color
	Width  float64
	Depth  uint32
}

// NewLine wraps a polyline.
func NewLine(points []gg.Point, col Color, width float64, depth uint32) Shape {
	return Shape{Kind: KindLine, Line: &Line{Points: points, Color: col, Width: width, Depth: depth}}
}

// Draw strokes the polyline. Fewer than two points draw nothing.
func (l *Line) Draw(dst Target) error {
	if len(l.Points) < 2 {
		return nil
	}
	dst.SetStrokeBrush(gg.Solid(l.Color.RGBA()))
	dst.SetLineWidth(l.Width)
	dst.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, p := range l.Points[1:] {
		dst.LineTo(p.X, p.Y)
	}
	return dst.Stroke()
}
