// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/imgg/imdraw"
)

const cornerEpsilon = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) < cornerEpsilon }

// cornerOf returns which corner of box p sits on, or -1.
func cornerOf(p gg.Point, box Rect) int {
	left, right := near(p.X, box.X), near(p.X, box.Right())
	top, bottom := near(p.Y, box.Y), near(p.Y, box.Bottom())
	switch {
	case left && top:
		return TopLeft
	case right && top:
		return TopRight
	case right && bottom:
		return BottomRight
	case left && bottom:
		return BottomLeft
	}
	return -1
}

// onBoxCorners reports whether a closed four-point outline occupies each
// corner of box exactly once.
func onBoxCorners(points []gg.Point, box Rect) bool {
	_, ok := cornerSlots(points, box)
	return ok
}

func cornerSlots(points []gg.Point, box Rect) ([4]int, bool) {
	var slots [4]int
	if len(points) != 5 {
		return slots, false
	}
	var seen [4]bool
	for i, p := range points[:4] {
		c := cornerOf(p, box)
		if c < 0 || seen[c] {
			return slots, false
		}
		seen[c] = true
		slots[c] = i
	}
	return slots, true
}

// Classify builds the drawable for a closed outline. The outline repeats
// its first point at the end; colors are raw toolkit colors, one per
// point.
//
// A four-point outline lying on its own bounding box corners with
// non-uniform colors that pair up along one axis becomes a GradientQuad.
// Everything else becomes a Polygon colored by its first vertex.
func Classify(points, uvs []gg.Point, colors []uint32, depth uint32, tex imdraw.TextureID) Shape {
	if q, ok := gradientQuad(points, colors, depth, tex); ok {
		return Shape{Kind: KindGradientQuad, Quad: q}
	}
	var col Color
	if len(colors) > 0 {
		col = FromPacked(colors[0])
	}
	return Shape{Kind: KindPolygon, Polygon: &Polygon{
		Points:  points,
		UVs:     uvs,
		Color:   col,
		Texture: tex,
		Depth:   depth,
	}}
}

func gradientQuad(points []gg.Point, colors []uint32, depth uint32, tex imdraw.TextureID) (*GradientQuad, bool) {
	if len(colors) < 4 {
		return nil, false
	}
	box := Bounds(points)
	slots, ok := cornerSlots(points, box)
	if !ok {
		return nil, false
	}
	if colors[1] == colors[0] && colors[2] == colors[0] && colors[3] == colors[0] {
		return nil, false
	}
	q := &GradientQuad{Bounds: box, Texture: tex, Depth: depth}
	for corner, i := range slots {
		q.Corners[corner] = FromPacked(colors[i])
	}
	c := q.Corners
	switch {
	case c[TopLeft] == c[BottomLeft] && c[TopRight] == c[BottomRight]:
		q.Orientation = Horizontal
	case c[TopLeft] == c[TopRight] && c[BottomLeft] == c[BottomRight]:
		q.Orientation = Vertical
	default:
		return nil, false
	}
	return q, true
}
