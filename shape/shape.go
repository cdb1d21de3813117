// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"cmp"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/imgg/imdraw"
)

// Target is the rasterizer surface shapes draw on. *gg.Context satisfies it.
type Target interface {
	SetFillBrush(b gg.Brush)
	SetStrokeBrush(b gg.Brush)
	SetLineWidth(width float64)
	SetFont(face text.Face)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill() error
	Stroke() error
	DrawString(s string, x, y float64)
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)
}

// Textures resolves texture ids recorded by the toolkit.
type Textures interface {
	Lookup(id imdraw.TextureID) (*gg.ImageBuf, bool)
}

// Kind tags the variant held by a Shape.
type Kind uint8

// Shape kinds.
const (
	KindText Kind = iota + 1
	KindPolygon
	KindGradientQuad
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPolygon:
		return "polygon"
	case KindGradientQuad:
		return "gradient-quad"
	case KindLine:
		return "line"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape holds exactly one variant, selected by Kind.
type Shape struct {
	Kind    Kind
	Text    *Text
	Polygon *Polygon
	Quad    *GradientQuad
	Line    *Line
}

// Depth returns the paint order of the held variant.
func (s Shape) Depth() uint32 {
	switch s.Kind {
	case KindText:
		return s.Text.Depth
	case KindPolygon:
		return s.Polygon.Depth
	case KindGradientQuad:
		return s.Quad.Depth
	case KindLine:
		return s.Line.Depth
	}
	return 0
}

// Draw paints the held variant.
func (s Shape) Draw(dst Target, textures Textures) error {
	switch s.Kind {
	case KindText:
		return s.Text.Draw(dst)
	case KindPolygon:
		return s.Polygon.Draw(dst, textures)
	case KindGradientQuad:
		return s.Quad.Draw(dst)
	case KindLine:
		return s.Line.Draw(dst)
	}
	return fmt.Errorf("shape: unknown kind %v", s.Kind)
}

// CompareDepth orders shapes by depth for slices.SortStableFunc.
func CompareDepth(a, b Shape) int {
	return cmp.Compare(a.Depth(), b.Depth())
}
