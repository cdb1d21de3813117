// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Text is a single glyph drawn with the rasterizer's own font engine.
type Text struct {
	Char rune
	// Pos is the pen position on the baseline.
	Pos   gg.Point
	Color Color
	Face  text.Face
	Depth uint32
}

// NewText wraps a one-character run.
func NewText(char rune, pos gg.Point, col Color, face text.Face, depth uint32) Shape {
	return Shape{Kind: KindText, Text: &Text{Char: char, Pos: pos, Color: col, Face: face, Depth: depth}}
}

// Draw fills the glyph. Without a face nothing is drawn.
func (t *Text) Draw(dst Target) error {
	if t.Face == nil {
		return nil
	}
	dst.SetFillBrush(gg.Solid(t.Color.RGBA()))
	dst.SetFont(t.Face)
	dst.DrawString(string(t.Char), t.Pos.X, t.Pos.Y)
	return nil
}
