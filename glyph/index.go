// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph recognizes glyph quads in toolkit geometry by the atlas
// coordinates of their first vertex.
//
// Toolkits draw every glyph as a textured quad whose top-left vertex
// carries the glyph's (U0, V0). Quantizing those coordinates gives a key
// that identifies the glyph without inspecting the texture.
package glyph

import "github.com/gogpu/imgg/imdraw"

// BaselineRatio is the fraction of the pixel size between the top of a
// glyph's line box and its baseline.
const BaselineRatio = 0.875

// Key quantizes atlas coordinates to thousandths and packs them.
func Key(u, v float32) uint64 {
	return uint64(uint32(u*1000))<<32 | uint64(uint32(v*1000))
}

// Entry is what the index knows about one glyph.
type Entry struct {
	Char rune
	// OffsetX and OffsetY map the quad's top-left vertex to the pen
	// position on the baseline: pen = vertex - offset.
	OffsetX float32
	OffsetY float32
}

// Index maps quantized atlas coordinates to glyphs.
type Index struct {
	entries map[uint64]Entry
}

// Build indexes every visible glyph. Later glyphs sharing a key replace
// earlier ones.
func Build(glyphs []imdraw.Glyph, pixelSize float32) *Index {
	idx := &Index{entries: make(map[uint64]Entry, len(glyphs))}
	for _, g := range glyphs {
		if !g.Visible {
			continue
		}
		idx.entries[Key(g.U0, g.V0)] = Entry{
			Char:    g.Codepoint,
			OffsetX: g.X0,
			OffsetY: g.Y0 - pixelSize*BaselineRatio,
		}
	}
	return idx
}

// Lookup returns the glyph whose top-left atlas coordinate quantizes to
// the same key as (u, v). A nil index finds nothing.
func (idx *Index) Lookup(u, v float32) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	e, ok := idx.entries[Key(u, v)]
	return e, ok
}

// Len returns the number of indexed glyphs.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
