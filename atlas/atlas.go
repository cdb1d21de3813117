// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/rangetable"

	"github.com/gogpu/imgg/imdraw"
)

// ErrNoGlyphs is returned when none of the requested code points are
// covered by the font.
var ErrNoGlyphs = errors.New("atlas: font covers no requested glyphs")

// whiteOrigin and whiteSize locate the opaque block solid geometry samples.
const (
	whiteOrigin = 1
	whiteSize   = 2
	firstColumn = whiteOrigin + whiteSize + 1
)

// Atlas is a baked font texture plus its glyph table.
type Atlas struct {
	img    *image.NRGBA
	size   float32
	ascent float32
	height float32

	glyphs []imdraw.Glyph
	lookup map[rune]int
	white  [2]float32
	texID  imdraw.TextureID
}

type placement struct {
	r      rune
	bounds image.Rectangle
	at     image.Point
	adv    fixed.Int26_6
}

// Build parses a TrueType or OpenType font and bakes the requested ranges.
func Build(data []byte, opts ...Option) (*Atlas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	coverage, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    o.size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: create face: %w", err)
	}
	defer face.Close()

	var runes []rune
	rangetable.Visit(rangeTable(o.ranges), func(r rune) {
		if _, ok := coverage.NominalGlyph(r); ok {
			runes = append(runes, r)
		}
	})
	if len(runes) == 0 {
		return nil, ErrNoGlyphs
	}

	// Layout pass: shelf-pack glyph bounds to the right of the white block.
	places := make([]placement, 0, len(runes))
	x, y, shelf := firstColumn, whiteOrigin, whiteSize
	for _, r := range runes {
		dr, _, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w+o.padding > o.width {
			x = 0
			y += shelf + o.padding
			shelf = 0
		}
		places = append(places, placement{r: r, bounds: dr, at: image.Pt(x, y), adv: adv})
		if w > 0 {
			x += w + o.padding
		}
		shelf = max(shelf, h)
	}
	height := nextPow2(y + shelf + o.padding)

	a := &Atlas{
		img:    image.NewNRGBA(image.Rect(0, 0, o.width, height)),
		size:   float32(o.size),
		glyphs: make([]imdraw.Glyph, 0, len(places)),
		lookup: make(map[rune]int, len(places)),
	}
	m := face.Metrics()
	a.ascent = fixedToFloat(m.Ascent)
	a.height = fixedToFloat(m.Height)

	draw.Draw(a.img, image.Rect(whiteOrigin, whiteOrigin, whiteOrigin+whiteSize, whiteOrigin+whiteSize),
		image.NewUniform(color.White), image.Point{}, draw.Src)
	a.white = [2]float32{
		float32(whiteOrigin+whiteSize/2) / float32(o.width),
		float32(whiteOrigin+whiteSize/2) / float32(height),
	}

	// Draw pass: the face reuses its mask buffer between calls.
	src := image.NewUniform(color.White)
	fw, fh := float32(o.width), float32(height)
	for _, p := range places {
		g := imdraw.Glyph{
			Codepoint: p.r,
			AdvanceX:  fixedToFloat(p.adv),
		}
		w, h := p.bounds.Dx(), p.bounds.Dy()
		if w > 0 && h > 0 && !unicode.IsSpace(p.r) {
			dr, mask, mp, _, _ := face.Glyph(fixed.Point26_6{}, p.r)
			dst := image.Rectangle{Min: p.at, Max: p.at.Add(dr.Size())}
			draw.DrawMask(a.img, dst, src, image.Point{}, mask, mp, draw.Over)

			g.Visible = true
			g.X0 = float32(dr.Min.X)
			g.Y0 = a.ascent + float32(dr.Min.Y)
			g.X1 = g.X0 + float32(w)
			g.Y1 = g.Y0 + float32(h)
			g.U0 = float32(p.at.X) / fw
			g.V0 = float32(p.at.Y) / fh
			g.U1 = float32(p.at.X+w) / fw
			g.V1 = float32(p.at.Y+h) / fh
		}
		a.lookup[p.r] = len(a.glyphs)
		a.glyphs = append(a.glyphs, g)
	}
	return a, nil
}

func rangeTable(ranges []Range) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, rg := range ranges {
		if rg.Hi < rg.Lo {
			continue
		}
		runes := make([]rune, 0, rg.Hi-rg.Lo+1)
		for r := rg.Lo; r <= rg.Hi; r++ {
			runes = append(runes, r)
		}
		tables = append(tables, rangetable.New(runes...))
	}
	return rangetable.Merge(tables...)
}

func nextPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Image returns the baked texture.
func (a *Atlas) Image() *image.NRGBA { return a.img }

// Size returns the pixel size glyphs were rasterized at.
func (a *Atlas) Size() float32 { return a.size }

// Ascent returns the distance from the top of the line to the baseline.
func (a *Atlas) Ascent() float32 { return a.ascent }

// LineHeight returns the recommended line spacing.
func (a *Atlas) LineHeight() float32 { return a.height }

// Glyphs returns every baked glyph in code point order.
func (a *Atlas) Glyphs() []imdraw.Glyph { return a.glyphs }

// FindGlyph returns the glyph baked for r.
func (a *Atlas) FindGlyph(r rune) (imdraw.Glyph, bool) {
	i, ok := a.lookup[r]
	if !ok {
		return imdraw.Glyph{}, false
	}
	return a.glyphs[i], true
}

// WhiteUV returns normalized coordinates inside the opaque block.
func (a *Atlas) WhiteUV() [2]float32 { return a.white }

// TextureID returns the id the renderer registered the texture under.
func (a *Atlas) TextureID() imdraw.TextureID { return a.texID }

// SetTextureID records the id the texture was registered under.
func (a *Atlas) SetTextureID(id imdraw.TextureID) { a.texID = id }
