// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assemble turns a frame of toolkit draw data into per-clip batches
// of depth-ordered shapes.
package assemble

import (
	"log/slog"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/imgg/glyph"
	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/internal/topology"
	"github.com/gogpu/imgg/shape"
)

// Command is one clip rectangle and the shapes confined to it, sorted by
// depth.
type Command struct {
	Clip   shape.Rect
	Shapes []shape.Shape
}

// List holds the commands of one toolkit draw list.
type List []Command

// Stats counts what one Assemble call produced.
type Stats struct {
	Lists     int
	Commands  int
	Callbacks int
	Triangles int
	Glyphs    int
	Outlines  int
	Dropped   int
	Shapes    int
}

// Config wires an Assembler to the loaded font.
type Config struct {
	// Glyphs recognizes glyph quads by their atlas coordinates.
	Glyphs *glyph.Index
	// FontTexture is the id of the font atlas texture. Only triangles in
	// commands bound to it are probed for glyphs.
	FontTexture imdraw.TextureID
	// Face draws recognized glyphs.
	Face text.Face
	// OutlineColor, when non-zero, overlays every reconstructed outline
	// with a stroke of OutlineWidth.
	OutlineColor shape.Color
	OutlineWidth float64
	// Logger returns the logger for diagnostics. Nil discards them.
	Logger func() *slog.Logger
}

// Assembler converts draw data. It keeps scratch buffers between calls and
// is not safe for concurrent use.
type Assembler struct {
	cfg    Config
	edges  *topology.EdgeSet
	unique []topology.Edge
}

// New returns an Assembler for cfg.
func New(cfg Config) *Assembler {
	if cfg.Logger == nil {
		discard := slog.New(slog.DiscardHandler)
		cfg.Logger = func() *slog.Logger { return discard }
	}
	if cfg.OutlineWidth <= 0 {
		cfg.OutlineWidth = 1
	}
	return &Assembler{cfg: cfg, edges: topology.NewEdgeSet()}
}

// ClipRect converts a toolkit clip rectangle (left, top, right, bottom)
// into a Rect.
func ClipRect(r [4]float32) shape.Rect {
	return shape.Rect{
		X: float64(r[0]),
		Y: float64(r[1]),
		W: float64(r[2] - r[0]),
		H: float64(r[3] - r[1]),
	}
}

// Assemble replaces dst with one List per draw list in data. Commands with
// a user callback invoke it and produce no batch.
func (a *Assembler) Assemble(dst []List, data *imdraw.DrawData) ([]List, Stats) {
	var st Stats
	dst = dst[:0]
	if data == nil {
		return dst, st
	}
	for _, dl := range data.Lists {
		if dl == nil {
			continue
		}
		st.Lists++
		list := make(List, 0, len(dl.CmdBuffer))
		for i := range dl.CmdBuffer {
			cmd := &dl.CmdBuffer[i]
			if cmd.UserCallback != nil {
				cmd.UserCallback(dl, cmd)
				st.Callbacks++
				continue
			}
			list = append(list, a.command(dl, cmd, &st))
			st.Commands++
		}
		dst = append(dst, list)
	}
	return dst, st
}

func (a *Assembler) command(dl *imdraw.DrawList, cmd *imdraw.DrawCmd, st *Stats) Command {
	log := a.cfg.Logger()
	out := Command{Clip: ClipRect(cmd.ClipRect)}

	lo := min(int(cmd.IdxOffset), len(dl.IdxBuffer))
	hi := lo + int(cmd.ElemCount)
	if hi > len(dl.IdxBuffer) {
		log.Warn("assemble: command exceeds index buffer",
			"offset", cmd.IdxOffset, "count", cmd.ElemCount, "len", len(dl.IdxBuffer))
		hi = len(dl.IdxBuffer)
	}
	idx := dl.IdxBuffer[lo:hi]
	vtx := dl.VtxBuffer
	base := imdraw.Index(cmd.VtxOffset)

	a.edges.Reset()
	var depth uint32
	skip := false
	for i := 0; i+2 < len(idx); i += 3 {
		// A glyph quad's second triangle adds nothing.
		if skip {
			skip = false
			continue
		}
		tri := [3]imdraw.Index{base + idx[i], base + idx[i+1], base + idx[i+2]}
		st.Triangles++
		if s, ok := a.glyph(cmd.TextureID, tri[0], vtx, depth); ok {
			out.Shapes = append(out.Shapes, s)
			st.Glyphs++
			depth++
			skip = true
			continue
		}
		if err := a.edges.AddTriangle(tri, vtx, depth, cmd.TextureID); err != nil {
			log.Warn("assemble: skipping triangle", "first", i, "err", err)
		}
		depth++
	}

	a.unique = a.edges.Unique(a.unique[:0])
	res := topology.Stitch(a.unique, vtx, log)
	st.Outlines += len(res.Outlines)
	st.Dropped += res.Dropped
	for _, o := range res.Outlines {
		out.Shapes = append(out.Shapes, shape.Classify(o.Points, o.UVs, o.Colors, o.Depth, o.Texture))
		if a.cfg.OutlineColor != 0 {
			out.Shapes = append(out.Shapes, shape.NewLine(o.Points, a.cfg.OutlineColor, a.cfg.OutlineWidth, o.Depth))
		}
	}
	slices.SortStableFunc(out.Shapes, shape.CompareDepth)
	st.Shapes += len(out.Shapes)
	return out
}

// glyph builds a text shape when the triangle's first vertex samples a
// known glyph of the font atlas.
func (a *Assembler) glyph(tex imdraw.TextureID, first imdraw.Index, vtx []imdraw.Vertex, depth uint32) (shape.Shape, bool) {
	if a.cfg.FontTexture == 0 || tex != a.cfg.FontTexture || int(first) >= len(vtx) {
		return shape.Shape{}, false
	}
	v := vtx[first]
	e, ok := a.cfg.Glyphs.Lookup(v.UV[0], v.UV[1])
	if !ok {
		return shape.Shape{}, false
	}
	pos := gg.Pt(float64(v.Pos[0]-e.OffsetX), float64(v.Pos[1]-e.OffsetY))
	return shape.NewText(e.Char, pos, shape.FromPacked(v.Col), a.cfg.Face, depth), true
}
