// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package topology

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/imgg/imdraw"
)

// Outline is one closed perimeter. The start point is repeated at the end,
// so a quad has five points. Colors are raw toolkit colors.
type Outline struct {
	Points  []gg.Point
	UVs     []gg.Point
	Colors  []uint32
	Depth   uint32
	Texture imdraw.TextureID
}

func (o *Outline) push(vtx []imdraw.Vertex, i imdraw.Index) bool {
	if int(i) >= len(vtx) {
		return false
	}
	v := vtx[i]
	o.Points = append(o.Points, gg.Pt(float64(v.Pos[0]), float64(v.Pos[1])))
	o.UVs = append(o.UVs, gg.Pt(float64(v.UV[0]), float64(v.UV[1])))
	o.Colors = append(o.Colors, v.Col)
	return true
}

// Result is the output of Stitch.
type Result struct {
	Outlines []Outline
	// Dropped counts chains abandoned because they could not close.
	Dropped int
	// Consumed counts edges that ended up in a closed outline.
	Consumed int
}

// Stitch chains edges into closed outlines. Edges should come from
// EdgeSet.Unique; Stitch reorders them in place.
//
// Each chain starts at the first unprocessed edge and follows whichever
// remaining edge touches its current end, in either direction. A followed
// edge is rotated behind the search window so later scans skip it. A chain
// that cannot be continued is logged and dropped; stitching carries on
// with the next edge.
func Stitch(edges []Edge, vtx []imdraw.Vertex, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var r Result
	w := window{edges: edges, end: len(edges)}
	for w.begin < w.end {
		e := edges[w.begin]
		w.begin++

		o := Outline{Depth: e.Depth, Texture: e.Texture}
		start, cur := e.P0, e.P1
		used := 1
		closed := o.push(vtx, start)
		for closed {
			if closed = o.push(vtx, cur); !closed || cur == start {
				break
			}
			if cur, closed = w.follow(cur); closed {
				used++
			}
		}
		if !closed {
			r.Dropped++
			logger.Warn("topology: invalid outline",
				"start", start, "stuck_at", cur, "depth", e.Depth, "points", len(o.Points))
			continue
		}
		r.Consumed += used
		r.Outlines = append(r.Outlines, o)
	}
	return r
}

// window is the unprocessed range edges[begin:end].
type window struct {
	edges      []Edge
	begin, end int
}

// follow finds the first edge in the window touching v, rotates it out of
// the window and returns its other endpoint.
func (w *window) follow(v imdraw.Index) (imdraw.Index, bool) {
	for j := w.begin; j < w.end; j++ {
		e := w.edges[j]
		if e.P0 != v && e.P1 != v {
			continue
		}
		copy(w.edges[j:w.end-1], w.edges[j+1:w.end])
		w.edges[w.end-1] = e
		w.end--
		if e.P0 == v {
			return e.P1, true
		}
		return e.P0, true
	}
	return v, false
}
