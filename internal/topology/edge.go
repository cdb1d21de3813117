// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package topology

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/imgg/imdraw"
)

// ErrIndexRange is returned when a triangle references a vertex outside
// the vertex buffer.
var ErrIndexRange = errors.New("topology: vertex index out of range")

// Edge is a directed triangle edge.
type Edge struct {
	P0, P1  imdraw.Index
	Col     uint32
	Depth   uint32
	Texture imdraw.TextureID
}

// Less orders edges by P0 ascending, then P1 descending.
func Less(a, b Edge) bool {
	if a.P0 != b.P0 {
		return a.P0 < b.P0
	}
	return a.P1 > b.P1
}

func compare(a, b Edge) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	}
	return 0
}

type edgeKey struct {
	lo, hi imdraw.Index
}

func keyOf(e Edge) edgeKey {
	if e.P0 > e.P1 {
		return edgeKey{lo: e.P1, hi: e.P0}
	}
	return edgeKey{lo: e.P0, hi: e.P1}
}

// EdgeSet deduplicates edges by their endpoint pair. The first insertion
// of a pair is kept with its direction and attributes; any repeat marks
// the pair as shared.
type EdgeSet struct {
	edges  []Edge
	unique []bool
	index  map[edgeKey]int
}

// NewEdgeSet returns an empty set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{index: make(map[edgeKey]int)}
}

// Reset empties the set, keeping its storage.
func (s *EdgeSet) Reset() {
	s.edges = s.edges[:0]
	s.unique = s.unique[:0]
	clear(s.index)
}

// Len returns the number of distinct endpoint pairs seen.
func (s *EdgeSet) Len() int { return len(s.edges) }

// Add inserts e and reports whether its endpoint pair was new.
func (s *EdgeSet) Add(e Edge) bool {
	k := keyOf(e)
	if i, ok := s.index[k]; ok {
		s.unique[i] = false
		return false
	}
	s.index[k] = len(s.edges)
	s.edges = append(s.edges, e)
	s.unique = append(s.unique, true)
	return true
}

// AddTriangle emits the edges (v0,v1), (v1,v2) and (v0,v2) of tri. Each
// edge carries the color of the vertex it was emitted from.
func (s *EdgeSet) AddTriangle(tri [3]imdraw.Index, vtx []imdraw.Vertex, depth uint32, tex imdraw.TextureID) error {
	for _, i := range tri {
		if int(i) >= len(vtx) {
			return fmt.Errorf("%w: %d >= %d", ErrIndexRange, i, len(vtx))
		}
	}
	s.Add(Edge{P0: tri[0], P1: tri[1], Col: vtx[tri[0]].Col, Depth: depth, Texture: tex})
	s.Add(Edge{P0: tri[1], P1: tri[2], Col: vtx[tri[1]].Col, Depth: depth, Texture: tex})
	s.Add(Edge{P0: tri[0], P1: tri[2], Col: vtx[tri[2]].Col, Depth: depth, Texture: tex})
	return nil
}

// Unique returns the edges inserted exactly once, ordered by depth and
// within one depth by Less. The result is appended to dst.
func (s *EdgeSet) Unique(dst []Edge) []Edge {
	start := len(dst)
	for i, e := range s.edges {
		if s.unique[i] {
			dst = append(dst, e)
		}
	}
	out := dst[start:]
	slices.SortFunc(out, compare)
	slices.SortStableFunc(out, func(a, b Edge) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return dst
}
