// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assemble

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/imgg/glyph"
	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/shape"
)

const fontTexture imdraw.TextureID = 1

var glyphA = imdraw.Glyph{
	Codepoint: 'A', Visible: true, AdvanceX: 9,
	X0: 1, Y0: 2, X1: 8, Y1: 14,
	U0: 0.1, V0: 0.2, U1: 0.15, V1: 0.3,
}

type testFont struct{}

func (testFont) TextureID() imdraw.TextureID { return fontTexture }
func (testFont) WhiteUV() [2]float32         { return [2]float32{0.004, 0.004} }
func (testFont) LineHeight() float32         { return 16 }
func (testFont) FindGlyph(r rune) (imdraw.Glyph, bool) {
	if r == 'A' {
		return glyphA, true
	}
	return imdraw.Glyph{}, false
}

func newAssembler(logger *slog.Logger) *Assembler {
	cfg := Config{
		Glyphs:      glyph.Build([]imdraw.Glyph{glyphA}, 16),
		FontTexture: fontTexture,
	}
	if logger != nil {
		cfg.Logger = func() *slog.Logger { return logger }
	}
	return New(cfg)
}

func assembleOne(t *testing.T, a *Assembler, dl *imdraw.DrawList) (Command, Stats) {
	t.Helper()
	lists, st := a.Assemble(nil, &imdraw.DrawData{Lists: []*imdraw.DrawList{dl}})
	require.Len(t, lists, 1)
	require.Len(t, lists[0], 1)
	return lists[0][0], st
}

func TestClipRect(t *testing.T) {
	assert.Equal(t, shape.Rect{X: 10, Y: 20, W: 30, H: 50}, ClipRect([4]float32{10, 20, 40, 70}))
}

func TestGlyphQuadBecomesText(t *testing.T) {
	dl := &imdraw.DrawList{
		VtxBuffer: []imdraw.Vertex{
			{Pos: [2]float32{10, 20}, UV: [2]float32{0.1, 0.2}, Col: imdraw.White},
			{Pos: [2]float32{17, 20}, UV: [2]float32{0.15, 0.2}, Col: imdraw.White},
			{Pos: [2]float32{17, 32}, UV: [2]float32{0.15, 0.3}, Col: imdraw.White},
			{Pos: [2]float32{10, 32}, UV: [2]float32{0.1, 0.3}, Col: imdraw.White},
		},
		IdxBuffer: []imdraw.Index{0, 1, 2, 0, 2, 3},
		CmdBuffer: []imdraw.DrawCmd{{ClipRect: [4]float32{0, 0, 100, 100}, TextureID: fontTexture, ElemCount: 6}},
	}
	cmd, st := assembleOne(t, newAssembler(nil), dl)

	require.Len(t, cmd.Shapes, 1)
	s := cmd.Shapes[0]
	require.Equal(t, shape.KindText, s.Kind)
	assert.Equal(t, 'A', s.Text.Char)
	assert.Equal(t, gg.Pt(9, 32), s.Text.Pos)
	assert.Equal(t, shape.FromPacked(imdraw.White), s.Text.Color)
	assert.Equal(t, 1, st.Glyphs)
	assert.Equal(t, 1, st.Triangles)
	assert.Zero(t, st.Outlines)

	// The same quad bound to another texture is geometry.
	dl.CmdBuffer[0].TextureID = 2
	cmd, _ = assembleOne(t, newAssembler(nil), dl)
	require.Len(t, cmd.Shapes, 1)
	assert.Equal(t, shape.KindPolygon, cmd.Shapes[0].Kind)
}

func TestVerticalGradientQuad(t *testing.T) {
	dl := imdraw.NewDrawList(nil)
	dl.AddRectFilledMultiColor([2]float32{0, 0}, [2]float32{10, 10},
		imdraw.White, imdraw.White, imdraw.Black, imdraw.Black)
	dl.Finalize()

	cmd, _ := assembleOne(t, newAssembler(nil), dl)
	require.Len(t, cmd.Shapes, 1)
	s := cmd.Shapes[0]
	require.Equal(t, shape.KindGradientQuad, s.Kind)
	assert.Equal(t, shape.Vertical, s.Quad.Orientation)
	assert.Equal(t, shape.Rect{W: 10, H: 10}, s.Quad.Bounds)
}

func TestMalformedTopologyIsDropped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	vtx := []imdraw.Vertex{
		{Pos: [2]float32{0, 0}}, {Pos: [2]float32{4, 0}}, {Pos: [2]float32{2, 3}},
		{Pos: [2]float32{2, -3}}, {Pos: [2]float32{5, 5}},
		{Pos: [2]float32{20, 20}}, {Pos: [2]float32{30, 20}}, {Pos: [2]float32{30, 30}}, {Pos: [2]float32{20, 30}},
	}
	for i := range vtx {
		vtx[i].Col = imdraw.White
	}
	dl := &imdraw.DrawList{
		VtxBuffer: vtx,
		IdxBuffer: []imdraw.Index{0, 1, 2, 0, 1, 3, 0, 1, 4, 5, 6, 7, 5, 7, 8},
		CmdBuffer: []imdraw.DrawCmd{{ClipRect: [4]float32{0, 0, 64, 64}, ElemCount: 15}},
	}
	cmd, st := assembleOne(t, newAssembler(logger), dl)

	assert.Equal(t, 1, st.Dropped)
	require.Len(t, cmd.Shapes, 2)
	last := cmd.Shapes[1]
	require.Equal(t, shape.KindPolygon, last.Kind)
	assert.Equal(t, uint32(3), last.Depth())
	assert.Equal(t, shape.Rect{X: 20, Y: 20, W: 10, H: 10}, shape.Bounds(last.Polygon.Points))
	assert.Contains(t, buf.String(), "invalid outline")
}

func TestDepthMonotonic(t *testing.T) {
	dl := imdraw.NewDrawList(testFont{})
	dl.AddRectFilled([2]float32{0, 0}, [2]float32{50, 20}, imdraw.RGBA(40, 40, 40, 255))
	dl.AddText([2]float32{100, 50}, imdraw.White, "AA")
	dl.AddRectFilled([2]float32{5, 5}, [2]float32{10, 10}, imdraw.RGBA(200, 0, 0, 255))
	dl.AddConvexPolyFilled([][2]float32{{60, 0}, {70, 0}, {75, 5}, {70, 10}, {60, 10}}, imdraw.White)
	dl.Finalize()

	cmd, st := assembleOne(t, newAssembler(nil), dl)
	kinds := make([]shape.Kind, len(cmd.Shapes))
	for i, s := range cmd.Shapes {
		kinds[i] = s.Kind
		if i > 0 {
			assert.Greater(t, s.Depth(), cmd.Shapes[i-1].Depth(), "shape %d out of order", i)
		}
	}
	assert.Equal(t, []shape.Kind{
		shape.KindPolygon, shape.KindText, shape.KindText, shape.KindPolygon, shape.KindPolygon,
	}, kinds)
	assert.Equal(t, gg.Pt(100, 64), cmd.Shapes[1].Text.Pos)
	assert.Equal(t, 2, st.Glyphs)
	assert.Equal(t, 3, st.Outlines)
	assert.Equal(t, 5, st.Shapes)
}

func TestCallbackCommand(t *testing.T) {
	dl := imdraw.NewDrawList(nil)
	dl.AddRectFilled([2]float32{0, 0}, [2]float32{1, 1}, imdraw.White)
	var called int
	dl.AddCallback(func(list *imdraw.DrawList, cmd *imdraw.DrawCmd) {
		called++
		assert.Same(t, dl, list)
	})
	dl.PushClipRect([2]float32{1, 2}, [2]float32{3, 4})
	dl.AddRectFilled([2]float32{0, 0}, [2]float32{1, 1}, imdraw.White)
	dl.Finalize()

	lists, st := newAssembler(nil).Assemble(nil, &imdraw.DrawData{Lists: []*imdraw.DrawList{dl}})
	assert.Equal(t, 1, called)
	assert.Equal(t, 1, st.Callbacks)
	require.Len(t, lists[0], 2)
	assert.Equal(t, shape.Rect{X: 1, Y: 2, W: 2, H: 2}, lists[0][1].Clip)
}

func TestOutOfRangeTriangleSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	dl := &imdraw.DrawList{
		VtxBuffer: []imdraw.Vertex{{Pos: [2]float32{0, 0}}, {Pos: [2]float32{1, 0}}, {Pos: [2]float32{0, 1}}},
		IdxBuffer: []imdraw.Index{0, 1, 7, 0, 1, 2},
		CmdBuffer: []imdraw.DrawCmd{{ElemCount: 6}},
	}
	cmd, st := assembleOne(t, newAssembler(logger), dl)
	require.Len(t, cmd.Shapes, 1)
	assert.Equal(t, uint32(1), cmd.Shapes[0].Depth())
	assert.Equal(t, 2, st.Triangles)
	assert.Contains(t, buf.String(), "skipping triangle")
}

func TestCommandExceedingIndexBuffer(t *testing.T) {
	dl := imdraw.NewDrawList(nil)
	dl.AddTriangleFilled([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0, 1}, imdraw.White)
	dl.CmdBuffer[0].ElemCount = 30
	cmd, _ := assembleOne(t, newAssembler(nil), dl)
	assert.Len(t, cmd.Shapes, 1)
}

func TestVertexOffset(t *testing.T) {
	dl := &imdraw.DrawList{
		VtxBuffer: []imdraw.Vertex{
			{}, {},
			{Pos: [2]float32{0, 0}}, {Pos: [2]float32{4, 0}}, {Pos: [2]float32{0, 4}},
		},
		IdxBuffer: []imdraw.Index{0, 1, 2},
		CmdBuffer: []imdraw.DrawCmd{{VtxOffset: 2, ElemCount: 3}},
	}
	cmd, _ := assembleOne(t, newAssembler(nil), dl)
	require.Len(t, cmd.Shapes, 1)
	assert.Equal(t, shape.Rect{W: 4, H: 4}, shape.Bounds(cmd.Shapes[0].Polygon.Points))
}

func TestOutlineOverlay(t *testing.T) {
	dl := imdraw.NewDrawList(nil)
	dl.AddRectFilled([2]float32{0, 0}, [2]float32{4, 4}, imdraw.White)
	dl.Finalize()

	a := New(Config{OutlineColor: shape.FromPacked(imdraw.RGBA(255, 0, 255, 255)), OutlineWidth: 2})
	cmd, _ := assembleOne(t, a, dl)
	require.Len(t, cmd.Shapes, 2)
	assert.Equal(t, shape.KindPolygon, cmd.Shapes[0].Kind)
	require.Equal(t, shape.KindLine, cmd.Shapes[1].Kind)
	assert.Equal(t, 2.0, cmd.Shapes[1].Line.Width)
	assert.Equal(t, cmd.Shapes[0].Depth(), cmd.Shapes[1].Depth())
}

func TestAssembleReusesDestination(t *testing.T) {
	a := newAssembler(nil)
	dl := imdraw.NewDrawList(nil)
	dl.AddRectFilled([2]float32{0, 0}, [2]float32{1, 1}, imdraw.White)
	data := &imdraw.DrawData{Lists: []*imdraw.DrawList{dl, nil, dl}}

	lists, st := a.Assemble(make([]List, 5), data)
	assert.Len(t, lists, 2)
	assert.Equal(t, 2, st.Lists)

	lists, st = a.Assemble(lists, nil)
	assert.Empty(t, lists)
	assert.Zero(t, st)
}
