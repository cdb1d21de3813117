// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imdraw describes the per-frame draw data an immediate-mode UI
// toolkit hands to the renderer, and provides a DrawList builder that
// emits it.
//
// A frame is a [DrawData] holding one or more [DrawList] values. Each list
// owns a vertex buffer, an index buffer and a sequence of [DrawCmd]
// entries. A command covers ElemCount consecutive indices starting at
// IdxOffset, interpreted as triangles, plus the clip rectangle and texture
// they were recorded with. Indices are relative to the command's VtxOffset.
//
// Solid geometry is textured with the font atlas too: it samples the white
// pixel reported by [Font.WhiteUV], so only glyph quads reference
// distinctive atlas coordinates.
//
// Colors are packed 32-bit values with red in the low byte
// (0xAABBGGRR). Use [RGBA] to build them.
package imdraw
