// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atlas bakes a TrueType font into a single texture of glyph
// coverage masks, the way immediate-mode toolkits expect it.
//
// The texture is white with alpha holding coverage. A small opaque block
// near the origin provides the white pixel solid geometry samples, and
// glyphs are packed into shelves to its right.
package atlas
