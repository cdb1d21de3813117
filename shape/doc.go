// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape defines the drawable units reconstructed from toolkit
// geometry and draws them onto a gg rasterizer context.
//
// A [Shape] is a closed tagged union over four variants: a one-character
// [Text] run, a solid or textured [Polygon], a two-color [GradientQuad]
// and a stroked [Line]. [Classify] turns a stitched outline into a Polygon
// or GradientQuad; text and lines are built directly by their producers.
package shape
