// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// TextureTransform maps texel coordinates of a w x h image so that the UV
// sub-rectangle uv lands on dst.
func TextureTransform(w, h int, dst, uv Rect) gg.Matrix {
	tw, th := float64(w), float64(h)
	return gg.Translate(dst.X, dst.Y).
		Multiply(gg.Scale(dst.W/(uv.W*tw), dst.H/(uv.H*th))).
		Multiply(gg.Translate(-uv.X*tw, -uv.Y*th))
}

// TextureBrush samples img so that its uv sub-rectangle covers dst.
// Sampling is nearest-texel and clamps at the image border.
func TextureBrush(img *gg.ImageBuf, dst, uv Rect) gg.CustomBrush {
	w, h := img.Bounds()
	inv := TextureTransform(w, h, dst, uv).Invert()
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		p := inv.TransformPoint(gg.Pt(x, y))
		ix := clampInt(int(math.Floor(p.X)), 0, w-1)
		iy := clampInt(int(math.Floor(p.Y)), 0, h-1)
		r, g, b, a := img.GetRGBA(ix, iy)
		return gg.RGBA{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
			A: float64(a) / 255,
		}
	}).WithName("texture")
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
