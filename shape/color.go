// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/gg"

// Color is a straight-alpha color packed as 0xAARRGGBB.
type Color uint32

// FromPacked converts a toolkit color (0xAABBGGRR) by swapping the red and
// blue channels.
func FromPacked(c uint32) Color {
	return Color(c&0xFF00FF00 | (c>>16)&0xFF | (c<<16)&0xFF0000)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts c to gg's float color.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}
