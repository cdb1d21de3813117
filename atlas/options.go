// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package atlas

// Range is an inclusive span of code points.
type Range struct {
	Lo, Hi rune
}

// DefaultRanges covers Basic Latin and Latin-1 Supplement.
var DefaultRanges = []Range{{Lo: 0x20, Hi: 0xFF}}

// DefaultSize is the pixel size used when none is given.
const DefaultSize = 24

// Option configures Build.
type Option func(*options)

type options struct {
	size    float64
	ranges  []Range
	width   int
	padding int
}

func defaultOptions() options {
	return options{
		size:    DefaultSize,
		ranges:  DefaultRanges,
		width:   512,
		padding: 1,
	}
}

// WithSize sets the pixel size glyphs are rasterized at.
func WithSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithRanges replaces the code point ranges baked into the atlas.
func WithRanges(ranges ...Range) Option {
	return func(o *options) {
		if len(ranges) > 0 {
			o.ranges = ranges
		}
	}
}

// WithWidth sets the texture width in pixels.
func WithWidth(w int) Option {
	return func(o *options) {
		if w >= 16 {
			o.width = w
		}
	}
}

// WithPadding sets the gap between packed glyphs.
func WithPadding(p int) Option {
	return func(o *options) {
		if p >= 0 {
			o.padding = p
		}
	}
}
