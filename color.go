package imgg

import "github.com/gogpu/gg"

// ClearColor is the frame background with components in [0, 1].
type ClearColor struct {
	R, G, B, A float32
}

var (
	// NoColor passed to RenderFrame keeps the current clear color.
	NoColor = ClearColor{-1, -1, -1, -1}

	// DefaultClearColor is a muted slate blue.
	DefaultClearColor = ClearColor{0.45, 0.55, 0.60, 1}
)

// IsNone reports whether c is the NoColor sentinel.
func (c ClearColor) IsNone() bool { return c == NoColor }

// RGBA converts c to a gg color, clamping each component.
func (c ClearColor) RGBA() gg.RGBA {
	return gg.RGBA{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

func clamp01(v float32) float64 {
	return float64(min(max(v, 0), 1))
}
