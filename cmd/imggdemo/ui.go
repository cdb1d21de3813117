package main

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/imgg/imdraw"
)

// panel lays out a small tool window with the kinds of geometry a UI
// toolkit emits: flat rects, gradient pickers, text, circles, lines and
// an image.
type panel struct {
	font  imdraw.Font
	image imdraw.TextureID
	list  *imdraw.DrawList
	data  imdraw.DrawData
}

func newPanel(font imdraw.Font, image imdraw.TextureID) *panel {
	p := &panel{font: font, image: image, list: imdraw.NewDrawList(font)}
	p.data.Lists = []*imdraw.DrawList{p.list}
	return p
}

var (
	bgColor     = imdraw.RGBA(36, 36, 40, 240)
	titleLeft   = imdraw.RGBA(41, 74, 122, 255)
	titleRight  = imdraw.RGBA(66, 150, 250, 255)
	buttonColor = imdraw.RGBA(66, 150, 250, 160)
	textColor   = imdraw.RGBA(230, 230, 230, 255)
	plotColor   = imdraw.RGBA(255, 200, 60, 255)
)

// build lays out the frame at the given display size.
func (p *panel) build(width, height, frame int) *imdraw.DrawData {
	dl := p.list
	dl.Clear()
	w, h := float32(width), float32(height)
	p.data.DisplaySize = [2]float32{w, h}

	x0, y0 := float32(20), float32(20)
	x1, y1 := min(w-20, 520), min(h-20, 440)
	if x1 <= x0 || y1 <= y0 {
		dl.Finalize()
		return &p.data
	}

	dl.AddRectFilled([2]float32{x0, y0}, [2]float32{x1, y1}, bgColor)
	dl.AddRectFilledMultiColor([2]float32{x0, y0}, [2]float32{x1, y0 + 28},
		titleLeft, titleRight, titleRight, titleLeft)
	dl.AddText([2]float32{x0 + 8, y0 + 2}, textColor, "imgg demo")

	// Content is clipped to the window body.
	dl.PushClipRect([2]float32{x0, y0 + 28}, [2]float32{x1, y1})
	defer dl.PopClipRect()

	cy := y0 + 40
	p.button(x0+10, cy, fmt.Sprintf("Frame %d", frame))
	cy += 44

	// Saturation/value picker: a hue fill under white and black overlays.
	hue := float32(frame%360) / 360
	pick := [2]float32{x0 + 10, cy}
	size := float32(150)
	r, g, b := hsv(hue, 1, 1)
	dl.AddRectFilled(pick, [2]float32{pick[0] + size, pick[1] + size}, imdraw.RGBAf(r, g, b, 1))
	white, clear := imdraw.RGBA(255, 255, 255, 255), imdraw.RGBA(255, 255, 255, 0)
	dl.AddRectFilledMultiColor(pick, [2]float32{pick[0] + size, pick[1] + size}, white, clear, clear, white)
	black, none := imdraw.RGBA(0, 0, 0, 255), imdraw.RGBA(0, 0, 0, 0)
	dl.AddRectFilledMultiColor(pick, [2]float32{pick[0] + size, pick[1] + size}, none, none, black, black)

	// Animated cursor.
	t := float32(frame) / 60
	cx := pick[0] + size/2 + math32.Cos(t)*size/3
	cyc := pick[1] + size/2 + math32.Sin(t)*size/3
	dl.AddCircleFilled([2]float32{cx, cyc}, 6, imdraw.White, 16)
	dl.AddCircleFilled([2]float32{cx, cyc}, 4, imdraw.Black, 16)

	// Plot.
	plot := [2]float32{pick[0] + size + 20, cy}
	pts := make([][2]float32, 0, 64)
	for i := range 64 {
		fx := float32(i) / 63
		pts = append(pts, [2]float32{
			plot[0] + fx*200,
			plot[1] + size/2 - math32.Sin(fx*2*math.Pi+t)*size/3,
		})
	}
	dl.AddPolyline(pts, plotColor, 2, false)
	dl.AddText([2]float32{plot[0], plot[1] + size}, textColor, "sin(x + t)")

	if p.image != 0 && y1-cy-size-40 > 32 {
		top := cy + size + 40
		side := min(y1-top-10, 128)
		dl.AddImage(p.image, [2]float32{x0 + 10, top}, [2]float32{x0 + 10 + side, top + side},
			[2]float32{0, 0}, [2]float32{1, 1}, imdraw.White)
	}

	dl.Finalize()
	return &p.data
}

func (p *panel) button(x, y float32, label string) {
	w := p.list.CalcTextWidth(label) + 16
	p.list.AddRectFilled([2]float32{x, y}, [2]float32{x + w, y + 32}, buttonColor)
	p.list.AddText([2]float32{x + 8, y + 4}, textColor, label)
}

// hsv converts hue, saturation and value in [0, 1] to RGB.
func hsv(h, s, v float32) (r, g, b float32) {
	if s == 0 {
		return v, v, v
	}
	h = math32.Mod(h, 1) * 6
	i := math32.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}
