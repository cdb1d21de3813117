package imgg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/platform"
)

// recordingCanvas logs frame structure and keeps a real pixmap for
// presenting.
type recordingCanvas struct {
	ops      []string
	pm       *gg.Pixmap
	flushErr error
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{pm: gg.NewPixmap(1, 1)}
}

func (r *recordingCanvas) SetFillBrush(gg.Brush)                         {}
func (r *recordingCanvas) SetStrokeBrush(gg.Brush)                       {}
func (r *recordingCanvas) SetLineWidth(float64)                          {}
func (r *recordingCanvas) SetFont(text.Face)                             {}
func (r *recordingCanvas) MoveTo(x, y float64)                           {}
func (r *recordingCanvas) LineTo(x, y float64)                           {}
func (r *recordingCanvas) ClosePath()                                    {}
func (r *recordingCanvas) Stroke() error                                 { r.ops = append(r.ops, "stroke"); return nil }
func (r *recordingCanvas) DrawImageEx(*gg.ImageBuf, gg.DrawImageOptions) {}
func (r *recordingCanvas) Push()                                         { r.ops = append(r.ops, "push") }
func (r *recordingCanvas) Pop()                                          { r.ops = append(r.ops, "pop") }
func (r *recordingCanvas) FlushGPU() error                               { return r.flushErr }
func (r *recordingCanvas) ResizeTarget() *gg.Pixmap                      { return r.pm }
func (r *recordingCanvas) Width() int                                    { return r.pm.Width() }
func (r *recordingCanvas) Height() int                                   { return r.pm.Height() }
func (r *recordingCanvas) SetTextMode(gg.TextMode)                       {}
func (r *recordingCanvas) Close() error                                  { return nil }

func (r *recordingCanvas) Fill() error {
	r.ops = append(r.ops, "fill")
	return nil
}

func (r *recordingCanvas) DrawString(s string, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("text %s", s))
}

func (r *recordingCanvas) ClipRect(x, y, w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("clip %g %g %g %g", x, y, w, h))
}

func (r *recordingCanvas) ClearWithColor(gg.RGBA) {
	r.ops = append(r.ops, "clear")
}

func (r *recordingCanvas) Resize(w, h int) error {
	if w != r.pm.Width() || h != r.pm.Height() {
		r.pm = gg.NewPixmap(w, h)
	}
	return nil
}

var _ canvas = (*recordingCanvas)(nil)
var _ canvas = (*gg.Context)(nil)

func twoClips(font imdraw.Font) *imdraw.DrawData {
	dl := imdraw.NewDrawList(font)
	dl.PushClipRect([2]float32{0, 0}, [2]float32{20, 10})
	dl.AddRectFilled([2]float32{1, 1}, [2]float32{5, 5}, imdraw.RGBA(255, 0, 0, 255))
	dl.PopClipRect()
	dl.PushClipRect([2]float32{5, 5}, [2]float32{15, 15})
	dl.AddRectFilled([2]float32{6, 6}, [2]float32{9, 9}, imdraw.RGBA(0, 255, 0, 255))
	dl.PopClipRect()
	dl.Finalize()
	return &imdraw.DrawData{Lists: []*imdraw.DrawList{dl}}
}

func TestFramePaintsPreviousSlot(t *testing.T) {
	surface, err := platform.NewImage(40, 30)
	require.NoError(t, err)
	c := newTestContext(t, DefaultClearColor, WithSurface(surface))
	rec := newRecordingCanvas()
	c.canvas = rec

	require.True(t, c.BeginFrame())
	assert.Equal(t, []string{"clear"}, rec.ops, "first frame has nothing to paint")
	assert.Equal(t, 40, rec.Width())
	assert.Equal(t, 30, rec.Height())

	require.True(t, c.RenderFrame(twoClips(c.FontAtlas()), NoColor, FlushSync))
	assert.Equal(t, 2, c.Stats().Commands)
	assert.Equal(t, 2, c.Stats().Shapes)
	assert.Equal(t, []string{"clear"}, rec.ops, "RenderFrame only converts")

	rec.ops = nil
	require.True(t, c.BeginFrame())
	assert.Equal(t, []string{
		"clear",
		"push", "clip 0 0 20 10", "fill", "pop",
		"push", "clip 5 5 10 10", "fill", "pop",
	}, rec.ops)

	// The slot painted above was converted two frames ago; the other one
	// is empty now.
	require.True(t, c.RenderFrame(&imdraw.DrawData{}, NoColor, FlushSync))
	rec.ops = nil
	require.True(t, c.BeginFrame())
	assert.Equal(t, []string{"clear"}, rec.ops)
}

func TestFrameText(t *testing.T) {
	surface, err := platform.NewImage(200, 60)
	require.NoError(t, err)
	c := newTestContext(t, DefaultClearColor, WithSurface(surface))
	rec := newRecordingCanvas()
	c.canvas = rec

	dl := imdraw.NewDrawList(c.FontAtlas())
	dl.AddText([2]float32{4, 4}, imdraw.White, "Hi")
	dl.Finalize()

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(&imdraw.DrawData{Lists: []*imdraw.DrawList{dl}}, NoColor, FlushSync))
	assert.Equal(t, 2, c.Stats().Glyphs)

	rec.ops = nil
	require.True(t, c.BeginFrame())
	assert.Equal(t, []string{"clear", "push", "clip -8192 -8192 16384 16384", "text H", "text i", "pop"}, rec.ops)
}

func TestRenderFrameOutsideFrame(t *testing.T) {
	c := newTestContext(t, DefaultClearColor)
	assert.False(t, c.RenderFrame(&imdraw.DrawData{}, NoColor, 0))
}

func TestRenderFrameFlushError(t *testing.T) {
	surface, err := platform.NewImage(4, 4)
	require.NoError(t, err)
	c := newTestContext(t, DefaultClearColor, WithSurface(surface))
	rec := newRecordingCanvas()
	rec.flushErr = errors.New("flush")
	c.canvas = rec

	require.True(t, c.BeginFrame())
	assert.False(t, c.RenderFrame(&imdraw.DrawData{}, NoColor, FlushSync))
}

func TestBeginFrameNoSurface(t *testing.T) {
	c := newTestContext(t, DefaultClearColor)
	assert.False(t, c.BeginFrame())
}

var (
	opaqueBlack = ClearColor{0, 0, 0, 1}
	opaqueBlue  = ClearColor{0, 0, 1, 1}
)

func redSquare(font imdraw.Font) *imdraw.DrawData {
	dl := imdraw.NewDrawList(font)
	dl.AddRectFilled([2]float32{8, 8}, [2]float32{24, 24}, imdraw.RGBA(255, 0, 0, 255))
	dl.Finalize()
	return &imdraw.DrawData{Lists: []*imdraw.DrawList{dl}}
}

func TestRenderToWindow(t *testing.T) {
	c := newTestContext(t, opaqueBlack, WithThreadCount(3))
	win, err := c.CreateWindow(48, 32, 24)
	require.NoError(t, err)

	data := redSquare(c.FontAtlas())
	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, NoColor, FlushSync))

	img := win.Image()
	assert.Equal(t, uint32(0xFF000000), img.PixelAt(16, 16), "shapes show one frame later")

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, opaqueBlue, FlushSync))
	assert.Equal(t, uint32(0xFFFF0000), img.PixelAt(16, 16))
	assert.Equal(t, uint32(0xFF000000), img.PixelAt(2, 2))
	assert.Equal(t, uint32(0xFF000000), img.PixelAt(47, 31))

	// The clear color override applies from the next frame.
	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, NoColor, FlushSync))
	assert.Equal(t, uint32(0xFF0000FF), img.PixelAt(2, 2))
	assert.Equal(t, uint32(0xFFFF0000), img.PixelAt(16, 16))
}

func TestAsyncPresent(t *testing.T) {
	var presented []*platform.Image
	c := newTestContext(t, opaqueBlack, WithPresenter(platform.PresenterFunc(
		func(w *platform.Window, img *platform.Image) error {
			presented = append(presented, img)
			return nil
		})))
	win, err := c.CreateWindow(32, 32, 32)
	require.NoError(t, err)
	data := redSquare(c.FontAtlas())

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, NoColor, 0))
	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, NoColor, 0))

	// The next BeginFrame joins the copy.
	require.True(t, c.BeginFrame())
	assert.Equal(t, uint32(0xFFFF0000), win.Image().PixelAt(16, 16))

	var kinds []platform.EventKind
	for _, ev := range c.PollEvents() {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []platform.EventKind{platform.EventExpose, platform.EventExpose}, kinds)
	assert.Len(t, presented, 2)
	assert.Equal(t, uint64(2), win.Presented())

	kinds = kinds[:0]
	for _, ev := range c.PollEvents() {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []platform.EventKind{platform.EventPresentComplete, platform.EventPresentComplete}, kinds)
}

func TestWindowResize(t *testing.T) {
	c := newTestContext(t, opaqueBlack)
	win, err := c.CreateWindow(32, 32, 24)
	require.NoError(t, err)
	old := win.Image()

	c.Platform().Post(platform.Event{Kind: platform.EventResize, Window: win, Width: 50, Height: 20})
	c.PollEvents()
	assert.Same(t, old, win.Image(), "resize waits for the next frame")

	require.True(t, c.BeginFrame())
	w, h := win.Size()
	assert.Equal(t, 50, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, 50, c.canvas.Width())
	assert.Equal(t, 20, c.canvas.Height())

	require.True(t, c.RenderFrame(redSquare(c.FontAtlas()), NoColor, FlushSync))
	assert.Equal(t, 52*4, win.Image().Stride)
	assert.Equal(t, uint32(0xFF000000), win.Image().PixelAt(49, 19))
}

func TestNewestWindowWins(t *testing.T) {
	c := newTestContext(t, opaqueBlack)
	first, err := c.CreateWindow(16, 16, 24)
	require.NoError(t, err)
	second, err := c.CreateWindow(24, 8, 24)
	require.NoError(t, err)

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(&imdraw.DrawData{}, NoColor, FlushSync))
	assert.Equal(t, uint32(0xFF000000), second.Image().PixelAt(23, 7))
	assert.Equal(t, uint32(0), first.Image().PixelAt(0, 0))
}

func TestOutlineDebugOverlay(t *testing.T) {
	surface, err := platform.NewImage(40, 30)
	require.NoError(t, err)
	c := newTestContext(t, DefaultClearColor, WithSurface(surface),
		WithOutlineDebug(imdraw.RGBA(255, 0, 255, 255), 1))
	rec := newRecordingCanvas()
	c.canvas = rec

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(twoClips(c.FontAtlas()), NoColor, FlushSync))
	rec.ops = nil
	require.True(t, c.BeginFrame())
	assert.Equal(t, []string{
		"clear",
		"push", "clip 0 0 20 10", "fill", "stroke", "pop",
		"push", "clip 5 5 10 10", "fill", "stroke", "pop",
	}, rec.ops)
}

func clippedText(font imdraw.Font, clip bool) *imdraw.DrawData {
	dl := imdraw.NewDrawList(font)
	if clip {
		dl.PushClipRect([2]float32{0, 0}, [2]float32{6, 6})
	}
	dl.AddText([2]float32{0, 0}, imdraw.White, "MMMM")
	if clip {
		dl.PopClipRect()
	}
	dl.Finalize()
	return &imdraw.DrawData{Lists: []*imdraw.DrawList{dl}}
}

func TestTextHonorsCommandClip(t *testing.T) {
	tests := []struct {
		name        string
		clip        bool
		wantOutside bool
	}{
		{"clipped", true, false},
		{"unclipped", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, opaqueBlack)
			win, err := c.CreateWindow(80, 40, 24)
			require.NoError(t, err)
			data := clippedText(c.FontAtlas(), tt.clip)

			for range 2 {
				require.True(t, c.BeginFrame())
				require.True(t, c.RenderFrame(data, NoColor, FlushSync))
			}
			require.Equal(t, 4, c.Stats().Glyphs)

			img := win.Image()
			outside := 0
			for y := range img.Height {
				for x := range img.Width {
					if x < 6 && y < 6 {
						continue
					}
					if img.PixelAt(x, y) != 0xFF000000 {
						outside++
					}
				}
			}
			if tt.wantOutside {
				assert.Positive(t, outside)
			} else {
				assert.Zero(t, outside)
			}
		})
	}
}

func TestRenderFrameJoinsPreviousPresent(t *testing.T) {
	c := newTestContext(t, opaqueBlack)
	_, err := c.CreateWindow(32, 32, 24)
	require.NoError(t, err)
	data := redSquare(c.FontAtlas())

	require.True(t, c.BeginFrame())
	require.True(t, c.RenderFrame(data, NoColor, 0))
	require.True(t, c.RenderFrame(data, NoColor, 0))

	// The second RenderFrame joined the first copy, so its expose is
	// already queued.
	var exposes int
	for _, ev := range c.PollEvents() {
		if ev.Kind == platform.EventExpose {
			exposes++
		}
	}
	assert.GreaterOrEqual(t, exposes, 1)

	require.True(t, c.BeginFrame())
	for _, ev := range c.PollEvents() {
		if ev.Kind == platform.EventExpose {
			exposes++
		}
	}
	assert.Equal(t, 2, exposes)
	assert.Nil(t, c.inflight)
}
