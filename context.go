package imgg

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/imgg/atlas"
	"github.com/gogpu/imgg/glyph"
	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/internal/assemble"
	"github.com/gogpu/imgg/platform"
	"github.com/gogpu/imgg/shape"
)

// Stats describes the most recently rendered frame.
type Stats = assemble.Stats

// canvas is the part of *gg.Context a frame uses.
type canvas interface {
	shape.Target
	Push()
	Pop()
	ClipRect(x, y, w, h float64)
	SetTextMode(mode gg.TextMode)
	ClearWithColor(col gg.RGBA)
	Resize(width, height int) error
	ResizeTarget() *gg.Pixmap
	FlushGPU() error
	Width() int
	Height() int
	Close() error
}

// Context owns everything a frame needs: the font, textures, windows, the
// rasterizer canvas and the double-buffered shapes.
//
// A Context is driven from one goroutine. AddTexture and the returned
// Texture handles may be used from others.
type Context struct {
	opts  options
	clear ClearColor

	atlas    *atlas.Atlas
	source   *text.FontSource
	face     text.Face
	glyphs   *glyph.Index
	textures textureRegistry

	platform *platform.Platform
	canvas   canvas
	asm      *assemble.Assembler

	buffers  [2][]assemble.List
	buffer   uint
	target   *platform.Image
	window   *platform.Window
	inflight chan error

	stats  Stats
	closed bool
}

// Initialize loads the font at fontPath and sets up a Context that clears
// each frame with clear.
func Initialize(fontPath string, clear ClearColor, opts ...Option) (*Context, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	return NewFromFontData(data, clear, opts...)
}

// NewFromFontData is Initialize for a font already in memory.
func NewFromFontData(data []byte, clear ClearColor, opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	at, err := atlas.Build(data, atlas.WithSize(o.fontSize), atlas.WithRanges(o.ranges...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFace, err)
	}

	c := &Context{
		opts:   o,
		clear:  clear,
		atlas:  at,
		source: src,
		face:   src.Face(o.fontSize),
	}

	// The atlas is always texture 1.
	tex := c.textures.add()
	tex.SetImage(at.Image())
	at.SetTextureID(tex.ID())
	c.glyphs = glyph.Build(at.Glyphs(), at.Size())

	popts := []platform.Option{platform.WithLogger(c.logger())}
	if o.presenter != nil {
		popts = append(popts, platform.WithPresenter(o.presenter))
	}
	c.platform = platform.New(popts...)

	w, h := 1, 1
	if o.surface != nil {
		if err := o.surface.Validate(); err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("%w: %w", ErrNoSurface, err)
		}
		w, h = o.surface.Width, o.surface.Height
	}
	c.canvas = gg.NewContext(w, h)
	// Vector text goes through the fill path and honors command clips.
	c.canvas.SetTextMode(gg.TextModeVector)

	c.asm = assemble.New(assemble.Config{
		Glyphs:       c.glyphs,
		FontTexture:  at.TextureID(),
		Face:         c.face,
		OutlineColor: shape.FromPacked(o.outlineColor),
		OutlineWidth: o.outlineWidth,
		Logger:       c.logger,
	})

	c.logger().Debug("imgg: initialized",
		"font_size", o.fontSize,
		"glyphs", c.glyphs.Len(),
		"atlas_width", at.Image().Bounds().Dx(),
		"atlas_height", at.Image().Bounds().Dy())
	return c, nil
}

func (c *Context) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return Logger()
}

// CreateWindow opens a window. Frames render into the most recently
// created window.
func (c *Context) CreateWindow(width, height, depth int) (*platform.Window, error) {
	if c.closed {
		return nil, ErrClosed
	}
	return c.platform.CreateWindow(width, height, depth)
}

// Platform returns the window system.
func (c *Context) Platform() *platform.Platform { return c.platform }

// PollEvents handles queued window events and returns them.
func (c *Context) PollEvents() []platform.Event {
	return c.platform.PollEvents()
}

// AddTexture registers a new, empty texture.
func (c *Context) AddTexture() *Texture {
	return c.textures.add()
}

// Texture returns the texture registered under id, or nil.
func (c *Context) Texture(id imdraw.TextureID) *Texture {
	return c.textures.get(id)
}

// FontAtlas returns the baked font the toolkit should build text with.
func (c *Context) FontAtlas() *atlas.Atlas { return c.atlas }

// FontFace returns the face glyphs are drawn with.
func (c *Context) FontFace() text.Face { return c.face }

// Stats returns counts for the last RenderFrame.
func (c *Context) Stats() Stats { return c.stats }

// Close waits for an in-flight present and releases the Context.
// Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.waitPresent()
	if cerr := c.canvas.Close(); err == nil {
		err = cerr
	}
	if cerr := c.source.Close(); err == nil {
		err = cerr
	}
	if cerr := c.platform.Close(); err == nil {
		err = cerr
	}
	c.buffers = [2][]assemble.List{}
	return err
}
