package imgg

import (
	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/internal/assemble"
	"github.com/gogpu/imgg/platform"
)

// BeginFrame prepares the surface and paints the shapes converted by the
// previous RenderFrame. It waits for an in-flight present, applies a
// pending window resize and clears with the current clear color. It
// reports false, after logging, when there is nothing to render into.
func (c *Context) BeginFrame() bool {
	if c.closed {
		return false
	}
	log := c.logger()
	if err := c.waitPresent(); err != nil {
		log.Warn("imgg: present failed", "err", err)
	}

	target, win, err := c.acquire()
	if err != nil {
		log.Warn("imgg: begin frame", "err", err)
		return false
	}
	if err := c.canvas.Resize(target.Width, target.Height); err != nil {
		log.Warn("imgg: begin frame", "err", err)
		return false
	}
	c.target, c.window = target, win

	c.canvas.ClearWithColor(c.clear.RGBA())
	slot := c.buffer % 2
	c.buffer++
	c.paint(c.buffers[slot])
	return true
}

// acquire returns the surface of the newest window, applying its pending
// resize, or the shared surface when there is no window.
func (c *Context) acquire() (*platform.Image, *platform.Window, error) {
	if w := c.platform.Latest(); w != nil {
		changed, err := w.ApplyPendingResize()
		switch {
		case err != nil:
			c.logger().Warn("imgg: resize failed", "window", w.ID(), "err", err)
		case changed:
			width, height := w.Size()
			c.logger().Debug("imgg: window resized", "window", w.ID(), "width", width, "height", height)
		}
		return w.Image(), w, nil
	}
	if c.opts.surface != nil {
		return c.opts.surface, nil, nil
	}
	return nil, nil, ErrNoSurface
}

func (c *Context) paint(lists []assemble.List) {
	for _, list := range lists {
		for _, cmd := range list {
			c.canvas.Push()
			c.canvas.ClipRect(cmd.Clip.X, cmd.Clip.Y, cmd.Clip.W, cmd.Clip.H)
			for _, s := range cmd.Shapes {
				if err := s.Draw(c.canvas, &c.textures); err != nil {
					c.logger().Warn("imgg: draw shape", "kind", s.Kind, "err", err)
				}
			}
			c.canvas.Pop()
		}
	}
}

// RenderFrame converts data into shapes for the next BeginFrame and
// presents the pixels painted by the current one. A clear color other than
// NoColor replaces the current one from the next frame on. It reports
// false, after logging, when called outside a frame or when presenting
// fails.
func (c *Context) RenderFrame(data *imdraw.DrawData, clear ClearColor, flags FlushFlags) bool {
	if c.closed {
		return false
	}
	log := c.logger()
	if c.target == nil {
		log.Warn("imgg: render frame", "err", ErrNoSurface)
		return false
	}
	if !clear.IsNone() {
		c.clear = clear
	}

	slot := c.buffer % 2
	c.buffers[slot], c.stats = c.asm.Assemble(c.buffers[slot][:0], data)
	log.Debug("imgg: frame",
		"commands", c.stats.Commands,
		"triangles", c.stats.Triangles,
		"glyphs", c.stats.Glyphs,
		"outlines", c.stats.Outlines,
		"dropped", c.stats.Dropped,
		"shapes", c.stats.Shapes)

	if err := c.canvas.FlushGPU(); err != nil {
		log.Warn("imgg: flush", "err", err)
		return false
	}
	c.present(flags)
	if flags&FlushSync != 0 {
		if err := c.waitPresent(); err != nil {
			log.Warn("imgg: present failed", "err", err)
			return false
		}
	}
	return true
}
