package imgg

import (
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imgg/platform"
)

// FlushFlags modify how RenderFrame presents.
type FlushFlags uint32

const (
	// FlushSync makes RenderFrame return only after the surface holds the
	// new pixels.
	FlushSync FlushFlags = 1 << iota
)

// present copies the canvas into the bound surface in row bands and then
// queues an expose for the bound window. Unless FlushSync is set the copy
// runs in the background until waitPresent.
func (c *Context) present(flags FlushFlags) {
	if err := c.waitPresent(); err != nil {
		c.logger().Warn("imgg: present failed", "err", err)
	}
	src := c.canvas.ResizeTarget()
	dst, win := c.target, c.window
	pix, stride := src.Data(), src.Width()*4
	width := min(src.Width(), dst.Width)
	height := min(src.Height(), dst.Height)
	threads := c.opts.threads
	step := (height + threads - 1) / threads

	done := make(chan error, 1)
	c.inflight = done
	run := func() {
		var g errgroup.Group
		g.SetLimit(threads)
		for y := 0; y < height; y += step {
			g.Go(func() error {
				dst.StoreRGBA(pix, stride, width, y, min(y+step, height))
				return nil
			})
		}
		err := g.Wait()
		if err == nil && win != nil {
			c.platform.Post(platform.Event{Kind: platform.EventExpose, Window: win})
		}
		done <- err
	}
	if flags&FlushSync != 0 {
		run()
		return
	}
	go run()
}

// waitPresent joins the in-flight present, if any.
func (c *Context) waitPresent() error {
	if c.inflight == nil {
		return nil
	}
	err := <-c.inflight
	c.inflight = nil
	return err
}
