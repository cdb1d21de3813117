// Package imgg renders immediate-mode UI draw data with the gg vector
// rasterizer.
//
// A UI toolkit hands over each frame as indexed triangle lists with
// per-vertex position, texture coordinate and color (see package imdraw).
// imgg reconstructs the shapes those triangles came from and draws them as
// vector paths, gradients and text instead of rasterizing triangles:
//
//   - triangles sampling the font atlas at a glyph origin become characters
//     drawn with the loaded font
//   - connected triangles sharing edges are merged back into closed outlines
//   - four-corner outlines with distinct corner colors become gradient quads
//   - everything else is filled as a polygon, textured when bound to a
//     registered texture
//
// # Quick Start
//
//	ctx, err := imgg.Initialize("DejaVuSans.ttf", imgg.DefaultClearColor)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	win, err := ctx.CreateWindow(1280, 720, 24)
//	...
//	for {
//	    if !ctx.BeginFrame() {
//	        continue
//	    }
//	    data := buildUI(ctx.FontAtlas())
//	    ctx.RenderFrame(data, imgg.NoColor, 0)
//	    ctx.PollEvents()
//	}
//
// # Frames
//
// Shapes are double-buffered. RenderFrame converts draw data into the
// write slot; the following BeginFrame paints it. The finished pixels are
// copied into the window surface in premultiplied ARGB
// ([platform.FormatPRGB32]) by a pool of workers that run in the
// background unless [FlushSync] is passed.
//
// # Logging
//
// imgg is silent by default. Call [SetLogger] to receive diagnostics:
// per-frame statistics at Debug, dropped outlines and failed frames at
// Warn.
package imgg
