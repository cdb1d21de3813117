// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package platform is a headless window system: windows own shared pixel
// surfaces, events arrive on a queue, and finished surfaces are handed to a
// Presenter.
//
// Surfaces use a single pixel layout, [FormatPRGB32]: premultiplied ARGB
// packed into little-endian 32-bit words, rows padded to a multiple of
// four pixels.
//
// Window resizes are never applied while a frame may still be reading the
// surface. RequestResize records a pending size; the renderer applies it
// at the start of the next frame.
package platform
