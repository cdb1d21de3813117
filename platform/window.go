// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"sync"
	"sync/atomic"
)

// Window is a headless window backed by a shared pixel surface.
type Window struct {
	id    int
	depth int

	mu      sync.Mutex
	image   *Image
	pending struct {
		set           bool
		width, height int
	}

	presented atomic.Uint64
}

// ID returns the window identifier assigned by the platform.
func (w *Window) ID() int { return w.id }

// Depth returns the color depth the window was created with.
func (w *Window) Depth() int { return w.depth }

// Image returns the current surface.
func (w *Window) Image() *Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.image
}

// Size returns the current surface size.
func (w *Window) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.image.Width, w.image.Height
}

// RequestResize records a size to apply at the start of the next frame.
// A request matching the current size cancels any pending one.
func (w *Window) RequestResize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if width == w.image.Width && height == w.image.Height {
		w.pending.set = false
		return
	}
	w.pending.set = true
	w.pending.width, w.pending.height = width, height
}

// PendingResize reports the recorded size, if any.
func (w *Window) PendingResize() (width, height int, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending.width, w.pending.height, w.pending.set
}

// ApplyPendingResize reallocates the surface at the pending size. It
// reports whether the surface changed. On error the old surface is kept
// and the request is discarded.
func (w *Window) ApplyPendingResize() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending.set {
		return false, nil
	}
	w.pending.set = false
	img, err := NewImage(w.pending.width, w.pending.height)
	if err != nil {
		return false, err
	}
	w.image = img
	return true, nil
}

// Presented returns how many times the surface has been presented.
func (w *Window) Presented() uint64 { return w.presented.Load() }
