// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

// EventKind identifies a window system event.
type EventKind uint8

// Event kinds.
const (
	// EventResize asks a window to change size.
	EventResize EventKind = iota + 1
	// EventExpose asks for a window's surface to be shown.
	EventExpose
	// EventPresentComplete reports a finished presentation.
	EventPresentComplete
	// EventClose asks a window to close.
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventExpose:
		return "expose"
	case EventPresentComplete:
		return "present-complete"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// Event is a queued window system event.
type Event struct {
	Kind   EventKind
	Window *Window
	Width  int
	Height int
}
