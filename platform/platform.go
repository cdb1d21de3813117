// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// ErrUnsupportedDepth is returned by CreateWindow for depths other than
// 24 and 32.
var ErrUnsupportedDepth = errors.New("platform: unsupported color depth")

// Presenter shows a finished surface.
type Presenter interface {
	Present(w *Window, img *Image) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(w *Window, img *Image) error

// Present calls f(w, img).
func (f PresenterFunc) Present(w *Window, img *Image) error { return f(w, img) }

type nopPresenter struct{}

func (nopPresenter) Present(*Window, *Image) error { return nil }

// Option configures a Platform.
type Option func(*Platform)

// WithPresenter sets the presenter used for expose events.
func WithPresenter(p Presenter) Option {
	return func(pl *Platform) {
		if p != nil {
			pl.presenter = p
		}
	}
}

// WithLogger sets the platform logger.
func WithLogger(l *slog.Logger) Option {
	return func(pl *Platform) {
		if l != nil {
			pl.logger = l
		}
	}
}

// Platform owns windows and the event queue. All methods are safe for
// concurrent use.
type Platform struct {
	presenter Presenter
	logger    *slog.Logger

	mu      sync.Mutex
	windows []*Window
	queue   []Event
	nextID  int
}

// New creates a platform with no windows.
func New(opts ...Option) *Platform {
	p := &Platform{
		presenter: nopPresenter{},
		logger:    slog.New(slog.DiscardHandler),
		nextID:    1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CreateWindow creates a window with a cleared surface.
func (p *Platform) CreateWindow(width, height, depth int) (*Window, error) {
	if depth != 24 && depth != 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	w := &Window{id: p.nextID, depth: depth, image: img}
	p.nextID++
	p.windows = append(p.windows, w)
	p.logger.Debug("platform: window created", "id", w.id, "width", width, "height", height, "depth", depth)
	return w, nil
}

// Windows returns the open windows in creation order.
func (p *Platform) Windows() []*Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.windows)
}

// Latest returns the most recently created open window, or nil.
func (p *Platform) Latest() *Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.windows) == 0 {
		return nil
	}
	return p.windows[len(p.windows)-1]
}

// Post queues an event.
func (p *Platform) Post(ev Event) {
	p.mu.Lock()
	p.queue = append(p.queue, ev)
	p.mu.Unlock()
}

// EnqueueExpose queues an expose event for every open window.
func (p *Platform) EnqueueExpose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.windows {
		p.queue = append(p.queue, Event{Kind: EventExpose, Window: w})
	}
}

// PollEvents drains the queue, handles each event and returns them.
// Resize events become pending window resizes. Expose events present the
// window surface and queue an EventPresentComplete for the next poll.
// Close events remove the window.
func (p *Platform) PollEvents() []Event {
	p.mu.Lock()
	events := p.queue
	p.queue = nil
	p.mu.Unlock()

	for _, ev := range events {
		if ev.Window == nil {
			continue
		}
		switch ev.Kind {
		case EventResize:
			ev.Window.RequestResize(ev.Width, ev.Height)
		case EventExpose:
			if err := p.presenter.Present(ev.Window, ev.Window.Image()); err != nil {
				p.logger.Warn("platform: present failed", "window", ev.Window.id, "err", err)
				continue
			}
			ev.Window.presented.Add(1)
			p.Post(Event{Kind: EventPresentComplete, Window: ev.Window})
		case EventClose:
			p.remove(ev.Window)
		}
	}
	return events
}

func (p *Platform) remove(w *Window) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.windows = slices.DeleteFunc(p.windows, func(x *Window) bool { return x == w })
}

// Close drops all windows and pending events.
func (p *Platform) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.windows = nil
	p.queue = nil
	return nil
}
