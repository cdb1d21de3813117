package imgg

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/imgg/atlas"
	"github.com/gogpu/imgg/platform"
)

// Option configures a Context during Initialize.
//
// Example:
//
//	ctx, err := imgg.Initialize(path, imgg.DefaultClearColor,
//	    imgg.WithFontSize(18),
//	    imgg.WithThreadCount(2))
type Option func(*options)

type options struct {
	fontSize     float64
	ranges       []atlas.Range
	surface      *platform.Image
	threads      int
	outlineColor uint32
	outlineWidth float64
	logger       *slog.Logger
	presenter    platform.Presenter
}

func defaultOptions() options {
	return options{
		fontSize: atlas.DefaultSize,
		ranges:   atlas.DefaultRanges,
		threads:  runtime.GOMAXPROCS(0),
	}
}

// WithFontSize sets the font pixel size used for the atlas and for text.
// Non-positive sizes are ignored.
func WithFontSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.fontSize = px
		}
	}
}

// WithGlyphRanges sets the character ranges baked into the font atlas.
func WithGlyphRanges(ranges ...atlas.Range) Option {
	return func(o *options) {
		if len(ranges) > 0 {
			o.ranges = ranges
		}
	}
}

// WithSurface sets a shared surface to render into when no window exists.
func WithSurface(img *platform.Image) Option {
	return func(o *options) {
		o.surface = img
	}
}

// WithThreadCount limits the number of present workers. Values below one
// are ignored.
func WithThreadCount(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.threads = n
		}
	}
}

// WithOutlineDebug strokes every reconstructed outline with col (toolkit
// packed 0xAABBGGRR) at the given width. A zero color disables it.
func WithOutlineDebug(col uint32, width float64) Option {
	return func(o *options) {
		o.outlineColor = col
		o.outlineWidth = width
	}
}

// WithLogger sets a logger for this Context only. Without it the package
// logger from SetLogger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPresenter sets how window surfaces are shown once a frame is
// presented.
func WithPresenter(p platform.Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}
