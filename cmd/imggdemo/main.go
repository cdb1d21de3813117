// Command imggdemo renders a small immediate-mode UI through imgg into a
// headless window and saves the window surface as PNG.
//
// Settings come from a TOML file that is reloaded while the demo runs;
// editing the clear color or the size takes effect on the next frame.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"

	"github.com/gogpu/imgg"
	"github.com/gogpu/imgg/imdraw"
	"github.com/gogpu/imgg/platform"
)

func main() {
	var (
		configPath = flag.String("config", "~/.config/imggdemo.toml", "configuration file")
		fontPath   = flag.String("font", "", "TrueType font (overrides config)")
		frames     = flag.Int("frames", 120, "frames to render, 0 runs until interrupted")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	imgg.SetLogger(log)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	if *fontPath != "" {
		cfg.Font = *fontPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, *configPath, *frames, log); err != nil {
		log.Error("imggdemo", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, configPath string, frames int, log *slog.Logger) error {
	snap := &snapshotter{path: cfg.Output, every: time.Second, log: log}
	opts := []imgg.Option{
		imgg.WithFontSize(cfg.FontSize),
		imgg.WithThreadCount(cfg.Threads),
		imgg.WithPresenter(snap),
	}
	if cfg.OutlineDebug {
		opts = append(opts, imgg.WithOutlineDebug(imdraw.RGBA(255, 0, 255, 255), 1))
	}

	r, err := imgg.Initialize(cfg.Font, cfg.ClearColor(), opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	win, err := r.CreateWindow(cfg.Width, cfg.Height, 24)
	if err != nil {
		return err
	}

	var image imdraw.TextureID
	if cfg.Image != "" {
		tex := r.AddTexture()
		if err := tex.LoadFit(cfg.Image, 256, 256); err != nil {
			log.Warn("image not loaded", "err", err)
		} else {
			image = tex.ID()
		}
	}

	updates, stopWatch, err := watchConfig(configPath, log)
	if err != nil {
		log.Warn("config not watched", "err", err)
	} else {
		defer stopWatch()
	}

	ui := newPanel(r.FontAtlas(), image)
	clear := imgg.NoColor
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for frame := 0; frames == 0 || frame < frames; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		select {
		case next := <-updates:
			clear = next.ClearColor()
			r.Platform().Post(platform.Event{
				Kind:   platform.EventResize,
				Window: win,
				Width:  next.Width,
				Height: next.Height,
			})
		default:
		}

		if !r.BeginFrame() {
			continue
		}
		w, h := win.Size()
		var flags imgg.FlushFlags
		if frame == frames-1 {
			flags |= imgg.FlushSync
			snap.force.Store(true)
		}
		if !r.RenderFrame(ui.build(w, h, frame), clear, flags) {
			continue
		}
		clear = imgg.NoColor

		for _, ev := range r.PollEvents() {
			log.Debug("event", "kind", ev.Kind, "window", ev.Window.ID())
		}
		if frame%60 == 0 {
			st := r.Stats()
			log.Info("frame", "n", frame, "shapes", st.Shapes, "glyphs", st.Glyphs, "dropped", st.Dropped)
		}
	}
	return nil
}

// snapshotter presents window surfaces by writing them to a PNG file, at
// most once per interval unless forced.
type snapshotter struct {
	path  string
	every time.Duration
	log   *slog.Logger

	last  time.Time
	force atomic.Bool
}

func (s *snapshotter) Present(w *platform.Window, img *platform.Image) error {
	if s.path == "" {
		return nil
	}
	if !s.force.Swap(false) && time.Since(s.last) < s.every {
		return nil
	}
	s.last = time.Now()
	if err := imaging.Save(img.NRGBA(), s.path); err != nil {
		return err
	}
	s.log.Debug("snapshot saved", "path", s.path, "window", w.ID())
	return nil
}
