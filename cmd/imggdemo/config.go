package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/imgg"
)

// Config is the demo configuration file.
//
//	font = "~/fonts/DejaVuSans.ttf"
//	font_size = 18
//	width = 1280
//	height = 720
//	clear = [0.1, 0.1, 0.12, 1.0]
type Config struct {
	Font         string     `toml:"font"`
	FontSize     float64    `toml:"font_size"`
	Width        int        `toml:"width"`
	Height       int        `toml:"height"`
	Clear        [4]float32 `toml:"clear"`
	Threads      int        `toml:"threads"`
	Image        string     `toml:"image"`
	Output       string     `toml:"output"`
	OutlineDebug bool       `toml:"outline_debug"`
}

func defaultConfig() Config {
	c := imgg.DefaultClearColor
	return Config{
		FontSize: 24,
		Width:    800,
		Height:   600,
		Clear:    [4]float32{c.R, c.G, c.B, c.A},
		Output:   "imggdemo.png",
	}
}

// ClearColor returns the configured background.
func (c Config) ClearColor() imgg.ClearColor {
	return imgg.ClearColor{R: c.Clear[0], G: c.Clear[1], B: c.Clear[2], A: c.Clear[3]}
}

// loadConfig reads path over the defaults. A missing file yields the
// defaults. Paths inside the file may start with ~.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	for _, p := range []*string{&cfg.Font, &cfg.Image, &cfg.Output} {
		if *p, err = homedir.Expand(*p); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// watchConfig reloads path whenever it is written and sends the result.
// The watcher runs until stop is called.
func watchConfig(path string, log *slog.Logger) (updates <-chan Config, stop func(), err error) {
	path, err = homedir.Expand(path)
	if err != nil {
		return nil, nil, err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	// Watch the directory: editors often replace the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, err
	}

	out := make(chan Config, 1)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := loadConfig(path)
				if err != nil {
					log.Warn("config reload failed", "path", path, "err", err)
					continue
				}
				log.Info("config reloaded", "path", path)
				select {
				case out <- cfg:
				default:
					// Replace an update the frame loop has not taken yet.
					select {
					case <-out:
					default:
					}
					out <- cfg
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, func() {
		close(done)
		w.Close()
	}, nil
}
