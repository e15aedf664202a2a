package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"helix/app"
	"helix/hal"
	"helix/internal/config"
)

func main() {
	var (
		cfg    hal.HeadlessConfig
		win    hal.WindowConfig
		preset = flag.String("preset", "classic", "Helix preset: classic|simple.")
		file   = flag.String("config", "", "JSON settings file (overrides -preset).")
		seed   = flag.Int64("seed", 0, "Random seed for kinks and colours (0 = time based).")
		work   = flag.Int("workers", 0, "Raster bands rendered in parallel (0 = from settings).")
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&win.Host.Width, "w", 640, "Framebuffer width.")
	flag.IntVar(&win.Host.Height, "h", 480, "Framebuffer height.")
	flag.IntVar(&win.Scale, "scale", 1, "Window pixels per framebuffer pixel.")
	flag.Parse()

	settings, err := loadSettings(*preset, *file)
	if err != nil {
		fatalf("settings: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, app.Config{Settings: settings, Seed: *seed, Workers: *work})
	}

	if cfg.Enabled {
		cfg.Host = win.Host
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		win.Title = "helix " + settings.Preset
		err = hal.RunWindow(win, newApp)
	}
	if err != nil && !errors.Is(err, app.ErrQuit) && !errors.Is(err, context.Canceled) {
		fatalf("%v", err)
	}
}

func loadSettings(preset, file string) (config.Settings, error) {
	if file != "" {
		return config.Load(file)
	}
	return config.ForPreset(preset)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
