// Command helixshot renders turntable frames of the helix to PNG files.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"helix/app"
	"helix/internal/config"
	"helix/quarkgl"
)

type options struct {
	out     string
	frames  int
	w, h    int
	ss      int
	jobs    int
	workers int
	verbose bool
}

func main() {
	var (
		opt    options
		preset = flag.String("preset", "classic", "Helix preset: classic|simple.")
		file   = flag.String("config", "", "JSON settings file (overrides -preset).")
		seed   = flag.Int64("seed", 1, "Random seed for kinks and colours.")
	)
	flag.StringVar(&opt.out, "out", "", "Output directory.")
	flag.IntVar(&opt.frames, "frames", 1, "Frames in one full turn.")
	flag.IntVar(&opt.w, "w", 640, "Image width.")
	flag.IntVar(&opt.h, "h", 480, "Image height.")
	flag.IntVar(&opt.ss, "ss", 2, "Supersampling factor.")
	flag.IntVar(&opt.jobs, "j", runtime.NumCPU(), "Frames rendered in parallel.")
	flag.IntVar(&opt.workers, "workers", 1, "Raster bands per frame.")
	flag.BoolVar(&opt.verbose, "v", true, "Print one line per written file.")
	flag.Parse()

	if opt.out == "" {
		fatalf("usage: helixshot -out dir [-frames N] [-w 640] [-h 480] [-ss 2] [-preset classic|simple] [-config file.json] [-seed N] [-j N]")
	}

	var (
		settings config.Settings
		err      error
	)
	if *file != "" {
		settings, err = config.Load(*file)
	} else {
		settings, err = config.ForPreset(*preset)
	}
	if err != nil {
		fatalf("settings: %v", err)
	}

	sc, err := app.NewScene(settings, *seed)
	if err != nil {
		fatalf("scene: %v", err)
	}
	if err := os.MkdirAll(opt.out, 0o755); err != nil {
		fatalf("mkdir: %v", err)
	}

	total, err := renderFrames(context.Background(), sc, opt)
	if err != nil {
		fatalf("render: %v", err)
	}
	fmt.Printf("wrote %d frames (%s) to %s\n", opt.frames, humanize.Bytes(total), opt.out)
}

// renderFrames writes opt.frames images evenly spaced around one orbit and
// returns the number of bytes written.
func renderFrames(ctx context.Context, sc *app.Scene, opt options) (uint64, error) {
	if opt.frames < 1 || opt.w < 1 || opt.h < 1 {
		return 0, fmt.Errorf("bad size: %d frames of %dx%d", opt.frames, opt.w, opt.h)
	}
	if opt.ss < 1 {
		opt.ss = 1
	}
	if opt.jobs < 1 {
		opt.jobs = 1
	}

	var written atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.jobs)
	for i := 0; i < opt.frames; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			yaw := 2 * math.Pi * float64(i) / float64(opt.frames)
			img := renderFrame(sc, sc.CameraAt(yaw), opt)
			path := filepath.Join(opt.out, fmt.Sprintf("frame%04d.png", i))
			n, err := writePNG(path, img)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			if opt.verbose {
				fmt.Printf("%s %s\n", path, humanize.Bytes(n))
			}
			written.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return written.Load(), nil
}

// renderFrame draws one supersampled frame and scales it to the output size.
func renderFrame(sc *app.Scene, cam quarkgl.Camera, opt options) *image.RGBA {
	bw, bh := opt.w*opt.ss, opt.h*opt.ss
	big := image.NewRGBA(image.Rect(0, 0, bw, bh))
	r := app.NewRenderer(sc, bw, bh)
	r.SetWorkers(opt.workers)
	r.RenderCamera(quarkgl.NewImageTarget(big), sc.World, cam)
	if opt.ss == 1 {
		return big
	}
	dst := image.NewRGBA(image.Rect(0, 0, opt.w, opt.h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) (uint64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return uint64(buf.Len()), nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
