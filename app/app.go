package app

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"helix/hal"
	"helix/helix"
	"helix/internal/buildinfo"
	"helix/internal/config"
	"helix/quarkgl"
)

// Config selects what the viewer shows.
type Config struct {
	Settings config.Settings
	Seed     int64

	// Workers overrides Settings.Workers when positive.
	Workers int
}

type viewer struct {
	h   hal.HAL
	fb  hal.Framebuffer
	log hal.Logger

	scene  *Scene
	r      *quarkgl.Renderer
	target *quarkgl.RGBATarget

	hud        bool
	autoRotate quarkgl.Scalar

	ptr  hal.PointerState
	drag bool
}

// New builds the helix scene for the host's framebuffer and returns the
// per-frame step function. The step returns ErrQuit when the user exits.
func New(h hal.HAL, cfg Config) (func() error, error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	v.logf("helix %s: preset=%s %s", buildinfo.Short(), cfg.Settings.Preset, summary(v.scene))
	v.logf("helix: %dx%d workers=%d mode=%s", v.target.W, v.target.H, v.r.Workers(), v.r.Mode)
	return v.step, nil
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if h == nil || h.Display() == nil {
		return nil, fmt.Errorf("app: no display: %w", hal.ErrNotImplemented)
	}
	fb := h.Display().Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}
	w, ht := fb.Width(), fb.Height()
	if w <= 0 || ht <= 0 {
		return nil, fmt.Errorf("app: empty framebuffer %dx%d", w, ht)
	}

	sc, err := NewScene(cfg.Settings, cfg.Seed)
	if err != nil {
		return nil, err
	}

	r := NewRenderer(sc, w, ht)
	if cfg.Workers > 0 {
		r.SetWorkers(cfg.Workers)
	}

	return &viewer{
		h:          h,
		fb:         fb,
		log:        h.Logger(),
		scene:      sc,
		r:          r,
		target:     &quarkgl.RGBATarget{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: w, H: ht},
		hud:        true,
		autoRotate: sc.Orbit.AutoRotate,
	}, nil
}

// NewRenderer returns a depth-tested renderer configured for sc.
func NewRenderer(sc *Scene, w, h int) *quarkgl.Renderer {
	r := quarkgl.NewRenderer(w, h, true)
	r.ClearColor = sc.Colors.Background
	r.CullBack = true
	r.SetWorkers(sc.Settings.Workers)
	return r
}

func summary(sc *Scene) string {
	st := sc.Stats()
	a, b := helix.Strands(sc.Placements)
	return fmt.Sprintf("segments=%d+%d meshes=%d vertices=%s triangles=%s",
		len(a), len(b), st.Meshes, humanize.Comma(int64(st.Vertices)), humanize.Comma(int64(st.Triangles)))
}

func (v *viewer) step() error {
	if err := v.handleInput(); err != nil {
		if errors.Is(err, ErrQuit) {
			v.logf("helix: quit after %s frames", humanize.Comma(int64(v.h.Time().Ticks())))
		}
		return err
	}
	v.scene.Tick()
	v.render()
	return v.fb.Present()
}

func (v *viewer) render() {
	v.r.Render(v.target, v.scene.World)
	if v.hud {
		v.drawHUD()
	}
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}
