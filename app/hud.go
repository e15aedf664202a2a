package app

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"helix/hal"
)

var (
	hudFont  = &proggy.TinySZ8pt7b
	hudTitle = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim   = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

var _ drivers.Displayer = (*fbDisplayer)(nil)

const hudLineHeight = 10

func (v *viewer) drawHUD() {
	st := v.scene.Stats()
	o := v.scene.Orbit
	v.drawText(6, 4, fmt.Sprintf("helix %s  %s tris  %.0f fps", v.scene.Settings.Preset,
		humanize.Comma(int64(st.Triangles)), v.h.Time().FPS()), hudTitle)
	v.drawText(6, 4+hudLineHeight, fmt.Sprintf("r=%.1f yaw=%.2f pitch=%.2f %s",
		o.Radius, o.Yaw, o.Pitch, v.r.Mode), hudDim)
	v.drawText(6, v.target.H-hudLineHeight-2,
		"drag orbit  shift-drag pan  wheel zoom  w wire  r ribbons  p proj  a spin  h hud  q quit", hudDim)
}

func (v *viewer) drawText(x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: v.fb}
	tinyfont.WriteLine(d, hudFont, int16(x), int16(y+hudLineHeight), s, c)
}

type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGBA8888 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplayer) Display() error { return nil }
