package quarkgl

import "golang.org/x/sync/errgroup"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations. A Renderer is not safe
// for concurrent use; give each goroutine its own.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	CullBack   bool
	ClearColor Color

	workers  int
	depthBuf []float32
	tris     []screenTri
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
		workers:    1,
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

// SetWorkers sets how many horizontal bands are rasterized concurrently.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target using the scene camera.
func (r *Renderer) Render(t Target, s *Scene) {
	if s == nil {
		return
	}
	r.RenderCamera(t, s, s.Camera)
}

// RenderCamera renders a scene as seen from cam. The scene is only read.
func (r *Renderer) RenderCamera(t Target, s *Scene, cam Camera) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(1)
	if h != 0 {
		aspect = Scalar(w) / Scalar(h)
	}
	view := cam.View()
	proj := cam.Projection(aspect)
	root := s.Root
	if root == (Mat4{}) {
		root = Mat4Identity()
	}

	r.tris = r.tris[:0]
	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.transformMesh(w, h, proj, view, root, cam.Position, *m, s.Light)
	})

	r.rasterize(t, w, h)
}

// screenTri is a projected triangle ready for rasterization.
type screenTri struct {
	x, y [3]int
	z    [3]float32
	flat Color
}

func (r *Renderer) transformMesh(w, h int, proj, view, root Mat4, eye Vec3, m Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}

	model := Mat4Mul(root, m.Transform)
	mvp := Mat4Mul(proj, Mat4Mul(view, model))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0 := Mat4MulV4(mvp, Vec4{X: v0.Pos.X, Y: v0.Pos.Y, Z: v0.Pos.Z, W: 1})
		p1 := Mat4MulV4(mvp, Vec4{X: v1.Pos.X, Y: v1.Pos.Y, Z: v1.Pos.Z, W: 1})
		p2 := Mat4MulV4(mvp, Vec4{X: v2.Pos.X, Y: v2.Pos.Y, Z: v2.Pos.Z, W: 1})

		// Trivial clip: drop triangles touching the camera plane or beyond near/far.
		ndc0, ok0 := clipToNDC(p0)
		ndc1, ok1 := clipToNDC(p1)
		ndc2, ok2 := clipToNDC(p2)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		area := edgeFn(x0, y0, x1, y1, x2, y2)
		if area == 0 && r.Mode != RenderWireframe {
			continue
		}
		if area < 0 && r.CullBack && !m.Material.DoubleSided {
			continue
		}

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			w0 := Mat4MulPoint(model, v0.Pos)
			w1 := Mat4MulPoint(model, v1.Pos)
			w2 := Mat4MulPoint(model, v2.Pos)
			n := triangleNormal(w0, w1, w2)
			// Light the side facing the viewer.
			if Dot(n, eye.Sub(w0)) < 0 {
				n = n.Mul(-1)
			}
			base = base.MulScalar(lightIntensity(light, n))
		}

		tri := screenTri{
			x:    [3]int{x0, x1, x2},
			y:    [3]int{y0, y1, y2},
			z:    [3]float32{ndc0.Z, ndc1.Z, ndc2.Z},
			flat: base,
		}
		if area < 0 {
			tri.x[1], tri.x[2] = tri.x[2], tri.x[1]
			tri.y[1], tri.y[2] = tri.y[2], tri.y[1]
			tri.z[1], tri.z[2] = tri.z[2], tri.z[1]
		}
		r.tris = append(r.tris, tri)
	}
}

func (r *Renderer) rasterize(t Target, w, h int) {
	n := r.workers
	if n > h {
		n = h
	}
	if n <= 1 {
		r.rasterBand(t, w, h, 0, h)
		return
	}

	band := (h + n - 1) / n
	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += band {
		y0 := y0
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		g.Go(func() error {
			r.rasterBand(t, w, h, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) rasterBand(t Target, w, h, y0, y1 int) {
	for i := range r.tris {
		tri := &r.tris[i]
		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, tri.x[0], tri.y[0], tri.x[1], tri.y[1], y0, y1, tri.flat)
			r.drawLine(t, tri.x[1], tri.y[1], tri.x[2], tri.y[2], y0, y1, tri.flat)
			r.drawLine(t, tri.x[2], tri.y[2], tri.x[0], tri.y[0], y0, y1, tri.flat)
		default:
			r.fillTriangle(t, w, y0, y1, tri)
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / p.W
	n := ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}
	if n.Z < -1 || n.Z > 1 {
		return ndcPoint{}, false
	}
	return n, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := (z*0.5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// drawLine rasterizes a line, emitting only pixels with y in [y0, y1).
func (r *Renderer) drawLine(t Target, xa, ya, xb, yb, y0, y1 int, c Color) {
	if (ya < y0 && yb < y0) || (ya >= y1 && yb >= y1) {
		return
	}
	dx := absInt(xb - xa)
	sx := -1
	if xa < xb {
		sx = 1
	}
	dy := -absInt(yb - ya)
	sy := -1
	if ya < yb {
		sy = 1
	}
	err := dx + dy
	for {
		if ya >= y0 && ya < y1 {
			t.SetPixel(xa, ya, c)
		}
		if xa == xb && ya == yb {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			xa += sx
		}
		if e2 <= dx {
			err += dx
			ya += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, bandY0, bandY1 int, tri *screenTri) {
	x0, y0, x1, y1, x2, y2 := tri.x[0], tri.y[0], tri.x[1], tri.y[1], tri.x[2], tri.y[2]
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < bandY0 {
		minY = bandY0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= bandY1 {
		maxY = bandY1 - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*tri.z[0] + a1*tri.z[1] + a2*tri.z[2]
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, tri.flat)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
