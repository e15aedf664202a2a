package quarkgl

import (
	"bytes"
	"image"
	"testing"
)

func quadScene() *Scene {
	s := CreateScene(2)
	s.Camera.Position = V3(0, 0, 3)
	s.AddMesh(Mesh{
		Vertices: []Vertex{
			{Pos: V3(-1, -1, 0)},
			{Pos: V3(1, -1, 0)},
			{Pos: V3(1, 1, 0)},
			{Pos: V3(-1, 1, 0)},
		},
		Indices:  []uint16{0, 1, 2, 0, 2, 3},
		Material: Material{BaseColor: RGB(0xAA, 0xCC, 0x88)},
	})
	return s
}

func renderTo(r *Renderer, s *Scene, w, h int) *RGBATarget {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	t := NewImageTarget(img)
	r.Render(t, s)
	return t
}

func TestRenderCoversCenter(t *testing.T) {
	r := NewRenderer(64, 48, true)
	r.ClearColor = Hex(0x225566)
	tgt := renderTo(r, quadScene(), 64, 48)

	if got := tgt.At(32, 24); got == r.ClearColor {
		t.Fatalf("center pixel left at clear color")
	}
	if got := tgt.At(0, 0); got != r.ClearColor {
		t.Fatalf("corner pixel = %+v, want clear", got)
	}
}

func TestRenderBandsMatchSingleWorker(t *testing.T) {
	s := quadScene()
	s.Root = Mat4EulerXYZ(0.4, 0.3, 0.2)
	for _, mode := range []RenderMode{RenderSolidFlat, RenderWireframe} {
		one := NewRenderer(80, 61, true)
		one.Mode = mode
		many := NewRenderer(80, 61, true)
		many.Mode = mode
		many.SetWorkers(4)

		a := renderTo(one, s, 80, 61)
		b := renderTo(many, s, 80, 61)
		if !bytes.Equal(a.Buf, b.Buf) {
			t.Fatalf("%s: banded output differs from single worker", mode)
		}
	}
}

func TestRenderCullBack(t *testing.T) {
	s := quadScene()
	s.Camera.Position = V3(0, 0, -3)

	r := NewRenderer(32, 32, true)
	r.CullBack = true
	if got := renderTo(r, s, 32, 32).At(16, 16); got != r.ClearColor {
		t.Fatalf("back face drawn: %+v", got)
	}

	s.meshes[0].Material.DoubleSided = true
	if got := renderTo(r, s, 32, 32).At(16, 16); got == r.ClearColor {
		t.Fatalf("double-sided back face culled")
	}
}

func TestRenderDropsGeometryBehindCamera(t *testing.T) {
	s := quadScene()
	s.Camera.Target = V3(0, 0, 10)

	r := NewRenderer(16, 16, true)
	tgt := renderTo(r, s, 16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if tgt.At(x, y) != r.ClearColor {
				t.Fatalf("pixel (%d,%d) drawn for geometry behind camera", x, y)
			}
		}
	}
}

func TestSceneStatsAndCapacity(t *testing.T) {
	s := quadScene()
	st := s.Stats()
	if st.Meshes != 1 || st.Vertices != 4 || st.Triangles != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if id := s.AddMesh(Mesh{}); id != 1 {
		t.Fatalf("second mesh id = %d", id)
	}
	if id := s.AddMesh(Mesh{}); id != -1 {
		t.Fatalf("full scene returned id %d", id)
	}
	s.SetMeshEnabled(1, false)
	if m, ok := s.Mesh(1); !ok || m.Enabled {
		t.Fatalf("mesh 1 = %+v, %v; want present and disabled", m, ok)
	}
}

func TestRenderSkipsDisabledMesh(t *testing.T) {
	s := quadScene()
	s.SetMeshEnabled(0, false)
	r := NewRenderer(16, 16, true)
	if got := renderTo(r, s, 16, 16).At(8, 8); got != r.ClearColor {
		t.Fatalf("disabled mesh drawn: %+v", got)
	}
}

func TestRenderOrtho(t *testing.T) {
	s := quadScene()
	s.Camera.Type = CameraOrtho
	s.Camera.OrthoSize = 2

	r := NewRenderer(40, 40, true)
	tgt := renderTo(r, s, 40, 40)
	// The unit quad spans half the view height, centred.
	if got := tgt.At(20, 20); got == r.ClearColor {
		t.Fatalf("center pixel left at clear color")
	}
	if got := tgt.At(20, 5); got != r.ClearColor {
		t.Fatalf("pixel outside the quad drawn: %+v", got)
	}
	if got := tgt.At(20, 14); got == r.ClearColor {
		t.Fatalf("pixel inside the quad left clear")
	}
}
