package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"helix/quarkgl"
)

func helixPoints(n int) []quarkgl.Vec3 {
	pts := make([]quarkgl.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n) * math.Pi * 3.2
		z := float64(i)/float64(n)*40 - 20
		pts = append(pts, quarkgl.V3f(6*math.Cos(t), 6*math.Sin(t), z))
	}
	return pts
}

func rect(w, t quarkgl.Scalar) []quarkgl.Vec2 {
	return []quarkgl.Vec2{
		quarkgl.V2(-w/2, 0),
		quarkgl.V2(w/2, 0),
		quarkgl.V2(w/2, t),
		quarkgl.V2(-w/2, t),
		quarkgl.V2(-w/2, 0),
	}
}

func requireNear(t *testing.T, want, got quarkgl.Vec3, eps float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps)
	require.InDelta(t, want.Y, got.Y, eps)
	require.InDelta(t, want.Z, got.Z, eps)
}

func TestCylinderShape(t *testing.T) {
	m, err := Cylinder(0.8, 6, 12)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 26)
	require.Equal(t, 48, m.Triangles())

	for _, v := range m.Vertices {
		r := math.Hypot(float64(v.Pos.X), float64(v.Pos.Z))
		require.LessOrEqual(t, r, 0.8+1e-5)
		require.InDelta(t, 3, math.Abs(float64(v.Pos.Y)), 1e-6)
	}
	for _, i := range m.Indices {
		require.Less(t, int(i), len(m.Vertices))
	}
}

func TestCylinderMinimumEdges(t *testing.T) {
	m, err := Cylinder(1, 1, 1)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 8)
}

func TestCylinderIndexLimit(t *testing.T) {
	// 2*32766+2 = 65534 vertices: the cap centres are the last two indices.
	m, err := Cylinder(1, 1, 32766)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 65534)
	var top uint16
	for _, i := range m.Indices {
		top = max(top, i)
	}
	require.Equal(t, uint16(65533), top)

	_, err = Cylinder(0.8, 6, 40000)
	require.ErrorIs(t, err, ErrMeshTooLarge)
	_, err = Cylinder(0.8, 6, 32767)
	require.ErrorIs(t, err, ErrMeshTooLarge)
}

func TestSegmentTransform(t *testing.T) {
	pos := quarkgl.V3(3, 0, -20)
	m := SegmentTransform(pos, math.Pi/2)

	requireNear(t, pos, quarkgl.Mat4MulPoint(m, quarkgl.Vec3{}), 1e-6)
	// The cylinder axis (+Y) turns to -X.
	requireNear(t, quarkgl.V3(2, 0, -20), quarkgl.Mat4MulPoint(m, quarkgl.V3(0, 1, 0)), 1e-5)
}

func TestCatmullRomInterpolatesControlPoints(t *testing.T) {
	pts := helixPoints(20)
	for _, typ := range []CurveType{Centripetal, Chordal, Uniform} {
		c := &CatmullRom{Points: pts, Type: typ}
		for i, p := range pts {
			got := c.Point(float64(i) / float64(len(pts)-1))
			requireNear(t, p, got, 1e-3)
		}
	}
}

func TestCatmullRomStraightLine(t *testing.T) {
	pts := []quarkgl.Vec3{quarkgl.V3(0, 0, 0), quarkgl.V3(0, 0, 1), quarkgl.V3(0, 0, 2), quarkgl.V3(0, 0, 4)}
	c := NewCatmullRom(pts)
	require.InDelta(t, 4, c.Length(), 1e-3)

	spaced := c.SpacedPoints(8)
	require.Len(t, spaced, 9)
	for i, p := range spaced {
		require.InDelta(t, 0, p.X, 1e-6)
		require.InDelta(t, 0, p.Y, 1e-6)
		require.InDelta(t, float64(i)*0.5, p.Z, 2e-2)
	}
}

func TestCatmullRomDegenerate(t *testing.T) {
	require.Equal(t, quarkgl.Vec3{}, (&CatmullRom{}).Point(0.5))
	one := NewCatmullRom([]quarkgl.Vec3{quarkgl.V3(1, 2, 3)})
	require.Equal(t, quarkgl.V3(1, 2, 3), one.Point(0.7))
}

func TestFramesOrthonormal(t *testing.T) {
	c := NewCatmullRom(helixPoints(64))
	f := ComputeFrames(c, 100)
	require.Len(t, f.Tangents, 101)

	for i := range f.Tangents {
		tg, n, b := f.Tangents[i], f.Normals[i], f.Binormals[i]
		require.InDelta(t, 1, quarkgl.Len(tg), 1e-3)
		require.InDelta(t, 1, quarkgl.Len(n), 1e-3)
		require.InDelta(t, 1, quarkgl.Len(b), 1e-3)
		require.InDelta(t, 0, quarkgl.Dot(tg, n), 1e-3)
		require.InDelta(t, 0, quarkgl.Dot(tg, b), 1e-3)
		require.InDelta(t, 0, quarkgl.Dot(n, b), 1e-3)
	}
}

func TestExtrudeCounts(t *testing.T) {
	pts := []quarkgl.Vec3{quarkgl.V3(0, 0, 0), quarkgl.V3(1, 0, 1), quarkgl.V3(2, 1, 2)}
	m, err := ExtrudePath(rect(2, 0.1), pts, 10)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 11*4)
	require.Len(t, m.Indices, 10*4*6+2*2*3)
	for _, i := range m.Indices {
		require.Less(t, int(i), len(m.Vertices))
	}
}

func TestExtrudeRingsFollowPath(t *testing.T) {
	c := NewCatmullRom(helixPoints(120))
	const thick = 0.1
	m, err := Extrude(rect(2, thick), c, 60)
	require.NoError(t, err)

	for s := 0; s <= 60; s++ {
		var sum quarkgl.Vec3
		for j := 0; j < 4; j++ {
			sum = sum.Add(m.Vertices[s*4+j].Pos)
		}
		centroid := sum.Mul(0.25)
		at := c.PointAt(float64(s) / 60)
		require.InDelta(t, thick/2, quarkgl.Dist(centroid, at), 1e-3, "ring %d", s)
	}
}

func TestExtrudePathErrors(t *testing.T) {
	_, err := ExtrudePath(rect(1, 1), []quarkgl.Vec3{quarkgl.V3(0, 0, 0)}, 10)
	require.ErrorIs(t, err, ErrDegeneratePath)

	two := []quarkgl.Vec3{quarkgl.V3(0, 0, 0), quarkgl.V3(0, 0, 1)}
	_, err = ExtrudePath([]quarkgl.Vec2{quarkgl.V2(0, 0), quarkgl.V2(1, 0)}, two, 10)
	require.ErrorIs(t, err, ErrDegeneratePath)

	_, err = ExtrudePath(rect(1, 1), two, 0)
	require.ErrorIs(t, err, ErrDegeneratePath)

	_, err = ExtrudePath(rect(1, 1), two, 20000)
	require.ErrorIs(t, err, ErrMeshTooLarge)
}

func TestTangentAlongLine(t *testing.T) {
	c := NewCatmullRom([]quarkgl.Vec3{quarkgl.V3(0, 0, 0), quarkgl.V3(2, 0, 0), quarkgl.V3(4, 0, 0)})
	for _, u := range []float64{0, 0.3, 1} {
		requireNear(t, quarkgl.V3(1, 0, 0), Tangent(c, u), 1e-4)
		requireNear(t, quarkgl.V3(1, 0, 0), c.TangentAt(u), 1e-4)
	}
}
