package geometry

import (
	"math"

	"helix/quarkgl"
)

// Path is a curve that can be sampled by arc length.
type Path interface {
	Curve
	PointAt(u float64) quarkgl.Vec3
	TangentAt(u float64) quarkgl.Vec3
}

// Frames holds an orthonormal frame per sample along a path.
type Frames struct {
	Tangents  []quarkgl.Vec3
	Normals   []quarkgl.Vec3
	Binormals []quarkgl.Vec3
}

// ComputeFrames returns segments+1 frames evenly spaced by arc length.
//
// The first normal is perpendicular to the tangent and to the world axis the
// tangent leans on least; later normals are parallel-transported, rotating
// by the angle between consecutive tangents, so the frame never flips at
// inflection points.
func ComputeFrames(p Path, segments int) Frames {
	if segments < 1 {
		segments = 1
	}
	n := segments + 1
	f := Frames{
		Tangents:  make([]quarkgl.Vec3, n),
		Normals:   make([]quarkgl.Vec3, n),
		Binormals: make([]quarkgl.Vec3, n),
	}
	for i := 0; i < n; i++ {
		f.Tangents[i] = quarkgl.Normalize(p.TangentAt(float64(i) / float64(segments)))
	}

	t0 := f.Tangents[0]
	ax, ay, az := absF(t0.X), absF(t0.Y), absF(t0.Z)
	axis := quarkgl.V3(1, 0, 0)
	least := ax
	if ay <= least {
		least = ay
		axis = quarkgl.V3(0, 1, 0)
	}
	if az <= least {
		axis = quarkgl.V3(0, 0, 1)
	}
	side := quarkgl.Normalize(quarkgl.Cross(t0, axis))
	f.Normals[0] = quarkgl.Cross(t0, side)
	f.Binormals[0] = quarkgl.Cross(t0, f.Normals[0])

	for i := 1; i < n; i++ {
		normal := f.Normals[i-1]
		prev, cur := f.Tangents[i-1], f.Tangents[i]
		v := quarkgl.Cross(prev, cur)
		if quarkgl.Len(v) > 1e-6 {
			v = quarkgl.Normalize(v)
			d := quarkgl.Dot(prev, cur)
			if d > 1 {
				d = 1
			}
			if d < -1 {
				d = -1
			}
			theta := quarkgl.Scalar(math.Acos(float64(d)))
			normal = quarkgl.Normalize(quarkgl.RotateAxis(normal, v, theta))
		}
		f.Normals[i] = normal
		f.Binormals[i] = quarkgl.Cross(cur, normal)
	}
	return f
}

func absF(v quarkgl.Scalar) quarkgl.Scalar {
	if v < 0 {
		return -v
	}
	return v
}
