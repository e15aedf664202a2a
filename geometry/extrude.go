package geometry

import (
	"fmt"

	"helix/quarkgl"
)

// Extrude sweeps a closed planar shape along p, producing steps+1 rings of
// the shape joined by side walls and closed with end caps.
//
// Shape coordinate (x, y) lands at P + N·x + B·y, where P, N, B are the
// path point, normal and binormal of the ring. A trailing point equal to the
// first is ignored. Caps are fan-triangulated, so shapes must be convex.
func Extrude(shape []quarkgl.Vec2, p Path, steps int) (quarkgl.Mesh, error) {
	if len(shape) > 1 && shape[len(shape)-1] == shape[0] {
		shape = shape[:len(shape)-1]
	}
	if len(shape) < 3 {
		return quarkgl.Mesh{}, fmt.Errorf("%w: shape needs 3 distinct points, got %d", ErrDegeneratePath, len(shape))
	}
	if steps < 1 {
		return quarkgl.Mesh{}, fmt.Errorf("%w: steps must be >= 1, got %d", ErrDegeneratePath, steps)
	}

	ring := len(shape)
	nVerts := (steps + 1) * ring
	if nVerts > maxVertices {
		return quarkgl.Mesh{}, fmt.Errorf("%w: %d", ErrMeshTooLarge, nVerts)
	}

	frames := ComputeFrames(p, steps)

	verts := make([]quarkgl.Vertex, 0, nVerts)
	for s := 0; s <= steps; s++ {
		at := p.PointAt(float64(s) / float64(steps))
		n, b := frames.Normals[s], frames.Binormals[s]
		for _, v := range shape {
			verts = append(verts, quarkgl.Vertex{
				Pos: at.Add(n.Mul(v.X)).Add(b.Mul(v.Y)),
			})
		}
	}

	idx := func(s, j int) uint16 { return uint16(s*ring + j%ring) }

	indices := make([]uint16, 0, steps*ring*6+2*(ring-2)*3)
	for s := 0; s < steps; s++ {
		for j := 0; j < ring; j++ {
			a := idx(s, j)
			b := idx(s, j+1)
			c := idx(s+1, j+1)
			d := idx(s+1, j)
			indices = append(indices, a, b, d)
			indices = append(indices, b, c, d)
		}
	}
	for j := 1; j+1 < ring; j++ {
		// Start cap faces back along the path, end cap forward.
		indices = append(indices, idx(0, 0), idx(0, j+1), idx(0, j))
		indices = append(indices, idx(steps, 0), idx(steps, j), idx(steps, j+1))
	}

	return quarkgl.Mesh{Vertices: verts, Indices: indices}, nil
}

// ExtrudePath sweeps shape along a centripetal Catmull-Rom spline through
// points, sampled at steps+1 rings.
func ExtrudePath(shape []quarkgl.Vec2, points []quarkgl.Vec3, steps int) (quarkgl.Mesh, error) {
	if len(points) < 2 {
		return quarkgl.Mesh{}, fmt.Errorf("%w: need at least 2 path points, got %d", ErrDegeneratePath, len(points))
	}
	return Extrude(shape, NewCatmullRom(points), steps)
}
