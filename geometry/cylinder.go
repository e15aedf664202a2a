package geometry

import (
	"fmt"
	"math"

	"helix/quarkgl"
)

// Cylinder returns a capped cylinder of the given radius and height centred
// on the origin with its axis along +Y. Faces wind counter-clockwise seen
// from outside. edges is clamped to at least 3; a cylinder whose
// 2*edges+2 vertices overflow 16-bit indices returns ErrMeshTooLarge.
func Cylinder(radius, height float64, edges int) (quarkgl.Mesh, error) {
	if edges < 3 {
		edges = 3
	}
	if n := 2*edges + 2; n > maxVertices {
		return quarkgl.Mesh{}, fmt.Errorf("%w: %d", ErrMeshTooLarge, n)
	}

	half := height / 2
	verts := make([]quarkgl.Vertex, 0, 2*edges+2)
	indices := make([]uint16, 0, edges*12)

	// Bottom ring [0,edges), top ring [edges,2*edges), then cap centres.
	for ring := 0; ring < 2; ring++ {
		y := -half
		if ring == 1 {
			y = half
		}
		for i := 0; i < edges; i++ {
			theta := 2 * math.Pi * float64(i) / float64(edges)
			verts = append(verts, quarkgl.Vertex{
				Pos: quarkgl.V3f(radius*math.Cos(theta), y, radius*math.Sin(theta)),
			})
		}
	}
	bottomC := uint16(len(verts))
	verts = append(verts, quarkgl.Vertex{Pos: quarkgl.V3f(0, -half, 0)})
	topC := uint16(len(verts))
	verts = append(verts, quarkgl.Vertex{Pos: quarkgl.V3f(0, half, 0)})

	for i := 0; i < edges; i++ {
		j := (i + 1) % edges
		b0, b1 := uint16(i), uint16(j)
		t0, t1 := uint16(edges+i), uint16(edges+j)

		indices = append(indices, b0, t0, b1)
		indices = append(indices, b1, t0, t1)
		indices = append(indices, topC, t1, t0)
		indices = append(indices, bottomC, b0, b1)
	}

	return quarkgl.Mesh{
		Vertices: verts,
		Indices:  indices,
	}, nil
}

// SegmentTransform places a primitive at position, rotated around the Z
// (helix) axis by rotationZ radians.
func SegmentTransform(position quarkgl.Vec3, rotationZ float64) quarkgl.Mat4 {
	return quarkgl.Mat4Mul(
		quarkgl.Mat4Translate(position),
		quarkgl.Mat4RotateZ(quarkgl.Scalar(rotationZ)),
	)
}
