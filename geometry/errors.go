package geometry

import "errors"

// maxVertices is the vertex count addressable by uint16 indices.
const maxVertices = 0xFFFF

var (
	// ErrDegeneratePath reports a path or shape too short to sweep.
	ErrDegeneratePath = errors.New("geometry: degenerate path")

	// ErrMeshTooLarge reports a mesh that does not fit 16-bit indices.
	ErrMeshTooLarge = errors.New("geometry: mesh exceeds 65535 vertices")
)
