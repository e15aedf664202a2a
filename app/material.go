package app

import "helix/quarkgl"

// MaterialFlags are render flags attached with a colour.
type MaterialFlags uint8

const (
	// MaterialDoubleSided keeps the mesh's back faces under back-face culling.
	MaterialDoubleSided MaterialFlags = 1 << iota
)

func attachMaterial(m *quarkgl.Mesh, c quarkgl.Color, flags MaterialFlags) {
	m.Material = quarkgl.Material{
		BaseColor:   c,
		DoubleSided: flags&MaterialDoubleSided != 0,
	}
}
