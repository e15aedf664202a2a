// Package geometry builds renderable quarkgl meshes from primitive shapes and
// sampled paths.
//
// It provides the pieces a helix scene needs from a 3D runtime: a reusable
// cylinder primitive with a per-segment placement transform, a Catmull-Rom
// curve through an ordered point sequence, Frenet frames along that curve and
// a sweep that extrudes a planar cross-section along the curve into a closed
// surface.
package geometry
