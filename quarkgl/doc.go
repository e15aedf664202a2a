// Package quarkgl is a small, predictable software 3D engine.
//
// It renders triangle meshes into a caller-provided Target: a helix scene,
// a debug view, or an offscreen still. It is not a game engine and does not
// provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Root transform → Object transform → Projection → Clipping → Rasterization.
//
// Rasterization can be split into horizontal bands handled by several workers
// (see Renderer.SetWorkers). Bands never share pixels or depth rows, so
// targets only need to tolerate concurrent writes to disjoint pixels.
//
// All math is float32 (Scalar). Matrices are column-major, OpenGL layout.
package quarkgl
