// Package helix computes the geometry of a decorative double helix.
//
// Two generators share one HelixConfig:
//
//   - PlaceStrands positions cylindrical segments along two diametrically
//     opposite helical strands, each slightly kinked for an organic look.
//   - RibbonCurve samples a helical centreline at twice the strand radius,
//     ready to be swept into a ribbon surface by a path extrusion.
//
// Everything here is pure computation. Results are plain values computed
// once from configuration and never mutated.
package helix
