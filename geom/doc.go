// Package geom defines the small planar-geometry value types shared by the
// streetgen pipeline: points, axis-aligned rectangles anchored at the origin,
// and fixed-precision quantized coordinate keys.
//
// What:
//
//   - Point: an (X, Y) coordinate in map units.
//   - Rect: a [0,Width]×[0,Height] rectangle with center/containment helpers.
//   - Key: an integer-quantized coordinate pair, safe to use as a map key
//     where rounded float pairs would be fragile.
//
// Why:
//
//   - Voronoi vertices that are numerically adjacent must collapse into one
//     graph node; quantizing to a fixed number of decimal digits gives every
//     physical intersection exactly one canonical identity.
//
// The quantization precision is a tunable argument everywhere it appears,
// never a hidden constant; MaxDigits bounds it so scaling stays exact in
// int64 arithmetic.
package geom
