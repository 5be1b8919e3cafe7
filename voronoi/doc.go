// Package voronoi computes planar Voronoi diagrams as the dual of a
// Delaunay triangulation, exposing exactly the three views the generation
// pipeline consumes:
//
//   - Vertices: Voronoi vertices (triangle circumcenters).
//   - Ridges:   boundaries between adjacent cells, as vertex index pairs;
//     a ridge reaching the hull has NoVertex on its open end.
//   - Cells:    per-site vertex index lists, flagged Unbounded when the
//     site lies on the convex hull (its true cell extends to infinity).
//
// Why a dual instead of a direct sweep: the triangulation is delegated to
// github.com/fogleman/delaunay, and circumcenters plus half-edge adjacency
// give the full diagram in one O(sites) pass — the same construction the
// classic computational-geometry stacks use.
//
// Errors:
//
//   - ErrTooFewSites: fewer than MinSites input points.
//   - ErrDegenerate:  no triangulation exists (e.g. all sites collinear).
//
// The diagram is immutable once computed and safe for concurrent reads.
package voronoi
