// SPDX-License-Identifier: MIT
// Package: streetgen/voronoi
//
// errors.go — sentinel errors for diagram computation.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by mutating
//     the sentinel text.

package voronoi

import "errors"

// ErrTooFewSites indicates fewer than MinSites input points. A Voronoi
// diagram over 0–3 points is degenerate for our purposes (no interior
// vertices worth keeping), so this aborts the computation outright.
// Usage: if errors.Is(err, voronoi.ErrTooFewSites) { /* need more points */ }.
var ErrTooFewSites = errors.New("voronoi: too few sites")

// ErrDegenerate indicates the site set admits no Delaunay triangulation,
// typically because all sites are collinear or coincident.
// Usage: if errors.Is(err, voronoi.ErrDegenerate) { /* resample sites */ }.
var ErrDegenerate = errors.New("voronoi: degenerate site set")
