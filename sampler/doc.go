// Package sampler produces the seed point sets the network pipeline grows
// from: a density-biased random scatter, smoothed by Lloyd relaxation.
//
// What:
//
//   - CenterBiased: rejection sampling over a rectangle with acceptance
//     probability falling off cubically toward the corners, so "downtown"
//     is denser than the edges without the corners going empty.
//   - Relax: Lloyd's algorithm — each point moves to the centroid of its
//     Voronoi cell, producing an evenly spaced, organic distribution.
//
// Failure semantics:
//
//   - CenterBiased is best-effort: it stops after n×AttemptFactor draws and
//     returns whatever it accepted, which may be fewer than n. Callers that
//     need an exact count must check len of the result.
//   - Relax requires at least voronoi.MinSites points and propagates the
//     diagram's sentinel errors otherwise.
//
// Determinism: all randomness flows through the caller's *rand.Rand; for a
// fixed seed both functions are fully reproducible.
package sampler
