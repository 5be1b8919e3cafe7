// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// errors.go — sentinel errors for network generation.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping at the call site.
//   - Validation panics are confined to option constructors (WithX...);
//     pipeline code never panics at runtime.
//   - Geometry-level failures abort the whole generation call (the base
//     graph is shared by every mode); per-mode derivation cannot fail by
//     construction — it only removes elements.

package netgen

import "errors"

// ErrNonPositiveCount indicates a requested node count below 1.
// Usage: if errors.Is(err, netgen.ErrNonPositiveCount) { /* fix n */ }.
var ErrNonPositiveCount = errors.New("netgen: node count must be positive")

// ErrInsufficientPoints indicates the sampler's attempt budget ran out
// before accepting enough points to form a Voronoi diagram. The generation
// call is aborted; no partial network is produced.
// Usage: if errors.Is(err, netgen.ErrInsufficientPoints) { /* raise n or retry */ }.
var ErrInsufficientPoints = errors.New("netgen: too few sampled points for a base graph")

// ErrBadPrecision indicates a rounding precision outside [0, geom.MaxDigits]
// reached BuildBaseGraph directly (the WithPrecision option rejects such
// values earlier, by panicking).
// Usage: if errors.Is(err, netgen.ErrBadPrecision) { /* fix digits */ }.
var ErrBadPrecision = errors.New("netgen: precision digits out of range")
