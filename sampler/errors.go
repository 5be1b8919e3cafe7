// SPDX-License-Identifier: MIT
// Package: streetgen/sampler
//
// errors.go — sentinel errors for sampling and relaxation.
//
// Policy: sentinels only, wrapped with %w at the call site; callers branch
// with errors.Is. Soft sampling underflow is intentionally NOT an error —
// see doc.go.

package sampler

import "errors"

// ErrNonPositiveCount indicates a requested point count below 1.
// Usage: if errors.Is(err, sampler.ErrNonPositiveCount) { /* fix n */ }.
var ErrNonPositiveCount = errors.New("sampler: point count must be positive")

// ErrNeedRandSource indicates a nil *rand.Rand was supplied. Sampling is
// inherently stochastic, so an explicit RNG is part of the contract.
// Usage: if errors.Is(err, sampler.ErrNeedRandSource) { /* pass seeded rng */ }.
var ErrNeedRandSource = errors.New("sampler: rng is required")

// ErrEmptyRect indicates a rectangle with a non-positive side.
// Usage: if errors.Is(err, sampler.ErrEmptyRect) { /* fix bounds */ }.
var ErrEmptyRect = errors.New("sampler: rectangle sides must be positive")

// ErrBadIterations indicates a negative Lloyd iteration count.
// Usage: if errors.Is(err, sampler.ErrBadIterations) { /* fix iterations */ }.
var ErrBadIterations = errors.New("sampler: iterations must be non-negative")
