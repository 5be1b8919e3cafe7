// SPDX-License-Identifier: MIT
// Package: streetgen/sampler
//
// sampler.go — center-biased rejection sampling.
//
// Canonical model:
//   - Draw (x,y) uniform over [0,W]×[0,H]; accept with probability
//     (1 - 0.7·dist/maxDist)³ where dist is the distance to the rectangle
//     center and maxDist the center-to-corner distance.
//   - The 0.7 falloff factor pushes the zero-density contour outside the
//     rectangle: corners stay populated instead of fading to a hard circle.
//
// Contract:
//   - n ≥ 1 (else ErrNonPositiveCount), rng non-nil (else ErrNeedRandSource),
//     rect sides > 0 (else ErrEmptyRect).
//   - Best-effort count: at most n×AttemptFactor candidate draws, then the
//     accepted set is returned as-is (soft underflow, not an error).
//
// Complexity: O(attempts) time, O(n) space.
// Determinism: fixed seed and parameters ⇒ identical point sets.

package sampler

import (
	"fmt"
	"math/rand"

	"github.com/urbanfabric/streetgen/geom"
)

const (
	// AttemptFactor bounds rejection sampling to n×AttemptFactor candidate
	// draws so a tight acceptance surface can never spin forever.
	AttemptFactor = 50

	// centerBiasFalloff scales the normalized center distance before the
	// acceptance probability is computed. Values < 1 move the zero-density
	// contour outside the rectangle, keeping corners populated.
	centerBiasFalloff = 0.7
)

// CenterBiased samples up to n points inside rect, denser toward the center.
// The result may hold fewer than n points when the attempt budget runs out;
// that is documented soft behavior, not an error.
func CenterBiased(rng *rand.Rand, n int, rect geom.Rect) ([]geom.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("CenterBiased: n=%d: %w", n, ErrNonPositiveCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("CenterBiased: %w", ErrNeedRandSource)
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, fmt.Errorf("CenterBiased: rect %.3g×%.3g: %w", rect.Width, rect.Height, ErrEmptyRect)
	}

	center := rect.Center()
	maxDist := rect.MaxCenterDist()
	points := make([]geom.Point, 0, n)

	maxAttempts := n * AttemptFactor
	for attempts := 0; len(points) < n && attempts < maxAttempts; attempts++ {
		p := geom.Point{
			X: rng.Float64() * rect.Width,
			Y: rng.Float64() * rect.Height,
		}
		norm := p.Dist(center) / maxDist * centerBiasFalloff
		prob := (1 - norm) * (1 - norm) * (1 - norm)
		if rng.Float64() < prob {
			points = append(points, p)
		}
	}

	return points, nil
}
