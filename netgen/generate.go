// SPDX-License-Identifier: MIT
// Package: streetgen/netgen
//
// generate.go — the full pipeline orchestrator.
//
// Canonical model:
//   - side = max(MinRectSide, sqrt(n)·RectSideScale), square map, so point
//     density stays roughly constant as n grows.
//   - sample → relax → base graph → recenter on the bounding-box center →
//     per-mode derive (independent, in the given order) → Network.
//
// Contract:
//   - n ≥ 1 (else ErrNonPositiveCount).
//   - Sampling underflow below voronoi.MinSites aborts with
//     ErrInsufficientPoints; milder underflow proceeds and is reported via
//     Info.SampledPoints (soft condition by design).
//   - modes nil → graph.DefaultModes(); empty non-nil list → a Network with
//     an empty graphs map, no error.
//   - No retries: retry policy belongs to the caller.
//
// Determinism: equal n, modes, seed and options ⇒ identical networks.

package netgen

import (
	"fmt"
	"math"

	"github.com/urbanfabric/streetgen/geom"
	"github.com/urbanfabric/streetgen/graph"
	"github.com/urbanfabric/streetgen/sampler"
	"github.com/urbanfabric/streetgen/voronoi"
)

// Info reports how a generation run unfolded. SampledPoints below
// RequestedPoints means the sampler ran out of attempt budget; the network
// is still valid, just sparser than asked for.
type Info struct {
	RequestedPoints int
	SampledPoints   int
	BaseNodes       int
	BaseEdges       int
	Side            float64
}

// Generate builds a multi-modal network of roughly n intersections.
func Generate(n int, modes []string, opts ...Option) (*graph.Network, error) {
	net, _, err := GenerateWithInfo(n, modes, opts...)

	return net, err
}

// GenerateWithInfo is Generate plus run diagnostics, for callers that want
// to surface sampling underflow or base-graph size.
func GenerateWithInfo(n int, modes []string, opts ...Option) (*graph.Network, Info, error) {
	info := Info{RequestedPoints: n}
	if n < 1 {
		return nil, info, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrNonPositiveCount)
	}
	cfg := newGenConfig(opts...)
	if modes == nil {
		modes = graph.DefaultModes()
	}

	side := math.Max(MinRectSide, math.Sqrt(float64(n))*RectSideScale)
	rect := geom.Square(side)
	info.Side = side

	points, err := sampler.CenterBiased(cfg.rng, n, rect)
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	info.SampledPoints = len(points)
	if len(points) < voronoi.MinSites {
		return nil, info, fmt.Errorf("%s: sampled %d of %d points, need ≥ %d: %w",
			methodGenerate, len(points), n, voronoi.MinSites, ErrInsufficientPoints)
	}

	relaxed, err := sampler.Relax(points, rect, cfg.iterations)
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	base, err := BuildBaseGraph(relaxed, rect, cfg.precision)
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	base.Recenter()
	info.BaseNodes = len(base.Nodes)
	info.BaseEdges = len(base.Edges)

	net := graph.NewNetwork()
	for _, mode := range modes {
		net.Graphs[mode] = deriveMode(cfg, mode, base)
	}

	return net, info, nil
}
