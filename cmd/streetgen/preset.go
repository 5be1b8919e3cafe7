// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/urbanfabric/streetgen/geom"
	"github.com/urbanfabric/streetgen/netgen"
)

// preset is the YAML configuration file schema. Every field is optional;
// pointer fields distinguish "absent" from a deliberate zero. Command-line
// flags override preset values.
//
//	count: 200
//	modes: [Bike, Walk, Transit]
//	seed: 7
//	iterations: 3
//	precision: 2
//	node_removal: 0.1
//	edge_removal: 0.2
//	edge_removal_range: [0.1, 0.3]
//	facility_types:
//	  Transit: [Tram, Funicular]
//	grid_spacing: 5
//	grid_jitter: 0.5
type preset struct {
	Count            int                 `yaml:"count"`
	Modes            []string            `yaml:"modes"`
	Seed             *int64              `yaml:"seed"`
	Iterations       *int                `yaml:"iterations"`
	Precision        *int                `yaml:"precision"`
	NodeRemoval      *float64            `yaml:"node_removal"`
	EdgeRemoval      *float64            `yaml:"edge_removal"`
	EdgeRemovalRange []float64           `yaml:"edge_removal_range"`
	NoPruning        bool                `yaml:"no_pruning"`
	FacilityTypes    map[string][]string `yaml:"facility_types"`
	GridSpacing      *float64            `yaml:"grid_spacing"`
	GridJitter       *float64            `yaml:"grid_jitter"`
}

// loadPreset reads and validates a YAML preset file.
func loadPreset(path string) (*preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p preset
	if err = yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if err = p.validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}

	return &p, nil
}

// validate rejects out-of-range values before they reach the option
// constructors, which treat bad values as programmer error and panic.
func (p *preset) validate() error {
	if p.Count < 0 {
		return fmt.Errorf("count must be ≥ 0, got %d", p.Count)
	}
	if p.Iterations != nil && *p.Iterations < 0 {
		return fmt.Errorf("iterations must be ≥ 0, got %d", *p.Iterations)
	}
	if p.Precision != nil && (*p.Precision < 0 || *p.Precision > geom.MaxDigits) {
		return fmt.Errorf("precision must be in [0, %d], got %d", geom.MaxDigits, *p.Precision)
	}
	if p.NodeRemoval != nil && (*p.NodeRemoval < 0 || *p.NodeRemoval >= 1) {
		return fmt.Errorf("node_removal must be in [0, 1), got %g", *p.NodeRemoval)
	}
	if p.EdgeRemoval != nil && (*p.EdgeRemoval < 0 || *p.EdgeRemoval >= 1) {
		return fmt.Errorf("edge_removal must be in [0, 1), got %g", *p.EdgeRemoval)
	}
	if r := p.EdgeRemovalRange; r != nil {
		if len(r) != 2 {
			return fmt.Errorf("edge_removal_range must hold exactly [min, max], got %d values", len(r))
		}
		if r[0] < 0 || r[0] > r[1] || r[1] >= 1 {
			return fmt.Errorf("edge_removal_range needs 0 ≤ min ≤ max < 1, got [%g, %g]", r[0], r[1])
		}
	}
	for mode, types := range p.FacilityTypes {
		if mode == "" {
			return fmt.Errorf("facility_types contains an empty mode name")
		}
		if len(types) == 0 {
			return fmt.Errorf("facility_types for mode %q must not be empty", mode)
		}
	}
	if p.GridSpacing != nil && *p.GridSpacing <= 0 {
		return fmt.Errorf("grid_spacing must be > 0, got %g", *p.GridSpacing)
	}
	if p.GridJitter != nil && *p.GridJitter < 0 {
		return fmt.Errorf("grid_jitter must be ≥ 0, got %g", *p.GridJitter)
	}

	return nil
}

// options translates the validated preset into generator options.
func (p *preset) options() []netgen.Option {
	var opts []netgen.Option
	if p.Seed != nil {
		opts = append(opts, netgen.WithSeed(*p.Seed))
	}
	if p.Iterations != nil {
		opts = append(opts, netgen.WithIterations(*p.Iterations))
	}
	if p.Precision != nil {
		opts = append(opts, netgen.WithPrecision(*p.Precision))
	}
	if p.NoPruning {
		opts = append(opts, netgen.WithoutPruning())
	}
	if p.NodeRemoval != nil {
		opts = append(opts, netgen.WithNodeRemoval(*p.NodeRemoval))
	}
	if p.EdgeRemoval != nil {
		opts = append(opts, netgen.WithEdgeRemoval(*p.EdgeRemoval))
	}
	if r := p.EdgeRemovalRange; len(r) == 2 {
		opts = append(opts, netgen.WithEdgeRemovalRange(r[0], r[1]))
	}
	for mode, types := range p.FacilityTypes {
		opts = append(opts, netgen.WithFacilityTypes(mode, types))
	}
	if p.GridSpacing != nil {
		opts = append(opts, netgen.WithGridSpacing(*p.GridSpacing))
	}
	if p.GridJitter != nil {
		opts = append(opts, netgen.WithGridJitter(*p.GridJitter))
	}

	return opts
}
