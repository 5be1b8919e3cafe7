// SPDX-License-Identifier: MIT
// Package: streetgen/graph
//
// types.go — Node, Edge, ModeGraph, Network and the facility vocabulary.
//
// Contract:
//   - All types are plain values with JSON tags forming the reference
//     encoding; no methods mutate shared state.
//   - Reserved slice fields are initialized empty by the constructors so
//     they serialize as [] and never null.

package graph

import "math"

// NodeType classifies a node's role in the physical network.
type NodeType string

// Node type vocabulary. The generator currently emits only Intersection;
// the remaining values exist for hand-authored or future networks.
const (
	Intersection     NodeType = "Intersection"
	MidblockCrossing NodeType = "MidblockCrossing"
	TransitStop      NodeType = "TransitStop"
	Terminus         NodeType = "Terminus"
)

// Canonical mode labels. Mode labels are open-ended strings — an unknown
// label is valid and falls back to the Generic facility set.
const (
	ModeCar     = "Car"
	ModeBike    = "Bike"
	ModeWalk    = "Walk"
	ModeTransit = "Transit"
)

// GenericFacilityType labels edges of modes with no configured facility set.
const GenericFacilityType = "Generic"

// DefaultModes is the mode list used when the caller requests none
// explicitly.
func DefaultModes() []string {
	return []string{ModeBike, ModeWalk}
}

// DefaultFacilityTypes returns the built-in facility vocabulary per mode.
// The map is freshly allocated; callers may mutate their copy freely.
func DefaultFacilityTypes() map[string][]string {
	return map[string][]string{
		ModeBike:    {"ProtectedLane", "BufferedLane", "SharedLane"},
		ModeWalk:    {"Sidewalk", "SharedUsePath", "Trail"},
		ModeTransit: {"BusLane", "Rail", "BRT"},
		ModeCar:     {"Highway", "Arterial", "LocalStreet"},
	}
}

// Node is a network vertex. PhysicalAttributes and TurnRestrictions are
// reserved for future enrichment and are always present (possibly empty)
// in the encoding.
type Node struct {
	ID                 int        `json:"id"`
	Position           [2]float64 `json:"position"`
	NodeType           NodeType   `json:"node_type"`
	PhysicalAttributes []string   `json:"physical_attributes"`
	TurnRestrictions   [][2]int   `json:"turn_restrictions"`
}

// NewNode returns an Intersection node at (x, y) with empty reserved slots.
func NewNode(id int, x, y float64) Node {
	return Node{
		ID:                 id,
		Position:           [2]float64{x, y},
		NodeType:           Intersection,
		PhysicalAttributes: []string{},
		TurnRestrictions:   [][2]int{},
	}
}

// Edge is an undirected street segment between two nodes of the same
// ModeGraph.
type Edge struct {
	ID                 int      `json:"id"`
	FromNode           int      `json:"from_node"`
	ToNode             int      `json:"to_node"`
	FacilityType       string   `json:"facility_type"`
	PhysicalAttributes []string `json:"physical_attributes"`
}

// NewEdge returns an edge with empty reserved slots.
func NewEdge(id, from, to int, facility string) Edge {
	return Edge{
		ID:                 id,
		FromNode:           from,
		ToNode:             to,
		FacilityType:       facility,
		PhysicalAttributes: []string{},
	}
}

// Length returns the Euclidean length of e using the owning graph's node
// positions. Endpoints must be valid ids within mg.
func (e Edge) Length(mg *ModeGraph) float64 {
	from := mg.Nodes[e.FromNode].Position
	to := mg.Nodes[e.ToNode].Position
	dx, dy := to[0]-from[0], to[1]-from[1]

	return math.Sqrt(dx*dx + dy*dy)
}

// ModeGraph is one transport mode's pruned, labeled view of the network.
type ModeGraph struct {
	Mode  string `json:"mode"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Network maps each requested mode label to its derived ModeGraph.
type Network struct {
	Graphs map[string]*ModeGraph `json:"graphs"`
}

// NewNetwork returns an empty Network ready to receive mode graphs.
func NewNetwork() *Network {
	return &Network{Graphs: make(map[string]*ModeGraph)}
}
