// SPDX-License-Identifier: MIT
// Package: streetgen/voronoi
//
// voronoi.go — diagram types and the Compute entry point.
//
// Canonical model:
//   - One Voronoi vertex per Delaunay triangle: its circumcenter.
//   - One ridge per Delaunay edge: the segment between the circumcenters of
//     the two triangles sharing that edge. A hull edge has only one triangle,
//     so its dual ridge is unbounded (open end marked NoVertex).
//   - One cell per site: the circumcenters of every triangle incident to the
//     site. Hull sites own unbounded cells.
//
// Contract:
//   - len(sites) ≥ MinSites (else ErrTooFewSites).
//   - Collinear/coincident site sets surface as ErrDegenerate.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   - Triangulation O(n log n); dual extraction O(n) in triangles/edges.
//
// Determinism:
//   - Pure function of the input site order; no randomness, no globals.

package voronoi

import (
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/urbanfabric/streetgen/geom"
)

// MinSites is the smallest site count that yields a usable diagram. Below
// four sites every cell is unbounded and no ridge survives rectangle
// filtering, so smaller inputs are rejected as a precondition violation.
const MinSites = 4

// NoVertex marks the open end of an unbounded ridge (a ridge whose dual
// Delaunay edge lies on the convex hull).
const NoVertex = -1

// Ridge is the boundary between two adjacent Voronoi cells, expressed as a
// pair of indices into Diagram.Vertices. Vb is NoVertex for unbounded ridges.
type Ridge struct {
	Va, Vb int
}

// Bounded reports whether both ridge ends are finite Voronoi vertices.
func (r Ridge) Bounded() bool {
	return r.Va != NoVertex && r.Vb != NoVertex
}

// Cell is the Voronoi region of a single site. Vertices lists indices into
// Diagram.Vertices, one per incident triangle, in no guaranteed order.
// Unbounded cells extend to infinity beyond their listed vertices.
type Cell struct {
	Vertices  []int
	Unbounded bool
}

// Diagram is an immutable Voronoi diagram. Sites is the input point set;
// Vertices, Ridges and Cells are the dual views described in doc.go.
// Cells is parallel to Sites.
type Diagram struct {
	Sites    []geom.Point
	Vertices []geom.Point
	Ridges   []Ridge
	Cells    []Cell
}

// Compute builds the Voronoi diagram of the given sites.
//
// Errors:
//   - ErrTooFewSites if len(sites) < MinSites.
//   - ErrDegenerate if no triangulation exists for the site set.
func Compute(sites []geom.Point) (*Diagram, error) {
	if len(sites) < MinSites {
		return nil, fmt.Errorf("Compute: %d sites, need ≥ %d: %w", len(sites), MinSites, ErrTooFewSites)
	}

	// Delaunay triangulation of the sites; the diagram is its dual.
	pts := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("Compute: triangulate: %v: %w", err, ErrDegenerate)
	}

	nt := len(tri.Triangles) / 3
	d := &Diagram{
		Sites:    sites,
		Vertices: make([]geom.Point, nt),
		Cells:    make([]Cell, len(sites)),
	}

	// One Voronoi vertex per triangle: its circumcenter.
	for t := 0; t < nt; t++ {
		a := sites[tri.Triangles[3*t]]
		b := sites[tri.Triangles[3*t+1]]
		c := sites[tri.Triangles[3*t+2]]
		d.Vertices[t] = circumcenter(a, b, c)
	}

	// One cell entry per (triangle, incident site) pair. Each triangle
	// touches a site at most once, so vertex indices never repeat.
	for t := 0; t < nt; t++ {
		for i := 0; i < 3; i++ {
			s := tri.Triangles[3*t+i]
			d.Cells[s].Vertices = append(d.Cells[s].Vertices, t)
		}
	}

	// Ridges: every interior Delaunay edge (half-edge pair, visited once via
	// e < twin) joins two circumcenters; hull edges dualize to open ridges.
	// A hull edge also tells us its two endpoint sites sit on the convex
	// hull, i.e. their cells are unbounded.
	for e, twin := range tri.Halfedges {
		switch {
		case twin == NoVertex:
			d.Ridges = append(d.Ridges, Ridge{Va: e / 3, Vb: NoVertex})
			d.Cells[tri.Triangles[e]].Unbounded = true
			d.Cells[tri.Triangles[nextHalfedge(e)]].Unbounded = true
		case e < twin:
			d.Ridges = append(d.Ridges, Ridge{Va: e / 3, Vb: twin / 3})
		}
	}

	return d, nil
}

// Centroid returns the arithmetic mean of the cell's vertices and false when
// the cell has none (a site that participates in no triangle).
func (d *Diagram) Centroid(site int) (geom.Point, bool) {
	cell := d.Cells[site]
	if len(cell.Vertices) == 0 {
		return geom.Point{}, false
	}
	var sx, sy float64
	for _, v := range cell.Vertices {
		sx += d.Vertices[v].X
		sy += d.Vertices[v].Y
	}
	n := float64(len(cell.Vertices))

	return geom.Point{X: sx / n, Y: sy / n}, true
}

// nextHalfedge steps to the next half-edge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}

	return e + 1
}

// circumcenter returns the center of the circle through a, b, c. Slivers
// with a vanishing orientation determinant fall back to the triangle
// centroid so the diagram stays finite.
func circumcenter(a, b, c geom.Point) geom.Point {
	det := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if det == 0 {
		return geom.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	return geom.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / det,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / det,
	}
}
