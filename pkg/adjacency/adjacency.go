// Package adjacency derives region adjacency graphs from labeled grids.
//
// Two regions are adjacent when any of their cells touch in the 4-neighbor
// sense, with toroidal wrapping: regions meeting across the grid edge count
// as neighbors. The graph can be exported as Graphviz DOT and rendered to
// SVG for inspecting how a decomposition partitions the plane.
package adjacency

import (
	"fmt"
	"sort"

	"github.com/regiolab/regio/pkg/grid"
)

// Edge connects two adjacent regions, with A < B.
type Edge struct {
	A, B int
}

// Graph is a region adjacency graph.
type Graph struct {
	// Labels lists region labels in ascending order.
	Labels []int
	// Edges lists adjacent region pairs, sorted by (A, B).
	Edges []Edge
	// CellCount maps each label to the number of cells it covers.
	CellCount map[int]int
}

// Build computes the adjacency graph of a labeled grid. Unlabeled cells
// (value 0) contribute no nodes and no edges.
func Build(g *grid.Grid) *Graph {
	size := g.Size()
	counts := map[int]int{}
	edges := map[Edge]bool{}

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := g.At(x, y)
			if v == 0 {
				continue
			}
			counts[v]++
			// Right and down neighbors cover every pair once; wrapping
			// makes the far edges meet.
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				nx, ny := g.Wrap(x+d[0], y+d[1])
				n := g.At(nx, ny)
				if n == 0 || n == v {
					continue
				}
				e := Edge{A: v, B: n}
				if e.A > e.B {
					e.A, e.B = e.B, e.A
				}
				edges[e] = true
			}
		}
	}

	out := &Graph{CellCount: counts}
	for l := range counts {
		out.Labels = append(out.Labels, l)
	}
	sort.Ints(out.Labels)
	for e := range edges {
		out.Edges = append(out.Edges, e)
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].A != out.Edges[j].A {
			return out.Edges[i].A < out.Edges[j].A
		}
		return out.Edges[i].B < out.Edges[j].B
	})
	return out
}

// Degree returns the number of neighbors of a region label.
func (g *Graph) Degree(label int) int {
	n := 0
	for _, e := range g.Edges {
		if e.A == label || e.B == label {
			n++
		}
	}
	return n
}

// NodeID returns the DOT node identifier for a region label.
func NodeID(label int) string { return fmt.Sprintf("r%d", label) }
