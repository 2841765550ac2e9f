// Package graph holds the bipartite proximity graph of an instance:
// locations versus demand points, with edges only across the two classes.
// Nodes are plain integer indices; locations occupy [0, Locations) and
// demand points [Locations, Locations+Points), so class membership is a
// property of the index range rather than of any stored flag.
package graph

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jcnauta/mscflp-gen/spatial"
)

// Bipartite is the adjacency structure of one instance. Neighbor lists
// are kept sorted ascending so that iteration order is deterministic.
type Bipartite struct {
	Locations int
	Points    int
	adj       [][]int
}

// NewBipartite creates an edgeless graph over locations + points nodes.
func NewBipartite(locations, points int) *Bipartite {
	return &Bipartite{
		Locations: locations,
		Points:    points,
		adj:       make([][]int, locations+points),
	}
}

// Order returns the total number of nodes.
func (g *Bipartite) Order() int {
	return g.Locations + g.Points
}

// IsLocation reports whether id falls in the location index range.
func (g *Bipartite) IsLocation(id int) bool {
	return id < g.Locations
}

// AddEdge connects a location to a demand point. Adding an existing edge
// is a no-op. Both endpoints' neighbor lists stay sorted.
func (g *Bipartite) AddEdge(loc, dem int) {
	g.adj[loc] = insertSorted(g.adj[loc], dem)
	g.adj[dem] = insertSorted(g.adj[dem], loc)
}

// Neighbors returns the sorted neighbor indices of a node. The returned
// slice is owned by the graph and must not be mutated.
func (g *Bipartite) Neighbors(id int) []int {
	return g.adj[id]
}

// Degree returns the number of edges incident to a node.
func (g *Bipartite) Degree(id int) int {
	return len(g.adj[id])
}

// EdgeCount returns the number of (location, demand point) edges.
func (g *Bipartite) EdgeCount() int {
	n := 0
	for loc := 0; loc < g.Locations; loc++ {
		n += len(g.adj[loc])
	}
	return n
}

// Edges returns all edges as (location, demand point) pairs, ascending by
// location then demand point.
func (g *Bipartite) Edges() [][2]int {
	edges := make([][2]int, 0, g.EdgeCount())
	for loc := 0; loc < g.Locations; loc++ {
		for _, dem := range g.adj[loc] {
			edges = append(edges, [2]int{loc, dem})
		}
	}
	return edges
}

// Build constructs the proximity graph over the sampled coordinates: an
// edge joins a location and a demand point iff their Euclidean distance
// is at most serviceRange. Edges are only ever computed across the two
// index ranges, so same-class edges cannot occur.
func Build(coords []r2.Vec, locations int, serviceRange float64) *Bipartite {
	g := NewBipartite(locations, len(coords)-locations)
	for loc := 0; loc < locations; loc++ {
		for dem := locations; dem < len(coords); dem++ {
			if spatial.Distance(coords[loc], coords[dem]) <= serviceRange {
				g.AddEdge(loc, dem)
			}
		}
	}
	return g
}

func insertSorted(list []int, v int) []int {
	i := sort.SearchInts(list, v)
	if i < len(list) && list[i] == v {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}
