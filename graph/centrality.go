package graph

import (
	"github.com/jcnauta/mscflp-gen/models"
)

// MaxCentrality returns the highest degree centrality across locations.
// Degree centrality of a node is its degree divided by (order - 1), the
// fraction of all other nodes it is directly connected to.
func MaxCentrality(g *Bipartite) float64 {
	if g.Order() < 2 {
		return 0
	}
	max := 0.0
	for loc := 0; loc < g.Locations; loc++ {
		c := float64(g.Degree(loc)) / float64(g.Order()-1)
		if c > max {
			max = c
		}
	}
	return max
}

// Analyze computes the maximum location centrality and derives coverage
// advisories from it. Advisories are diagnostics only: they never stop
// generation and never mutate the graph.
func Analyze(g *Bipartite) (float64, []models.Advisory) {
	max := MaxCentrality(g)
	var advisories []models.Advisory
	if max > 0.5 {
		advisories = append(advisories, models.NewOverConcentrationAdvisory(max))
	}
	if max < 2.0/float64(g.Locations) {
		advisories = append(advisories, models.NewNearInfeasibleAdvisory(max))
	}
	return max, advisories
}
