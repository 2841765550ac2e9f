package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcnauta/mscflp-gen/models"
)

func TestMaxCentrality(t *testing.T) {
	// Location 0 reaches all three demand points, location 1 reaches one.
	g := NewBipartite(2, 3)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 2)

	// Order is 5, so centrality of location 0 is 3/4.
	assert.InDelta(t, 0.75, MaxCentrality(g), 1e-12)
}

func TestMaxCentralityIgnoresDemandPointDegrees(t *testing.T) {
	// Demand point 3 has the highest degree, but only locations count.
	g := NewBipartite(2, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 3)

	assert.InDelta(t, 1.0/3.0, MaxCentrality(g), 1e-12)
}

func TestAnalyzeOverConcentration(t *testing.T) {
	// Location 0 reaches four of seven other nodes, over the 0.5 ceiling
	// and above the 2/4 floor, so only the concentration advisory fires.
	g := NewBipartite(4, 4)
	g.AddEdge(0, 4)
	g.AddEdge(0, 5)
	g.AddEdge(0, 6)
	g.AddEdge(0, 7)
	g.AddEdge(1, 4)

	max, advisories := Analyze(g)
	assert.InDelta(t, 4.0/7.0, max, 1e-12)
	require.Len(t, advisories, 1)
	assert.Equal(t, models.AdvisoryOverConcentration, advisories[0].Kind)
	assert.InDelta(t, 4.0/7.0, advisories[0].Centrality, 1e-12)
}

func TestAnalyzeNearInfeasible(t *testing.T) {
	// Ten locations, ten demand points, a single edge: the best location
	// covers 1/19 of the network, below the 2/10 floor.
	g := NewBipartite(10, 10)
	g.AddEdge(0, 10)

	max, advisories := Analyze(g)
	assert.InDelta(t, 1.0/19.0, max, 1e-12)
	require.Len(t, advisories, 1)
	assert.Equal(t, models.AdvisoryNearInfeasible, advisories[0].Kind)
}

func TestAnalyzeHealthyCoverageEmitsNothing(t *testing.T) {
	// Best location serves four of nine other nodes: 4/9 sits between
	// the 2/5 floor and the 0.5 concentration ceiling.
	g := NewBipartite(5, 5)
	g.AddEdge(0, 5)
	g.AddEdge(0, 6)
	g.AddEdge(0, 7)
	g.AddEdge(0, 8)
	g.AddEdge(1, 9)

	max, advisories := Analyze(g)
	assert.InDelta(t, 4.0/9.0, max, 1e-12)
	assert.Empty(t, advisories)
}
