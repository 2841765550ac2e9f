package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcnauta/mscflp-gen/graph"
)

// fullBipartite builds a graph where every location serves every demand
// point, which makes the expected record layout easy to reason about.
func fullBipartite(locations, points int) *graph.Bipartite {
	g := graph.NewBipartite(locations, points)
	for loc := 0; loc < locations; loc++ {
		for dem := locations; dem < locations+points; dem++ {
			g.AddEdge(loc, dem)
		}
	}
	return g
}

func TestAssignServicesRoundRobinPhase(t *testing.T) {
	g := fullBipartite(2, 3)
	records := AssignServices(g, 3, rand.New(rand.NewSource(1)))

	// One record per edge, demand points walked in ascending order.
	require.Len(t, records, 6)

	// All edges of one demand point share its service id, and the id
	// advances by one per demand point while the range is uncovered.
	for i, r := range records {
		point := i / 2
		assert.Equal(t, point, r.Point)
		assert.Equal(t, point, r.Service, "record %d", i)
	}
}

func TestAssignServicesRandomPhaseStaysInRange(t *testing.T) {
	g := fullBipartite(1, 10)
	records := AssignServices(g, 3, rand.New(rand.NewSource(9)))
	require.Len(t, records, 10)

	// First three demand points cover ids 0..2, the rest draw randomly.
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, records[i].Service)
	}
	for _, r := range records[3:] {
		assert.GreaterOrEqual(t, r.Service, 0)
		assert.Less(t, r.Service, 3)
	}
}

func TestAssignServicesEveryServiceUsed(t *testing.T) {
	g := fullBipartite(3, 7)
	records := AssignServices(g, 5, rand.New(rand.NewSource(33)))

	used := make(map[int]bool)
	for _, r := range records {
		used[r.Service] = true
	}
	require.Len(t, used, 5)
	for s := 0; s < 5; s++ {
		assert.True(t, used[s], "service %d never requested", s)
	}
}

func TestAssignServicesSingleService(t *testing.T) {
	g := fullBipartite(2, 4)
	records := AssignServices(g, 1, rand.New(rand.NewSource(2)))

	require.Len(t, records, 8)
	for _, r := range records {
		assert.Zero(t, r.Service)
	}
}

func TestAssignServicesPointIsRelativeIndex(t *testing.T) {
	g := graph.NewBipartite(4, 2)
	g.AddEdge(3, 4) // location 3, first demand point
	g.AddEdge(0, 5) // location 0, second demand point

	records := AssignServices(g, 2, rand.New(rand.NewSource(6)))
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Point)
	assert.Equal(t, 3, records[0].Location)
	assert.Equal(t, 1, records[1].Point)
	assert.Equal(t, 0, records[1].Location)
}

func TestAssignCosts(t *testing.T) {
	costs := AssignCosts(6, 3, rand.New(rand.NewSource(8)))

	require.Len(t, costs.Opening, 6)
	require.Len(t, costs.Equip, 3)
	for _, c := range costs.Opening {
		assert.GreaterOrEqual(t, c, 4000)
		assert.Less(t, c, 5000)
	}
	for _, c := range costs.Equip {
		assert.GreaterOrEqual(t, c, 200)
		assert.Less(t, c, 500)
	}
}

func TestAssignCostsDeterministicForFixedSeed(t *testing.T) {
	first := AssignCosts(10, 5, rand.New(rand.NewSource(44)))
	second := AssignCosts(10, 5, rand.New(rand.NewSource(44)))
	assert.Equal(t, first, second)
}
