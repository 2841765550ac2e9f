package generate

import (
	"math/rand"

	"github.com/jcnauta/mscflp-gen/graph"
	"github.com/jcnauta/mscflp-gen/models"
)

// Cost ranges for the economic side-tables.
const (
	openingCostMin = 4000
	openingCostMax = 5000
	equipCostMin   = 200
	equipCostMax   = 500
)

// AssignServices attaches a service id to every (location, demand point)
// edge. Demand points are walked in ascending node order and all edges of
// one demand point share its current service id. The id runs round-robin
// through 0..services-1, one id per demand point, which guarantees every
// service is requested at least once; once the full range has cycled
// through, the remaining demand points draw uniformly from [0, services).
// Records come out grouped by demand point; sorting is the writer's job.
func AssignServices(g *graph.Bipartite, services int, rng *rand.Rand) []models.ServiceRecord {
	records := make([]models.ServiceRecord, 0, g.EdgeCount())
	current := 0
	allRequested := false
	for dem := g.Locations; dem < g.Order(); dem++ {
		for _, loc := range g.Neighbors(dem) {
			records = append(records, models.ServiceRecord{
				Service:  current,
				Location: loc,
				Point:    dem - g.Locations,
			})
		}
		if !allRequested {
			if current == services-1 {
				allRequested = true
			} else {
				current++
			}
		} else {
			current = rng.Intn(services)
		}
	}
	return records
}

// AssignCosts draws the opening cost of each location and the equipping
// cost of each service from their fixed uniform ranges. Costs have no
// relationship to geometry or graph structure.
func AssignCosts(locations, services int, rng *rand.Rand) models.CostTable {
	costs := models.CostTable{
		Opening: make([]int, locations),
		Equip:   make([]int, services),
	}
	for i := range costs.Opening {
		costs.Opening[i] = openingCostMin + int(float64(openingCostMax-openingCostMin)*rng.Float64())
	}
	for i := range costs.Equip {
		costs.Equip[i] = equipCostMin + int(float64(equipCostMax-equipCostMin)*rng.Float64())
	}
	return costs
}
