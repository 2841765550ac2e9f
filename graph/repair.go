package graph

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jcnauta/mscflp-gen/spatial"
)

// DefaultMaxRelocations bounds how many times a single isolated node may
// be moved before repair gives up on the configuration.
const DefaultMaxRelocations = 1000

// Repairer relocates isolated nodes until every node has at least one
// edge. It mutates the graph and the coordinate slice in place.
type Repairer struct {
	Sampler        *spatial.Sampler
	ServiceRange   float64
	MaxRelocations int
}

// NewRepairer creates a repairer using the given sampler and range.
func NewRepairer(sampler *spatial.Sampler, serviceRange float64) *Repairer {
	return &Repairer{
		Sampler:        sampler,
		ServiceRange:   serviceRange,
		MaxRelocations: DefaultMaxRelocations,
	}
}

// Repair guarantees degree >= 1 for every node on return. Demand points
// are repaired first, then locations, so a location moved in the second
// pass sees the final demand-point coordinates. Each relocation draws a
// fresh position that keeps the minimum-separation constraint against
// all current coordinates, then recomputes the moved node's edges
// against the opposite class.
func (r *Repairer) Repair(g *Bipartite, coords []r2.Vec) error {
	for dem := g.Locations; dem < g.Order(); dem++ {
		if err := r.reconnect(g, coords, dem); err != nil {
			return fmt.Errorf("demand point %d: %w", dem-g.Locations, err)
		}
	}
	for loc := 0; loc < g.Locations; loc++ {
		if err := r.reconnect(g, coords, loc); err != nil {
			return fmt.Errorf("location %d: %w", loc, err)
		}
	}
	return nil
}

func (r *Repairer) reconnect(g *Bipartite, coords []r2.Vec, id int) error {
	maxRelocations := r.MaxRelocations
	if maxRelocations <= 0 {
		maxRelocations = DefaultMaxRelocations
	}
	for attempt := 0; g.Degree(id) == 0; attempt++ {
		if attempt >= maxRelocations {
			return fmt.Errorf("still isolated after %d relocations at range %g: %w",
				maxRelocations, r.ServiceRange, spatial.ErrInfeasibleDensity)
		}
		// The node's own old position stays in coords while the
		// candidate is tested, so a relocation also clears the spot
		// being vacated.
		pos, err := r.Sampler.SampleOne(coords)
		if err != nil {
			return err
		}
		coords[id] = pos
		r.connect(g, coords, id)
	}
	return nil
}

// connect adds edges from the moved node to every opposite-class node
// within the service range.
func (r *Repairer) connect(g *Bipartite, coords []r2.Vec, id int) {
	if g.IsLocation(id) {
		for dem := g.Locations; dem < g.Order(); dem++ {
			if spatial.Distance(coords[id], coords[dem]) <= r.ServiceRange {
				g.AddEdge(id, dem)
			}
		}
		return
	}
	for loc := 0; loc < g.Locations; loc++ {
		if spatial.Distance(coords[loc], coords[id]) <= r.ServiceRange {
			g.AddEdge(loc, id)
		}
	}
}
