package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// NewInstance creates an empty instance with a unique ID and timestamps.
// The pipeline fills in nodes, records, and costs as generation proceeds.
func NewInstance(cfg Config) *Instance {
	return &Instance{
		ID:        uuid.New().String(),
		Name:      DefaultName(cfg),
		Config:    cfg,
		CreatedAt: time.Now(),
	}
}

// DefaultName returns the conventional instance name for a configuration,
// also used as the default output filename stem.
func DefaultName(cfg Config) string {
	return fmt.Sprintf("testproblem_geometric_F%dL%dU%d", cfg.Services, cfg.Locations, cfg.Points)
}

// NewLocation creates a location node at the given position.
func NewLocation(index int, pos r2.Vec) Node {
	return Node{Index: index, Class: Location, Pos: pos}
}

// NewDemandPoint creates a demand-point node at the given position.
func NewDemandPoint(index int, pos r2.Vec) Node {
	return Node{Index: index, Class: DemandPoint, Pos: pos}
}

// NewOverConcentrationAdvisory builds the advisory emitted when a single
// location could serve more than half of all nodes.
func NewOverConcentrationAdvisory(centrality float64) Advisory {
	return Advisory{
		Kind:       AdvisoryOverConcentration,
		Message:    fmt.Sprintf("single location can service more than half of all nodes (%d percent)", int(100*centrality)),
		Centrality: centrality,
	}
}

// NewNearInfeasibleAdvisory builds the advisory emitted when even the
// best-connected location reaches very few nodes.
func NewNearInfeasibleAdvisory(centrality float64) Advisory {
	return Advisory{
		Kind:       AdvisoryNearInfeasible,
		Message:    fmt.Sprintf("location with most demand points can service only %d percent of nodes", int(100*centrality)),
		Centrality: centrality,
	}
}

// Positions returns the node positions indexed by node id.
func (ins *Instance) Positions() []r2.Vec {
	pos := make([]r2.Vec, len(ins.Nodes))
	for i, n := range ins.Nodes {
		pos[i] = n.Pos
	}
	return pos
}

// Locations returns the location nodes of the instance.
func (ins *Instance) Locations() []Node {
	return ins.Nodes[:ins.Config.Locations]
}

// DemandPoints returns the demand-point nodes of the instance.
func (ins *Instance) DemandPoints() []Node {
	return ins.Nodes[ins.Config.Locations:]
}
