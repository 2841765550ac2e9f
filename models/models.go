// Package models provides data structures for the mscflp-gen application.
// It defines the domain entities of a generated facility-location instance.
package models

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// NodeClass distinguishes the two node populations of an instance.
// Class membership is fixed by the node's index range and never changes.
type NodeClass int

const (
	// Location is a candidate service location, index in [0, Locations).
	Location NodeClass = iota
	// DemandPoint is a demand point, index in [Locations, Locations+Points).
	DemandPoint
)

// String returns the human-readable class name.
func (c NodeClass) String() string {
	if c == Location {
		return "location"
	}
	return "demand_point"
}

// Node represents one placed node of the instance
type Node struct {
	Index int       `json:"index"` // Node id; class is derived from the index range
	Class NodeClass `json:"class"`
	Pos   r2.Vec    `json:"pos"` // Position in the unit square
}

// ServiceRecord is one output row of a generated instance: a service id
// attached to a (location, demand point) edge. Point is the demand
// point's index relative to the demand-point range, not its raw node id.
type ServiceRecord struct {
	Service  int `json:"service"`
	Location int `json:"location"`
	Point    int `json:"point"`
}

// Less reports whether r sorts before other under the documented
// (service, location, point) ascending sort key.
func (r ServiceRecord) Less(other ServiceRecord) bool {
	if r.Service != other.Service {
		return r.Service < other.Service
	}
	if r.Location != other.Location {
		return r.Location < other.Location
	}
	return r.Point < other.Point
}

// CostTable holds the economic side-tables of an instance: one opening
// cost per location and one equipping cost per service.
type CostTable struct {
	Opening []int `json:"opening_costs"` // Uniform in [4000, 5000)
	Equip   []int `json:"equip_costs"`   // Uniform in [200, 500)
}

// AdvisoryKind classifies non-fatal coverage diagnostics.
type AdvisoryKind string

const (
	// AdvisoryOverConcentration flags that a single location could serve
	// more than half of all nodes.
	AdvisoryOverConcentration AdvisoryKind = "over_concentration"
	// AdvisoryNearInfeasible flags that even the best-connected location
	// reaches very few nodes.
	AdvisoryNearInfeasible AdvisoryKind = "near_infeasible"
)

// Advisory is a structured, non-fatal diagnostic emitted during
// generation. Advisories never alter the produced instance.
type Advisory struct {
	Kind       AdvisoryKind `json:"kind"`
	Message    string       `json:"message"`
	Centrality float64      `json:"centrality"` // Max degree centrality that triggered it
}

// Config holds the generation parameters of one instance.
type Config struct {
	Services           int     `json:"services"`
	Locations          int     `json:"locations"`
	Points             int     `json:"points"`
	ServiceRangeFactor float64 `json:"service_range_factor"`
	Seed               int64   `json:"seed"`
}

// Instance is one complete generated problem instance. Instances are
// immutable once generation finishes and carry no state between runs.
type Instance struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Config     Config          `json:"config"`
	Nodes      []Node          `json:"nodes"`
	Records    []ServiceRecord `json:"records"`
	Costs      CostTable       `json:"costs"`
	Advisories []Advisory      `json:"advisories,omitempty"`
	// MaxCentrality is the highest degree centrality across locations,
	// kept for diagnostics alongside any advisories it produced.
	MaxCentrality float64   `json:"max_centrality"`
	ServiceRange  float64   `json:"service_range"`
	MinDistance   float64   `json:"minimum_distance"`
	CreatedAt     time.Time `json:"created_at"`
}
