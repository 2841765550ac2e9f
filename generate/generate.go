// Package generate runs the instance-generation pipeline: validate the
// configuration, place nodes, build and repair the proximity graph,
// analyze coverage, and assign services and costs. All randomness flows
// through one seeded source in a fixed consumption order, so the same
// configuration and seed always produce the same instance.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/jcnauta/mscflp-gen/graph"
	"github.com/jcnauta/mscflp-gen/models"
	"github.com/jcnauta/mscflp-gen/spatial"
)

// ErrBadConfig indicates an invalid generation configuration. It is
// raised before any randomness is consumed.
var ErrBadConfig = errors.New("generate: invalid configuration")

// Validate checks a configuration without consuming randomness. Every
// demand point requests exactly one service, so there must be at least
// as many demand points as services.
func Validate(cfg models.Config) error {
	if cfg.Services <= 0 || cfg.Locations <= 0 || cfg.Points <= 0 {
		return fmt.Errorf("services=%d locations=%d points=%d (all must be positive): %w",
			cfg.Services, cfg.Locations, cfg.Points, ErrBadConfig)
	}
	if cfg.Services > cfg.Points {
		return fmt.Errorf("more services (%d) than demand points (%d) requested: %w",
			cfg.Services, cfg.Points, ErrBadConfig)
	}
	return nil
}

// ServiceRange returns the maximum distance at which a location can serve
// a demand point: the range factor scaled by the inverse cube root of the
// location count, so denser layouts get shorter ranges.
func ServiceRange(cfg models.Config) float64 {
	return cfg.ServiceRangeFactor / math.Cbrt(float64(cfg.Locations))
}

// MinDistance returns the global minimum pairwise placement distance,
// one tenth of the service range.
func MinDistance(cfg models.Config) float64 {
	return 0.1 * ServiceRange(cfg)
}

// Generate produces one complete, feasible instance from the
// configuration. On return every location and demand point participates
// in at least one service relationship and every service id in
// [0, Services) is requested at least once.
func Generate(cfg models.Config) (*models.Instance, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	serviceRange := ServiceRange(cfg)
	minDistance := MinDistance(cfg)

	// Place all nodes together under the shared separation constraint.
	sampler := spatial.NewSampler(minDistance, rng)
	coords, err := sampler.Sample(cfg.Locations+cfg.Points, nil)
	if err != nil {
		return nil, fmt.Errorf("placing nodes: %w", err)
	}

	g := graph.Build(coords, cfg.Locations, serviceRange)

	repairer := graph.NewRepairer(sampler, serviceRange)
	if err := repairer.Repair(g, coords); err != nil {
		return nil, fmt.Errorf("repairing connectivity: %w", err)
	}

	maxCentrality, advisories := graph.Analyze(g)

	ins := models.NewInstance(cfg)
	ins.ServiceRange = serviceRange
	ins.MinDistance = minDistance
	ins.MaxCentrality = maxCentrality
	ins.Advisories = advisories
	ins.Nodes = make([]models.Node, 0, len(coords))
	for i, pos := range coords {
		if i < cfg.Locations {
			ins.Nodes = append(ins.Nodes, models.NewLocation(i, pos))
		} else {
			ins.Nodes = append(ins.Nodes, models.NewDemandPoint(i, pos))
		}
	}
	ins.Records = AssignServices(g, cfg.Services, rng)
	ins.Costs = AssignCosts(cfg.Locations, cfg.Services, rng)
	return ins, nil
}
