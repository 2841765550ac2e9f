// Package render draws generated instances for visual inspection.
// Locations and demand points are rendered as two differently styled
// point sets with the service edges between them.
package render

import (
	"fmt"
	"strings"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/jcnauta/mscflp-gen/models"
)

// OutputOptions defines rendering configuration options
type OutputOptions struct {
	Format         string  // Output format (svg, dot, json)
	Width          float64 // Width of the output
	Height         float64 // Height of the output
	Margin         float64 // Padding around the unit square, in output units
	Background     string  // Background color
	LocationColor  string  // Fill color for location nodes
	DemandColor    string  // Fill color for demand-point nodes
	LocationSize   float64 // Radius of location markers
	DemandSize     float64 // Radius of demand-point markers
	EdgeColor      string  // Stroke color for edges
	EdgeWidth      float64 // Stroke width for edges
	NoiseIntensity float64 // Intensity of position jitter (0.0-1.0), purely cosmetic
	ShowLabels     bool    // Label nodes with their indices
}

// Renderer interface defines methods that all rendering backends must implement
type Renderer interface {
	// Render creates a visualization of the instance using the provided options
	Render(ins *models.Instance, options *OutputOptions) ([]byte, error)

	// Name returns the name of the renderer
	Name() string
}

// NewDefaultOptions creates a default set of output options
func NewDefaultOptions(format string) *OutputOptions {
	return &OutputOptions{
		Format:         format,
		Width:          600,
		Height:         600,
		Margin:         20,
		Background:     "#f8f8f8",
		LocationColor:  "#EA4335",
		DemandColor:    "#4285F4",
		LocationSize:   6.0,
		DemandSize:     3.5,
		EdgeColor:      "#888888",
		EdgeWidth:      1.0,
		NoiseIntensity: 0.0,
		ShowLabels:     false,
	}
}

// GetRenderer returns the appropriate renderer based on format
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "dot":
		return &DOTRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported render format: %s", format)
	}
}

// Generate renders an instance in the given format with default options.
func Generate(ins *models.Instance, format string) ([]byte, error) {
	r, err := GetRenderer(format)
	if err != nil {
		return nil, err
	}
	return r.Render(ins, NewDefaultOptions(format))
}

// jitter displaces drawn positions with smooth noise. Cosmetic only: the
// instance coordinates are never touched, and the noise is seeded from
// the clock, so two renders of the same instance may differ.
type jitter struct {
	noise     opensimplex.Noise
	amplitude float64
}

func newJitter(intensity, scale float64) *jitter {
	if intensity <= 0 {
		return nil
	}
	return &jitter{
		noise:     opensimplex.New(time.Now().UnixNano()),
		amplitude: intensity * scale,
	}
}

// apply returns the jittered output-space coordinates for node i.
func (j *jitter) apply(i int, x, y float64) (float64, float64) {
	if j == nil {
		return x, y
	}
	fi := float64(i)
	return x + j.amplitude*j.noise.Eval2(fi, 0.37), y + j.amplitude*j.noise.Eval2(0.73, fi)
}
