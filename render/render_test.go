package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/jcnauta/mscflp-gen/models"
)

func testInstance() *models.Instance {
	return &models.Instance{
		ID:     "test",
		Config: models.Config{Services: 2, Locations: 2, Points: 2},
		Nodes: []models.Node{
			models.NewLocation(0, r2.Vec{X: 0.1, Y: 0.1}),
			models.NewLocation(1, r2.Vec{X: 0.9, Y: 0.9}),
			models.NewDemandPoint(2, r2.Vec{X: 0.2, Y: 0.2}),
			models.NewDemandPoint(3, r2.Vec{X: 0.8, Y: 0.8}),
		},
		Records: []models.ServiceRecord{
			{Service: 0, Location: 0, Point: 0},
			{Service: 1, Location: 1, Point: 1},
		},
	}
}

func TestGetRenderer(t *testing.T) {
	for _, format := range []string{"svg", "SVG", "dot", "json"} {
		r, err := GetRenderer(format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, r.Name())
	}

	_, err := GetRenderer("webgl")
	assert.Error(t, err)
}

func TestSVGRendererDrawsBothClassesAndEdges(t *testing.T) {
	ins := testInstance()
	out, err := Generate(ins, "svg")
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.Contains(t, svg, "</svg>")

	options := NewDefaultOptions("svg")
	assert.Equal(t, 4, strings.Count(svg, "<circle"), "one marker per node")
	assert.Equal(t, 2, strings.Count(svg, "<line"), "one line per edge")
	assert.Contains(t, svg, options.LocationColor)
	assert.Contains(t, svg, options.DemandColor)
}

func TestSVGRendererJitterKeepsElementCounts(t *testing.T) {
	ins := testInstance()
	options := NewDefaultOptions("svg")
	options.NoiseIntensity = 0.8

	out, err := (&SVGRenderer{}).Render(ins, options)
	require.NoError(t, err)
	svg := string(out)
	assert.Equal(t, 4, strings.Count(svg, "<circle"))
	assert.Equal(t, 2, strings.Count(svg, "<line"))
}

func TestDOTRendererEmitsBipartiteEdges(t *testing.T) {
	out, err := Generate(testInstance(), "dot")
	require.NoError(t, err)
	dot := string(out)

	assert.True(t, strings.HasPrefix(dot, "graph instance {"))
	assert.Contains(t, dot, "n0 [shape=box")
	assert.Contains(t, dot, "n2 [shape=circle")
	assert.Contains(t, dot, `n0 -- n2 [label="s0"];`)
	assert.Contains(t, dot, `n1 -- n3 [label="s1"];`)
}

func TestJSONRendererRoundTrips(t *testing.T) {
	out, err := Generate(testInstance(), "json")
	require.NoError(t, err)

	var decoded models.Instance
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "test", decoded.ID)
	assert.Len(t, decoded.Nodes, 4)
	assert.Len(t, decoded.Records, 2)
}
