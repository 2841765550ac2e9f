package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jcnauta/mscflp-gen/models"
)

// DOTRenderer outputs Graphviz DOT format for use with external graph
// tooling.
type DOTRenderer struct{}

// Name returns the name of the renderer
func (r *DOTRenderer) Name() string {
	return "DOT Renderer"
}

// Render creates a DOT representation of the instance
func (r *DOTRenderer) Render(ins *models.Instance, options *OutputOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("graph instance {\n")
	buf.WriteString("  layout=neato;\n")
	for _, n := range ins.Nodes {
		shape := "box"
		if n.Class == models.DemandPoint {
			shape = "circle"
		}
		buf.WriteString(fmt.Sprintf("  n%d [shape=%s, pos=\"%f,%f!\"];\n",
			n.Index, shape, n.Pos.X, n.Pos.Y))
	}
	for _, rec := range ins.Records {
		buf.WriteString(fmt.Sprintf("  n%d -- n%d [label=\"s%d\"];\n",
			rec.Location, ins.Config.Locations+rec.Point, rec.Service))
	}
	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// JSONRenderer outputs the full instance as indented JSON, mostly for
// the preview server and debugging.
type JSONRenderer struct{}

// Name returns the name of the renderer
func (r *JSONRenderer) Name() string {
	return "JSON Renderer"
}

// Render creates a JSON representation of the instance
func (r *JSONRenderer) Render(ins *models.Instance, options *OutputOptions) ([]byte, error) {
	return json.MarshalIndent(ins, "", "  ")
}
