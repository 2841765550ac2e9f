package render

import (
	"bytes"
	"fmt"

	"github.com/jcnauta/mscflp-gen/models"
)

// SVGRenderer outputs SVG format
type SVGRenderer struct{}

// Name returns the name of the renderer
func (r *SVGRenderer) Name() string {
	return "SVG Renderer"
}

// Render creates an SVG representation of the instance
func (r *SVGRenderer) Render(ins *models.Instance, options *OutputOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%f" height="%f" viewBox="0 0 %f %f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, options.Width, options.Height, options.Width, options.Height, options.Background))

	// Map the unit square into the drawable area inside the margin.
	spanX := options.Width - 2*options.Margin
	spanY := options.Height - 2*options.Margin
	j := newJitter(options.NoiseIntensity, 0.02*spanX)
	placed := make([][2]float64, len(ins.Nodes))
	for i, n := range ins.Nodes {
		x := options.Margin + n.Pos.X*spanX
		y := options.Margin + n.Pos.Y*spanY
		placed[i][0], placed[i][1] = j.apply(i, x, y)
	}

	// Draw edges first so markers sit on top. One record per edge.
	locations := ins.Config.Locations
	for _, rec := range ins.Records {
		src := placed[rec.Location]
		dst := placed[locations+rec.Point]
		buf.WriteString(fmt.Sprintf(`<line x1="%f" y1="%f" x2="%f" y2="%f" stroke="%s" stroke-width="%f"/>
`, src[0], src[1], dst[0], dst[1], options.EdgeColor, options.EdgeWidth))
	}

	// Locations as larger markers, demand points as smaller ones.
	for i, n := range ins.Nodes {
		color := options.LocationColor
		radius := options.LocationSize
		if n.Class == models.DemandPoint {
			color = options.DemandColor
			radius = options.DemandSize
		}
		buf.WriteString(fmt.Sprintf(`<circle cx="%f" cy="%f" r="%f" fill="%s"/>
`, placed[i][0], placed[i][1], radius, color))
		if options.ShowLabels {
			buf.WriteString(fmt.Sprintf(`<text x="%f" y="%f" font-size="9" fill="#333333">%d</text>
`, placed[i][0]+radius+2, placed[i][1]+3, n.Index))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}
