package plot

import "github.com/yofu/dxf"

// WriteDXF exports every edge of d as a separate 2D LINE entity in a DXF
// drawing, using yofu/dxf: candidate edges on layer "contour", the rest on
// layer "mesh", plus roots and poles as POINT entities on their own layers.
// Edges are not joined into polylines or ordered into loops.
func WriteDXF(path string, d Data) error {
	drawing := dxf.NewDrawing()

	for _, e := range d.Edges {
		layer := "mesh"
		if e.Candidate {
			layer = "contour"
		}
		drawing.ChangeLayer(layer)
		drawing.Line(real(e.A), imag(e.A), 0, real(e.B), imag(e.B), 0)
	}

	drawing.ChangeLayer("roots")
	for _, r := range d.Roots {
		drawing.Point(real(r.Location), imag(r.Location), 0)
	}
	drawing.ChangeLayer("poles")
	for _, p := range d.Poles {
		drawing.Point(real(p.Location), imag(p.Location), 0)
	}

	return drawing.SaveAs(path)
}
