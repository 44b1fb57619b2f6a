package plot

import (
	"io"

	"github.com/ajstarks/svgo"
)

// quadrantColor mirrors the four-way quadrant partition with a fixed
// palette, so a reader can see at a glance where a phase reversal sits.
func quadrantColor(q int) string {
	switch q {
	case 1:
		return "#1b9e77"
	case 2:
		return "#d95f02"
	case 3:
		return "#7570b3"
	case 4:
		return "#e7298a"
	default:
		return "#999999" // node
	}
}

// WriteSVG renders d to an SVG document of width x height pixels, using
// ajstarks/svgo. Mesh edges are drawn thin and grey, candidate edges
// thick and red, and roots/poles as filled/hollow circles.
func WriteSVG(w io.Writer, d Data, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()
	canvas.Rect(0, 0, width, height, "fill:white")

	lo, hi := d.Bounds()
	project := scaler(lo, hi, width, height)

	for _, e := range d.Edges {
		ax, ay := project(e.A)
		bx, by := project(e.B)
		style := "stroke:#cccccc;stroke-width:1"
		if e.Candidate {
			style = "stroke:#cc0000;stroke-width:2"
		}
		canvas.Line(ax, ay, bx, by, style)
	}

	for _, r := range d.Roots {
		x, y := project(r.Location)
		canvas.Circle(x, y, 4, "fill:#1b9e77;stroke:black")
	}
	for _, p := range d.Poles {
		x, y := project(p.Location)
		canvas.Circle(x, y, 4, "fill:none;stroke:#d95f02;stroke-width:2")
	}
}

// scaler builds a user-coordinate -> pixel-coordinate projection that
// fits [lo, hi] into width x height with a 5% margin, flipping the Y axis
// (user Im increases upward, SVG y increases downward).
func scaler(lo, hi complex128, width, height int) func(complex128) (int, int) {
	w := real(hi) - real(lo)
	h := imag(hi) - imag(lo)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	margin := 0.05
	return func(z complex128) (int, int) {
		fx := (real(z) - real(lo)) / w
		fy := (imag(z) - imag(lo)) / h
		px := int((margin + fx*(1-2*margin)) * float64(width))
		py := int((1 - margin - fy*(1-2*margin)) * float64(height))
		return px, py
	}
}
