package plot

import (
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// quadrantRGBA is quadrantColor's raster counterpart.
func quadrantRGBA(q int) color.RGBA {
	switch q {
	case 1:
		return color.RGBA{0x1b, 0x9e, 0x77, 0xff}
	case 2:
		return color.RGBA{0xd9, 0x5f, 0x02, 0xff}
	case 3:
		return color.RGBA{0x75, 0x70, 0xb3, 0xff}
	case 4:
		return color.RGBA{0xe7, 0x29, 0x8a, 0xff}
	default:
		return color.RGBA{0x99, 0x99, 0x99, 0xff}
	}
}

// WritePNGOptions configures WritePNG. FontPath, when non-empty, loads a
// TrueType font via golang/freetype to label roots/poles; when empty,
// labels fall back to golang.org/x/image/font/basicfont's built-in bitmap
// face, so labeling never requires an external font file.
type WritePNGOptions struct {
	Width, Height int
	FontPath      string
	FontSize      float64
}

// WritePNG rasterizes d to a PNG file at path, using llgcode/draw2d for
// vector drawing (mesh edges, root/pole markers) and either golang/freetype
// or golang.org/x/image/font/basicfont for text labels.
func WritePNG(path string, d Data, opts WritePNGOptions) error {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 800
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()

	lo, hi := d.Bounds()
	project := scaler(lo, hi, opts.Width, opts.Height)

	for _, e := range d.Edges {
		ax, ay := project(e.A)
		bx, by := project(e.B)
		if e.Candidate {
			gc.SetStrokeColor(color.RGBA{0xcc, 0, 0, 0xff})
			gc.SetLineWidth(2)
		} else {
			gc.SetStrokeColor(color.RGBA{0xcc, 0xcc, 0xcc, 0xff})
			gc.SetLineWidth(1)
		}
		gc.MoveTo(float64(ax), float64(ay))
		gc.LineTo(float64(bx), float64(by))
		gc.Stroke()
	}

	drawLabel, closeFont, err := labelDrawer(img, opts.FontPath, opts.FontSize)
	if err != nil {
		return err
	}
	defer closeFont()

	for _, r := range d.Roots {
		x, y := project(r.Location)
		drawMarker(gc, x, y, color.RGBA{0x1b, 0x9e, 0x77, 0xff}, true)
		drawLabel(x+6, y-6, "root")
	}
	for _, p := range d.Poles {
		x, y := project(p.Location)
		drawMarker(gc, x, y, color.RGBA{0xd9, 0x5f, 0x02, 0xff}, false)
		drawLabel(x+6, y-6, "pole")
	}

	return draw2dimg.SaveToPngFile(path, img)
}

func drawMarker(gc *draw2dimg.GraphicContext, x, y int, col color.RGBA, filled bool) {
	const r = 4.0
	gc.SetStrokeColor(col)
	gc.SetLineWidth(2)
	gc.MoveTo(float64(x)+r, float64(y))
	gc.ArcTo(float64(x), float64(y), r, r, 0, 6.29)
	gc.Close()
	if filled {
		gc.SetFillColor(col)
		gc.FillStroke()
	} else {
		gc.Stroke()
	}
}

// labelDrawer returns a function that draws text at a pixel position, and
// a cleanup func. When fontPath is empty it uses the stdlib-adjacent
// basicfont face from golang.org/x/image; otherwise it loads fontPath via
// golang/freetype.
func labelDrawer(dst *image.RGBA, fontPath string, size float64) (func(x, y int, text string), func(), error) {
	if fontPath == "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
		}
		return func(x, y int, text string) {
				d.Dot = fixed.P(x, y)
				d.DrawString(text)
			}, func() {}, nil
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, nil, err
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, nil, err
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(size)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(color.Black))

	return func(x, y int, text string) {
			_, _ = c.DrawString(text, freetype.Pt(x, y))
		}, func() {}, nil
}
