// Package render rasterizes diagrams into images.
//
// The renderer exists for snapshots and debugging, not for production
// graphics output. It draws in supersampled space and downsamples with
// a Catmull-Rom kernel, which gives smooth enough edges without an
// anti-aliasing pipeline.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/diagram"
)

// Options configures rasterization.
type Options struct {
	// Width and Height are the output image size in pixels.
	Width  int
	Height int

	// Supersample is the oversampling factor. Values below 1 are
	// treated as 1.
	Supersample int

	// Provider supplies the geometry to draw. Nil falls back to a
	// default GraphicsProvider, matching what NewDiagram crops with.
	Provider diagram.PathProvider

	Background color.Color
	ShapeFill  color.Color
	Stroke     color.Color
	LabelColor color.Color

	// FontSize is the label size in points at output resolution.
	FontSize float64

	// LineWidth is the stroke width in pixels at output resolution.
	LineWidth float64
}

// DefaultOptions returns the settings used by the snapshot tests and
// the demo command.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Supersample: 4,
		Background:  color.RGBA{255, 255, 255, 255},
		ShapeFill:   color.RGBA{232, 240, 254, 255},
		Stroke:      color.RGBA{51, 51, 51, 255},
		LabelColor:  color.RGBA{51, 51, 51, 255},
		FontSize:    14,
		LineWidth:   2,
	}
}

// canvas carries the supersampled image and the scaled drawing
// parameters while one snapshot renders.
type canvas struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
	flat      float64
}

// Snapshot renders the diagram into a new image. Zero-value fields in
// opts fall back to their DefaultOptions counterparts.
func Snapshot(d *diagram.Diagram, opts Options) (*image.RGBA, error) {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.ShapeFill == nil {
		opts.ShapeFill = def.ShapeFill
	}
	if opts.Stroke == nil {
		opts.Stroke = def.Stroke
	}
	if opts.LabelColor == nil {
		opts.LabelColor = def.LabelColor
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	provider := opts.Provider
	if provider == nil {
		provider = diagram.NewGraphicsProvider()
	}

	c, err := newCanvas(opts, ss)
	if err != nil {
		return nil, err
	}

	fillRect(c.img, c.img.Bounds(), opts.Background)

	// Connections first so shapes cover any overshoot at the docking
	// points.
	for _, conn := range d.Connections() {
		c.drawConnection(conn, provider, opts)
	}
	for _, shape := range d.Shapes() {
		c.drawShape(shape, provider, opts)
	}
	for _, shape := range d.Shapes() {
		if shape.Label != "" {
			center := shape.Center().Mul(c.scale)
			c.drawTextCentered(center, shape.Label, opts.LabelColor)
		}
	}
	for _, conn := range d.Connections() {
		if conn.Label != "" {
			c.drawConnectionLabel(conn, opts)
		}
	}

	if ss == 1 {
		return c.img, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Over, nil)
	return out, nil
}

// SavePNG renders the diagram and encodes it as PNG.
func SavePNG(w io.Writer, d *diagram.Diagram, opts Options) error {
	img, err := Snapshot(d, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func newCanvas(opts Options, ss int) (*canvas, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultOptions().FontSize
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: fontSize * float64(ss),
		DPI:  72,
		// Supersampling replaces hinting.
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = DefaultOptions().LineWidth
	}

	return &canvas{
		img:       image.NewRGBA(image.Rect(0, 0, opts.Width*ss, opts.Height*ss)),
		scale:     float64(ss),
		lineWidth: lineWidth * float64(ss),
		face:      face,
		flat:      diagram.DefaultTolerance * float64(ss),
	}, nil
}

func (c *canvas) drawShape(shape *diagram.Shape, provider diagram.PathProvider, opts Options) {
	path := provider.ShapePath(shape)
	if path.IsEmpty() {
		return
	}
	scaled := path.Transform(diagram.Scale(c.scale, c.scale))
	for _, ring := range scaled.Flatten(c.flat) {
		fillPolygon(c.img, ring, opts.ShapeFill)
	}
	for _, ring := range scaled.Flatten(c.flat) {
		strokePolyline(c.img, ring, c.lineWidth, opts.Stroke)
	}
}

func (c *canvas) drawConnection(conn *diagram.Connection, provider diagram.PathProvider, opts Options) {
	path := provider.ConnectionPath(conn.Waypoints)
	if path.IsEmpty() {
		return
	}
	scaled := path.Transform(diagram.Scale(c.scale, c.scale))
	polys := scaled.Flatten(c.flat)
	for _, poly := range polys {
		strokePolyline(c.img, poly, c.lineWidth, opts.Stroke)
	}
	if len(polys) > 0 {
		c.drawArrowhead(polys[len(polys)-1], opts.Stroke)
	}
}

// drawArrowhead fills a triangular head at the end of the route,
// oriented along its last segment.
func (c *canvas) drawArrowhead(poly []diagram.Point, col color.Color) {
	if len(poly) < 2 {
		return
	}
	tip := poly[len(poly)-1]
	prev := poly[len(poly)-2]
	dir := tip.Sub(prev)
	if dir == (diagram.Point{}) {
		return
	}
	dir = dir.Normalize()
	perp := dir.Perp()

	length := 8.0 * c.scale
	width := 4.0 * c.scale

	base := tip.Sub(dir.Mul(length))
	wing1 := base.Add(perp.Mul(width))
	wing2 := base.Sub(perp.Mul(width))

	fillPolygon(c.img, []diagram.Point{tip, wing1, wing2, tip}, col)
}

func (c *canvas) drawConnectionLabel(conn *diagram.Connection, opts Options) {
	wps := conn.Waypoints
	if len(wps) < 2 {
		return
	}
	// Midpoint of the middle segment keeps labels off the shapes.
	mid := len(wps) / 2
	a := wps[mid-1].Point
	b := wps[mid].Point
	at := a.Lerp(b, 0.5).Mul(c.scale)
	at.Y -= 10 * c.scale
	c.drawTextCentered(at, conn.Label, opts.LabelColor)
}

func (c *canvas) drawTextCentered(at diagram.Point, text string, col color.Color) {
	width := font.MeasureString(c.face, text).Ceil()
	ascent := c.face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(at.X) - width/2),
			// Baseline sits below the visual center by roughly a
			// third of the ascent.
			Y: fixed.I(int(at.Y) + ascent/3),
		},
	}
	d.DrawString(text)
}
