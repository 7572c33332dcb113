package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/diagram"
)

// fillRect paints every pixel of r.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// fillPolygon fills a closed ring with even-odd scanlines. Rings with
// fewer than three points add nothing.
func fillPolygon(img *image.RGBA, ring []diagram.Point, c color.Color) {
	if len(ring) < 3 {
		return
	}

	minY, maxY := ring[0].Y, ring[0].Y
	for _, p := range ring {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	xs := make([]float64, 0, 8)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			t := (sy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				img.Set(x, y, c)
			}
		}
	}
}

// strokePolyline strokes each segment of poly with the given width.
func strokePolyline(img *image.RGBA, poly []diagram.Point, width float64, c color.Color) {
	for i := 0; i+1 < len(poly); i++ {
		drawSegment(img, poly[i], poly[i+1], width, c)
	}
}

// drawSegment steps along the segment painting a perpendicular span of
// the stroke width at each step.
func drawSegment(img *image.RGBA, a, b diagram.Point, width float64, col color.Color) {
	d := b.Sub(a)
	dist := d.Length()
	half := width / 2

	if dist < 1 {
		for ty := -half; ty <= half; ty++ {
			for tx := -half; tx <= half; tx++ {
				img.Set(int(a.X+tx), int(a.Y+ty), col)
			}
		}
		return
	}

	steps := math.Max(math.Abs(d.X), math.Abs(d.Y))
	if steps < 1 {
		steps = 1
	}
	perp := diagram.Pt(-d.Y/dist, d.X/dist)

	for i := 0.0; i <= steps; i++ {
		p := a.Lerp(b, i/steps)
		for off := -half; off <= half; off += 0.5 {
			img.Set(int(p.X+perp.X*off), int(p.Y+perp.Y*off), col)
		}
	}
}
