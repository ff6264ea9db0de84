package render

import (
	"image"
	"io"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Source - то, что умеет отдать треугольники и точки. *delaunay.Triangulation
// подходит.
type Source interface {
	Triangles() []geom.Triangle
	Edges() []geom.Segment
	Points() []geom.Point
}

type Options struct {
	// Scale - пикселей на единицу координат. 0 - вписать в MaxSide.
	Scale   float64
	MaxSide float64
	Padding float64
	// Circles - рисовать описанные окружности треугольников.
	Circles bool
}

func (o Options) withDefaults() Options {
	if o.MaxSide <= 0 {
		o.MaxSide = 800
	}
	if o.Padding <= 0 {
		o.Padding = 20
	}
	return o
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func pointBounds(points []geom.Point) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	if len(points) == 0 {
		return bounds{}
	}
	return b
}

// Draw рисует триангуляцию на новом холсте: треугольники с заливкой,
// ребра (в том числе цепочки коллинеарных точек) и точки.
func Draw(src Source, opts Options) *gg.Context {
	opts = opts.withDefaults()
	points := src.Points()
	b := pointBounds(points)

	w, h := b.maxX-b.minX, b.maxY-b.minY
	scale := opts.Scale
	if scale <= 0 {
		side := math.Max(w, h)
		if side == 0 {
			side = 1
		}
		scale = opts.MaxSide / side
	}

	width := int(scale*w + opts.Padding*2)
	height := int(scale*h + opts.Padding*2)
	c := gg.NewContext(width, height)
	c.SetRGB(0.12, 0.12, 0.12)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// начало координат внизу слева
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)

	for _, t := range src.Triangles() {
		c.MoveTo(t[0].X, t[0].Y)
		c.LineTo(t[1].X, t[1].Y)
		c.LineTo(t[2].X, t[2].Y)
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.35)
	c.Fill()

	// gg считает толщину линии в пикселях, масштаб на нее не влияет
	c.SetLineWidth(1.5)
	c.SetRGB(0, 1, 1)
	for _, s := range src.Edges() {
		c.DrawLine(s[0].X, s[0].Y, s[1].X, s[1].Y)
	}
	c.Stroke()

	if opts.Circles {
		c.SetRGBA(1, 0.8, 0, 0.5)
		for _, t := range src.Triangles() {
			if center, r, ok := geom.Circumcircle(t); ok {
				c.NewSubPath()
				c.DrawCircle(center.X, center.Y, r)
			}
		}
		c.Stroke()
	}

	c.SetRGB(0.56, 0.93, 0.56)
	for _, p := range points {
		c.NewSubPath()
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()

	return c
}

func Image(src Source, opts Options) image.Image {
	return Draw(src, opts).Image()
}

// WritePNG рисует триангуляцию и кодирует ее в PNG.
func WritePNG(w io.Writer, src Source, opts Options) error {
	if err := Draw(src, opts).EncodePNG(w); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

func SavePNG(path string, src Source, opts Options) error {
	if err := Draw(src, opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "save png %s", path)
	}
	return nil
}
