// Package raster is the pixel surface the engine draws into. It wraps a
// premultiplied-alpha image.RGBA behind a deliberately small API: create,
// clear, anti-aliased polygon fill, pixel access, and PNG input/output.
// Callers work in straight alpha; premultiplication stays inside.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // registered for Decode
	"image/png"
	"io"
	"os"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
)

// Point is a position on the canvas in pixel coordinates. The origin is the
// top-left corner with Y increasing downward.
type Point struct {
	X, Y float64
}

// Canvas is a fixed-size RGBA surface. The zero value is not usable; create
// one with New, Decode, or Load.
type Canvas struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

// New returns a fully transparent canvas of the given size.
// Panics if either dimension is not positive.
func New(w, h int) *Canvas {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("raster: invalid canvas size %dx%d", w, h))
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FromImage copies src into a new canvas, converting its pixels to
// premultiplied RGBA.
func FromImage(src image.Image) *Canvas {
	b := src.Bounds()
	c := New(b.Dx(), b.Dy())
	draw.Draw(c.img, c.img.Bounds(), src, b.Min, draw.Src)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing image. The pixels are premultiplied; callers that
// only need color values should prefer At.
func (c *Canvas) Image() *image.RGBA { return c.img }

// context returns the draw2d context for this canvas, creating it on first
// use so plain pixel canvases never pay for one.
func (c *Canvas) context() *draw2dimg.GraphicContext {
	if c.gc == nil {
		c.gc = draw2dimg.NewGraphicContext(c.img)
	}
	return c.gc
}

// Fill overwrites every pixel with the given color, alpha included.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon fills the closed polygon described by pts with an anti-aliased,
// winding-rule fill composited over the existing pixels. Fewer than three
// points is a no-op.
func (c *Canvas) FillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	gc := c.context()
	gc.SetFillColor(col)
	gc.SetFillRule(draw2d.FillRuleWinding)
	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()
	gc.Fill()
}

// At returns the straight-alpha color of the pixel at (x, y).
// Out-of-bounds coordinates read as fully transparent.
func (c *Canvas) At(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c.img.RGBAAt(x, y)).(color.NRGBA)
}

// Set writes a single pixel, converting the color to premultiplied form.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// EncodePNG writes the canvas to w as a PNG with straight alpha, the way
// image viewers and editors expect it.
func (c *Canvas) EncodePNG(w io.Writer) error {
	b := c.img.Rect
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), c.img, b.Min, draw.Src)
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG encodes the canvas to a PNG file at the given path.
func (c *Canvas) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Decode reads any registered image format (PNG, JPEG) from r into a canvas.
func Decode(r io.Reader) (*Canvas, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(src), nil
}

// Load reads an image file from disk. Missing or undecodable files return an
// error; there is no fallback surface.
func Load(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}
