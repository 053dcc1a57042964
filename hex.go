package pixellab

import (
	"math"

	"github.com/pixellabs/pixellab/raster"
)

// Pattern nodes draw onto a fixed-size surface; hosts scale the result for
// display.
const (
	CanvasWidth  = 320
	CanvasHeight = 200
)

// Hex geometry used when the spacing and size pins are unwired.
const (
	defaultHexSpacing = 16.0
	defaultHexSize    = 12.0
)

// maxHexCells bounds how many cells one pattern will fill. A near-singular or
// heavily zoomed-out transform can push the visible cell count into the
// millions; past the cap the pattern gives up instead of stalling the frame.
const maxHexCells = 1 << 18

// hexVertices returns the six corners of a pointy-top hexagon of the given
// size, centered on the origin, clockwise in screen coordinates.
func hexVertices(size float64) [6]Vec2 {
	w := math.Sqrt(3) / 2 * size
	return [6]Vec2{
		{0, -size},
		{w, -size / 2},
		{w, size / 2},
		{0, size},
		{-w, size / 2},
		{-w, -size / 2},
	}
}

// hexCellCenter returns the pattern-space center of the cell in column q,
// row r. Odd rows shift half a column, staggering the tiling.
func hexCellCenter(spacing float64, q, r int) Vec2 {
	return Vec2{
		X: spacing * math.Sqrt(3) * (float64(q) + 0.5*float64(r&1)),
		Y: spacing * 1.5 * float64(r),
	}
}

// renderHexPattern rasterizes a hex tiling onto a fresh canvas. Each cell is
// filled with the field sampled at the cell's pattern-space center; m maps
// pattern space onto the canvas.
func renderHexPattern(field ColorField, spacing, size float64, m Transform) *raster.Canvas {
	canvas := raster.New(CanvasWidth, CanvasHeight)
	if size <= 0 {
		return canvas
	}
	// Sub-pixel spacing would ask for an absurd number of cells.
	if spacing < 1 {
		spacing = 1
	}

	// The canvas corners mapped back into pattern space bound the cells that
	// can possibly be visible, padded by one hex radius for cells whose
	// center sits just outside.
	inv := m.Invert()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	corners := [4]Vec2{{0, 0}, {CanvasWidth, 0}, {0, CanvasHeight}, {CanvasWidth, CanvasHeight}}
	for _, corner := range corners {
		x, y := inv.Apply(corner.X, corner.Y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	minX -= size
	minY -= size
	maxX += size
	maxY += size

	colWidth := spacing * math.Sqrt(3)
	rowHeight := spacing * 1.5
	q0 := int(math.Floor(minX/colWidth)) - 1
	q1 := int(math.Ceil(maxX/colWidth)) + 1
	r0 := int(math.Floor(minY/rowHeight)) - 1
	r1 := int(math.Ceil(maxY/rowHeight)) + 1
	cols, rows := q1-q0+1, r1-r0+1
	if cols > maxHexCells || rows > maxHexCells || cols*rows > maxHexCells {
		return canvas
	}

	verts := hexVertices(size)
	pts := make([]raster.Point, 6)
	for r := r0; r <= r1; r++ {
		for q := q0; q <= q1; q++ {
			center := hexCellCenter(spacing, q, r)
			c := field(center.X, center.Y)
			if c.A <= 0 {
				continue
			}
			for i, v := range verts {
				x, y := m.Apply(center.X+v.X, center.Y+v.Y)
				pts[i] = raster.Point{X: x, Y: y}
			}
			canvas.FillPolygon(pts, c.NRGBA())
		}
	}
	return canvas
}
