package pixellab

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/pixellabs/pixellab/raster"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at the raster boundary.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the fully transparent color, the background of fresh
// canvases and the default sample for unwired fields.
var ColorTransparent = Color{}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NRGBA converts to 8-bit straight-alpha form for the raster surface.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func colorFromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Vec2 is a 2D vector used for positions, offsets, and control points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// ColorField is a deferred image: a function from canvas position to color.
// Pattern nodes pass fields around lazily and only sample them when pixels
// are actually needed.
type ColorField func(x, y float64) Color

// ConstantField returns a field that has the same color everywhere.
func ConstantField(c Color) ColorField {
	return func(float64, float64) Color { return c }
}

// imageField samples the pixel containing (x, y); outside the canvas bounds
// the field is fully transparent.
func imageField(img *raster.Canvas) ColorField {
	return func(x, y float64) Color {
		return colorFromNRGBA(img.At(int(math.Floor(x)), int(math.Floor(y))))
	}
}

// ValueKind discriminates the payload carried by a Value.
type ValueKind uint8

const (
	ValueEmpty     ValueKind = iota // no payload; what unwired inputs carry
	ValueNumber                     // float64
	ValueText                       // string
	ValueColor                      // Color
	ValueTransform                  // Transform
	ValueImage                      // *raster.Canvas
	ValueField                      // ColorField
)

// String returns the kind name used in error messages and host summaries.
func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "empty"
	case ValueNumber:
		return "number"
	case ValueText:
		return "text"
	case ValueColor:
		return "color"
	case ValueTransform:
		return "transform"
	case ValueImage:
		return "image"
	case ValueField:
		return "field"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is the single currency flowing across links: one flat struct with a
// kind tag rather than an interface, so evaluation moves values without
// per-value heap traffic. The zero Value is Empty.
//
// Extraction is permissive everywhere except AsImage: asking a Value for a
// kind it does not hold yields the caller's default, never an error. That
// keeps half-wired graphs evaluable while the user edits them.
type Value struct {
	Kind      ValueKind
	num       float64
	text      string
	color     Color
	transform Transform
	image     *raster.Canvas
	field     ColorField
}

// ErrNotImage reports that the evaluation root produced something other than
// an image. Hosts treat it as "nothing to display", distinct from success.
var ErrNotImage = errors.New("pixellab: value is not an image")

// NumberValue returns a Number value.
func NumberValue(v float64) Value { return Value{Kind: ValueNumber, num: v} }

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{Kind: ValueText, text: s} }

// ColorValue returns a Color value.
func ColorValue(c Color) Value { return Value{Kind: ValueColor, color: c} }

// TransformValue returns a Transform value.
func TransformValue(m Transform) Value { return Value{Kind: ValueTransform, transform: m} }

// ImageValue returns an Image value.
func ImageValue(img *raster.Canvas) Value { return Value{Kind: ValueImage, image: img} }

// FieldValue returns a ColorField value.
func FieldValue(f ColorField) Value { return Value{Kind: ValueField, field: f} }

// NumberOr returns the numeric payload, or def for any other kind.
func (v Value) NumberOr(def float64) float64 {
	if v.Kind == ValueNumber {
		return v.num
	}
	return def
}

// TextOr returns the text payload, or def for any other kind.
func (v Value) TextOr(def string) string {
	if v.Kind == ValueText {
		return v.text
	}
	return def
}

// ColorOr returns the color payload, or def for any other kind.
func (v Value) ColorOr(def Color) Color {
	if v.Kind == ValueColor {
		return v.color
	}
	return def
}

// TransformOr returns the transform payload, or def for any other kind.
func (v Value) TransformOr(def Transform) Transform {
	if v.Kind == ValueTransform {
		return v.transform
	}
	return def
}

// FieldOr returns the value as a color field. Colors convert to constant
// fields and images to pixel-sampling fields (transparent outside their
// bounds); every other kind yields def.
func (v Value) FieldOr(def ColorField) ColorField {
	switch v.Kind {
	case ValueField:
		return v.field
	case ValueColor:
		return ConstantField(v.color)
	case ValueImage:
		return imageField(v.image)
	default:
		return def
	}
}

// AsImage returns the image payload. This is the one extraction with no
// graceful fallback: it guards the sink boundary, where a non-image means
// there is nothing to display.
func (v Value) AsImage() (*raster.Canvas, error) {
	if v.Kind != ValueImage {
		return nil, fmt.Errorf("%w (got %s)", ErrNotImage, v.Kind)
	}
	return v.image, nil
}
