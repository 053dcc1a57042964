package pixellab

import (
	"fmt"
	"math"

	"github.com/pixellabs/pixellab/raster"
)

// NodeKind identifies the behavior of a graph node.
type NodeKind uint8

const (
	KindTime           NodeKind = iota // emits the evaluation time
	KindNumber                         // numeric literal
	KindText                           // text literal
	KindColor                          // color literal
	KindImage                          // loads an image file
	KindLerp                           // linear interpolation
	KindEase                           // easing-curve remap
	KindRevolution                     // turns to radians
	KindRotate                         // rotation transform from turns
	KindScale                          // scale transform
	KindTransformField                 // warps a color field
	KindHexPattern                     // rasterizes a hex tiling
	KindBezier                         // cubic Bézier sampler
	KindOutput                         // pass-through sink, the evaluation root
)

// String returns the kind's display title.
func (k NodeKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
	return kindSpecs[k].title
}

func (k NodeKind) valid() bool {
	return int(k) < len(kindSpecs)
}

// Inputs returns the kind's declared input pins, in pin-index order.
// Callers must not mutate the returned slice.
func (k NodeKind) Inputs() []PinSpec { return kindSpecs[k].inputs }

// Outputs returns the kind's declared output pins, in pin-index order.
// Callers must not mutate the returned slice.
func (k NodeKind) Outputs() []PinSpec { return kindSpecs[k].outputs }

// Tag returns the kind's document type tag.
func (k NodeKind) Tag() string { return kindSpecs[k].tag }

// PinSpec describes one input or output pin of a node kind. The value kind is
// advisory, for editors; evaluation stays permissive about what arrives.
type PinSpec struct {
	Name string
	Kind ValueKind
}

// Node is a graph element. A single flat struct is used for every kind to
// avoid interface dispatch on the evaluation path; fields beyond Kind are
// payload and only meaningful for the kinds noted on each.
type Node struct {
	Kind NodeKind

	// Literal payloads
	Number float64 // KindNumber
	Text   string  // KindText
	Color  Color   // KindColor
	Path   string  // KindImage: file path, read again at every evaluation

	// Curve payloads
	Curve  EaseCurve // KindEase
	Points [4]Vec2   // KindBezier: cubic control points
}

// --- Constructors ---

// NewTimeNode creates a node that emits the evaluation time.
func NewTimeNode() Node { return Node{Kind: KindTime} }

// NewNumberNode creates a numeric literal node.
func NewNumberNode(v float64) Node { return Node{Kind: KindNumber, Number: v} }

// NewTextNode creates a text literal node.
func NewTextNode(s string) Node { return Node{Kind: KindText, Text: s} }

// NewColorNode creates a color literal node.
func NewColorNode(c Color) Node { return Node{Kind: KindColor, Color: c} }

// NewImageNode creates a node that loads the image file at path. The file is
// read on every evaluation; a missing or corrupt file fails the whole pass.
func NewImageNode(path string) Node { return Node{Kind: KindImage, Path: path} }

// NewLerpNode creates a linear interpolation node (a, b, t inputs).
func NewLerpNode() Node { return Node{Kind: KindLerp} }

// NewEaseNode creates an easing node with the given curve.
func NewEaseNode(curve EaseCurve) Node { return Node{Kind: KindEase, Curve: curve} }

// NewRevolutionNode creates a node mapping turns in [0, 1] to radians.
func NewRevolutionNode() Node { return Node{Kind: KindRevolution} }

// NewRotateNode creates a node producing a rotation transform from turns.
func NewRotateNode() Node { return Node{Kind: KindRotate} }

// NewScaleNode creates a node producing a scale transform. With only the x
// input wired the scale is uniform.
func NewScaleNode() Node { return Node{Kind: KindScale} }

// NewTransformFieldNode creates a node that warps a color field by a
// transform.
func NewTransformFieldNode() Node { return Node{Kind: KindTransformField} }

// NewHexPatternNode creates a node that rasterizes a hex tiling of its field
// input onto the fixed canvas.
func NewHexPatternNode() Node { return Node{Kind: KindHexPattern} }

// NewBezierNode creates a cubic Bézier sampler over the four control points.
// Its two output pins carry the X and Y coordinates of the curve point.
func NewBezierNode(p0, p1, p2, p3 Vec2) Node {
	return Node{Kind: KindBezier, Points: [4]Vec2{p0, p1, p2, p3}}
}

// NewOutputNode creates the pass-through sink node that hosts evaluate.
func NewOutputNode() Node { return Node{Kind: KindOutput} }

// --- Catalog ---

// evalFunc computes one output pin of a node. in holds exactly one value per
// declared input pin, Empty where nothing is wired. t is the evaluation time
// in [0, 1).
type evalFunc func(n *Node, in []Value, pin int, t float64) (Value, error)

// kindSpec is one catalog row: a kind's editor-facing interface plus its
// evaluation closure.
type kindSpec struct {
	title   string
	tag     string
	inputs  []PinSpec
	outputs []PinSpec
	eval    evalFunc
}

// kindSpecs is the node catalog, indexed by NodeKind.
//
// Evaluation closures follow one convention: inputs degrade to documented
// defaults instead of failing, and only resource loading returns an error.
var kindSpecs = [...]kindSpec{
	KindTime: {
		title:   "Time",
		tag:     "time",
		outputs: []PinSpec{{Name: "value", Kind: ValueNumber}},
		eval: func(_ *Node, _ []Value, _ int, t float64) (Value, error) {
			return NumberValue(t), nil
		},
	},
	KindNumber: {
		title:   "Number",
		tag:     "float",
		outputs: []PinSpec{{Name: "value", Kind: ValueNumber}},
		eval: func(n *Node, _ []Value, _ int, _ float64) (Value, error) {
			return NumberValue(n.Number), nil
		},
	},
	KindText: {
		title:   "Text",
		tag:     "text",
		outputs: []PinSpec{{Name: "value", Kind: ValueText}},
		eval: func(n *Node, _ []Value, _ int, _ float64) (Value, error) {
			return TextValue(n.Text), nil
		},
	},
	KindColor: {
		title:   "Color",
		tag:     "color",
		outputs: []PinSpec{{Name: "value", Kind: ValueColor}},
		eval: func(n *Node, _ []Value, _ int, _ float64) (Value, error) {
			return ColorValue(n.Color), nil
		},
	},
	KindImage: {
		title:   "Image",
		tag:     "image",
		outputs: []PinSpec{{Name: "image", Kind: ValueImage}},
		eval: func(n *Node, _ []Value, _ int, _ float64) (Value, error) {
			img, err := raster.Load(n.Path)
			if err != nil {
				return Value{}, err
			}
			return ImageValue(img), nil
		},
	},
	KindLerp: {
		title: "Lerp",
		tag:   "lerp",
		inputs: []PinSpec{
			{Name: "a", Kind: ValueNumber},
			{Name: "b", Kind: ValueNumber},
			{Name: "t", Kind: ValueNumber},
		},
		outputs: []PinSpec{{Name: "value", Kind: ValueNumber}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			a := in[0].NumberOr(0)
			b := in[1].NumberOr(1)
			k := in[2].NumberOr(0)
			return NumberValue(a*(1-k) + b*k), nil
		},
	},
	KindEase: {
		title:   "Ease",
		tag:     "ease",
		inputs:  []PinSpec{{Name: "value", Kind: ValueNumber}},
		outputs: []PinSpec{{Name: "value", Kind: ValueNumber}},
		eval: func(n *Node, in []Value, _ int, _ float64) (Value, error) {
			return NumberValue(n.Curve.Apply(in[0].NumberOr(0))), nil
		},
	},
	KindRevolution: {
		title:   "Revolution",
		tag:     "revolution",
		inputs:  []PinSpec{{Name: "turns", Kind: ValueNumber}},
		outputs: []PinSpec{{Name: "angle", Kind: ValueNumber}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			return NumberValue(in[0].NumberOr(0) * 2 * math.Pi), nil
		},
	},
	KindRotate: {
		title:   "Rotate",
		tag:     "rotate",
		inputs:  []PinSpec{{Name: "turns", Kind: ValueNumber}},
		outputs: []PinSpec{{Name: "transform", Kind: ValueTransform}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			return TransformValue(RotationTransform(in[0].NumberOr(0) * 2 * math.Pi)), nil
		},
	},
	KindScale: {
		title: "Scale",
		tag:   "scale",
		inputs: []PinSpec{
			{Name: "x", Kind: ValueNumber},
			{Name: "y", Kind: ValueNumber},
		},
		outputs: []PinSpec{{Name: "transform", Kind: ValueTransform}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			sx := in[0].NumberOr(1)
			sy := sx
			if in[1].Kind != ValueEmpty {
				sy = in[1].NumberOr(sx)
			}
			return TransformValue(ScaleTransform(sx, sy)), nil
		},
	},
	KindTransformField: {
		title: "Transform Field",
		tag:   "transform-field",
		inputs: []PinSpec{
			{Name: "field", Kind: ValueField},
			{Name: "transform", Kind: ValueTransform},
		},
		outputs: []PinSpec{{Name: "field", Kind: ValueField}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			field := in[0].FieldOr(ConstantField(ColorTransparent))
			m := in[1].TransformOr(IdentityTransform())
			// The sample point moves, not the image: the new field reads the
			// original at the transformed position.
			return FieldValue(func(x, y float64) Color {
				mx, my := m.Apply(x, y)
				return field(mx, my)
			}), nil
		},
	},
	KindHexPattern: {
		title: "Hex Pattern",
		tag:   "hex-pattern",
		inputs: []PinSpec{
			{Name: "field", Kind: ValueField},
			{Name: "spacing", Kind: ValueNumber},
			{Name: "size", Kind: ValueNumber},
			{Name: "transform", Kind: ValueTransform},
		},
		outputs: []PinSpec{{Name: "image", Kind: ValueImage}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			field := in[0].FieldOr(ConstantField(ColorTransparent))
			spacing := in[1].NumberOr(defaultHexSpacing)
			size := in[2].NumberOr(defaultHexSize)
			m := in[3].TransformOr(IdentityTransform())
			return ImageValue(renderHexPattern(field, spacing, size, m)), nil
		},
	},
	KindBezier: {
		title:  "Bezier",
		tag:    "bezier",
		inputs: []PinSpec{{Name: "t", Kind: ValueNumber}},
		outputs: []PinSpec{
			{Name: "x", Kind: ValueNumber},
			{Name: "y", Kind: ValueNumber},
		},
		eval: func(n *Node, in []Value, pin int, _ float64) (Value, error) {
			p := bezierPoint(n.Points, in[0].NumberOr(0))
			if pin == 1 {
				return NumberValue(p.Y), nil
			}
			return NumberValue(p.X), nil
		},
	},
	KindOutput: {
		title:   "Output",
		tag:     "output",
		inputs:  []PinSpec{{Name: "value", Kind: ValueEmpty}},
		outputs: []PinSpec{{Name: "value", Kind: ValueEmpty}},
		eval: func(_ *Node, in []Value, _ int, _ float64) (Value, error) {
			return in[0], nil
		},
	},
}

// bezierPoint evaluates the cubic Bézier defined by p at parameter k.
func bezierPoint(p [4]Vec2, k float64) Vec2 {
	u := 1 - k
	w0 := u * u * u
	w1 := 3 * u * u * k
	w2 := 3 * u * k * k
	w3 := k * k * k
	return Vec2{
		X: w0*p[0].X + w1*p[1].X + w2*p[2].X + w3*p[3].X,
		Y: w0*p[0].Y + w1*p[1].Y + w2*p[2].Y + w3*p[3].Y,
	}
}
