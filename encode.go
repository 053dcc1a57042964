package pixellab

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Project is a complete saved document: identity plus the timeline that
// holds every block and graph.
type Project struct {
	ID       string
	Name     string
	Timeline *Timeline
}

// NewProject returns a named project with a fresh id and a default timeline.
func NewProject(name string) *Project {
	return &Project{
		ID:       uuid.New().String(),
		Name:     name,
		Timeline: NewTimeline(DefaultFPS),
	}
}

// validate checks decoded documents before they become live timelines.
var validate = validator.New()

// --- JSON document types ---

type jsonProject struct {
	ID     string      `json:"id" validate:"omitempty,uuid4"`
	Name   string      `json:"name"`
	FPS    float64     `json:"fps" validate:"omitempty,gt=0"`
	Blocks []jsonBlock `json:"blocks" validate:"required,min=1,dive"`
}

type jsonBlock struct {
	DurationMS int64     `json:"duration_ms" validate:"required,gt=0"`
	Graph      jsonGraph `json:"graph"`
}

type jsonGraph struct {
	Nodes []json.RawMessage `json:"nodes"`
	Links []jsonLink        `json:"links"`
}

// jsonLink references nodes by their position in the document's nodes array.
// Runtime handles never leak into documents.
type jsonLink struct {
	From jsonPin `json:"from"`
	To   jsonPin `json:"to"`
}

type jsonPin struct {
	Node int `json:"node"`
	Pin  int `json:"pin"`
}

type jsonColor struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// jsonNode is the tagged union for one node: the type tag plus whichever
// payload field the tag calls for.
type jsonNode struct {
	Type   string          `json:"type"`
	Value  json.RawMessage `json:"value,omitempty"`  // float, text, color
	Path   string          `json:"path,omitempty"`   // image
	Curve  string          `json:"curve,omitempty"`  // ease
	Points *[4][2]float64  `json:"points,omitempty"` // bezier
}

// --- node payload codecs ---

// encodeNode renders one node as its document form.
func encodeNode(n *Node) (json.RawMessage, error) {
	doc := jsonNode{Type: n.Kind.Tag()}
	var err error
	switch n.Kind {
	case KindNumber:
		doc.Value, err = json.Marshal(n.Number)
	case KindText:
		doc.Value, err = json.Marshal(n.Text)
	case KindColor:
		doc.Value, err = json.Marshal(jsonColor{R: n.Color.R, G: n.Color.G, B: n.Color.B, A: n.Color.A})
	case KindImage:
		doc.Path = n.Path
	case KindEase:
		doc.Curve = n.Curve.String()
	case KindBezier:
		pts := [4][2]float64{}
		for i, p := range n.Points {
			pts[i] = [2]float64{p.X, p.Y}
		}
		doc.Points = &pts
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// nodeDecoders maps a document type tag to its payload decoder. The catalog
// is closed: a tag missing here fails the whole load.
var nodeDecoders = map[string]func(doc jsonNode) (Node, error){
	"time": func(jsonNode) (Node, error) { return NewTimeNode(), nil },
	"float": func(doc jsonNode) (Node, error) {
		var v float64
		if err := unmarshalPayload(doc.Value, &v); err != nil {
			return Node{}, err
		}
		return NewNumberNode(v), nil
	},
	"text": func(doc jsonNode) (Node, error) {
		var s string
		if err := unmarshalPayload(doc.Value, &s); err != nil {
			return Node{}, err
		}
		return NewTextNode(s), nil
	},
	"color": func(doc jsonNode) (Node, error) {
		var c jsonColor
		if err := unmarshalPayload(doc.Value, &c); err != nil {
			return Node{}, err
		}
		return NewColorNode(Color{R: c.R, G: c.G, B: c.B, A: c.A}), nil
	},
	"image": func(doc jsonNode) (Node, error) { return NewImageNode(doc.Path), nil },
	"lerp":  func(jsonNode) (Node, error) { return NewLerpNode(), nil },
	"ease": func(doc jsonNode) (Node, error) {
		curve, err := ParseEaseCurve(doc.Curve)
		if err != nil {
			return Node{}, err
		}
		return NewEaseNode(curve), nil
	},
	"revolution":      func(jsonNode) (Node, error) { return NewRevolutionNode(), nil },
	"rotate":          func(jsonNode) (Node, error) { return NewRotateNode(), nil },
	"scale":           func(jsonNode) (Node, error) { return NewScaleNode(), nil },
	"transform-field": func(jsonNode) (Node, error) { return NewTransformFieldNode(), nil },
	"hex-pattern":     func(jsonNode) (Node, error) { return NewHexPatternNode(), nil },
	"bezier": func(doc jsonNode) (Node, error) {
		if doc.Points == nil {
			return Node{}, fmt.Errorf("bezier node has no points")
		}
		p := *doc.Points
		return NewBezierNode(
			Vec2{X: p[0][0], Y: p[0][1]},
			Vec2{X: p[1][0], Y: p[1][1]},
			Vec2{X: p[2][0], Y: p[2][1]},
			Vec2{X: p[3][0], Y: p[3][1]},
		), nil
	},
	"output": func(jsonNode) (Node, error) { return NewOutputNode(), nil },
}

// unmarshalPayload decodes a required payload field, treating absence as an
// error rather than a zero value.
func unmarshalPayload(raw json.RawMessage, into any) error {
	if raw == nil {
		return fmt.Errorf("missing value payload")
	}
	return json.Unmarshal(raw, into)
}

// decodeNode parses one node document.
func decodeNode(raw json.RawMessage) (Node, error) {
	var doc jsonNode
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Node{}, err
	}
	dec, ok := nodeDecoders[doc.Type]
	if !ok {
		return Node{}, fmt.Errorf("unknown node type %q", doc.Type)
	}
	n, err := dec(doc)
	if err != nil {
		return Node{}, fmt.Errorf("node type %q: %w", doc.Type, err)
	}
	return n, nil
}

// --- graph codecs ---

// encodeGraph flattens a graph: nodes in slot order with handles mapped to
// dense document positions, links rewritten against those positions. Links
// that reference a dead handle are silently left out.
func encodeGraph(g *Graph) (jsonGraph, error) {
	ids := g.NodeIDs()
	index := make(map[NodeID]int, len(ids))
	doc := jsonGraph{Nodes: make([]json.RawMessage, 0, len(ids))}
	for i, id := range ids {
		index[id] = i
		raw, err := encodeNode(g.Node(id))
		if err != nil {
			return jsonGraph{}, err
		}
		doc.Nodes = append(doc.Nodes, raw)
	}
	for _, l := range g.Links() {
		from, okFrom := index[l.From.Node]
		to, okTo := index[l.To.Node]
		if !okFrom || !okTo {
			continue
		}
		doc.Links = append(doc.Links, jsonLink{
			From: jsonPin{Node: from, Pin: l.From.Pin},
			To:   jsonPin{Node: to, Pin: l.To.Pin},
		})
	}
	return doc, nil
}

// decodeGraph rebuilds a graph from its document. Bad nodes fail the load;
// links that reference missing positions or undeclared pins are dropped, so
// a structurally bruised document still opens.
func decodeGraph(doc jsonGraph) (*Graph, error) {
	g := NewGraph()
	ids := make([]NodeID, 0, len(doc.Nodes))
	for i, raw := range doc.Nodes {
		n, err := decodeNode(raw)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		ids = append(ids, g.AddNode(n))
	}
	for _, l := range doc.Links {
		if l.From.Node < 0 || l.From.Node >= len(ids) || l.To.Node < 0 || l.To.Node >= len(ids) {
			continue
		}
		from := PinRef{Node: ids[l.From.Node], Pin: l.From.Pin, Dir: PinOutput}
		to := PinRef{Node: ids[l.To.Node], Pin: l.To.Pin, Dir: PinInput}
		if _, err := g.AddLink(from, to); err != nil {
			continue
		}
	}
	return g, nil
}

// --- project codecs ---

// EncodeProject writes p to w as an indented JSON document. Projects missing
// an id are assigned one first.
func EncodeProject(w io.Writer, p *Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	doc := jsonProject{
		ID:     p.ID,
		Name:   p.Name,
		FPS:    p.Timeline.FPS,
		Blocks: make([]jsonBlock, 0, len(p.Timeline.Blocks())),
	}
	for _, b := range p.Timeline.Blocks() {
		graphDoc, err := encodeGraph(b.Graph)
		if err != nil {
			return fmt.Errorf("pixellab: encode project: %w", err)
		}
		doc.Blocks = append(doc.Blocks, jsonBlock{
			DurationMS: b.Duration.Milliseconds(),
			Graph:      graphDoc,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("pixellab: encode project: %w", err)
	}
	return nil
}

// DecodeProject reads a project document from r. Documents with no fps play
// at DefaultFPS. Unknown node types and malformed payloads fail the load;
// out-of-range links are dropped.
func DecodeProject(r io.Reader) (*Project, error) {
	var doc jsonProject
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("pixellab: parse project: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("pixellab: invalid project: %w", err)
	}

	tl := NewTimeline(doc.FPS)
	tl.blocks = tl.blocks[:0]
	for i, b := range doc.Blocks {
		g, err := decodeGraph(b.Graph)
		if err != nil {
			return nil, fmt.Errorf("pixellab: block %d: %w", i, err)
		}
		tl.blocks = append(tl.blocks, &Block{
			Duration: time.Duration(b.DurationMS) * time.Millisecond,
			Graph:    g,
		})
	}
	return &Project{ID: doc.ID, Name: doc.Name, Timeline: tl}, nil
}

// SaveProject writes the project document to a file.
func SaveProject(path string, p *Project) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeProject(f, p); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// LoadProject reads a project document from a file.
func LoadProject(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	p, err := DecodeProject(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}
