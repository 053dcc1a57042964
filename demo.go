package pixellab

import "time"

// DemoProject returns the starter document: a three-second eased hex spin
// followed by a two-second Bézier-driven zoom.
func DemoProject() *Project {
	p := NewProject("starter")
	tl := p.Timeline

	// Block 1: red tiling winding through a full eased turn.
	g := tl.Blocks()[0].Graph
	tm := g.AddNode(NewTimeNode())
	eased := g.AddNode(NewEaseNode(EaseCubicOut))
	rot := g.AddNode(NewRotateNode())
	col := g.AddNode(NewColorNode(Color{R: 0.91, G: 0.3, B: 0.24, A: 1}))
	spacing := g.AddNode(NewNumberNode(18))
	size := g.AddNode(NewNumberNode(13))
	hex := g.AddNode(NewHexPatternNode())
	out := g.AddNode(NewOutputNode())

	demoLink(g, tm, 0, eased, 0)
	demoLink(g, eased, 0, rot, 0)
	demoLink(g, col, 0, hex, 0)
	demoLink(g, spacing, 0, hex, 1)
	demoLink(g, size, 0, hex, 2)
	demoLink(g, rot, 0, hex, 3)
	demoLink(g, hex, 0, out, 0)

	// Block 2: teal tiling zooming along an overshooting curve while the
	// spacing widens.
	tl.AppendBlock(2 * time.Second)
	g = tl.Blocks()[1].Graph
	tm = g.AddNode(NewTimeNode())
	bez := g.AddNode(NewBezierNode(
		Vec2{X: 0, Y: 0.4},
		Vec2{X: 0.2, Y: 1.4},
		Vec2{X: 0.8, Y: 1.4},
		Vec2{X: 1, Y: 1},
	))
	zoom := g.AddNode(NewScaleNode())
	col = g.AddNode(NewColorNode(Color{R: 0.15, G: 0.68, B: 0.71, A: 1}))
	a := g.AddNode(NewNumberNode(10))
	b := g.AddNode(NewNumberNode(26))
	lp := g.AddNode(NewLerpNode())
	size = g.AddNode(NewNumberNode(9))
	hex = g.AddNode(NewHexPatternNode())
	out = g.AddNode(NewOutputNode())

	demoLink(g, tm, 0, bez, 0)
	demoLink(g, bez, 1, zoom, 0)
	demoLink(g, a, 0, lp, 0)
	demoLink(g, b, 0, lp, 1)
	demoLink(g, tm, 0, lp, 2)
	demoLink(g, col, 0, hex, 0)
	demoLink(g, lp, 0, hex, 1)
	demoLink(g, size, 0, hex, 2)
	demoLink(g, zoom, 0, hex, 3)
	demoLink(g, hex, 0, out, 0)

	return p
}

func demoLink(g *Graph, from NodeID, fromPin int, to NodeID, toPin int) {
	_, err := g.AddLink(
		PinRef{Node: from, Pin: fromPin, Dir: PinOutput},
		PinRef{Node: to, Pin: toPin, Dir: PinInput},
	)
	if err != nil {
		panic("pixellab: demo graph: " + err.Error())
	}
}
