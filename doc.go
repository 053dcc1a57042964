// Package pixellab is a node-graph engine for procedural 2D animation.
//
// Pixellab evaluates directed graphs of small typed nodes into pixel frames:
// literals, interpolators, easing curves (via [gween]), affine transforms,
// and a hexagonal-tile rasterizer (via [draw2d]) that fills a fixed 320x200
// canvas. Graphs live inside timeline blocks, and a playhead turns global
// time into the normalized local time every graph animates against.
//
// # Quick start
//
// Build a graph, wire it to an output node, and resolve it:
//
//	g := pixellab.NewGraph()
//	col := g.AddNode(pixellab.NewColorNode(pixellab.Color{R: 1, A: 1}))
//	hex := g.AddNode(pixellab.NewHexPatternNode())
//	out := g.AddNode(pixellab.NewOutputNode())
//
//	g.AddLink(
//		pixellab.PinRef{Node: col, Pin: 0, Dir: pixellab.PinOutput},
//		pixellab.PinRef{Node: hex, Pin: 0, Dir: pixellab.PinInput},
//	)
//	g.AddLink(
//		pixellab.PinRef{Node: hex, Pin: 0, Dir: pixellab.PinOutput},
//		pixellab.PinRef{Node: out, Pin: 0, Dir: pixellab.PinInput},
//	)
//
//	v, err := pixellab.Resolve(g, out, 0, 0.5)
//
// Or let a timeline drive it and grab whole frames:
//
//	tl := pixellab.NewTimeline(60)
//	// ... build tl.Blocks()[0].Graph ...
//	img, err := pixellab.RenderFrame(tl)
//
// # Graphs
//
// Every node is a [Node] created by a typed constructor: [NewTimeNode],
// [NewNumberNode], [NewLerpNode], [NewEaseNode], [NewHexPatternNode], and
// the rest of the catalog. [Graph.AddNode] returns a [NodeID] handle that
// stays valid until that exact node is removed; handles embed a generation,
// so a slot reused by a later node never resurrects an old handle.
//
// Links connect an output pin to an input pin. [Graph.AddLink] accepts the
// two ends in either order and stores the link output-to-input. Several
// links may target the same input; evaluation reads the newest one.
//
// Resolution is pull-based: [Resolve] walks upstream from the requested
// pin, evaluates each node at most once per pass, and reports cycles as
// [ErrCycle] instead of hanging. Unwired inputs fall back to each kind's
// documented default.
//
// # Timeline
//
// A [Timeline] is an ordered list of [Block] values, each owning a graph
// and a duration. The playhead selects the block under it; [Timeline.LocalTime]
// maps the playhead to the [0, 1) time the block's graph sees. [RenderFrame]
// resolves the selected block's output node into a [raster.Canvas].
//
// Projects bundle a timeline with identity and persist as JSON documents
// via [SaveProject] and [LoadProject].
//
// # Viewing
//
// The engine is headless. cmd/pixellab renders projects to PNG sequences
// from the command line, and demos/player plays them windowed through
// [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [draw2d]: https://github.com/llgcode/draw2d
package pixellab
