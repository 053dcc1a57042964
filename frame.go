package pixellab

import (
	"errors"

	"github.com/pixellabs/pixellab/raster"
)

var (
	// ErrNoOutput reports a graph with no output node to evaluate.
	ErrNoOutput = errors.New("pixellab: graph has no output node")
	// ErrNoBlock reports a playhead outside every block.
	ErrNoBlock = errors.New("pixellab: no block under the playhead")
)

// RenderFrame resolves the timeline's current frame: the block under the
// playhead is evaluated at its block-local time through its output node, and
// the result must be an image. A missing output node, a non-image result, a
// cycle, or a failed resource load surface as errors; hosts keep showing the
// previous frame or nothing at all.
func RenderFrame(tl *Timeline) (*raster.Canvas, error) {
	block := tl.SelectedBlock()
	if block == nil {
		return nil, ErrNoBlock
	}
	root, ok := block.Graph.OutputNode()
	if !ok {
		return nil, ErrNoOutput
	}
	v, err := Resolve(block.Graph, root, 0, tl.LocalTime())
	if err != nil {
		return nil, err
	}
	return v.AsImage()
}
