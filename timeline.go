package pixellab

import (
	"errors"
	"time"
)

// ErrLastBlock reports an attempt to delete a timeline's only block.
var ErrLastBlock = errors.New("pixellab: cannot delete the last block")

// DefaultFPS is the playback rate used when a host does not pick one.
const DefaultFPS = 60.0

// defaultBlockDuration is the length of the block a fresh timeline starts
// with.
const defaultBlockDuration = 3 * time.Second

// Block is one segment of a timeline: how long it plays and the graph that
// produces its frames.
type Block struct {
	Duration time.Duration
	Graph    *Graph
}

// Timeline sequences blocks end to end and tracks one playhead through them.
// A timeline always holds at least one block. Not safe for concurrent use.
type Timeline struct {
	FPS      float64
	playhead time.Duration
	blocks   []*Block
}

// NewTimeline returns a timeline at the given frame rate with one
// default-length block, so there is always a block under the playhead.
// Non-positive rates fall back to DefaultFPS.
func NewTimeline(fps float64) *Timeline {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Timeline{
		FPS:    fps,
		blocks: []*Block{{Duration: defaultBlockDuration, Graph: NewGraph()}},
	}
}

// Blocks returns the blocks in play order. Callers may edit a block's graph
// and duration through it but must not reorder or shrink the slice.
func (tl *Timeline) Blocks() []*Block {
	return tl.blocks
}

// Duration returns the summed length of all blocks.
func (tl *Timeline) Duration() time.Duration {
	var total time.Duration
	for _, b := range tl.blocks {
		total += b.Duration
	}
	return total
}

// Playhead returns the playhead position from the start of the timeline.
func (tl *Timeline) Playhead() time.Duration {
	return tl.playhead
}

// SetPlayhead moves the playhead, clamping into [0, Duration()).
func (tl *Timeline) SetPlayhead(d time.Duration) {
	tl.playhead = clampPlayhead(d, tl.Duration())
}

// clampPlayhead keeps a playhead strictly before total, backing off by the
// millisecond the timeline is grained in.
func clampPlayhead(d, total time.Duration) time.Duration {
	if d >= total {
		d = total - time.Millisecond
	}
	if d < 0 {
		return 0
	}
	return d
}

// AppendBlock adds a block of the given duration with a fresh graph and
// returns it. Durations shorter than a millisecond are raised to one.
func (tl *Timeline) AppendBlock(d time.Duration) *Block {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	b := &Block{Duration: d, Graph: NewGraph()}
	tl.blocks = append(tl.blocks, b)
	return b
}

// SelectedIndex returns the index of the block under the playhead. ok is
// false when the playhead sits at or past the total duration.
func (tl *Timeline) SelectedIndex() (int, bool) {
	elapsed := tl.playhead
	for i, b := range tl.blocks {
		if elapsed < b.Duration {
			return i, true
		}
		elapsed -= b.Duration
	}
	return 0, false
}

// SelectedBlock returns the block under the playhead, or nil when the
// playhead is out of range.
func (tl *Timeline) SelectedBlock() *Block {
	if i, ok := tl.SelectedIndex(); ok {
		return tl.blocks[i]
	}
	return nil
}

// GlobalTime returns the playhead as a fraction of the whole timeline,
// in [0, 1).
func (tl *Timeline) GlobalTime() float64 {
	total := tl.Duration()
	if total <= 0 {
		return 0
	}
	return float64(tl.playhead) / float64(total)
}

// LocalTime returns the playhead position within the selected block as a
// fraction in [0, 1). This is the time value graphs are evaluated at.
func (tl *Timeline) LocalTime() float64 {
	elapsed := tl.playhead
	for _, b := range tl.blocks {
		if elapsed < b.Duration {
			return float64(elapsed) / float64(b.Duration)
		}
		elapsed -= b.Duration
	}
	return 0
}

// DeleteSelected removes the block under the playhead and clamps the
// playhead back into range if it fell off the shortened end. Deleting the
// only block is refused with ErrLastBlock; with no block selected nothing
// happens.
func (tl *Timeline) DeleteSelected() error {
	if len(tl.blocks) == 1 {
		return ErrLastBlock
	}
	i, ok := tl.SelectedIndex()
	if !ok {
		return nil
	}
	tl.blocks = append(tl.blocks[:i], tl.blocks[i+1:]...)
	tl.playhead = clampPlayhead(tl.playhead, tl.Duration())
	return nil
}

// Advance steps the playhead by one frame at the timeline's rate, wrapping
// at the end so playback loops.
func (tl *Timeline) Advance() {
	total := tl.Duration()
	if total <= 0 {
		return
	}
	fps := tl.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	tl.playhead += time.Duration(float64(time.Second) / fps)
	for tl.playhead >= total {
		tl.playhead -= total
	}
}
