// player plays a pixellab project in a window: the timeline advances in real
// time and every tick resolves a fresh frame, scaled up 2x. Pass a project
// file as the only argument, or run bare to watch the built-in starter.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/pixellabs/pixellab"
)

const (
	screenW = pixellab.CanvasWidth * 2
	screenH = pixellab.CanvasHeight * 2
)

// Game implements ebiten.Game.
type Game struct {
	name     string
	timeline *pixellab.Timeline
	frame    *ebiten.Image
	paused   bool
	spaceWas bool
}

func main() {
	p := pixellab.DemoProject()
	if len(os.Args) > 1 {
		loaded, err := pixellab.LoadProject(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		p = loaded
	}

	g := &Game{name: p.Name, timeline: p.Timeline}

	ebiten.SetWindowTitle("Pixellab \u2014 " + p.Name)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetTPS(int(p.Timeline.FPS))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Update() error {
	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	if space && !g.spaceWas {
		g.paused = !g.paused
	}
	g.spaceWas = space

	if g.paused && g.frame != nil {
		return nil
	}
	if !g.paused {
		g.timeline.Advance()
	}

	img, err := pixellab.RenderFrame(g.timeline)
	if err != nil {
		return err
	}
	g.frame = ebiten.NewImageFromImage(img.Image())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(2, 2)
		screen.DrawImage(g.frame, &op)
	}

	idx, _ := g.timeline.SelectedIndex()
	status := "space pauses"
	if g.paused {
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  block %d  t=%.2f  [%s]",
		g.name, idx, g.timeline.LocalTime(), status), 4, 4)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
