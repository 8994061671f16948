package network

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts the ebiten screen image to the Surface contract.
type screenSurface struct {
	img *ebiten.Image
}

func (s *screenSurface) Clear(c color.RGBA) {
	s.img.Fill(c)
}

func (s *screenSurface) StrokeLine(ax, ay, bx, by, width float64, c color.RGBA) {
	vector.StrokeLine(s.img, float32(ax), float32(ay), float32(bx), float32(by), float32(width), c, true)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// Game wires the animator into ebiten's cooperative loop: Update advances
// the clock by one tick, Draw renders through the screen surface, Layout
// feeds window resizes back to the animator. Ebiten guarantees exactly one
// pending frame callback and runs each to completion, which is the whole
// concurrency model.
type Game struct {
	animator *Animator
}

func NewGame(a *Animator) *Game {
	return &Game{animator: a}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.animator.Stop()
	}
	if g.animator.State() == StateStopped {
		return ebiten.Termination
	}
	g.animator.Advance(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.animator.Render(&screenSurface{img: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.animator.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
