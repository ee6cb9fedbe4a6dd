// Package viewer shows a scene in a desktop window and zooms it with the mouse wheel.
package viewer

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/scene"
)

// Input is the part of the window's input state the viewer reads each tick.
type Input interface {
	Wheel() (float64, float64)
	CursorPosition() (int, int)
}

type mouse struct{}

func (mouse) Wheel() (float64, float64) { return ebiten.Wheel() }

func (mouse) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// Run opens a window the size of sc and blocks until it is closed or ctx is done.
func Run(ctx context.Context, title string, sc *scene.Scene) error {
	w, h := sc.Size()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(NewGame(ctx, sc, mouse{})); err != nil {
		return errors.Wrap(err, "running window")
	}
	return nil
}

// Game adapts a scene to ebiten's update/draw loop.
type Game struct {
	ctx   context.Context
	scene *scene.Scene
	input Input

	img      *ebiten.Image
	uploaded bool
}

func NewGame(ctx context.Context, sc *scene.Scene, input Input) *Game {
	return &Game{ctx: ctx, scene: sc, input: input}
}

// Update applies at most one scroll step per tick and re-renders when the view changed.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if _, dy := g.input.Wheel(); dy != 0 {
		x, y := g.input.CursorPosition()
		g.scene.Scroll(float64(x), float64(y), dy)
	}

	rendered, err := g.scene.Refresh(g.ctx)
	if err != nil {
		if g.ctx.Err() != nil {
			return ebiten.Termination
		}
		return err
	}
	if rendered {
		g.uploaded = false
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pixels := g.scene.Image()
	if pixels == nil {
		return
	}

	if g.img == nil {
		g.img = ebiten.NewImage(g.scene.Size())
	}
	if !g.uploaded {
		g.img.WritePixels(pixels.Pix)
		g.uploaded = true
	}

	screen.DrawImage(g.img, nil)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.scene.Size()
}
