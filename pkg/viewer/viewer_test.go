package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/willbeason/escape-fractal/pkg/camera"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/scene"
)

type fakeInput struct {
	dx, dy float64
	x, y   int
}

func (f *fakeInput) Wheel() (float64, float64) { return f.dx, f.dy }

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func newGame(ctx context.Context, in Input) (*Game, *scene.Scene) {
	sc := scene.New(scene.Options{
		Fractal:    escape.NewMandelbrot(),
		Iterations: 20,
		Workers:    1,
	}, 32, 18)

	return NewGame(ctx, sc, in), sc
}

func TestUpdateScrollsAtCursor(t *testing.T) {
	in := &fakeInput{dy: 1, x: 8, y: 4}
	g, sc := newGame(context.Background(), in)

	before := sc.Camera().ToPlane(8, 4, 32, 18)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := 1.0
	want *= camera.ZoomFactor
	cam := sc.Camera()
	if cam.Zoom != want {
		t.Fatalf("Zoom = %v, want %v", cam.Zoom, want)
	}
	after := cam.ToPlane(8, 4, 32, 18)
	if d := after - before; real(d)*real(d)+imag(d)*imag(d) > 1e-24 {
		t.Fatalf("point under cursor moved from %v to %v", before, after)
	}
	if sc.Dirty() {
		t.Fatal("Update left the scene unrendered")
	}
}

func TestUpdateIgnoresHorizontalWheel(t *testing.T) {
	in := &fakeInput{dx: 3, x: 8, y: 4}
	g, sc := newGame(context.Background(), in)

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cam := sc.Camera(); cam != camera.New() {
		t.Fatalf("horizontal wheel changed camera to %v", cam)
	}
}

func TestUpdateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newGame(ctx, &fakeInput{})
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update error = %v, want ebiten.Termination", err)
	}
}

func TestLayoutIsSceneSize(t *testing.T) {
	g, _ := newGame(context.Background(), &fakeInput{})
	if w, h := g.Layout(640, 480); w != 32 || h != 18 {
		t.Fatalf("Layout = %dx%d, want 32x18", w, h)
	}
}
