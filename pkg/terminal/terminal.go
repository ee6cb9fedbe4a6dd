// Package terminal shows a scene in a terminal, two pixels per character cell.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/scene"
)

// upperHalf shows the top pixel of a cell as foreground and the bottom one as background.
const upperHalf = '▀'

type Viewer struct {
	screen tcell.Screen
	scene  *scene.Scene
}

// New wraps an uninitialized screen. Run initializes and finalizes it.
func New(screen tcell.Screen, sc *scene.Scene) *Viewer {
	return &Viewer{screen: screen, scene: sc}
}

// Run opens the terminal and shows sc until Esc, q or Ctrl-C, or until ctx is done.
func Run(ctx context.Context, sc *scene.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}

	return New(screen, sc).Run(ctx)
}

func (v *Viewer) Run(ctx context.Context) error {
	if err := v.screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer v.screen.Fini()

	v.screen.EnableMouse()
	v.screen.HideCursor()
	v.resize()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		if err := v.Draw(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
		}
	}
}

// HandleEvent applies one terminal event to the scene. Returns false when the viewer should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		var delta float64
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			delta = 1
		case ev.Buttons()&tcell.WheelDown != 0:
			delta = -1
		default:
			return true
		}

		col, row := ev.Position()
		v.scene.Scroll(float64(col), float64(2*row), delta)

	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}

	return true
}

// Draw re-renders the scene if needed and paints it.
func (v *Viewer) Draw(ctx context.Context) error {
	rendered, err := v.scene.Refresh(ctx)
	if err != nil {
		return err
	}
	if !rendered {
		return nil
	}

	img := v.scene.Image()
	w, h := v.scene.Size()
	for row := 0; 2*row < h; row++ {
		for col := 0; col < w; col++ {
			top := img.RGBAAt(col, 2*row)
			bottom := img.RGBAAt(col, 2*row+1)

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}

	v.screen.Show()
	return nil
}

func (v *Viewer) resize() {
	cols, rows := v.screen.Size()
	v.scene.Resize(max(cols, 1), max(2*rows, 2))
}
