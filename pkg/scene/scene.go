// Package scene keeps the camera and the last rendered frame for an interactive view.
//
// A Scene is owned by one goroutine, the one running the frame loop. Refresh fans the
// rendering out internally and returns once the pixels are complete.
package scene

import (
	"context"
	"image"

	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/camera"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
)

type Options struct {
	Fractal    escape.Fractal
	Palette    palette.Palette
	Iterations int
	Workers    int
}

type Scene struct {
	opts Options
	cam  camera.Camera

	width, height int

	img   *image.RGBA
	dirty bool
}

func New(opts Options, width, height int) *Scene {
	if opts.Palette == nil {
		opts.Palette = palette.Gray{}
	}

	return &Scene{
		opts:   opts,
		cam:    camera.New(),
		width:  width,
		height: height,
		dirty:  true,
	}
}

func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen size. The camera is kept, so the same plane region stays centred.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.dirty = true
}

func (s *Scene) Camera() camera.Camera {
	return s.cam
}

func (s *Scene) SetCamera(cam camera.Camera) {
	if cam == s.cam {
		return
	}
	s.cam = cam
	s.dirty = true
}

// Scroll applies one zoom step at the cursor pixel. Reports whether the view changed.
func (s *Scene) Scroll(x, y, delta float64) bool {
	if !s.cam.Scroll(x, y, s.width, s.height, delta) {
		return false
	}
	s.dirty = true
	return true
}

// Dirty reports whether the pixels are stale.
func (s *Scene) Dirty() bool {
	return s.dirty
}

// Refresh re-renders the pixels if the view changed since the last render.
// Reports whether it rendered.
func (s *Scene) Refresh(ctx context.Context) (bool, error) {
	if !s.dirty {
		return false, nil
	}

	frame, err := escape.Render(ctx, s.opts.Fractal, s.cam, s.width, s.height, s.opts.Iterations, s.opts.Workers)
	if err != nil {
		return false, errors.Wrap(err, "refreshing scene")
	}

	if s.img == nil || s.img.Bounds().Dx() != s.width || s.img.Bounds().Dy() != s.height {
		s.img = image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	}

	for i, v := range frame.Intensity {
		c := s.opts.Palette.Color(v)
		j := i * 4
		s.img.Pix[j+0] = c.R
		s.img.Pix[j+1] = c.G
		s.img.Pix[j+2] = c.B
		s.img.Pix[j+3] = c.A
	}

	s.dirty = false
	return true, nil
}

// Image returns the last rendered pixels, or nil before the first Refresh.
// The image is reused by later refreshes.
func (s *Scene) Image() *image.RGBA {
	return s.img
}
