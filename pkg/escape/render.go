package escape

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/camera"
	"golang.org/x/sync/errgroup"
)

// Frame holds one intensity per pixel, row-major.
type Frame struct {
	Width     int
	Height    int
	Intensity []float64
}

func (f *Frame) At(x, y int) float64 {
	return f.Intensity[x+y*f.Width]
}

// Render evaluates every pixel of a width x height screen viewed through cam.
//
// Rows are spread over at most workers goroutines; workers <= 0 uses one per CPU.
// Each worker writes only its own rows, so the result matches a sequential pass.
func Render(ctx context.Context, f Fractal, cam camera.Camera, width, height, maxIterations, workers int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid frame size %dx%d", width, height)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	frame := &Frame{
		Width:     width,
		Height:    height,
		Intensity: make([]float64, width*height),
	}
	toPlane := cam.Transform(width, height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			row := frame.Intensity[y*width : (y+1)*width]
			for x := range row {
				p := toPlane.Next(complex(float64(x), float64(y)))
				row[x] = Intensity(f.Escape(p, maxIterations), maxIterations)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", f.Name())
	}
	// Cancellation can stop scheduling without any worker reporting it.
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "rendering %s", f.Name())
	}

	return frame, nil
}
