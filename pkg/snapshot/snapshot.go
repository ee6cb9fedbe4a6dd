// Package snapshot writes a single rendered view to a PNG file.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/scene"
)

const (
	captionMargin  = 8.0
	captionPadding = 4.0
)

type Options struct {
	Path string
	// Caption draws the fractal name and camera in the top-left corner.
	Caption bool
	Title   string
}

// DefaultPath names a snapshot after the fractal and the time it was taken.
func DefaultPath(name string, now time.Time) string {
	return filepath.Join("out", fmt.Sprintf("%s-%s.png", name, now.Format("20060102150405")))
}

// Save renders sc if needed and writes it to opts.Path, creating parent directories.
func Save(ctx context.Context, sc *scene.Scene, opts Options) error {
	if _, err := sc.Refresh(ctx); err != nil {
		return err
	}

	dc := gg.NewContextForImage(sc.Image())
	if opts.Caption {
		drawCaption(dc, fmt.Sprintf("%s %s", opts.Title, sc.Camera()))
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrap(err, "creating snapshot directory")
		}
	}

	if err := dc.SavePNG(opts.Path); err != nil {
		return errors.Wrapf(err, "writing %s", opts.Path)
	}

	return nil
}

func drawCaption(dc *gg.Context, text string) {
	w, h := dc.MeasureString(text)

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(captionMargin, captionMargin, w+2*captionPadding, h+2*captionPadding)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, captionMargin+captionPadding, captionMargin+captionPadding, 0, 1)
}
