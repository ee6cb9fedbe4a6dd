// Package camera maps screen pixels to points on the complex plane.
package camera

import (
	"fmt"

	"github.com/willbeason/escape-fractal/pkg/transforms"
)

const (
	// ZoomFactor is how much one scroll step magnifies or shrinks the view.
	ZoomFactor = 1.1

	// ViewWidth and ViewHeight are the extent of the plane visible at zoom 1.
	ViewWidth  = 3.0
	ViewHeight = 2.0
)

// Camera is the view onto the plane. The offset is the plane point at the centre of the screen.
//
// The zero value is not usable; start from New.
type Camera struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

func New() Camera {
	return Camera{Zoom: 1.0}
}

// Reset returns the camera to its initial view.
func (c *Camera) Reset() {
	*c = New()
}

// Transform returns the map from pixel coordinates, packed as complex(x, y), to the plane for a
// screen of the given size.
//
//	re = 1.5*(x - W/2)/(0.5*zoom*W) + OffsetX
//	im = (y - H/2)/(0.5*zoom*H) + OffsetY
func (c Camera) Transform(width, height int) transforms.Affine {
	return transforms.Affine{
		ScaleRe: ViewWidth / (c.Zoom * float64(width)),
		ScaleIm: ViewHeight / (c.Zoom * float64(height)),
		Add:     complex(c.OffsetX-0.5*ViewWidth/c.Zoom, c.OffsetY-0.5*ViewHeight/c.Zoom),
	}
}

// ToPlane maps the pixel (x, y) to the plane.
func (c Camera) ToPlane(x, y float64, width, height int) complex128 {
	return c.Transform(width, height).Next(complex(x, y))
}

// ToScreen maps a plane point back to fractional pixel coordinates.
func (c Camera) ToScreen(p complex128, width, height int) (float64, float64) {
	s := c.Transform(width, height).Inverse().Next(p)
	return real(s), imag(s)
}

// Scroll applies one zoom step anchored at the cursor: in for a positive delta, out for a negative
// one. The plane point under the cursor keeps its screen position. A zero delta is ignored.
// Reports whether the camera changed.
func (c *Camera) Scroll(cursorX, cursorY float64, width, height int, delta float64) bool {
	if delta == 0 {
		return false
	}

	p := c.ToPlane(cursorX, cursorY, width, height)

	oldZoom := c.Zoom
	if delta > 0 {
		c.Zoom *= ZoomFactor
	} else {
		c.Zoom /= ZoomFactor
	}

	ratio := oldZoom / c.Zoom
	c.OffsetX = real(p) - (real(p)-c.OffsetX)*ratio
	c.OffsetY = imag(p) - (imag(p)-c.OffsetY)*ratio

	return true
}

func (c Camera) String() string {
	return fmt.Sprintf("zoom=%.6g center=(%.10g, %.10g)", c.Zoom, c.OffsetX, c.OffsetY)
}
