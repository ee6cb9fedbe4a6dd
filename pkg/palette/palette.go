// Package palette turns escape intensities into colours.
package palette

import (
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const Default = "gray"

// A Palette colours an intensity in [0, 1]. Values outside that range are clamped.
type Palette interface {
	Color(t float64) color.RGBA
}

// Gray maps intensity directly to brightness: 0 is black, 1 is white.
type Gray struct{}

func (Gray) Color(t float64) color.RGBA {
	v := uint8(math.Round(clamp(t) * 255))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Hue sweeps hue in HCL space while brightening with intensity.
type Hue struct {
	// Start is the hue at intensity 0, in degrees.
	Start float64
	// Span is how many degrees the hue turns between intensity 0 and 1.
	Span float64
}

func (h Hue) Color(t float64) color.RGBA {
	t = clamp(t)
	c := colorful.Hcl(math.Mod(h.Start+h.Span*t, 360), 0.5, 0.1+0.8*t).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var byName = map[string]Palette{
	"gray": Gray{},
	"hue":  Hue{Start: 240, Span: 300},
}

// Names lists the palettes accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ByName(name string) (Palette, error) {
	p, ok := byName[name]
	if !ok {
		return nil, errors.Errorf("unknown palette %q, want one of %v", name, Names())
	}
	return p, nil
}

func clamp(t float64) float64 {
	if math.IsNaN(t) {
		return 0.0
	}
	return math.Min(math.Max(t, 0.0), 1.0)
}
