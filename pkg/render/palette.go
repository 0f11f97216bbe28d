// Package render turns labeled grids into visual artifacts.
//
// The package provides a deterministic label→color palette plus raster and
// vector sinks (see the sink subpackage). Rendering never mutates the grid
// and is safe to call concurrently on the same grid.
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps region labels to display colors. Label 0 (unlabeled) renders
// as black, matching the dark background of partially grown grids.
type Palette map[int]color.RGBA

// NewPalette builds a deterministic palette for the given labels using
// evenly spaced hues in HCL space. The same label set always yields the same
// colors, independent of slice order.
func NewPalette(labels []int) Palette {
	distinct := map[int]bool{}
	for _, l := range labels {
		if l != 0 {
			distinct[l] = true
		}
	}
	sorted := make([]int, 0, len(distinct))
	for l := range distinct {
		sorted = append(sorted, l)
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	p := Palette{0: {A: 0xff}}
	n := max(len(sorted), 1)
	for i, l := range sorted {
		hue := 360.0 * float64(i) / float64(n)
		c := colorful.Hcl(hue, 0.5, 0.7).Clamped()
		r, g, b := c.RGB255()
		p[l] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}

// Color returns the color for a label, falling back to black for labels the
// palette has never seen.
func (p Palette) Color(label int) color.RGBA {
	if c, ok := p[label]; ok {
		return c
	}
	return color.RGBA{A: 0xff}
}
