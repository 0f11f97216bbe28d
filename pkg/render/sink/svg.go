package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/regiolab/regio/pkg/errors"
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	palette render.Palette
	scale   int
}

// WithSVGPalette sets the label palette. Without it a palette is derived
// from the grid's labels.
func WithSVGPalette(p render.Palette) SVGOption {
	return func(r *svgRenderer) { r.palette = p }
}

// WithSVGScale sets the edge length in user units of one grid cell (default 4).
func WithSVGScale(s int) SVGOption {
	return func(r *svgRenderer) { r.scale = s }
}

// RenderSVG renders the grid as an SVG document. Horizontal runs of
// equally-labeled cells collapse into single rects, which keeps documents
// small for grids with large regions.
func RenderSVG(g *grid.Grid, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{scale: 4}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "svg scale must be positive, got %d", r.scale)
	}
	if r.palette == nil {
		r.palette = render.NewPalette(g.Labels())
	}

	size := g.Size()
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size.W*r.scale, size.H*r.scale)

	for y := 0; y < size.H; y++ {
		x := 0
		for x < size.W {
			label := g.At(x, y)
			run := 1
			for x+run < size.W && g.At(x+run, y) == label {
				run++
			}
			c := r.palette.Color(label)
			canvas.Rect(x*r.scale, y*r.scale, run*r.scale, r.scale,
				fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B))
			x += run
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}
