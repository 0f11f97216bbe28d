package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/regiolab/regio/pkg/errors"
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	palette render.Palette
	scale   int
}

// WithPNGPalette sets the label palette. Without it a palette is derived
// from the grid's labels.
func WithPNGPalette(p render.Palette) PNGOption {
	return func(r *pngRenderer) { r.palette = p }
}

// WithPNGScale sets the edge length in pixels of one grid cell (default 4).
func WithPNGScale(s int) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the grid as a PNG image, one scale×scale block of
// pixels per cell.
func RenderPNG(g *grid.Grid, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 4}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %d", r.scale)
	}
	if r.palette == nil {
		r.palette = render.NewPalette(g.Labels())
	}

	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W*r.scale, size.H*r.scale))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := r.palette.Color(g.At(x, y))
			for py := y * r.scale; py < (y+1)*r.scale; py++ {
				for px := x * r.scale; px < (x+1)*r.scale; px++ {
					img.SetRGBA(px, py, c)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
