// Package render provides visualization support for region decompositions.
//
// # Overview
//
// This package contains the color handling shared by every output format:
//
//   - Deterministic palettes mapping region labels to colors
//   - Output sinks (in the [sink] subpackage)
//
// # Palettes
//
// [NewPalette] assigns each label an evenly spaced hue in HCL space, so
// neighboring regions stay visually distinct and the same label set always
// produces the same colors. Label 0 (unclaimed cells) is always black.
//
//	p := render.NewPalette(g.Labels())
//	c := p.Color(10)
//
// # Output Sinks
//
// The [sink] subpackage renders a finished grid into concrete formats:
//
//	png, err := sink.RenderPNG(g, sink.WithPNGPalette(p), sink.WithPNGScale(4))
//	svg, err := sink.RenderSVG(g, sink.WithSVGPalette(p))
//	doc, err := sink.RenderJSON(g, sink.WithJSONSeed(42))
//
// All sinks share the same palette type, so the raster image, the vector
// image, and the adjacency diagram agree on region colors.
//
// [sink]: https://pkg.go.dev/github.com/regiolab/regio/pkg/render/sink
package render
