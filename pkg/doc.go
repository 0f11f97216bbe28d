// Package pkg provides the core libraries for regio region decomposition.
//
// # Overview
//
// Regio grows labeled regions from randomly seeded cells on a toroidal grid
// and renders the finished decomposition as an image. The pkg directory is
// organized into three main areas:
//
//  1. Domain logic - grid, region growth, adjacency analysis
//  2. Rendering - palettes and output sinks (PNG, SVG, JSON)
//  3. Infrastructure - caching, pipeline orchestration, observability
//
// # Architecture
//
// The typical data flow through regio:
//
//	seed placement ([region.RandomGrid])
//	         ↓
//	iterative growth ([region.Generator])
//	         ↓
//	palette + sinks ([render], [render/sink])
//	         ↓
//	PNG/SVG/JSON output
//
// # Quick Start
//
// Generate a decomposition and render it to PNG:
//
//	import (
//	    "context"
//	    "github.com/regiolab/regio/pkg/grid"
//	    "github.com/regiolab/regio/pkg/region"
//	    "github.com/regiolab/regio/pkg/render"
//	    "github.com/regiolab/regio/pkg/render/sink"
//	    "github.com/regiolab/regio/pkg/rng"
//	)
//
//	gen, _ := region.New(grid.Size{W: 128, H: 96}, region.Options{Classes: 10}, rng.New(42), nil)
//	g, _ := gen.Run(context.Background())
//	png, _ := sink.RenderPNG(g, sink.WithPNGPalette(render.NewPalette(g.Labels())))
//
// Or use the cached pipeline, which is what the CLI and HTTP API run:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{Classes: 10, Formats: []string{"png"}})
//
// # Main Packages
//
// [grid] - The toroidal cell grid: coordinates, wrapping, serialization.
//
// [region] - Seed placement, neighborhood kernels, vicinity resolution, and
// the round-based growth driver.
//
// [adjacency] - Region adjacency graphs and Graphviz diagram output.
//
// [render] - Deterministic label palettes.
//
// [render/sink] - Output formats: PNG raster, SVG, and JSON.
//
// [pipeline] - Complete generate → render pipeline with per-stage caching,
// shared by CLI and HTTP API.
//
// [cache] - Cache backends (file, Redis, MongoDB, null) and key derivation.
//
// [rng] - Seeded PCG random source with sampling helpers.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional hooks for pipeline and cache events.
//
// [buildinfo] - Version information injected at build time.
//
// [grid]: https://pkg.go.dev/github.com/regiolab/regio/pkg/grid
// [region]: https://pkg.go.dev/github.com/regiolab/regio/pkg/region
// [adjacency]: https://pkg.go.dev/github.com/regiolab/regio/pkg/adjacency
// [render]: https://pkg.go.dev/github.com/regiolab/regio/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/regiolab/regio/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/regiolab/regio/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/regiolab/regio/pkg/cache
// [rng]: https://pkg.go.dev/github.com/regiolab/regio/pkg/rng
// [errors]: https://pkg.go.dev/github.com/regiolab/regio/pkg/errors
// [observability]: https://pkg.go.dev/github.com/regiolab/regio/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/regiolab/regio/pkg/buildinfo
// [region.RandomGrid]: https://pkg.go.dev/github.com/regiolab/regio/pkg/region#RandomGrid
// [region.Generator]: https://pkg.go.dev/github.com/regiolab/regio/pkg/region#Generator
package pkg
