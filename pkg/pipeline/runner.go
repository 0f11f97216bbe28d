package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/regiolab/regio/pkg/cache"
	"github.com/regiolab/regio/pkg/errors"
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/observability"
	"github.com/regiolab/regio/pkg/region"
	"github.com/regiolab/regio/pkg/render"
	"github.com/regiolab/regio/pkg/render/sink"
	"github.com/regiolab/regio/pkg/rng"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	g, rounds, gridHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.Rounds = rounds
	result.Stats.RegionCount = len(g.Labels())
	result.CacheInfo.GridHit = gridHit
	result.GridHash = cache.Hash(r.marshalGrid(g, opts))

	opts.Logger.Info("generated decomposition",
		"size", opts.Size(),
		"regions", result.Stats.RegionCount,
		"rounds", rounds,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo grows a decomposition with caching and returns the
// grid, the number of growth rounds (0 on a cache hit), and cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*grid.Grid, int, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, 0, false, err
	}

	cacheKey := r.Keyer.GridKey(opts.GridKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := sink.ParseJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "grid")
				return g, 0, true, nil // Cache hit
			}
			// If deserialization fails, fall through to regenerate
		}
		observability.Cache().OnCacheMiss(ctx, "grid")
	}

	observability.Pipeline().OnGenerateStart(ctx, opts.Width, opts.Height, opts.Classes)
	start := time.Now()

	// Count rounds on top of the caller's sink.
	rounds := 0
	frameSink := region.SinkFunc(func(g *grid.Grid, remaining int) {
		rounds++
		if opts.Sink != nil {
			opts.Sink.Frame(g, remaining)
		}
	})

	gen, err := region.New(opts.Size(), opts.RegionOptions(), rng.New(opts.Seed), frameSink)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, 0, time.Since(start), err)
		return nil, 0, false, err
	}
	g, err := gen.Run(ctx)
	observability.Pipeline().OnGenerateComplete(ctx, rounds, time.Since(start), err)
	if err != nil {
		return nil, rounds, false, err
	}

	// Cache the result
	if data := r.marshalGrid(g, opts); data != nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLGrid); err == nil {
			observability.Cache().OnCacheSet(ctx, "grid", len(data))
		}
	}

	return g, rounds, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*grid.Grid, error) {
	g, _, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *grid.Grid, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	gridData := r.marshalGrid(g, opts)
	gridHash := cache.Hash(gridData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	rendered, err := r.renderAll(g, gridHash, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *grid.Grid, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

// renderAll renders every requested format with a shared palette.
func (r *Runner) renderAll(g *grid.Grid, gridHash string, opts Options) (map[string][]byte, error) {
	palette := render.NewPalette(g.Labels())
	out := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error
		switch format {
		case FormatPNG:
			data, err = sink.RenderPNG(g, sink.WithPNGPalette(palette), sink.WithPNGScale(opts.Scale))
		case FormatSVG:
			data, err = sink.RenderSVG(g, sink.WithSVGPalette(palette), sink.WithSVGScale(opts.Scale))
		case FormatJSON:
			data, err = sink.RenderJSON(g,
				sink.WithJSONRunID(gridHash),
				sink.WithJSONSeed(opts.Seed),
				sink.WithJSONParams(opts.Classes, opts.Factor),
			)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		out[format] = data
	}
	return out, nil
}

// marshalGrid serializes a grid for caching and hashing. The run id is
// derived from the generation key so the serialization is deterministic.
func (r *Runner) marshalGrid(g *grid.Grid, opts Options) []byte {
	data, err := sink.RenderJSON(g,
		sink.WithJSONRunID(r.Keyer.GridKey(opts.GridKeyOpts())),
		sink.WithJSONSeed(opts.Seed),
		sink.WithJSONParams(opts.Classes, opts.Factor),
	)
	if err != nil {
		return nil
	}
	return data
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
