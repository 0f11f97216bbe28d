// Package pipeline provides the core generation pipeline for regio.
//
// This package implements the complete generate → render pipeline that can
// be used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: grow a labeled region decomposition from random seeds
//  2. Render: encode the grid in various formats (PNG, SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage result is cached.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:   128,
//	    Height:  96,
//	    Classes: 10,
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/regiolab/regio/pkg/cache"
	"github.com/regiolab/regio/pkg/errors"
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/region"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default grid width in cells.
	DefaultWidth = 128

	// DefaultHeight is the default grid height in cells.
	DefaultHeight = 96

	// DefaultClasses is the default number of regions to grow.
	DefaultClasses = 10

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the default cell edge length in output pixels.
	DefaultScale = 4
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Classes   int    `json:"classes,omitempty"`
	Factor    int    `json:"factor,omitempty"`
	Instances int    `json:"instances,omitempty"`
	Skips     int    `json:"skips,omitempty"`
	Kernel    int    `json:"kernel,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   int      `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Sink   region.Sink `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the fully labeled decomposition.
	Grid *grid.Grid

	// GridHash is the content hash of the serialized grid.
	GridHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rounds       int
	RegionCount  int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GridHit   bool // Whether the grid came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for grid generation.
// Seeding and kernel preconditions are validated by the region package when
// the generator is constructed.
func (o *Options) ValidateForGenerate() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Classes == 0 {
		o.Classes = DefaultClasses
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if err := (grid.Size{W: o.Width, H: o.Height}).Validate(); err != nil {
		return err
	}
	if o.Classes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "classes must be positive, got %d", o.Classes)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Size returns the grid dimensions as a grid.Size.
func (o *Options) Size() grid.Size {
	return grid.Size{W: o.Width, H: o.Height}
}

// RegionOptions returns the growth-core options.
func (o *Options) RegionOptions() region.Options {
	return region.Options{
		Classes:   o.Classes,
		Factor:    o.Factor,
		Instances: o.Instances,
		Skips:     o.Skips,
		Kernel:    o.Kernel,
	}
}

// GridKeyOpts returns cache key options for the generate stage.
func (o *Options) GridKeyOpts() cache.GridKeyOpts {
	ropts := o.RegionOptions()
	ropts.SetDefaults()
	return cache.GridKeyOpts{
		Width:     o.Width,
		Height:    o.Height,
		Classes:   ropts.Classes,
		Factor:    ropts.Factor,
		Instances: ropts.Instances,
		Skips:     ropts.Skips,
		Kernel:    ropts.Kernel,
		Seed:      o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
	}
}
