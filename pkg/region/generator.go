// Package region implements the randomized region-growth core.
//
// A generator starts from sparse seed cells (see [RandomGrid]) and grows
// labeled regions outward round by round until the grid is fully covered.
// Each round shuffles the remaining unlabeled coordinates, attempts to label
// a throttled subset of them from their neighborhoods ([Vicinity]), and
// removes the successes. Random processing order plus random neighbor
// sampling produce the organic, irregular boundaries the output is used for.
//
// Growth always terminates: at least one seed exists, labeled cells never
// revert, and on a toroidal grid every unlabeled cell adjacent to a labeled
// one resolves with nonzero probability each round.
package region

import (
	"context"

	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/rng"
)

// Defaults used by [Options.SetDefaults]. Factor, skips and kernel diameter
// follow the values the decomposition output format was designed around.
const (
	DefaultFactor = 10
	DefaultSkips  = 3
	DefaultKernel = 5
)

// Options configures a Generator.
type Options struct {
	// Classes is the number of distinct region labels to seed. Required, > 0.
	Classes int `json:"classes"`

	// Factor scales label values: the i-th seed gets label i*Factor.
	Factor int `json:"factor,omitempty"`

	// Instances, when >= Classes, switches seeding to draws with replacement
	// and places Instances seeds instead of Classes.
	Instances int `json:"instances,omitempty"`

	// Skips throttles growth: per round only every Skips-th unlabeled
	// coordinate attempts resolution, until fewer than Skips remain.
	// Higher values grow slower and produce smoother boundaries.
	Skips int `json:"skips,omitempty"`

	// Kernel is the odd neighborhood diameter used for growth lookups.
	Kernel int `json:"kernel,omitempty"`
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.Factor == 0 {
		o.Factor = DefaultFactor
	}
	if o.Skips == 0 {
		o.Skips = DefaultSkips
	}
	if o.Kernel == 0 {
		o.Kernel = DefaultKernel
	}
}

// Sink receives successive grid snapshots during growth, once per round.
// The grid passed to Frame is live; implementations must copy it if they
// retain it. Generators work fine with a no-op sink.
type Sink interface {
	Frame(g *grid.Grid, remaining int)
}

// NullSink discards all frames.
type NullSink struct{}

// Frame does nothing.
func (NullSink) Frame(*grid.Grid, int) {}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(g *grid.Grid, remaining int)

// Frame calls f.
func (f SinkFunc) Frame(g *grid.Grid, remaining int) { f(g, remaining) }

// Generator grows labeled regions from random seeds until the grid is full.
//
// A Generator owns its grid and coordinate list exclusively for the duration
// of one Run call; it is not safe for concurrent use.
type Generator struct {
	grid   *grid.Grid
	coords []grid.Coord
	vic    *Vicinity
	opts   Options
	r      *rng.RNG
	sink   Sink
}

// checker is the stateful per-round throttle. Its counter persists across
// rounds, cycling modulo skips; a coordinate only attempts resolution when
// the counter wraps to zero or when fewer than skips coordinates remain.
type checker struct {
	i     int
	skips int
}

func (c *checker) attempt(remaining int) bool {
	c.i = (c.i + 1) % c.skips
	return c.i%c.skips == 0 || remaining < c.skips
}

// New validates opts, seeds a grid and returns a ready-to-run Generator.
// All precondition violations (zero-area size, impossible unique draw,
// invalid kernel diameter) surface here, not during Run.
func New(size grid.Size, opts Options, r *rng.RNG, sink Sink) (*Generator, error) {
	opts.SetDefaults()

	offsets, err := KernelBorder(opts.Kernel)
	if err != nil {
		return nil, err
	}
	g, coords, err := RandomGrid(size, opts.Classes, opts.Factor, opts.Instances, r)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NullSink{}
	}
	return &Generator{
		grid:   g,
		coords: coords,
		vic:    NewVicinity(g, offsets, r),
		opts:   opts,
		r:      r,
		sink:   sink,
	}, nil
}

// Grid exposes the generator's grid. Before Run it holds only seeds; after a
// completed Run every cell carries a region label.
func (g *Generator) Grid() *grid.Grid { return g.grid }

// Remaining returns the number of still-unlabeled coordinates.
func (g *Generator) Remaining() int { return len(g.coords) }

// Run grows regions until no unlabeled coordinates remain and returns the
// fully labeled grid. The context is checked between rounds, so cancellation
// leaves a partially grown grid behind.
//
// The resolver reads the same grid object the round writes into, so cells
// labeled early in a round are visible to later lookups of the same round.
// This intra-round cascading is deliberate; it is what makes boundaries
// ragged instead of strictly synchronous.
func (g *Generator) Run(ctx context.Context) (*grid.Grid, error) {
	chk := &checker{skips: g.opts.Skips}

	for len(g.coords) > 0 {
		select {
		case <-ctx.Done():
			return g.grid, ctx.Err()
		default:
		}

		g.r.Shuffle(len(g.coords), func(i, j int) {
			g.coords[i], g.coords[j] = g.coords[j], g.coords[i]
		})

		remaining := len(g.coords)
		kept := g.coords[:0]
		for _, c := range g.coords {
			if chk.attempt(remaining) && g.vic.Resolve(c.X, c.Y, g.grid) {
				continue
			}
			kept = append(kept, c)
		}
		g.coords = kept

		g.sink.Frame(g.grid, len(g.coords))
	}
	return g.grid, nil
}
