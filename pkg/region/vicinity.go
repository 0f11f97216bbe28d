package region

import (
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/rng"
)

// Vicinity looks up the surroundings of a cell and labels it from the first
// already-labeled neighbor it finds.
//
// It reads from a canonical grid and writes into a caller-supplied target
// grid; the canonical grid is never mutated through the resolver. The grid's
// toroidal wrapping applies to every neighbor lookup. The offset list is a
// working copy shuffled on every Resolve call, so the canonical kernel ring
// stays intact.
type Vicinity struct {
	canonical *grid.Grid
	offsets   []Offset
	r         *rng.RNG
}

// NewVicinity creates a resolver reading from canonical using the given
// neighbor offsets. The offsets slice is copied.
func NewVicinity(canonical *grid.Grid, offsets []Offset, r *rng.RNG) *Vicinity {
	working := make([]Offset, len(offsets))
	copy(working, offsets)
	return &Vicinity{canonical: canonical, offsets: working, r: r}
}

// Resolve tries to label (x, y) in target from a random labeled neighbor.
// Offsets are visited in freshly shuffled order; the first neighbor with a
// nonzero canonical value wins. Returns false and leaves target untouched
// when the entire neighborhood ring is unlabeled.
func (v *Vicinity) Resolve(x, y int, target *grid.Grid) bool {
	v.r.Shuffle(len(v.offsets), func(i, j int) {
		v.offsets[i], v.offsets[j] = v.offsets[j], v.offsets[i]
	})
	for _, o := range v.offsets {
		xx, yy := v.canonical.Wrap(x+o.DX, y+o.DY)
		if val := v.canonical.At(xx, yy); val != 0 {
			target.Set(x, y, val)
			return true
		}
	}
	return false
}
