package region

import (
	"github.com/regiolab/regio/pkg/errors"
	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/rng"
)

// RandomGrid creates a grid with randomly seeded cells holding values > 0
// and returns it together with the list of all still-unlabeled coordinates.
//
// When instances < classes, exactly classes seeds are placed at distinct
// random cells. Otherwise instances positions are drawn with replacement, so
// several draws may land on the same cell (later draws overwrite earlier
// ones). Every draw is assigned its own label i*factor with i counting from
// 1, even when instances exceeds classes.
//
// The unlabeled coordinates are enumerated in column-major order (all y for
// a fixed x, outer loop over x). Growth shuffles the list per round, but a
// fixed enumeration keeps seeded runs reproducible.
func RandomGrid(size grid.Size, classes, factor, instances int, r *rng.RNG) (*grid.Grid, []grid.Coord, error) {
	g, err := grid.New(size)
	if err != nil {
		return nil, nil, err
	}
	if classes <= 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "classes must be positive, got %d", classes)
	}
	if factor <= 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "factor must be positive, got %d", factor)
	}

	var draws []int
	if instances < classes {
		draws, err = r.SampleWithoutReplacement(size.Area(), classes)
		if err != nil {
			return nil, nil, err
		}
	} else {
		draws = r.SampleWithReplacement(size.Area(), instances)
	}

	cells := g.Cells()
	for i, c := range draws {
		cells[c] = (i + 1) * factor
	}

	var coords []grid.Coord
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			if g.At(x, y) == 0 {
				coords = append(coords, grid.Coord{X: x, Y: y})
			}
		}
	}
	return g, coords, nil
}
