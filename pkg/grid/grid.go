// Package grid provides the integer-labeled 2D grid that region generators
// operate on.
//
// Cells hold int labels, with 0 meaning "unlabeled". The grid is stored as a
// flat row-major slice and uses toroidal (wrap-around) boundary conditions:
// the left edge neighbors the right edge and the top edge neighbors the
// bottom edge.
package grid

import "github.com/regiolab/regio/pkg/errors"

// Size describes the dimensions of a grid.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Area returns the total number of cells.
func (s Size) Area() int { return s.W * s.H }

// Validate checks that the size describes a non-empty grid.
func (s Size) Validate() error {
	if s.W <= 0 || s.H <= 0 {
		return errors.New(errors.ErrCodeInvalidSize, "grid size %dx%d has zero area", s.W, s.H)
	}
	return nil
}

// Coord is a single cell position, with 0 <= X < W and 0 <= Y < H.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid stores label values in row-major order.
type Grid struct {
	size Size
	data []int
}

// New allocates a zeroed grid with the given size.
func New(size Size) (*Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &Grid{size: size, data: make([]int, size.Area())}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size.W + x }

// At returns the label at (x, y).
func (g *Grid) At(x, y int) int { return g.data[y*g.size.W+x] }

// Set writes the label at (x, y).
func (g *Grid) Set(x, y, v int) { g.data[y*g.size.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.size.W + g.size.W) % g.size.W
	y = (y%g.size.H + g.size.H) % g.size.H
	return x, y
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)
	return &Grid{size: g.size, data: data}
}

// Rows returns the grid as a freshly allocated [H][W] nested slice.
// Useful for serialization; mutations of the result do not affect the grid.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size.H)
	for y := 0; y < g.size.H; y++ {
		row := make([]int, g.size.W)
		copy(row, g.data[y*g.size.W:(y+1)*g.size.W])
		rows[y] = row
	}
	return rows
}

// FromRows builds a grid from a nested [H][W] slice.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "empty row data")
	}
	g, err := New(Size{W: len(rows[0]), H: len(rows)})
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.size.W {
			return nil, errors.New(errors.ErrCodeInvalidInput, "ragged row %d: %d cells, want %d", y, len(row), g.size.W)
		}
		copy(g.data[y*g.size.W:(y+1)*g.size.W], row)
	}
	return g, nil
}

// Labels returns the distinct nonzero labels present in the grid, in
// ascending order.
func (g *Grid) Labels() []int {
	seen := map[int]bool{}
	for _, v := range g.data {
		if v != 0 {
			seen[v] = true
		}
	}
	labels := make([]int, 0, len(seen))
	for v := range seen {
		labels = append(labels, v)
	}
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && labels[j] < labels[j-1]; j-- {
			labels[j], labels[j-1] = labels[j-1], labels[j]
		}
	}
	return labels
}
