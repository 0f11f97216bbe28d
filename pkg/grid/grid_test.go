package grid

import (
	"testing"

	"github.com/regiolab/regio/pkg/errors"
)

func TestNewRejectsZeroArea(t *testing.T) {
	tests := []Size{
		{W: 0, H: 10},
		{W: 10, H: 0},
		{W: 0, H: 0},
		{W: -3, H: 4},
	}
	for _, size := range tests {
		if _, err := New(size); !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("New(%+v) error = %v, want INVALID_SIZE", size, err)
		}
	}
}

func TestAtSetIndex(t *testing.T) {
	g, err := New(Size{W: 4, H: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.Set(2, 1, 70)
	if got := g.At(2, 1); got != 70 {
		t.Errorf("At(2,1) = %d, want 70", got)
	}
	if got := g.Cells()[g.Index(2, 1)]; got != 70 {
		t.Errorf("Cells()[Index(2,1)] = %d, want 70", got)
	}
	if got := g.At(1, 2); got != 0 {
		t.Errorf("At(1,2) = %d, want 0", got)
	}
}

func TestWrapToroidal(t *testing.T) {
	g, _ := New(Size{W: 5, H: 3})

	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 0, 4, 0},  // x=0 with dx=-1 resolves to width-1
		{0, -1, 0, 2},  // y symmetric
		{5, 3, 0, 0},   // past the far edges
		{-6, -4, 4, 2}, // more than one full wrap
		{2, 1, 2, 1},   // interior untouched
	}
	for _, tt := range tests {
		wx, wy := g.Wrap(tt.x, tt.y)
		if wx != tt.wx || wy != tt.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, wx, wy, tt.wx, tt.wy)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(Size{W: 3, H: 3})
	g.Set(1, 1, 10)

	c := g.Clone()
	c.Set(0, 0, 20)

	if g.At(0, 0) != 0 {
		t.Error("mutating clone leaked into original")
	}
	if c.At(1, 1) != 10 {
		t.Error("clone lost original values")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	g, _ := New(Size{W: 3, H: 2})
	g.Set(0, 0, 10)
	g.Set(2, 1, 30)

	rows := g.Rows()
	if rows[0][0] != 10 || rows[1][2] != 30 {
		t.Fatalf("Rows() = %v", rows)
	}

	// Rows returns copies, not aliases.
	rows[0][1] = 99
	if g.At(1, 0) != 0 {
		t.Error("mutating Rows() result leaked into grid")
	}

	back, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if back.Size() != g.Size() {
		t.Errorf("round-trip size = %+v, want %+v", back.Size(), g.Size())
	}
	if back.At(2, 1) != 30 {
		t.Errorf("round-trip At(2,1) = %d, want 30", back.At(2, 1))
	}
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	if _, err := FromRows(nil); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("FromRows(nil) error = %v, want INVALID_SIZE", err)
	}
	ragged := [][]int{{1, 2}, {3}}
	if _, err := FromRows(ragged); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("FromRows(ragged) error = %v, want INVALID_INPUT", err)
	}
}

func TestLabels(t *testing.T) {
	g, _ := New(Size{W: 4, H: 2})
	g.Set(0, 0, 30)
	g.Set(1, 0, 10)
	g.Set(2, 0, 30)
	g.Set(3, 1, 20)

	labels := g.Labels()
	want := []int{10, 20, 30}
	if len(labels) != len(want) {
		t.Fatalf("Labels() = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("Labels() = %v, want %v", labels, want)
		}
	}
}
