package region

import (
	"testing"

	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/rng"
)

func mustKernel(t *testing.T, d int) []Offset {
	t.Helper()
	offsets, err := KernelBorder(d)
	if err != nil {
		t.Fatalf("KernelBorder(%d): %v", d, err)
	}
	return offsets
}

func TestResolveFindsLabeledNeighbor(t *testing.T) {
	canonical, _ := grid.New(grid.Size{W: 5, H: 5})
	canonical.Set(3, 2, 40)

	target, _ := grid.New(grid.Size{W: 5, H: 5})
	v := NewVicinity(canonical, mustKernel(t, 3), rng.New(1))

	if !v.Resolve(2, 2, target) {
		t.Fatal("Resolve found no neighbor next to a seed")
	}
	if got := target.At(2, 2); got != 40 {
		t.Errorf("target cell = %d, want 40", got)
	}
	// Canonical grid stays untouched.
	if canonical.At(2, 2) != 0 {
		t.Error("Resolve mutated the canonical grid")
	}
}

func TestResolveWrapsToroidally(t *testing.T) {
	// Only labeled cell sits on the far right edge; resolving at x=0 must
	// reach it through the wrap.
	canonical, _ := grid.New(grid.Size{W: 6, H: 4})
	canonical.Set(5, 1, 20)

	target, _ := grid.New(grid.Size{W: 6, H: 4})
	v := NewVicinity(canonical, mustKernel(t, 3), rng.New(1))

	if !v.Resolve(0, 1, target) {
		t.Fatal("Resolve did not wrap across the x edge")
	}
	if got := target.At(0, 1); got != 20 {
		t.Errorf("target cell = %d, want 20", got)
	}

	// Same through the y wrap.
	canonical2, _ := grid.New(grid.Size{W: 4, H: 6})
	canonical2.Set(2, 5, 30)
	target2, _ := grid.New(grid.Size{W: 4, H: 6})
	v2 := NewVicinity(canonical2, mustKernel(t, 3), rng.New(1))

	if !v2.Resolve(2, 0, target2) {
		t.Fatal("Resolve did not wrap across the y edge")
	}
	if got := target2.At(2, 0); got != 30 {
		t.Errorf("target cell = %d, want 30", got)
	}
}

func TestResolveAllZeroNeighborhood(t *testing.T) {
	canonical, _ := grid.New(grid.Size{W: 9, H: 9})
	canonical.Set(8, 8, 10) // outside the d=3 ring of (4,4) even with wrap

	target, _ := grid.New(grid.Size{W: 9, H: 9})
	v := NewVicinity(canonical, mustKernel(t, 3), rng.New(1))

	if v.Resolve(4, 4, target) {
		t.Fatal("Resolve labeled a cell with an all-zero neighborhood")
	}
	if target.At(4, 4) != 0 {
		t.Error("failed Resolve wrote into the target grid")
	}
}

func TestResolveDoesNotMutateCallerOffsets(t *testing.T) {
	canonical, _ := grid.New(grid.Size{W: 5, H: 5})
	canonical.Set(0, 0, 10)
	target, _ := grid.New(grid.Size{W: 5, H: 5})

	offsets := mustKernel(t, 5)
	before := make([]Offset, len(offsets))
	copy(before, offsets)

	v := NewVicinity(canonical, offsets, rng.New(2))
	for i := 0; i < 10; i++ {
		v.Resolve(2, 2, target)
	}

	for i := range before {
		if offsets[i] != before[i] {
			t.Fatal("Resolve shuffled the caller's offset slice")
		}
	}
}

func TestResolveWiderRing(t *testing.T) {
	// A d=5 ring reaches exactly distance 2; a seed at Chebyshev distance 2
	// is found, one at distance 1 is not (interior excluded).
	canonical, _ := grid.New(grid.Size{W: 11, H: 11})
	canonical.Set(5, 4, 50) // distance 1 from (5,5): interior of d=5 kernel

	target, _ := grid.New(grid.Size{W: 11, H: 11})
	v := NewVicinity(canonical, mustKernel(t, 5), rng.New(4))

	if v.Resolve(5, 5, target) {
		t.Fatal("d=5 ring resolved from an interior neighbor")
	}

	canonical.Set(7, 5, 60) // distance 2: on the ring
	if !v.Resolve(5, 5, target) {
		t.Fatal("d=5 ring missed a neighbor at distance 2")
	}
	if got := target.At(5, 5); got != 60 {
		t.Errorf("target cell = %d, want 60", got)
	}
}
