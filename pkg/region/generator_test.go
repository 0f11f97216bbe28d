package region

import (
	"context"
	"testing"

	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/rng"
)

func TestSingleClassFillsGrid(t *testing.T) {
	// One seed on a 4x4 torus: after full growth every cell carries its label.
	gen, err := New(grid.Size{W: 4, H: 4}, Options{Classes: 1, Factor: 10}, rng.New(42), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, v := range out.Cells() {
		if v != 10 {
			t.Fatalf("cell %d = %d, want 10", i, v)
		}
	}
	if gen.Remaining() != 0 {
		t.Errorf("Remaining() = %d after Run, want 0", gen.Remaining())
	}
}

func TestTenClassesCoverGrid(t *testing.T) {
	gen, err := New(grid.Size{W: 10, H: 10}, Options{Classes: 10}, rng.New(7), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	counts := map[int]int{}
	for _, v := range out.Cells() {
		if v == 0 {
			t.Fatal("final grid contains an unlabeled cell")
		}
		counts[v]++
	}
	for label := 10; label <= 100; label += 10 {
		if counts[label] == 0 {
			t.Errorf("label %d missing from final grid", label)
		}
	}
	if len(counts) != 10 {
		t.Errorf("final grid has %d distinct labels, want 10", len(counts))
	}
}

func TestRemainingMonotonicallyDecreases(t *testing.T) {
	var last = -1
	sink := SinkFunc(func(g *grid.Grid, remaining int) {
		if last >= 0 && remaining > last {
			t.Fatalf("remaining grew between rounds: %d -> %d", last, remaining)
		}
		last = remaining
	})

	gen, err := New(grid.Size{W: 16, H: 12}, Options{Classes: 4}, rng.New(5), sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := gen.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if last != 0 {
		t.Errorf("final frame reported %d remaining, want 0", last)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() []int {
		gen, err := New(grid.Size{W: 12, H: 9}, Options{Classes: 5, Skips: 3, Kernel: 5}, rng.New(11), nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		out, err := gen.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		cells := make([]int, len(out.Cells()))
		copy(cells, out.Cells())
		return cells
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverge at cell %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen, err := New(grid.Size{W: 50, H: 50}, Options{Classes: 2}, rng.New(1), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := gen.Run(ctx); err != context.Canceled {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestFullSpeedFinishBelowSkips(t *testing.T) {
	// With skips larger than the cell count, the remaining < skips branch
	// must still drive growth to completion.
	gen, err := New(grid.Size{W: 3, H: 3}, Options{Classes: 1, Skips: 100}, rng.New(2), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, v := range out.Cells() {
		if v == 0 {
			t.Fatal("grid not fully labeled")
		}
	}
}

func TestNewValidation(t *testing.T) {
	r := rng.New(1)

	if _, err := New(grid.Size{W: 0, H: 4}, Options{Classes: 1}, r, nil); err == nil {
		t.Error("zero-area size accepted")
	}
	if _, err := New(grid.Size{W: 2, H: 2}, Options{Classes: 9}, r, nil); err == nil {
		t.Error("classes > area accepted")
	}
	if _, err := New(grid.Size{W: 4, H: 4}, Options{Classes: 1, Kernel: 4}, r, nil); err == nil {
		t.Error("even kernel accepted")
	}
}

func TestThrottleCounter(t *testing.T) {
	c := &checker{skips: 3}

	// Counter cycles 1,2,0,...: every third call attempts while plenty remain.
	attempts := 0
	for i := 0; i < 9; i++ {
		if c.attempt(100) {
			attempts++
		}
	}
	if attempts != 3 {
		t.Errorf("%d attempts in 9 calls with skips=3, want 3", attempts)
	}

	// Below the skips threshold every call attempts.
	for i := 0; i < 5; i++ {
		if !c.attempt(2) {
			t.Fatal("throttle blocked a coordinate during the full-speed finish")
		}
	}
}
