package region

import (
	"testing"

	"github.com/regiolab/regio/pkg/errors"
)

func TestKernelBorderSizes(t *testing.T) {
	tests := []struct {
		d    int
		want int
	}{
		{3, 8},  // full Moore neighborhood
		{5, 16}, // outer ring only
		{7, 24},
	}
	for _, tt := range tests {
		offsets, err := KernelBorder(tt.d)
		if err != nil {
			t.Fatalf("KernelBorder(%d): %v", tt.d, err)
		}
		if len(offsets) != tt.want {
			t.Errorf("KernelBorder(%d) has %d offsets, want %d", tt.d, len(offsets), tt.want)
		}
	}
}

func TestKernelBorderExcludesCenterAndInterior(t *testing.T) {
	offsets, err := KernelBorder(5)
	if err != nil {
		t.Fatalf("KernelBorder(5): %v", err)
	}
	for _, o := range offsets {
		if o.DX == 0 && o.DY == 0 {
			t.Error("offsets contain (0,0)")
		}
		if abs(o.DX) != 2 && abs(o.DY) != 2 {
			t.Errorf("interior offset (%d,%d) in a d=5 ring", o.DX, o.DY)
		}
	}
}

func TestKernelBorderIdempotent(t *testing.T) {
	a, _ := KernelBorder(5)
	b, _ := KernelBorder(5)

	set := map[Offset]bool{}
	for _, o := range a {
		set[o] = true
	}
	if len(set) != len(a) {
		t.Fatal("first call produced duplicate offsets")
	}
	for _, o := range b {
		if !set[o] {
			t.Errorf("second call produced offset %v missing from first", o)
		}
	}
	if len(b) != len(a) {
		t.Errorf("calls disagree on size: %d vs %d", len(a), len(b))
	}
}

func TestKernelBorderInvalidDiameter(t *testing.T) {
	for _, d := range []int{-1, 0, 1, 2, 4, 6} {
		if _, err := KernelBorder(d); !errors.Is(err, errors.ErrCodeInvalidKernel) {
			t.Errorf("KernelBorder(%d) error = %v, want INVALID_KERNEL", d, err)
		}
	}
}
