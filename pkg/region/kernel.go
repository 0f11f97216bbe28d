package region

import "github.com/regiolab/regio/pkg/errors"

// Offset is a relative neighbor position (dx, dy).
type Offset struct {
	DX, DY int
}

// KernelBorder returns the coordinate offsets forming the border ring of a
// d×d kernel, for odd d >= 3. Only the outer ring is returned: every offset
// satisfies max(|dx|,|dy|) == d/2, so interior points are excluded for d > 3.
// For d=3 this is the full Moore neighborhood (8 offsets); d=5 yields 16.
//
// The result never contains (0,0) and is deterministic for a given d.
func KernelBorder(d int) ([]Offset, error) {
	if d < 3 {
		return nil, errors.New(errors.ErrCodeInvalidKernel, "kernel diameter %d is below the 3 minimum", d)
	}
	if d%2 == 0 {
		return nil, errors.New(errors.ErrCodeInvalidKernel, "kernel diameter %d must be odd", d)
	}

	border := d / 2
	var offsets []Offset
	for x := -border; x <= border; x++ {
		for y := -border; y <= border; y++ {
			if abs(x) == border || abs(y) == border {
				offsets = append(offsets, Offset{DX: x, DY: y})
			}
		}
	}
	return offsets, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
