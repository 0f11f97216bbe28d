package render

import "testing"

func TestNewPaletteDeterministic(t *testing.T) {
	a := NewPalette([]int{10, 20, 30})
	b := NewPalette([]int{30, 10, 20, 10}) // order and duplicates must not matter

	for _, label := range []int{10, 20, 30} {
		if a[label] != b[label] {
			t.Errorf("label %d color differs between equivalent palettes", label)
		}
	}
}

func TestNewPaletteDistinctColors(t *testing.T) {
	p := NewPalette([]int{10, 20, 30, 40, 50})

	seen := map[[3]uint8]int{}
	for _, label := range []int{10, 20, 30, 40, 50} {
		c := p.Color(label)
		key := [3]uint8{c.R, c.G, c.B}
		if prev, dup := seen[key]; dup {
			t.Errorf("labels %d and %d share a color", prev, label)
		}
		seen[key] = label
	}
}

func TestPaletteZeroAndUnknown(t *testing.T) {
	p := NewPalette([]int{10})

	black := p.Color(0)
	if black.R != 0 || black.G != 0 || black.B != 0 || black.A != 0xff {
		t.Errorf("label 0 = %+v, want opaque black", black)
	}
	unknown := p.Color(999)
	if unknown.R != 0 || unknown.G != 0 || unknown.B != 0 {
		t.Errorf("unknown label = %+v, want black fallback", unknown)
	}
}
