package rng

import (
	"testing"

	"github.com/regiolab/regio/pkg/errors"
)

func TestDeterministicForSeed(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("same seed produced diverging sequences")
		}
	}

	c := New(8)
	same := true
	a = New(7)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != c.IntN(1000) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	r := New(1)
	draws, err := r.SampleWithoutReplacement(50, 20)
	if err != nil {
		t.Fatalf("SampleWithoutReplacement: %v", err)
	}
	if len(draws) != 20 {
		t.Fatalf("got %d draws, want 20", len(draws))
	}
	seen := map[int]bool{}
	for _, d := range draws {
		if d < 0 || d >= 50 {
			t.Errorf("draw %d out of range [0,50)", d)
		}
		if seen[d] {
			t.Errorf("duplicate draw %d", d)
		}
		seen[d] = true
	}
}

func TestSampleWithoutReplacementTooMany(t *testing.T) {
	r := New(1)
	if _, err := r.SampleWithoutReplacement(4, 5); !errors.Is(err, errors.ErrCodeSampling) {
		t.Errorf("error = %v, want SAMPLING", err)
	}
}

func TestSampleWithReplacement(t *testing.T) {
	r := New(1)
	draws := r.SampleWithReplacement(3, 100)
	if len(draws) != 100 {
		t.Fatalf("got %d draws, want 100", len(draws))
	}
	for _, d := range draws {
		if d < 0 || d >= 3 {
			t.Errorf("draw %d out of range [0,3)", d)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := New(3)
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := map[int]bool{}
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", vals)
	}
}
