package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/regiolab/regio/pkg/grid"
	"github.com/regiolab/regio/pkg/render"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{10, 10, 20},
		{10, 20, 20},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestRenderPNGDimensions(t *testing.T) {
	g := testGrid(t)

	data, err := RenderPNG(g, WithPNGScale(3))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 9 || bounds.Dy() != 6 {
		t.Errorf("image is %dx%d, want 9x6", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGCellBlocks(t *testing.T) {
	g := testGrid(t)
	p := render.NewPalette(g.Labels())

	data, err := RenderPNG(g, WithPNGScale(2), WithPNGPalette(p))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	// Both pixels of a cell block must match the palette color.
	want := p.Color(10)
	for _, pt := range [][2]int{{0, 0}, {1, 1}} {
		r, gr, b, _ := img.At(pt[0], pt[1]).RGBA()
		if uint8(r>>8) != want.R || uint8(gr>>8) != want.G || uint8(b>>8) != want.B {
			t.Errorf("pixel (%d,%d) does not match palette color for label 10", pt[0], pt[1])
		}
	}
}

func TestRenderPNGInvalidScale(t *testing.T) {
	if _, err := RenderPNG(testGrid(t), WithPNGScale(0)); err == nil {
		t.Error("zero scale accepted")
	}
}

func TestRenderSVGMergesRuns(t *testing.T) {
	g := testGrid(t)

	data, err := RenderSVG(g, WithSVGScale(5))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	doc := string(data)

	if !strings.Contains(doc, "<svg") {
		t.Fatal("output is not an SVG document")
	}
	if !strings.Contains(doc, `width="15"`) || !strings.Contains(doc, `height="10"`) {
		t.Errorf("unexpected document dimensions in %q", doc[:120])
	}
	// Row 0 = [10 10 20] → 2 rects, row 1 = [10 20 20] → 2 rects.
	if got := strings.Count(doc, "<rect"); got != 4 {
		t.Errorf("%d rects, want 4 (runs merged)", got)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	g := testGrid(t)

	data, err := RenderJSON(g,
		WithJSONRunID("test-run"),
		WithJSONSeed(42),
		WithJSONParams(2, 10),
	)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	doc := string(data)
	for _, want := range []string{`"id": "test-run"`, `"seed": 42`, `"classes": 2`, `"factor": 10`} {
		if !strings.Contains(doc, want) {
			t.Errorf("json missing %s", want)
		}
	}

	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if back.Size() != g.Size() {
		t.Errorf("round-trip size = %+v, want %+v", back.Size(), g.Size())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.At(x, y) != g.At(x, y) {
				t.Errorf("round-trip cell (%d,%d) = %d, want %d", x, y, back.At(x, y), g.At(x, y))
			}
		}
	}
}

func TestRenderJSONGeneratesRunID(t *testing.T) {
	data, err := RenderJSON(testGrid(t))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if strings.Contains(string(data), `"id": ""`) {
		t.Error("run id left empty")
	}
}
