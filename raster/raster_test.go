package raster

import (
	"bytes"
	"image/color"
	"testing"
)

func assertColor(t *testing.T, name string, got, want color.NRGBA) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- creation and pixel access ---

func TestNewCanvasTransparent(t *testing.T) {
	c := New(8, 4)
	if c.Width() != 8 || c.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", c.Width(), c.Height())
	}
	assertColor(t, "fresh pixel", c.At(3, 2), color.NRGBA{})
}

func TestNewCanvasInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0, 10) did not panic")
		}
	}()
	New(0, 10)
}

func TestSetAtRoundTrip(t *testing.T) {
	c := New(4, 4)
	c.Set(1, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	assertColor(t, "opaque red", c.At(1, 1), color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	// Semi-transparent: premultiplied storage loses a little precision but
	// must survive the round trip within a step.
	c.Set(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	got := c.At(2, 2)
	if got.A != 128 {
		t.Fatalf("alpha = %d, want 128", got.A)
	}
	for name, pair := range map[string][2]uint8{
		"r": {got.R, 200}, "g": {got.G, 100}, "b": {got.B, 50},
	} {
		diff := int(pair[0]) - int(pair[1])
		if diff < -2 || diff > 2 {
			t.Errorf("%s = %d, want %d (±2)", name, pair[0], pair[1])
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	c := New(4, 4)
	c.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	assertColor(t, "x<0", c.At(-1, 0), color.NRGBA{})
	assertColor(t, "y>=h", c.At(0, 4), color.NRGBA{})
}

func TestFill(t *testing.T) {
	c := New(3, 3)
	c.Fill(color.NRGBA{R: 0, G: 128, B: 255, A: 255})
	assertColor(t, "corner", c.At(0, 0), color.NRGBA{R: 0, G: 128, B: 255, A: 255})
	assertColor(t, "center", c.At(1, 1), color.NRGBA{R: 0, G: 128, B: 255, A: 255})
}

// --- polygon fill ---

func TestFillPolygonInteriorAndExterior(t *testing.T) {
	c := New(20, 20)
	square := []Point{{4, 4}, {16, 4}, {16, 16}, {4, 16}}
	c.FillPolygon(square, color.NRGBA{R: 255, A: 255})

	assertColor(t, "interior", c.At(10, 10), color.NRGBA{R: 255, A: 255})
	assertColor(t, "exterior", c.At(1, 1), color.NRGBA{})
}

func TestFillPolygonAntiAliasedEdge(t *testing.T) {
	c := New(20, 20)
	// A triangle whose hypotenuse crosses pixel centers at an angle, so edge
	// coverage has to land strictly between empty and full.
	tri := []Point{{2, 2}, {18, 2}, {2, 18}}
	c.FillPolygon(tri, color.NRGBA{R: 255, A: 255})

	partial := false
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			a := c.At(x, y).A
			if a > 0 && a < 255 {
				partial = true
			}
		}
	}
	if !partial {
		t.Error("no partially covered edge pixels; fill does not look anti-aliased")
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	c := New(8, 8)
	c.FillPolygon([]Point{{1, 1}, {7, 7}}, color.NRGBA{R: 255, A: 255})
	assertColor(t, "after 2-point fill", c.At(4, 4), color.NRGBA{})
}

// --- PNG round trip ---

func TestEncodeDecodePNG(t *testing.T) {
	c := New(6, 6)
	c.Set(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Width() != 6 || back.Height() != 6 {
		t.Fatalf("decoded size = %dx%d, want 6x6", back.Width(), back.Height())
	}
	assertColor(t, "decoded pixel", back.At(2, 3), color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assertColor(t, "decoded blank", back.At(0, 0), color.NRGBA{})
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/definitely-not-here.png"); err == nil {
		t.Fatal("Load of a missing file returned nil error")
	}
}

func BenchmarkFillPolygon(b *testing.B) {
	c := New(320, 200)
	hex := []Point{{160, 80}, {177, 90}, {177, 110}, {160, 120}, {143, 110}, {143, 90}}
	col := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	for b.Loop() {
		c.FillPolygon(hex, col)
	}
}
