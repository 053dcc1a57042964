package pixellab

import (
	"math"
	"testing"
)

// The curve implementations run in float32, so mid-curve comparisons get a
// float32-sized tolerance.
func assertNear32(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var allCurves = []EaseCurve{EaseCubicIn, EaseCubicOut, EaseElasticIn, EaseElasticOut}

// --- endpoint exactness ---

func TestEaseEndpointsExact(t *testing.T) {
	for _, c := range allCurves {
		if got := c.Apply(0); got != 0 {
			t.Errorf("%v.Apply(0) = %v, want exactly 0", c, got)
		}
		if got := c.Apply(1); got != 1 {
			t.Errorf("%v.Apply(1) = %v, want exactly 1", c, got)
		}
	}
}

// --- curve shapes ---

func TestCubicInMidpoint(t *testing.T) {
	assertNear32(t, "cubic-in(0.5)", EaseCubicIn.Apply(0.5), 0.125)
	assertNear32(t, "cubic-in(0.25)", EaseCubicIn.Apply(0.25), 0.015625)
}

func TestCubicOutMidpoint(t *testing.T) {
	assertNear32(t, "cubic-out(0.5)", EaseCubicOut.Apply(0.5), 0.875)
}

func TestCubicCurvesComplement(t *testing.T) {
	// OutCubic(k) == 1 - InCubic(1-k)
	for _, k := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assertNear32(t, "complement", EaseCubicOut.Apply(k), 1-EaseCubicIn.Apply(1-k))
	}
}

func TestElasticOutOvershoots(t *testing.T) {
	over := false
	for k := 0.01; k < 1; k += 0.01 {
		if EaseElasticOut.Apply(k) > 1 {
			over = true
			break
		}
	}
	if !over {
		t.Error("elastic-out never exceeded 1")
	}
}

func TestElasticInDipsNegative(t *testing.T) {
	dips := false
	for k := 0.01; k < 1; k += 0.01 {
		if EaseElasticIn.Apply(k) < 0 {
			dips = true
			break
		}
	}
	if !dips {
		t.Error("elastic-in never dipped below 0")
	}
}

// --- persistence tags ---

func TestEaseCurveTagRoundTrip(t *testing.T) {
	for _, c := range allCurves {
		parsed, err := ParseEaseCurve(c.String())
		if err != nil {
			t.Fatalf("ParseEaseCurve(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("round trip %v -> %q -> %v", c, c.String(), parsed)
		}
	}
}

func TestParseEaseCurveUnknown(t *testing.T) {
	if _, err := ParseEaseCurve("bouncy-castle"); err == nil {
		t.Fatal("ParseEaseCurve accepted an unknown tag")
	}
}
