package pixellab

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Transform) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- constructors ---

func TestIdentityTransform(t *testing.T) {
	assertMatrix(t, "identity", IdentityTransform(), Transform{1, 0, 0, 1, 0, 0})
}

func TestTranslationTransform(t *testing.T) {
	assertMatrix(t, "translation", TranslationTransform(10, 20), Transform{1, 0, 0, 1, 10, 20})
}

func TestScaleTransform(t *testing.T) {
	assertMatrix(t, "scale", ScaleTransform(2, 3), Transform{2, 0, 0, 3, 0, 0})
}

func TestRotationTransform90(t *testing.T) {
	got := RotationTransform(math.Pi / 2)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, Transform{0, 1, -1, 0, 0, 0})
}

// --- composition ---

func TestMulOrder(t *testing.T) {
	// Translate then scale is not scale then translate.
	ts := ScaleTransform(2, 2).Mul(TranslationTransform(5, 0))
	x, y := ts.Apply(0, 0)
	assertNear(t, "scale∘translate x", x, 10)
	assertNear(t, "scale∘translate y", y, 0)

	st := TranslationTransform(5, 0).Mul(ScaleTransform(2, 2))
	x, y = st.Apply(0, 0)
	assertNear(t, "translate∘scale x", x, 5)
	assertNear(t, "translate∘scale y", y, 0)
}

func TestMulIdentity(t *testing.T) {
	m := RotationTransform(0.7).Mul(TranslationTransform(3, -4))
	assertMatrix(t, "id*m", IdentityTransform().Mul(m), m)
	assertMatrix(t, "m*id", m.Mul(IdentityTransform()), m)
}

// --- inversion ---

func TestInvertRoundTrip(t *testing.T) {
	m := TranslationTransform(12, -7).Mul(RotationTransform(0.35)).Mul(ScaleTransform(2, 0.5))
	assertMatrix(t, "m*inv(m)", m.Mul(m.Invert()), IdentityTransform())
	assertMatrix(t, "inv(m)*m", m.Invert().Mul(m), IdentityTransform())
}

func TestInvertSingular(t *testing.T) {
	singular := Transform{0, 0, 0, 0, 5, 5}
	assertMatrix(t, "singular inverse", singular.Invert(), IdentityTransform())
}

// --- point mapping ---

func TestApplyRotatesPoint(t *testing.T) {
	x, y := RotationTransform(math.Pi/2).Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestApplyTranslation(t *testing.T) {
	x, y := TranslationTransform(-3, 9).Apply(1, 1)
	assertNear(t, "x", x, -2)
	assertNear(t, "y", y, 10)
}

func BenchmarkTransformMul(b *testing.B) {
	m := RotationTransform(0.3)
	n := ScaleTransform(1.5, 2)
	for b.Loop() {
		m = m.Mul(n.Invert())
	}
}
