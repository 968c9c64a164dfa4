package flame

import (
	"math"
	"testing"
)

func TestSphericalOriginFallback(t *testing.T) {
	// The reciprocal-radius formula is undefined at the origin; the
	// transform must return the origin instead of a division fault.
	got := TransformSpherical.Apply(Pt(0, 0))
	if got.X != 0 || got.Y != 0 {
		t.Errorf("spherical(0,0) = %+v, want origin", got)
	}
}

func TestSpherical(t *testing.T) {
	got := TransformSpherical.Apply(Pt(2, 0))
	if math.Abs(got.X-0.5) > eps || math.Abs(got.Y) > eps {
		t.Errorf("spherical(2,0) = %+v, want {0.5 0}", got)
	}
}

func TestLinearIdentity(t *testing.T) {
	probes := []Point{
		Pt(0, 0), Pt(1, -1), Pt(-1.5, 1.5), Pt(1e8, -1e8), Pt(0.123, 4.567),
	}
	for _, p := range probes {
		if got := TransformLinear.Apply(p); got != p {
			t.Errorf("linear(%+v) = %+v, want input unchanged", p, got)
		}
	}
}

func TestSwirl(t *testing.T) {
	// At (1, 0) the squared radius is 1, so swirl yields (sin 1, cos 1).
	got := TransformSwirl.Apply(Pt(1, 0))
	if math.Abs(got.X-math.Sin(1)) > eps || math.Abs(got.Y-math.Cos(1)) > eps {
		t.Errorf("swirl(1,0) = %+v, want {%v %v}", got, math.Sin(1), math.Cos(1))
	}
}

func TestDiamond(t *testing.T) {
	got := TransformDiamond.Apply(Pt(-0.5, -2))
	if got.X != 0.5 || got.Y != 2 {
		t.Errorf("diamond(-0.5,-2) = %+v, want {0.5 2}", got)
	}
}

func TestFish(t *testing.T) {
	got := TransformFish.Apply(Pt(1, 2))
	want := Pt(1+math.Sin(2), 2+math.Sin(1))
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Errorf("fish(1,2) = %+v, want %+v", got, want)
	}
}

func TestTransformsTotal(t *testing.T) {
	// Every transform must map every finite input to a finite point.
	values := []float64{0, 1, -1, 0.5, -1.5, 1e-300, 1e8, -1e8}
	for _, tr := range Transforms() {
		for _, x := range values {
			for _, y := range values {
				got := tr.Apply(Pt(x, y))
				if math.IsNaN(got.X) || math.IsInf(got.X, 0) ||
					math.IsNaN(got.Y) || math.IsInf(got.Y, 0) {
					t.Errorf("%s(%g, %g) = %+v, want finite", tr, x, y, got)
				}
			}
		}
	}
}

func TestTransformCatalogOrder(t *testing.T) {
	want := []string{"spherical", "sinusoidal", "swirl", "linear", "diamond", "fish"}
	ts := Transforms()
	if len(ts) != len(want) {
		t.Fatalf("Transforms() has %d entries, want %d", len(ts), len(want))
	}
	for i, tr := range ts {
		if tr.String() != want[i] {
			t.Errorf("Transforms()[%d] = %s, want %s", i, tr, want[i])
		}
	}
}

func TestParseTransform(t *testing.T) {
	for _, tr := range Transforms() {
		got, err := ParseTransform(tr.String())
		if err != nil {
			t.Errorf("ParseTransform(%q) error: %v", tr.String(), err)
		}
		if got != tr {
			t.Errorf("ParseTransform(%q) = %v, want %v", tr.String(), got, tr)
		}
	}

	if _, err := ParseTransform("moebius"); err == nil {
		t.Error("ParseTransform of unknown name should fail")
	}
}

func TestInvalidTransform(t *testing.T) {
	bad := Transform(99)
	if bad.Valid() {
		t.Error("Transform(99).Valid() = true, want false")
	}
	p := Pt(0.25, -0.75)
	if got := bad.Apply(p); got != p {
		t.Errorf("invalid transform should apply identity, got %+v", got)
	}
	if got := bad.String(); got != "Transform(99)" {
		t.Errorf("String() = %q, want Transform(99)", got)
	}
}
