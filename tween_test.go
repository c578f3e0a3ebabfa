package folio

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenGroup_ReachesTargets(t *testing.T) {
	a, b := 0.0, 10.0
	g := NewTweenGroup([]*float64{&a, &b}, []float64{100, 0}, 0.5, ease.Linear)

	g.Update(0.25)
	if !approxEqual(a, 50, 0.01) || !approxEqual(b, 5, 0.01) {
		t.Errorf("midpoint = (%v, %v), want (50, 5)", a, b)
	}
	if g.Done {
		t.Error("group finished early")
	}
	g.Update(0.5)
	if !g.Done || a != 100 || b != 0 {
		t.Errorf("end = (%v, %v) done=%v", a, b, g.Done)
	}
	g.Update(1) // no-op once done
	if a != 100 {
		t.Errorf("a changed after done: %v", a)
	}
}

func TestTweenGroup_IgnoresExtraFields(t *testing.T) {
	a, b := 0.0, 0.0
	g := NewTweenGroup([]*float64{&a, &b}, []float64{1}, 0.1, ease.Linear)
	g.Update(1)
	if a != 1 || b != 0 {
		t.Errorf("(a, b) = (%v, %v), want (1, 0)", a, b)
	}
}
