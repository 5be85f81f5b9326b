package layoutsolver

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestCenterBoth(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "title", IntrinsicW: 200, IntrinsicH: 50, Constraints: []Constraint{{Kind: KindCenter, Axis: Both}}},
	})
	if !approxEqual(results[0].X, 860, 0.01) || !approxEqual(results[0].Y, 515, 0.01) {
		t.Errorf("got %+v", results[0])
	}
}

func TestPinTopLeft(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "logo", IntrinsicW: 100, IntrinsicH: 100, Constraints: []Constraint{
			{Kind: KindPin, Edge: Top, Margin: 20},
			{Kind: KindPin, Edge: Left, Margin: 30},
		}},
	})
	if !approxEqual(results[0].X, 30, 0.01) || !approxEqual(results[0].Y, 20, 0.01) {
		t.Errorf("got %+v", results[0])
	}
}

func TestPinBottomRight(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "cta", IntrinsicW: 200, IntrinsicH: 60, Constraints: []Constraint{
			{Kind: KindPin, Edge: Bottom, Margin: 40},
			{Kind: KindPin, Edge: Right, Margin: 50},
		}},
	})
	wantX, wantY := 1920.0-200-50, 1080.0-60-40
	if !approxEqual(results[0].X, wantX, 0.01) || !approxEqual(results[0].Y, wantY, 0.01) {
		t.Errorf("got %+v, want x=%v y=%v", results[0], wantX, wantY)
	}
}

func TestBelowConstraint(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "title", IntrinsicW: 400, IntrinsicH: 50, Constraints: []Constraint{
			{Kind: KindCenter, Axis: Horizontal},
			{Kind: KindPin, Edge: Top, Margin: 100},
		}},
		{ID: "subtitle", IntrinsicW: 300, IntrinsicH: 30, Constraints: []Constraint{
			{Kind: KindCenter, Axis: Horizontal},
			{Kind: KindBelow, AnchorLayer: "title", Spacing: 20},
		}},
	})
	if !approxEqual(results[1].Y, 170, 0.01) {
		t.Errorf("subtitle.y = %v, want 170", results[1].Y)
	}
}

func TestFillHorizontal(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "bg", IntrinsicW: 100, IntrinsicH: 100, Constraints: []Constraint{
			{Kind: KindFill, Axis: Horizontal, Padding: 40},
		}},
	})
	if !approxEqual(results[0].Width, 1840, 0.01) || !approxEqual(results[0].X, 40, 0.01) {
		t.Errorf("got %+v", results[0])
	}
}

func TestMultiAspectAdaptation(t *testing.T) {
	constraints := []Constraint{
		{Kind: KindCenter, Axis: Horizontal},
		{Kind: KindPin, Edge: Top, Margin: 50},
	}
	r1 := Solve(1920, 1080, []LayerInput{{ID: "title", IntrinsicW: 400, IntrinsicH: 60, Constraints: constraints}})
	if !approxEqual(r1[0].X, 760, 0.01) {
		t.Errorf("16:9 x = %v, want 760", r1[0].X)
	}
	r2 := Solve(1080, 1920, []LayerInput{{ID: "title", IntrinsicW: 400, IntrinsicH: 60, Constraints: constraints}})
	if !approxEqual(r2[0].X, 340, 0.01) {
		t.Errorf("9:16 x = %v, want 340", r2[0].X)
	}
	if !approxEqual(r1[0].Y, 50, 0.01) || !approxEqual(r2[0].Y, 50, 0.01) {
		t.Errorf("expected both pinned to y=50")
	}
}

func TestSizeOverride(t *testing.T) {
	results := Solve(1920, 1080, []LayerInput{
		{ID: "box", IntrinsicW: 100, IntrinsicH: 100, Constraints: []Constraint{
			{Kind: KindSize, Width: 500, Height: 300},
			{Kind: KindCenter, Axis: Both},
		}},
	})
	if !approxEqual(results[0].Width, 500, 0.01) || !approxEqual(results[0].Height, 300, 0.01) {
		t.Errorf("got %+v", results[0])
	}
	if !approxEqual(results[0].X, 710, 0.01) {
		t.Errorf("x = %v, want 710", results[0].X)
	}
}

func TestIdenticalConstraintsResolveIdentically(t *testing.T) {
	constraints := []Constraint{{Kind: KindCenter, Axis: Horizontal}}
	results := Solve(1920, 1080, []LayerInput{
		{ID: "a", IntrinsicW: 200, IntrinsicH: 50, Constraints: constraints},
		{ID: "b", IntrinsicW: 200, IntrinsicH: 50, Constraints: constraints},
	})
	if results[0].X != results[1].X {
		t.Errorf("expected identical x, got %v and %v", results[0].X, results[1].X)
	}
	wantX := (1920.0 - 200) / 2
	if !approxEqual(results[0].X, wantX, 0.01) {
		t.Errorf("x = %v, want %v", results[0].X, wantX)
	}
}
