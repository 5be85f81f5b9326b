// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := float32(1e-5)
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return float32(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestPointAddSub(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 3, Y: -1}
	if !eq(p.Add(q), (Point{X: 4, Y: 1})) {
		t.Errorf("Add mismatch: got %v", p.Add(q))
	}
	if !eq(p.Sub(q), (Point{X: -2, Y: 3})) {
		t.Errorf("Sub mismatch: got %v", p.Sub(q))
	}
}

func TestPointMul(t *testing.T) {
	p := Point{X: 2, Y: -3}
	if !eq(p.Mul(2), (Point{X: 4, Y: -6})) {
		t.Errorf("Mul mismatch: got %v", p.Mul(2))
	}
}

func TestPointLerp(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 10, Y: 20}
	if !eq(p.Lerp(q, 0), p) {
		t.Errorf("Lerp(0) mismatch: got %v", p.Lerp(q, 0))
	}
	if !eq(p.Lerp(q, 1), q) {
		t.Errorf("Lerp(1) mismatch: got %v", p.Lerp(q, 1))
	}
	if !eq(p.Lerp(q, 0.5), (Point{X: 5, Y: 10})) {
		t.Errorf("Lerp(0.5) mismatch: got %v", p.Lerp(q, 0.5))
	}
}

func TestPointRotated(t *testing.T) {
	p := Point{X: 1, Y: 0}
	r := p.Rotated(math.Pi / 2)
	if !eq(r, (Point{X: 0, Y: 1})) {
		t.Errorf("Rotated(pi/2) mismatch: got %v", r)
	}
}

func TestRectangleDxDySize(t *testing.T) {
	r := Rectangle{Min: Point{X: 1, Y: 2}, Max: Point{X: 5, Y: 10}}
	if r.Dx() != 4 || r.Dy() != 8 {
		t.Errorf("Dx/Dy mismatch: got %v/%v", r.Dx(), r.Dy())
	}
	if !eq(r.Size(), (Point{X: 4, Y: 8})) {
		t.Errorf("Size mismatch: got %v", r.Size())
	}
}

func TestRectangleIntersectUnion(t *testing.T) {
	a := Rectangle{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 10}}
	b := Rectangle{Min: Point{X: 5, Y: 5}, Max: Point{X: 15, Y: 15}}

	i := a.Intersect(b)
	want := Rectangle{Min: Point{X: 5, Y: 5}, Max: Point{X: 10, Y: 10}}
	if i != want {
		t.Errorf("Intersect mismatch: got %v, want %v", i, want)
	}

	u := a.Union(b)
	wantU := Rectangle{Min: Point{X: 0, Y: 0}, Max: Point{X: 15, Y: 15}}
	if u != wantU {
		t.Errorf("Union mismatch: got %v, want %v", u, wantU)
	}
}

func TestRectangleCanonEmpty(t *testing.T) {
	r := Rectangle{Min: Point{X: 5, Y: 5}, Max: Point{X: 0, Y: 0}}
	if !r.Empty() {
		t.Error("expected reversed rectangle to be Empty before Canon")
	}
	c := r.Canon()
	if c.Empty() {
		t.Error("expected canonicalized rectangle to be non-empty")
	}
	if c.Min != (Point{X: 0, Y: 0}) || c.Max != (Point{X: 5, Y: 5}) {
		t.Errorf("Canon mismatch: got %v", c)
	}
}

func TestRectangleAddSub(t *testing.T) {
	r := Rectangle{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 10}}
	p := Point{X: 2, Y: 3}
	added := r.Add(p)
	if added.Min != (Point{X: 2, Y: 3}) || added.Max != (Point{X: 12, Y: 13}) {
		t.Errorf("Add mismatch: got %v", added)
	}
	if added.Sub(p) != r {
		t.Errorf("Sub did not invert Add: got %v, want %v", added.Sub(p), r)
	}
}
