// SPDX-License-Identifier: Unlicense OR MIT

// Package layoutsolver implements Vidra's two-pass declarative layout
// constraint resolver. The axis/alignment vocabulary is adapted from
// gioui's layout package (Axis, Alignment); the constraint set and the
// two-pass absolute-then-relational resolution order are the domain
// logic this package exists to express.
package layoutsolver

// Axis names a layout direction, adapted from gio's layout.Axis.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
	Both
)

// Edge names a viewport edge a layer may be pinned to.
type Edge uint8

const (
	Top Edge = iota
	Bottom
	Left
	Right
)

// Constraint is a tagged positioning rule. Exactly one of the typed
// fields is meaningful, selected by Kind.
type Constraint struct {
	Kind ConstraintKind

	Axis Axis // Center, Fill

	Edge   Edge    // Pin
	Margin float64 // Pin

	AnchorLayer string  // Below, Above, RightOf, LeftOf
	Spacing     float64 // Below, Above, RightOf, LeftOf

	Padding float64 // Fill

	Width, Height float64 // Size
}

// ConstraintKind selects which Constraint field set is active.
type ConstraintKind uint8

const (
	KindCenter ConstraintKind = iota
	KindPin
	KindBelow
	KindAbove
	KindRightOf
	KindLeftOf
	KindFill
	KindSize
)

// Rect is a resolved layer position and size in pixel space.
type Rect struct {
	X, Y, Width, Height float64
}

// LayerInput is one layer's solver input: its id, intrinsic size, and
// declared constraints.
type LayerInput struct {
	ID                     string
	IntrinsicW, IntrinsicH float64
	Constraints            []Constraint
}

// Solve resolves constraints for every layer in layers against a
// viewport of size (viewportW, viewportH), returning each layer's
// resolved rect in the same order as layers.
//
// Pass 1 (absolute, fixed order per layer): Size overrides intrinsic
// size; Fill sets size and origin on its axis; Pin anchors by edge
// using the current size; Center overrides position on its axis,
// taking priority over any prior Pin on the same axis.
//
// Pass 2 (relational, 3 iterations): Below/Above/RightOf/LeftOf look
// up their anchor's currently-resolved rect. Three iterations settle
// acyclic dependency chains up to depth 3; deeper chains are
// best-effort.
func Solve(viewportW, viewportH float64, layers []LayerInput) []Rect {
	results := make([]Rect, len(layers))
	index := make(map[string]int, len(layers))
	for i, l := range layers {
		index[l.ID] = i
		r := Rect{X: 0, Y: 0, Width: l.IntrinsicW, Height: l.IntrinsicH}

		for _, c := range l.Constraints {
			if c.Kind == KindSize {
				r.Width, r.Height = c.Width, c.Height
			}
		}
		for _, c := range l.Constraints {
			if c.Kind != KindFill {
				continue
			}
			switch c.Axis {
			case Horizontal:
				r.Width = viewportW - c.Padding*2
				r.X = c.Padding
			case Vertical:
				r.Height = viewportH - c.Padding*2
				r.Y = c.Padding
			case Both:
				r.Width = viewportW - c.Padding*2
				r.Height = viewportH - c.Padding*2
				r.X = c.Padding
				r.Y = c.Padding
			}
		}
		for _, c := range l.Constraints {
			if c.Kind != KindPin {
				continue
			}
			switch c.Edge {
			case Top:
				r.Y = c.Margin
			case Bottom:
				r.Y = viewportH - r.Height - c.Margin
			case Left:
				r.X = c.Margin
			case Right:
				r.X = viewportW - r.Width - c.Margin
			}
		}
		for _, c := range l.Constraints {
			if c.Kind != KindCenter {
				continue
			}
			switch c.Axis {
			case Horizontal:
				r.X = (viewportW - r.Width) / 2
			case Vertical:
				r.Y = (viewportH - r.Height) / 2
			case Both:
				r.X = (viewportW - r.Width) / 2
				r.Y = (viewportH - r.Height) / 2
			}
		}
		results[i] = r
	}

	for pass := 0; pass < 3; pass++ {
		for i, l := range layers {
			for _, c := range l.Constraints {
				anchorIdx, ok := index[c.AnchorLayer]
				if !ok {
					continue
				}
				anchor := results[anchorIdx]
				switch c.Kind {
				case KindBelow:
					results[i].Y = anchor.Y + anchor.Height + c.Spacing
				case KindAbove:
					results[i].Y = anchor.Y - results[i].Height - c.Spacing
				case KindRightOf:
					results[i].X = anchor.X + anchor.Width + c.Spacing
				case KindLeftOf:
					results[i].X = anchor.X - results[i].Width - c.Spacing
				}
			}
		}
	}

	return results
}
