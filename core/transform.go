// SPDX-License-Identifier: Unlicense OR MIT

package core

import "github.com/Sansa-Organisation/vidra-sub001/f32"

// Point2D is a 2D point in layer-local or canvas pixel space.
type Point2D struct {
	X, Y float64
}

// Size2D is a width/height pair.
type Size2D struct {
	W, H float64
}

// Transform2D is a layer's position/scale/rotation/anchor/opacity.
// The identity transform has zero translation, unit scale, zero
// rotation, a centered anchor, and full opacity.
type Transform2D struct {
	Position Point2D
	Scale    Point2D
	Rotation float64 // degrees
	Anchor   Point2D // in [0,1]^2
	Opacity  float64 // in [0,1]
}

// IdentityTransform returns Transform2D's identity value.
func IdentityTransform() Transform2D {
	return Transform2D{
		Position: Point2D{0, 0},
		Scale:    Point2D{1, 1},
		Rotation: 0,
		Anchor:   Point2D{0.5, 0.5},
		Opacity:  1,
	}
}

// Compose returns the world transform of a child given its parent's
// already-composed world transform. The child's world transform is
// the parent's world transform applied to the child's local transform:
// position is transformed by the parent's rotation and scale and then
// offset by the parent's position; scale multiplies component-wise;
// rotation adds; opacity multiplies.
func (parent Transform2D) Compose(child Transform2D) Transform2D {
	p := f32.Point{X: float32(child.Position.X * parent.Scale.X), Y: float32(child.Position.Y * parent.Scale.Y)}
	p = p.Rotated(parent.Rotation * degToRad)
	return Transform2D{
		Position: Point2D{
			X: parent.Position.X + float64(p.X),
			Y: parent.Position.Y + float64(p.Y),
		},
		Scale: Point2D{
			X: parent.Scale.X * child.Scale.X,
			Y: parent.Scale.Y * child.Scale.Y,
		},
		Rotation: parent.Rotation + child.Rotation,
		Anchor:   child.Anchor,
		Opacity:  parent.Opacity * child.Opacity,
	}
}

const degToRad = 3.14159265358979323846 / 180
