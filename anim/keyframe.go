// SPDX-License-Identifier: Unlicense OR MIT

// Package anim implements Vidra's animation model: keyframe track
// evaluation, the spring integrator, and the expression sampler.
package anim

import (
	"sort"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// Property names an animatable Transform2D field.
type Property uint8

const (
	PropPositionX Property = iota
	PropPositionY
	PropScaleX
	PropScaleY
	PropRotation
	PropOpacity
)

// Keyframe is a single (time, value, easing) sample. Time is seconds
// from the animation's start, after delay is applied.
type Keyframe struct {
	Time   float64
	Value  float64
	Easing core.Easing
}

// Track is a property's animation: a sorted list of keyframes plus a
// delay applied before the first keyframe takes effect.
type Track struct {
	Property  Property
	Keyframes []Keyframe
	Delay     float64
}

// Sorted returns a copy of t with its keyframes stable-sorted by time.
func (t Track) Sorted() Track {
	kfs := make([]Keyframe, len(t.Keyframes))
	copy(kfs, t.Keyframes)
	sort.SliceStable(kfs, func(i, j int) bool { return kfs[i].Time < kfs[j].Time })
	return Track{Property: t.Property, Keyframes: kfs, Delay: t.Delay}
}

// Sample evaluates the track at time. ok is false if the effective
// time is before the delay elapses or the track has no keyframes
// ("unset", per spec.md 4.2); the caller should leave the property at
// its declared value in that case.
func (t Track) Sample(time float64) (value float64, ok bool) {
	if len(t.Keyframes) == 0 {
		return 0, false
	}
	eff := time - t.Delay
	if eff < 0 {
		return 0, false
	}
	kfs := t.Keyframes
	first := kfs[0]
	if eff <= first.Time {
		return first.Value, true
	}
	last := kfs[len(kfs)-1]
	if eff >= last.Time {
		return last.Value, true
	}
	for i := 0; i < len(kfs)-1; i++ {
		a, b := kfs[i], kfs[i+1]
		if eff >= a.Time && eff <= b.Time {
			span := b.Time - a.Time
			var u float64
			if span > 0 {
				u = (eff - a.Time) / span
			}
			eased := b.Easing.Apply(u)
			return a.Value + (b.Value-a.Value)*eased, true
		}
	}
	// Unreachable for a sorted track covering [first,last], kept as a
	// defensive fallback.
	return last.Value, true
}

// ResolveTransform applies every track in tracks to base, in
// declaration order (later tracks targeting the same property win),
// at the given time.
func ResolveTransform(base core.Transform2D, tracks []Track, time float64) core.Transform2D {
	out := base
	for _, tr := range tracks {
		v, ok := tr.Sample(time)
		if !ok {
			continue
		}
		switch tr.Property {
		case PropPositionX:
			out.Position.X = v
		case PropPositionY:
			out.Position.Y = v
		case PropScaleX:
			out.Scale.X = v
		case PropScaleY:
			out.Scale.Y = v
		case PropRotation:
			out.Rotation = v
		case PropOpacity:
			out.Opacity = v
		}
	}
	return out
}
