// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
)

// directionVector maps a transition direction name to a unit vector
// pointing the direction content moves towards.
func directionVector(dir string) (dx, dy float64) {
	switch dir {
	case "left":
		return -1, 0
	case "right":
		return 1, 0
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	default:
		return 0, 0
	}
}

// BlendTransition composites outgoing (the previous scene's final
// frame) and incoming (the entering scene's frame at local time t)
// into a single canvas of the same size, per tr's kind, with progress
// p = tr.Easing.Apply(t / tr.Duration.Seconds()).
func BlendTransition(tr ir.Transition, outgoing, incoming *core.FrameBuffer, t float64) *core.FrameBuffer {
	duration := tr.Duration.Seconds()
	p := 1.0
	if duration > 0 {
		p = tr.Easing.Apply(t / duration)
	}

	switch tr.Kind {
	case ir.TransitionCrossfade:
		return crossfade(outgoing, incoming, p)
	case ir.TransitionSlide:
		return slide(outgoing, incoming, tr.Direction, p)
	case ir.TransitionPush:
		return push(outgoing, incoming, tr.Direction, p)
	case ir.TransitionWipe:
		return wipe(outgoing, incoming, tr.Direction, p)
	default:
		return incoming
	}
}

func crossfade(outgoing, incoming *core.FrameBuffer, p float64) *core.FrameBuffer {
	w, h := incoming.Width, incoming.Height
	out := core.NewFrameBuffer(w, h, core.Rgba8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			or, og, ob, oa := outgoing.At(x, y)
			inr, ing, inb, ina := incoming.At(x, y)
			mix := func(a, b uint8) uint8 {
				return uint8(float64(a)*(1-p) + float64(b)*p)
			}
			out.Set(x, y, mix(or, inr), mix(og, ing), mix(ob, inb), mix(oa, ina))
		}
	}
	return out
}

func slide(outgoing, incoming *core.FrameBuffer, direction string, p float64) *core.FrameBuffer {
	w, h := incoming.Width, incoming.Height
	dx, dy := directionVector(direction)
	out := core.NewFrameBuffer(w, h, core.Rgba8)
	out.Fill(core.Color{})
	core.CompositeOver(out, outgoing, 0, 0, core.BlendNormal)
	offX := int(-dx * (1 - p) * float64(w))
	offY := int(-dy * (1 - p) * float64(h))
	core.CompositeOver(out, incoming, offX, offY, core.BlendNormal)
	return out
}

// push slides the outgoing frame away by p*extent in direction and
// the incoming frame in from -extent towards 0, so the two stay
// edge-to-edge throughout the transition.
func push(outgoing, incoming *core.FrameBuffer, direction string, p float64) *core.FrameBuffer {
	w, h := incoming.Width, incoming.Height
	dx, dy := directionVector(direction)
	out := core.NewFrameBuffer(w, h, core.Rgba8)
	out.Fill(core.Color{})
	outOffX := int(dx * p * float64(w))
	outOffY := int(dy * p * float64(h))
	core.CompositeOver(out, outgoing, outOffX, outOffY, core.BlendNormal)
	inOffX := int(dx * (p - 1) * float64(w))
	inOffY := int(dy * (p - 1) * float64(h))
	core.CompositeOver(out, incoming, inOffX, inOffY, core.BlendNormal)
	return out
}

func wipe(outgoing, incoming *core.FrameBuffer, direction string, p float64) *core.FrameBuffer {
	w, h := incoming.Width, incoming.Height
	dx, dy := directionVector(direction)
	out := outgoing.Clone()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var axis float64
			if dx != 0 {
				axis = float64(x) / float64(w)
				if dx < 0 {
					axis = 1 - axis
				}
			} else {
				axis = float64(y) / float64(h)
				if dy < 0 {
					axis = 1 - axis
				}
			}
			if axis <= p {
				r, g, b, a := incoming.At(x, y)
				out.Set(x, y, r, g, b, a)
			}
		}
	}
	return out
}
