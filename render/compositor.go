// SPDX-License-Identifier: Unlicense OR MIT

// Package render implements Vidra's CPU rendering pipeline: content
// rasterization, compositing, effects, transitions, and the plugin
// registries that extend them.
package render

import (
	"math"

	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
)

// ApplyMask multiplies buf's alpha channel by maskSrc's alpha at the
// corresponding position, treating out-of-bounds mask pixels as fully
// transparent. maskSrc is positioned at (dx,dy) relative to buf, same
// convention as CompositeOver.
func ApplyMask(buf, maskSrc *core.FrameBuffer, dx, dy int) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			mx, my := x-dx, y-dy
			var ma uint8
			if mx >= 0 && mx < maskSrc.Width && my >= 0 && my < maskSrc.Height {
				_, _, _, ma = maskSrc.At(mx, my)
			}
			r, g, b, a := buf.At(x, y)
			newA := uint8((int(a) * int(ma)) / 255)
			buf.Set(x, y, r, g, b, newA)
		}
	}
}

// ApplyEffect mutates buf in place according to e.
func ApplyEffect(buf *core.FrameBuffer, e ir.Effect) {
	switch e.Kind {
	case ir.EffectBlur:
		boxBlur(buf, e.Amount)
	case ir.EffectGrayscale:
		grayscale(buf, e.Amount)
	case ir.EffectInvert:
		invert(buf, e.Amount)
	}
}

// boxBlur applies a separable box blur of the given radius (in
// pixels, truncated to an integer ≥0) to buf's RGB channels, leaving
// alpha untouched. A zero radius is a no-op.
func boxBlur(buf *core.FrameBuffer, radius float64) {
	r := int(radius)
	if r <= 0 {
		return
	}
	src := buf.Clone()
	horiz := src.Clone()
	boxBlurPass(horiz, src, r, true)
	boxBlurPass(buf, horiz, r, false)
}

func boxBlurPass(dst, src *core.FrameBuffer, radius int, horizontal bool) {
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumR, sumG, sumB, sumA, count int
			for k := -radius; k <= radius; k++ {
				sx, sy := x, y
				if horizontal {
					sx = x + k
				} else {
					sy = y + k
				}
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					continue
				}
				r, g, b, a := src.At(sx, sy)
				sumR += int(r)
				sumG += int(g)
				sumB += int(b)
				sumA += int(a)
				count++
			}
			if count == 0 {
				count = 1
			}
			_, _, _, origA := src.At(x, y)
			dst.Set(x, y, uint8(sumR/count), uint8(sumG/count), uint8(sumB/count), origA)
		}
	}
}

// grayscale desaturates buf's RGB channels toward Rec. 601 luma,
// mixed by t in [0,1] (0 = unchanged, 1 = fully grayscale).
func grayscale(buf *core.FrameBuffer, t float64) {
	t = clamp01(t)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, a := buf.At(x, y)
			luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			nr := lerp8(r, luma, t)
			ng := lerp8(g, luma, t)
			nb := lerp8(b, luma, t)
			buf.Set(x, y, nr, ng, nb, a)
		}
	}
}

// invert mixes buf's RGB channels toward their inverse by t in [0,1].
func invert(buf *core.FrameBuffer, t float64) {
	t = clamp01(t)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, a := buf.At(x, y)
			nr := lerp8(r, 255-float64(r), t)
			ng := lerp8(g, 255-float64(g), t)
			nb := lerp8(b, 255-float64(b), t)
			buf.Set(x, y, nr, ng, nb, a)
		}
	}
}

func lerp8(orig uint8, target, t float64) uint8 {
	v := float64(orig) + (target-float64(orig))*t
	return uint8(math.Round(clampFloat(v, 0, 255)))
}

func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
