// SPDX-License-Identifier: Unlicense OR MIT

package core

import (
	"encoding/json"
	"fmt"
)

// BlendMode names how a layer's rasterized pixels combine with what's
// already on the canvas. Normal is Porter-Duff "over"; the others
// operate on non-premultiplied RGB with Porter-Duff alpha handling
// transparency, per the formulas in blendChannel.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendAdd
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendAdd:
		return "add"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes m as its string name.
func (m BlendMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes m from its string name.
func (m *BlendMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "normal":
		*m = BlendNormal
	case "multiply":
		*m = BlendMultiply
	case "screen":
		*m = BlendScreen
	case "overlay":
		*m = BlendOverlay
	case "add":
		*m = BlendAdd
	default:
		return fmt.Errorf("unknown blend mode %q", s)
	}
	return nil
}

// CompositeOver blends src onto dst at offset (dx,dy), in place,
// using Porter-Duff "over" with integer, non-premultiplied Rgba8
// math (truncating division), per mode. Both buffers must be Rgba8.
// The offset may be negative or push src past dst's bounds; only the
// intersection of the two rectangles is touched.
func CompositeOver(dst, src *FrameBuffer, dx, dy int, mode BlendMode) {
	if dst.Format != Rgba8 || src.Format != Rgba8 {
		return
	}
	x0, y0, x1, y1 := clipRect(dst, src, dx, dy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sr, sg, sb, sa := src.At(x-dx, y-dy)
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.At(x, y)
			if mode != BlendNormal && da != 0 {
				sr, sg, sb = blendChannels(mode, sr, sg, sb, dr, dg, db)
			}
			if sa == 255 {
				dst.Set(x, y, sr, sg, sb, sa)
				continue
			}
			or, og, ob, oa := blendOver(sr, sg, sb, sa, dr, dg, db, da)
			dst.Set(x, y, or, og, ob, oa)
		}
	}
}

func clipRect(dst, src *FrameBuffer, dx, dy int) (x0, y0, x1, y1 int) {
	x0, y0 = dx, dy
	x1, y1 = dx+src.Width, dy+src.Height
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > dst.Width {
		x1 = dst.Width
	}
	if y1 > dst.Height {
		y1 = dst.Height
	}
	return
}

// blendOver is the Porter-Duff "over" formula on [0,255] non-premultiplied
// channels with truncating integer division.
func blendOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	inv := 255 - int(sa)
	outA := int(sa) + (int(da)*inv)/255
	if outA == 0 {
		return 0, 0, 0, 0
	}
	mix := func(sc, dc int) uint8 {
		v := (sc*int(sa)*255 + dc*int(da)*inv) / (outA * 255)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return mix(int(sr), int(dr)), mix(int(sg), int(dg)), mix(int(sb), int(db)), uint8(outA)
}

func blendChannels(mode BlendMode, sr, sg, sb, dr, dg, db uint8) (r, g, b uint8) {
	return blendChannel(mode, sr, dr), blendChannel(mode, sg, dg), blendChannel(mode, sb, db)
}

// blendChannel applies mode to one channel pair, both in [0,255].
func blendChannel(mode BlendMode, s, d uint8) uint8 {
	sf, df := float64(s)/255, float64(d)/255
	var out float64
	switch mode {
	case BlendMultiply:
		out = sf * df
	case BlendScreen:
		out = 1 - (1-sf)*(1-df)
	case BlendOverlay:
		if df <= 0.5 {
			out = 2 * sf * df
		} else {
			out = 1 - 2*(1-sf)*(1-df)
		}
	case BlendAdd:
		out = sf + df
	default:
		out = sf
	}
	return to8(float32(out))
}
