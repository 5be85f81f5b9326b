// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
)

// roundRectC is the cubic-bezier control-point ratio that approximates
// a quarter circle, the same constant the teacher's clip/shapes.go
// uses to build rounded-rect corners.
const roundRectC = 0.55228475

// RasterizeShape fills (and optionally strokes) s into a freshly
// allocated Rgba8 buffer sized to its bounding box.
func RasterizeShape(s ir.Shape, fill, stroke *core.Color, strokeWidth float64) *core.FrameBuffer {
	w, h := shapeBounds(s)
	buf := core.NewFrameBuffer(w, h, core.Rgba8)

	if stroke != nil && strokeWidth > 0 {
		fillPath(buf, shapePath(s, w, h, 0), *stroke)
		inset := strokeWidth
		fillColor := fill
		if fillColor == nil {
			transparent := core.Color{}
			fillColor = &transparent
		}
		fillPath(buf, shapePath(s, w, h, inset), *fillColor)
		return buf
	}

	if fill != nil {
		fillPath(buf, shapePath(s, w, h, 0), *fill)
	}
	return buf
}

func shapeBounds(s ir.Shape) (int, int) {
	switch s.Kind {
	case ir.ShapeRect:
		return int(s.Width), int(s.Height)
	case ir.ShapeCircle:
		d := int(s.Radius * 2)
		return d, d
	case ir.ShapeEllipse:
		return int(s.RX * 2), int(s.RY * 2)
	default:
		return 0, 0
	}
}

// shapePath traces s's outline into r, shrunk by inset on every side
// (used to render a filled interior inside a stroke).
func shapePath(s ir.Shape, w, h int, inset float64) *vector.Rasterizer {
	z := vector.NewRasterizer(w, h)
	fw, fh := float32(w)-2*float32(inset), float32(h)-2*float32(inset)
	ox, oy := float32(inset), float32(inset)

	switch s.Kind {
	case ir.ShapeRect:
		radius := float32(s.CornerRadius) - float32(inset)
		if radius < 0 {
			radius = 0
		}
		traceRoundRect(z, ox, oy, fw, fh, radius)
	case ir.ShapeCircle:
		r := float32(s.Radius) - float32(inset)
		if r < 0 {
			r = 0
		}
		traceEllipse(z, ox+fw/2, oy+fh/2, r, r)
	case ir.ShapeEllipse:
		rx, ry := float32(s.RX)-float32(inset), float32(s.RY)-float32(inset)
		if rx < 0 {
			rx = 0
		}
		if ry < 0 {
			ry = 0
		}
		traceEllipse(z, ox+fw/2, oy+fh/2, rx, ry)
	}
	return z
}

// traceRoundRect draws a rounded rectangle of size (w,h) at origin
// (x,y) with corner radius r, using the fixed cubic-bezier constant to
// approximate each quarter-circle corner.
func traceRoundRect(z *vector.Rasterizer, x, y, w, h, r float32) {
	if r <= 0 {
		z.MoveTo(x, y)
		z.LineTo(x+w, y)
		z.LineTo(x+w, y+h)
		z.LineTo(x, y+h)
		z.ClosePath()
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	c := r * roundRectC
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.CubeTo(x+w-r+c, y, x+w, y+r-c, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.CubeTo(x+w, y+h-r+c, x+w-r+c, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.CubeTo(x+r-c, y+h, x, y+h-r+c, x, y+h-r)
	z.LineTo(x, y+r)
	z.CubeTo(x, y+r-c, x+r-c, y, x+r, y)
	z.ClosePath()
}

// traceEllipse draws an ellipse centered at (cx,cy) with radii
// (rx,ry), built from four cubic-bezier quadrants using the same
// fixed constant as traceRoundRect.
func traceEllipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	cxr, cyr := rx*roundRectC, ry*roundRectC
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+cyr, cx+cxr, cy+ry, cx, cy+ry)
	z.CubeTo(cx-cxr, cy+ry, cx-rx, cy+cyr, cx-rx, cy)
	z.CubeTo(cx-rx, cy-cyr, cx-cxr, cy-ry, cx, cy-ry)
	z.CubeTo(cx+cxr, cy-ry, cx+rx, cy-cyr, cx+rx, cy)
	z.ClosePath()
}

// fillPath rasterizes z's accumulated path as a coverage mask and
// composites c through it onto buf, in place.
func fillPath(buf *core.FrameBuffer, z *vector.Rasterizer, c core.Color) {
	r, g, b, a := c.RGBA8()
	img := newFrameBufferImage(buf)
	src := &image.Uniform{C: color.NRGBA{R: r, G: g, B: b, A: a}}
	z.Draw(img, img.Bounds(), src, image.Point{})
}

// frameBufferImage adapts a core.FrameBuffer to draw.Image so library
// rasterizers (vector.Rasterizer, font.Drawer) can target it directly.
type frameBufferImage struct {
	buf *core.FrameBuffer
}

func newFrameBufferImage(buf *core.FrameBuffer) *frameBufferImage {
	return &frameBufferImage{buf: buf}
}

func (f *frameBufferImage) ColorModel() color.Model { return color.NRGBAModel }

func (f *frameBufferImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.buf.Width, f.buf.Height)
}

func (f *frameBufferImage) At(x, y int) color.Color {
	r, g, b, a := f.buf.At(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (f *frameBufferImage) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= f.buf.Width || y >= f.buf.Height {
		return
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	dr, dg, db, da := f.buf.At(x, y)
	src := core.FrameBuffer{Data: []byte{nc.R, nc.G, nc.B, nc.A}, Width: 1, Height: 1, Format: core.Rgba8}
	dst := core.FrameBuffer{Data: []byte{dr, dg, db, da}, Width: 1, Height: 1, Format: core.Rgba8}
	core.CompositeOver(&dst, &src, 0, 0, core.BlendNormal)
	r2, g2, b2, a2 := dst.At(0, 0)
	f.buf.Set(x, y, r2, g2, b2, a2)
}

var _ draw.Image = (*frameBufferImage)(nil)
