// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// FontCache parses and memoizes fonts by family name, falling back to
// the embedded Go Regular face for any family it hasn't loaded.
type FontCache struct {
	mu     sync.Mutex
	fonts  map[string]*opentype.Font
	fallback *opentype.Font
}

var fallbackOnce sync.Once
var fallbackFont *opentype.Font

func fallback() *opentype.Font {
	fallbackOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("render: embedded fallback font failed to parse: " + err.Error())
		}
		fallbackFont = f
	})
	return fallbackFont
}

// NewFontCache returns an empty cache; the embedded Go Regular face is
// always available as the ultimate fallback.
func NewFontCache() *FontCache {
	return &FontCache{fonts: make(map[string]*opentype.Font)}
}

// Register parses and stores ttf under family, replacing any existing
// registration.
func (c *FontCache) Register(family string, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return core.Wrap(core.KindAsset, core.Node{}, "parse font "+family, err)
	}
	c.mu.Lock()
	c.fonts[family] = f
	c.mu.Unlock()
	return nil
}

// Face returns a font.Face for family at size (in points), falling
// back to the embedded face if family is unregistered.
func (c *FontCache) Face(family string, size float64) (font.Face, error) {
	c.mu.Lock()
	f, ok := c.fonts[family]
	c.mu.Unlock()
	if !ok {
		f = fallback()
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
}

// lineSpacing is round(fontSize * 1.3), per spec.md 4.7.
func lineSpacing(fontSize float64) int {
	return int(fontSize*1.3 + 0.5)
}

// Align selects a multi-line text block's horizontal alignment.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// RasterizeText renders text (split on '\n') in face/color at
// fontSize into a freshly allocated Rgba8 buffer sized to the block's
// bounding box. Empty lines occupy one line height; alignment offsets
// each line's x relative to the widest line.
func RasterizeText(text string, face font.Face, fontSize float64, c core.Color, align Align) *core.FrameBuffer {
	lines := strings.Split(text, "\n")
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	spacing := lineSpacing(fontSize)
	if spacing == 0 {
		spacing = ascent + descent
	}

	widths := make([]int, len(lines))
	maxWidth := 0
	for i, line := range lines {
		w := measure(face, line)
		widths[i] = w
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth == 0 {
		maxWidth = 1
	}
	height := spacing * len(lines)
	if height == 0 {
		height = ascent + descent
	}

	buf := core.NewFrameBuffer(maxWidth, height, core.Rgba8)
	img := newFrameBufferImage(buf)
	r, g, b, a := c.RGBA8()
	src := &image.Uniform{C: color.NRGBA{R: r, G: g, B: b, A: a}}

	drawer := &font.Drawer{Dst: img, Src: src, Face: face}
	for i, line := range lines {
		x := 0
		switch align {
		case AlignCenter:
			x = (maxWidth - widths[i]) / 2
		case AlignRight:
			x = maxWidth - widths[i]
		}
		y := i*spacing + ascent
		drawer.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		drawer.DrawString(line)
	}
	return buf
}

func measure(face font.Face, line string) int {
	if line == "" {
		return 0
	}
	return (&font.Drawer{Face: face}).MeasureString(line).Ceil()
}
