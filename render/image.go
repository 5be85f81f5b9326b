// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// ImageCache decodes and memoizes image assets by path.
type ImageCache struct {
	bufs map[string]*core.FrameBuffer
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{bufs: make(map[string]*core.FrameBuffer)}
}

// Load decodes the image at path on first request and returns a
// shared, read-only FrameBuffer thereafter.
func (c *ImageCache) Load(path string) (*core.FrameBuffer, error) {
	if buf, ok := c.bufs[path]; ok {
		return buf, nil
	}
	buf, err := decodeImageFile(path)
	if err != nil {
		return nil, core.Wrap(core.KindAsset, core.Node{}, "decode image "+path, err)
	}
	c.bufs[path] = buf
	return buf, nil
}

func decodeImageFile(path string) (*core.FrameBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return imageToFrameBuffer(img), nil
}

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

// imageToFrameBuffer converts an arbitrary decoded image.Image into a
// tightly-packed Rgba8 FrameBuffer.
func imageToFrameBuffer(img image.Image) *core.FrameBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := core.NewFrameBuffer(w, h, core.Rgba8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b2, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			buf.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b2>>8), uint8(a>>8))
		}
	}
	return buf
}

// ResizeToFit scales src down to fit within (maxW, maxH), preserving
// aspect ratio, never upscaling. A src already within bounds is
// returned unchanged. Resampling uses a fixed bilinear kernel.
func ResizeToFit(src *core.FrameBuffer, maxW, maxH int) *core.FrameBuffer {
	if src.Width <= maxW && src.Height <= maxH {
		return src
	}
	scale := float64(maxW) / float64(src.Width)
	if hScale := float64(maxH) / float64(src.Height); hScale < scale {
		scale = hScale
	}
	w := int(float64(src.Width) * scale)
	h := int(float64(src.Height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	srcImg := newFrameBufferImage(src)
	dst := core.NewFrameBuffer(w, h, core.Rgba8)
	dstImg := newFrameBufferImage(dst)
	draw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return dst
}
