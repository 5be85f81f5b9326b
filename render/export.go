// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// ToImage adapts a rendered FrameBuffer to image.Image, for callers
// (the CLI, conformance tooling) that need to hand frames to stdlib
// image encoders.
func ToImage(buf *core.FrameBuffer) image.Image {
	return newFrameBufferImage(buf)
}
