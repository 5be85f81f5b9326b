// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"testing"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

func TestResizeToFitPreservesAspectRatio(t *testing.T) {
	src := core.NewFrameBuffer(200, 100, core.Rgba8)
	src.Fill(core.ColorRed)

	dst := ResizeToFit(src, 50, 50)

	if dst.Width != 50 || dst.Height != 25 {
		t.Fatalf("got %dx%d, want 50x25", dst.Width, dst.Height)
	}
}

func TestResizeToFitNeverUpscales(t *testing.T) {
	src := core.NewFrameBuffer(20, 10, core.Rgba8)
	dst := ResizeToFit(src, 200, 200)

	if dst != src {
		t.Fatal("expected ResizeToFit to return src unchanged when already within bounds")
	}
}

func TestResizeToFitSquareBounds(t *testing.T) {
	src := core.NewFrameBuffer(100, 100, core.Rgba8)
	dst := ResizeToFit(src, 40, 40)

	if dst.Width != 40 || dst.Height != 40 {
		t.Fatalf("got %dx%d, want 40x40", dst.Width, dst.Height)
	}
}
