// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"testing"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

func TestFontCacheFallsBackToEmbeddedFont(t *testing.T) {
	c := NewFontCache()
	face, err := c.Face("Unregistered Family", 24)
	if err != nil {
		t.Fatal(err)
	}
	if face == nil {
		t.Fatal("expected a non-nil fallback face")
	}
}

func TestLineSpacing(t *testing.T) {
	if got := lineSpacing(48); got != 62 {
		t.Errorf("lineSpacing(48) = %d, want 62", got)
	}
	if got := lineSpacing(10); got != 13 {
		t.Errorf("lineSpacing(10) = %d, want 13", got)
	}
}

func TestRasterizeTextProducesNonEmptyBuffer(t *testing.T) {
	c := NewFontCache()
	face, err := c.Face("Unregistered", 24)
	if err != nil {
		t.Fatal(err)
	}
	buf := RasterizeText("Hello\nWorld", face, 24, core.ColorWhite, AlignCenter)
	if buf.Width == 0 || buf.Height == 0 {
		t.Fatal("expected non-zero bounds")
	}
}

func TestRasterizeTextMultilineHeightScalesWithLineCount(t *testing.T) {
	c := NewFontCache()
	face, err := c.Face("Unregistered", 16)
	if err != nil {
		t.Fatal(err)
	}
	one := RasterizeText("Line", face, 16, core.ColorWhite, AlignLeft)
	two := RasterizeText("Line\nLine", face, 16, core.ColorWhite, AlignLeft)
	if two.Height <= one.Height {
		t.Errorf("expected two-line block taller than one-line block: %d vs %d", two.Height, one.Height)
	}
}
