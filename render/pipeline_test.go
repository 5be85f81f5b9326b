// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"testing"

	"github.com/Sansa-Organisation/vidra-sub001/anim"
	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
)

func buildSolidRedProject(t *testing.T) *ir.Project {
	t.Helper()
	red := core.ColorRed
	layer := ir.NewLayerBuilder("bg", ir.LayerContent{Kind: ir.ContentSolid, SolidColor: red}).
		WithPosition(160, 120).
		Build()
	scene, err := ir.NewSceneBuilder("s0", 0.5).AddLayer(layer).Build()
	if err != nil {
		t.Fatal(err)
	}
	return ir.NewProjectBuilder(320, 240, 30).AddScene(scene).Build()
}

func buildAnimatedRectProject(t *testing.T) *ir.Project {
	t.Helper()
	white := core.ColorWhite
	track := ir.FromTo(anim.PropPositionX, 0, 200, 0.5, core.EaseLinear).Build()
	layer := ir.NewLayerBuilder("rect", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 20, Height: 20},
		Fill:  &white,
	}).WithAnimation(track).Build()
	scene, err := ir.NewSceneBuilder("s0", 0.5).AddLayer(layer).Build()
	if err != nil {
		t.Fatal(err)
	}
	return ir.NewProjectBuilder(320, 240, 30).AddScene(scene).Build()
}

func TestRenderFrameIndexIsDeterministic(t *testing.T) {
	project := buildSolidRedProject(t)
	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}

	first, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}
	if core.HashFrame(first) != core.HashFrame(second) {
		t.Fatal("rendering the same frame index twice produced different content hashes")
	}
}

func TestRenderFrameIndexSolidFillsCanvas(t *testing.T) {
	project := buildSolidRedProject(t)
	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	buf, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width != 320 || buf.Height != 240 {
		t.Fatalf("expected 320x240 canvas, got %dx%d", buf.Width, buf.Height)
	}
	for _, pt := range [][2]int{{0, 0}, {319, 0}, {0, 239}, {319, 239}, {160, 120}} {
		r, g, b, a := buf.At(pt[0], pt[1])
		if r < 200 || g > 50 || b > 50 || a < 200 {
			t.Errorf("corner %v expected opaque red, got (%d,%d,%d,%d)", pt, r, g, b, a)
		}
	}
}

func TestRenderFrameIndexOutOfRangeErrors(t *testing.T) {
	project := buildSolidRedProject(t)
	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	if _, err := p.RenderFrameIndex(project, 10_000); err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestInvisibleLayerIsSkipped(t *testing.T) {
	project := buildSolidRedProject(t)
	white := core.ColorWhite
	overlay := ir.NewLayerBuilder("overlay", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 50, Height: 50},
		Fill:  &white,
	}).WithPosition(160, 120).Build()
	overlay.Visible = false
	project.Scenes[0].AddLayer(overlay)

	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	withHidden, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}

	bare := buildSolidRedProject(t)
	p2 := NewPipeline(nil)
	if err := p2.LoadAssets(bare); err != nil {
		t.Fatal(err)
	}
	withoutLayer, err := p2.RenderFrameIndex(bare, 0)
	if err != nil {
		t.Fatal(err)
	}

	if core.HashFrame(withHidden) != core.HashFrame(withoutLayer) {
		t.Fatal("an invisible layer changed the rendered frame")
	}
}

func TestAnimatedPositionMovesOverTime(t *testing.T) {
	project := buildAnimatedRectProject(t)
	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	first, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}
	last, err := p.RenderFrameIndex(project, p.TotalFrames(project)-1)
	if err != nil {
		t.Fatal(err)
	}
	if core.HashFrame(first) == core.HashFrame(last) {
		t.Fatal("expected the animated rect's start and end frames to differ")
	}
}

func TestMaskLayerIsNotCompositedDirectly(t *testing.T) {
	green := core.ColorGreen
	white := core.ColorWhite
	content := ir.NewLayerBuilder("content", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 320, Height: 240},
		Fill:  &green,
	}).WithPosition(160, 120).WithMask("maskLayer").Build()
	maskLayer := ir.NewLayerBuilder("maskLayer", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 320, Height: 240},
		Fill:  &white,
	}).WithPosition(160, 120).Build()

	scene, err := ir.NewSceneBuilder("s0", 0.5).AddLayer(content).AddLayer(maskLayer).Build()
	if err != nil {
		t.Fatal(err)
	}
	project := ir.NewProjectBuilder(320, 240, 30).AddScene(scene).Build()

	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	buf, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}

	r, g, b, a := buf.At(160, 120)
	if r > 50 || g < 200 || b > 50 || a < 200 {
		t.Fatalf("expected the mask layer to stay hidden and the content to show through green, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestNestedMaskLayerIsNotCompositedDirectly(t *testing.T) {
	green := core.ColorGreen
	white := core.ColorWhite
	maskChild := ir.NewLayerBuilder("nestedMask", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 320, Height: 240},
		Fill:  &white,
	}).WithPosition(160, 120).Build()
	container := ir.NewLayerBuilder("container", ir.LayerContent{Kind: ir.ContentEmpty}).AddChild(maskChild).Build()
	content := ir.NewLayerBuilder("content", ir.LayerContent{
		Kind:  ir.ContentShape,
		Shape: ir.Shape{Kind: ir.ShapeRect, Width: 320, Height: 240},
		Fill:  &green,
	}).WithPosition(160, 120).WithMask("nestedMask").Build()

	scene, err := ir.NewSceneBuilder("s0", 0.5).AddLayer(content).AddLayer(container).Build()
	if err != nil {
		t.Fatal(err)
	}
	project := ir.NewProjectBuilder(320, 240, 30).AddScene(scene).Build()

	p := NewPipeline(nil)
	if err := p.LoadAssets(project); err != nil {
		t.Fatal(err)
	}
	buf, err := p.RenderFrameIndex(project, 0)
	if err != nil {
		t.Fatal(err)
	}

	r, g, b, a := buf.At(160, 120)
	if r > 50 || g < 200 || b > 50 || a < 200 {
		t.Fatalf("expected a nested mask layer to stay hidden, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestTotalFramesMatchesSceneDurations(t *testing.T) {
	project := buildSolidRedProject(t)
	if got, want := project.TotalFrames(), 15; got != want {
		t.Fatalf("expected %d frames at 30fps over 0.5s, got %d", want, got)
	}
}
