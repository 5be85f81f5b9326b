// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/Sansa-Organisation/vidra-sub001/anim"
	"github.com/Sansa-Organisation/vidra-sub001/asset"
	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/ir"
	"github.com/Sansa-Organisation/vidra-sub001/layoutsolver"
	"github.com/Sansa-Organisation/vidra-sub001/rlog"
)

// VideoDecoder opens a video asset and returns its decoded frame at a
// given time offset. Actual codec decoding is an external concern (no
// codec library is wired into this repo); NullVideoDecoder documents
// the seam.
type VideoDecoder interface {
	Open(path string) error
	FrameAt(path string, offset core.Duration) (*core.FrameBuffer, error)
}

// NullVideoDecoder accepts every Open and rejects every FrameAt; it
// exists so Pipeline always
// has a non-nil decoder and video layers fail with a precise,
// localized KindAsset error rather than a nil-pointer panic.
type NullVideoDecoder struct{}

func (NullVideoDecoder) Open(string) error { return nil }

func (NullVideoDecoder) FrameAt(path string, _ core.Duration) (*core.FrameBuffer, error) {
	return nil, core.NewError(core.KindAsset, core.Node{},
		"no video decoder configured for "+path)
}

// Pipeline renders a validated Project to a sequence of content-hashed
// frame buffers, owning the image, font, and video caches for one
// render's lifetime.
type Pipeline struct {
	Images *ImageCache
	Fonts  *FontCache
	Videos VideoDecoder
	Log    *rlog.Logger
}

// NewPipeline returns a pipeline with empty caches and a
// NullVideoDecoder.
func NewPipeline(log *rlog.Logger) *Pipeline {
	return &Pipeline{
		Images: NewImageCache(),
		Fonts:  NewFontCache(),
		Videos: NullVideoDecoder{},
		Log:    log,
	}
}

// RenderResult is the output of a batch render: every frame in order,
// the content hash over the whole sequence, and the frame count.
type RenderResult struct {
	Frames      []*core.FrameBuffer
	ContentHash core.ContentHash
	FrameCount  int
}

// LoadAssets decodes every Image and Font asset into the pipeline's
// caches and resolves each scene's static layout constraints. Video
// assets are opened (decoder handle acquired) but not pre-decoded.
// The first failure aborts and is returned as a KindAsset error.
func (p *Pipeline) LoadAssets(project *ir.Project) error {
	for _, a := range project.Assets.All() {
		switch a.Kind {
		case asset.KindImage:
			buf, err := p.Images.Load(a.Path)
			if err != nil {
				return err
			}
			p.Images.bufs[string(a.ID)] = buf
		case asset.KindFont:
			data, err := os.ReadFile(a.Path)
			if err != nil {
				return core.Wrap(core.KindAsset, core.Node{}, "read font "+a.Path, err)
			}
			if err := p.Fonts.Register(a.Name, data); err != nil {
				return err
			}
		case asset.KindVideo:
			if err := p.Videos.Open(a.Path); err != nil {
				return core.Wrap(core.KindAsset, core.Node{}, "open video "+a.Path, err)
			}
		}
	}
	for _, scene := range project.Scenes {
		p.resolveSceneLayout(scene, project.Settings.Width, project.Settings.Height)
	}
	if p.Log != nil {
		p.Log.Info().Src("pipeline").Msgf("loaded %d assets across %d scenes", project.Assets.Len(), len(project.Scenes))
	}
	return nil
}

// resolveSceneLayout resolves every layer's declared layout
// constraints against the viewport once, baking the result into the
// layer's base Transform (anchor reset to the origin so the spec's
// position-minus-anchor compositing formula reduces to the solved
// rect directly). Animation tracks still override individual fields
// per frame on top of this baked transform.
func (p *Pipeline) resolveSceneLayout(scene *ir.Scene, viewportW, viewportH int) {
	var layers []*ir.Layer
	collectLayers(scene.Layers, &layers)

	var inputs []layoutsolver.LayerInput
	var targets []*ir.Layer
	for _, l := range layers {
		if len(l.Constraints) == 0 {
			continue
		}
		iw, ih := p.intrinsicSize(l)
		inputs = append(inputs, layoutsolver.LayerInput{
			ID: string(l.ID), IntrinsicW: iw, IntrinsicH: ih, Constraints: l.Constraints,
		})
		targets = append(targets, l)
	}
	if len(inputs) == 0 {
		return
	}
	rects := layoutsolver.Solve(float64(viewportW), float64(viewportH), inputs)
	for i, l := range targets {
		r := rects[i]
		l.Transform.Position = core.Point2D{X: r.X, Y: r.Y}
		l.Transform.Anchor = core.Point2D{X: 0, Y: 0}

		iw, ih := inputs[i].IntrinsicW, inputs[i].IntrinsicH
		if iw > 0 && ih > 0 {
			l.Transform.Scale = core.Point2D{X: r.Width / iw, Y: r.Height / ih}
		}
	}
}

func collectLayers(layers []*ir.Layer, out *[]*ir.Layer) {
	for _, l := range layers {
		*out = append(*out, l)
		collectLayers(l.Children, out)
	}
}

// intrinsicSize estimates a layer's unscaled content box, used only
// to feed the layout solver; actual rasterization may differ slightly
// (e.g. text measured against the registered vs. fallback font).
func (p *Pipeline) intrinsicSize(l *ir.Layer) (w, h float64) {
	switch l.Content.Kind {
	case ir.ContentShape:
		iw, ih := shapeBounds(l.Content.Shape)
		return float64(iw), float64(ih)
	case ir.ContentImage:
		if buf, err := p.Images.Load(string(l.Content.AssetID)); err == nil {
			return float64(buf.Width), float64(buf.Height)
		}
		return 0, 0
	case ir.ContentText, ir.ContentAutoCaption:
		face, err := p.Fonts.Face(l.Content.FontFamily, l.Content.FontSize)
		if err != nil {
			return 0, 0
		}
		buf := RasterizeText(l.Content.Text, face, l.Content.FontSize, l.Content.Color, AlignLeft)
		return float64(buf.Width), float64(buf.Height)
	default:
		return 0, 0
	}
}

// TotalFrames is the sum of every scene's frame count at the
// project's fps.
func (p *Pipeline) TotalFrames(project *ir.Project) int {
	return project.TotalFrames()
}

// RenderFrameIndex renders frame f: it resolves the owning scene and
// local time, composites every top-level layer bottom-to-top, and
// blends in the entering transition if f falls inside its window.
func (p *Pipeline) RenderFrameIndex(project *ir.Project, f int) (*core.FrameBuffer, error) {
	sceneIdx, localFrame, ok := locateScene(project, f)
	if !ok {
		return nil, core.NewError(core.KindRender, core.Node{HasFrame: true, Frame: f},
			"frame index out of range")
	}
	scene := project.Scenes[sceneIdx]
	t := float64(localFrame) / project.Settings.FPS

	canvas := core.NewFrameBuffer(project.Settings.Width, project.Settings.Height, core.Rgba8)
	canvas.Fill(project.Settings.Background)

	lookup := make(map[ir.LayerID]*ir.Layer)
	var flat []*ir.Layer
	collectLayers(scene.Layers, &flat)
	masked := make(map[ir.LayerID]bool)
	for _, l := range flat {
		lookup[l.ID] = l
		if l.Mask != nil {
			masked[*l.Mask] = true
		}
	}

	for _, layer := range scene.Layers {
		if masked[layer.ID] {
			continue
		}
		node := core.Node{SceneID: string(scene.ID), LayerID: string(layer.ID), Frame: f, HasFrame: true}
		if err := p.compositeLayer(canvas, layer, core.IdentityTransform(), t, lookup, masked, node); err != nil {
			return nil, err
		}
	}

	if scene.Transition != nil && sceneIdx > 0 && t < scene.Transition.Duration.Seconds() {
		prevLast := lastFrameIndex(project, sceneIdx-1)
		outgoing, err := p.RenderFrameIndex(project, prevLast)
		if err != nil {
			return nil, err
		}
		canvas = BlendTransition(*scene.Transition, outgoing, canvas, t)
	}

	return canvas, nil
}

// locateScene finds the scene containing global frame f and the
// local frame index within it.
func locateScene(project *ir.Project, f int) (sceneIdx, localFrame int, ok bool) {
	sum := 0
	for i, s := range project.Scenes {
		count := s.FrameCount(project.Settings.FPS)
		if f < sum+count {
			return i, f - sum, true
		}
		sum += count
	}
	return 0, 0, false
}

// lastFrameIndex returns the global frame index of scene sceneIdx's
// final local frame.
func lastFrameIndex(project *ir.Project, sceneIdx int) int {
	sum := 0
	for i := 0; i < sceneIdx; i++ {
		sum += project.Scenes[i].FrameCount(project.Settings.FPS)
	}
	count := project.Scenes[sceneIdx].FrameCount(project.Settings.FPS)
	if count == 0 {
		return sum
	}
	return sum + count - 1
}

// compositeLayer rasterizes layer (and its children) at time t under
// parentWorld, then composites the result onto dst at the resolved
// position. Invisible layers are skipped entirely, per the "removing
// an invisible layer changes nothing" invariant. Layers referenced as
// another layer's mask anywhere in the scene are never composited
// directly, regardless of nesting depth.
func (p *Pipeline) compositeLayer(dst *core.FrameBuffer, layer *ir.Layer, parentWorld core.Transform2D, t float64, lookup map[ir.LayerID]*ir.Layer, masked map[ir.LayerID]bool, node core.Node) error {
	if !layer.Visible || masked[layer.ID] {
		return nil
	}
	local := anim.ResolveTransform(layer.Transform, layer.Animations, t)
	world := parentWorld.Compose(local)
	if world.Opacity <= 0 {
		return nil
	}

	buf, err := p.rasterizeContent(layer, world, t, node, dst.Width, dst.Height)
	if err != nil {
		return err
	}
	if buf == nil {
		buf = core.NewFrameBuffer(1, 1, core.Rgba8)
	} else {
		// Cached content (decoded images, video frames) is shared and
		// read-only; every other path below mutates buf in place, so it
		// must own a private copy before that happens.
		buf = buf.Clone()
	}

	for _, child := range layer.Children {
		if err := p.compositeLayer(buf, child, world, t, lookup, masked, node); err != nil {
			return err
		}
	}

	for _, e := range layer.Effects {
		ApplyEffect(buf, e)
	}
	if layer.Mask != nil {
		maskLayer, ok := lookup[*layer.Mask]
		if !ok {
			return core.NewError(core.KindRender, node, "mask reference does not resolve: "+string(*layer.Mask))
		}
		maskBuf, err := p.rasterizeContent(maskLayer, core.IdentityTransform(), t, node, dst.Width, dst.Height)
		if err != nil {
			return err
		}
		if maskBuf != nil {
			ApplyMask(buf, maskBuf, 0, 0)
		}
	}

	buf = applyOpacity(buf, world.Opacity)
	buf = transformBuffer(buf, world.Scale.X, world.Scale.Y, world.Rotation)

	ox := int(math.Round(world.Position.X - world.Anchor.X*float64(buf.Width)))
	oy := int(math.Round(world.Position.Y - world.Anchor.Y*float64(buf.Height)))
	core.CompositeOver(dst, buf, ox, oy, layer.BlendMode)
	return nil
}

// applyOpacity scales buf's alpha channel by opacity in place,
// returning buf for chaining. opacity==1 is a no-op.
func applyOpacity(buf *core.FrameBuffer, opacity float64) *core.FrameBuffer {
	if opacity >= 1 {
		return buf
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, a := buf.At(x, y)
			buf.Set(x, y, r, g, b, uint8(float64(a)*opacity))
		}
	}
	return buf
}

// transformBuffer resizes buf by (scaleX, scaleY) then rotates it by
// rotationDegrees around its own center, both via a fixed bilinear (for
// scale) / nearest-neighbor (for rotation) kernel, so results never
// vary by caller. Identity scale and zero rotation are no-ops.
func transformBuffer(buf *core.FrameBuffer, scaleX, scaleY, rotationDegrees float64) *core.FrameBuffer {
	if scaleX != 1 || scaleY != 1 {
		w := int(math.Round(float64(buf.Width) * scaleX))
		h := int(math.Round(float64(buf.Height) * scaleY))
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		scaled := core.NewFrameBuffer(w, h, core.Rgba8)
		srcImg := newFrameBufferImage(buf)
		dstImg := newFrameBufferImage(scaled)
		draw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
		buf = scaled
	}
	if rotationDegrees == 0 {
		return buf
	}
	return rotateBuffer(buf, rotationDegrees*degToRad)
}

const degToRad = math.Pi / 180

// rotateBuffer rotates src by angle radians around its center using
// inverse nearest-neighbor sampling into a bounding box sized to hold
// the full rotated extent.
func rotateBuffer(src *core.FrameBuffer, angle float64) *core.FrameBuffer {
	sin, cos := math.Sin(angle), math.Cos(angle)
	w, h := float64(src.Width), float64(src.Height)
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	cx, cy := w/2, h/2
	for _, c := range corners {
		rx := cx + (c[0]-cx)*cos - (c[1]-cy)*sin
		ry := cy + (c[0]-cx)*sin + (c[1]-cy)*cos
		minX, maxX = math.Min(minX, rx), math.Max(maxX, rx)
		minY, maxY = math.Min(minY, ry), math.Max(maxY, ry)
	}
	outW := int(math.Ceil(maxX - minX))
	outH := int(math.Ceil(maxY - minY))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	out := core.NewFrameBuffer(outW, outH, core.Rgba8)

	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			dx := float64(x) + minX - cx
			dy := float64(y) + minY - cy
			sx := cx + dx*cos + dy*sin
			sy := cy - dx*sin + dy*cos
			ix, iy := int(math.Round(sx)), int(math.Round(sy))
			if ix < 0 || iy < 0 || ix >= src.Width || iy >= src.Height {
				continue
			}
			r, g, b, a := src.At(ix, iy)
			out.Set(x, y, r, g, b, a)
		}
	}
	return out
}

// rasterizeContent rasterizes layer's own content (not children) into
// a buffer at its intrinsic size; Image and Video content return the
// cached or decoded buffer itself rather than a copy. Component/Empty
// layers and layers whose content carries no visual surface (Audio,
// TTS) return a nil buffer. A Solid layer fills the full extent of
// whatever it is being composited onto (canvasW/canvasH), per the
// "full-canvas" Solid convention.
func (p *Pipeline) rasterizeContent(layer *ir.Layer, world core.Transform2D, t float64, node core.Node, canvasW, canvasH int) (*core.FrameBuffer, error) {
	c := layer.Content
	switch c.Kind {
	case ir.ContentSolid:
		buf := core.NewFrameBuffer(canvasW, canvasH, core.Rgba8)
		buf.Fill(c.SolidColor)
		return buf, nil

	case ir.ContentShape:
		return RasterizeShape(c.Shape, c.Fill, c.Stroke, c.StrokeWidth), nil

	case ir.ContentText, ir.ContentAutoCaption:
		face, err := p.Fonts.Face(c.FontFamily, c.FontSize)
		if err != nil {
			return nil, core.Wrap(core.KindAsset, node, "load font face", err)
		}
		return RasterizeText(c.Text, face, c.FontSize, c.Color, AlignLeft), nil

	case ir.ContentImage:
		buf, err := p.Images.Load(string(c.AssetID))
		if err != nil {
			return nil, err
		}
		return buf, nil

	case ir.ContentVideo:
		offsetSeconds := c.TrimStart.Seconds() + t
		offset, err := core.NewDuration(offsetSeconds)
		if err != nil {
			return nil, core.Wrap(core.KindRender, node, "invalid video offset", err)
		}
		buf, err := p.Videos.FrameAt(string(c.AssetID), offset)
		if err != nil {
			return nil, err
		}
		return buf, nil

	default:
		return nil, nil
	}
}
