// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"github.com/Sansa-Organisation/vidra-sub001/anim"
	"github.com/Sansa-Organisation/vidra-sub001/asset"
	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/layoutsolver"
)

// ProjectBuilder assembles a Project fluently: assets, then scenes.
type ProjectBuilder struct {
	project *Project
}

// NewProjectBuilder starts a project at the given resolution and fps.
func NewProjectBuilder(width, height int, fps float64) *ProjectBuilder {
	return &ProjectBuilder{project: NewProject(CustomSettings(width, height, fps))}
}

// AddAsset registers an asset under a caller-chosen id and returns the
// builder for chaining.
func (b *ProjectBuilder) AddAsset(kind asset.Kind, id asset.ID, path string) *ProjectBuilder {
	_ = b.project.Assets.Add(asset.Asset{ID: id, Kind: kind, Path: path})
	return b
}

// AddScene appends a built scene and returns the builder for chaining.
func (b *ProjectBuilder) AddScene(s *Scene) *ProjectBuilder {
	b.project.AddScene(s)
	return b
}

// WithBackground overrides the project's canvas background color
// (ColorBlack by default) and returns the builder for chaining.
func (b *ProjectBuilder) WithBackground(c core.Color) *ProjectBuilder {
	b.project.Settings.Background = c
	return b
}

// Build returns the assembled project.
func (b *ProjectBuilder) Build() *Project {
	return b.project
}

// SceneBuilder assembles a Scene fluently: layers, then (optionally) a
// transition.
type SceneBuilder struct {
	scene *Scene
	err   error
}

// NewSceneBuilder starts a scene of the given id and duration in
// seconds. An invalid duration (NaN, Inf, or negative) is recorded and
// surfaces from Build.
func NewSceneBuilder(id SceneID, durationSeconds float64) *SceneBuilder {
	d, err := core.NewDuration(durationSeconds)
	b := &SceneBuilder{scene: NewScene(id, d)}
	if err != nil {
		b.err = err
	}
	return b
}

// AddLayer appends a built layer and returns the builder for chaining.
func (b *SceneBuilder) AddLayer(l *Layer) *SceneBuilder {
	b.scene.AddLayer(l)
	return b
}

// WithTransition sets the scene's entry transition and returns the
// builder for chaining.
func (b *SceneBuilder) WithTransition(t Transition) *SceneBuilder {
	b.scene.Transition = &t
	return b
}

// Build returns the assembled scene and any duration-construction
// error recorded by NewSceneBuilder.
func (b *SceneBuilder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

// LayerBuilder assembles a Layer fluently.
type LayerBuilder struct {
	layer *Layer
}

// NewLayerBuilder starts a layer with the given id and content.
func NewLayerBuilder(id LayerID, content LayerContent) *LayerBuilder {
	return &LayerBuilder{layer: NewLayer(id, content)}
}

// WithPosition sets the layer's position and returns the builder for
// chaining.
func (b *LayerBuilder) WithPosition(x, y float64) *LayerBuilder {
	b.layer.WithPosition(x, y)
	return b
}

// WithScale sets the layer's scale and returns the builder for
// chaining.
func (b *LayerBuilder) WithScale(sx, sy float64) *LayerBuilder {
	b.layer.WithScale(sx, sy)
	return b
}

// WithOpacity sets the layer's opacity and returns the builder for
// chaining.
func (b *LayerBuilder) WithOpacity(opacity float64) *LayerBuilder {
	b.layer.WithOpacity(opacity)
	return b
}

// WithBlendMode sets the layer's blend mode and returns the builder
// for chaining.
func (b *LayerBuilder) WithBlendMode(mode core.BlendMode) *LayerBuilder {
	b.layer.BlendMode = mode
	return b
}

// WithAnimation appends an animation track built via AnimationBuilder
// and returns the builder for chaining.
func (b *LayerBuilder) WithAnimation(track anim.Track) *LayerBuilder {
	b.layer.WithAnimation(track)
	return b
}

// WithEffect appends an effect and returns the builder for chaining.
func (b *LayerBuilder) WithEffect(e Effect) *LayerBuilder {
	b.layer.WithEffect(e)
	return b
}

// WithMask sets the layer's mask reference and returns the builder for
// chaining.
func (b *LayerBuilder) WithMask(maskID LayerID) *LayerBuilder {
	b.layer.Mask = &maskID
	return b
}

// WithConstraints appends layout constraints and returns the builder
// for chaining.
func (b *LayerBuilder) WithConstraints(constraints ...layoutsolver.Constraint) *LayerBuilder {
	b.layer.WithConstraints(constraints...)
	return b
}

// AddChild appends a built child layer and returns the builder for
// chaining.
func (b *LayerBuilder) AddChild(child *Layer) *LayerBuilder {
	b.layer.AddChild(child)
	return b
}

// Build returns the assembled layer.
func (b *LayerBuilder) Build() *Layer {
	return b.layer
}

// AnimationBuilder assembles a keyframe Track fluently.
type AnimationBuilder struct {
	track anim.Track
}

// NewAnimationBuilder starts an empty track targeting property.
func NewAnimationBuilder(property anim.Property) *AnimationBuilder {
	return &AnimationBuilder{track: anim.Track{Property: property}}
}

// FromTo is a convenience constructor for a two-keyframe track from
// value "from" at t=0 to value "to" at t=duration, using easing.
func FromTo(property anim.Property, from, to, duration float64, easing core.Easing) *AnimationBuilder {
	b := NewAnimationBuilder(property)
	b.AddKeyframe(0, from, core.EaseLinear)
	b.AddKeyframe(duration, to, easing)
	return b
}

// AddKeyframe appends a keyframe and returns the builder for chaining.
func (b *AnimationBuilder) AddKeyframe(time, value float64, easing core.Easing) *AnimationBuilder {
	b.track.Keyframes = append(b.track.Keyframes, anim.Keyframe{Time: time, Value: value, Easing: easing})
	return b
}

// WithDelay sets the track's delay and returns the builder for
// chaining.
func (b *AnimationBuilder) WithDelay(delay float64) *AnimationBuilder {
	b.track.Delay = delay
	return b
}

// Build returns the assembled track, sorted by keyframe time.
func (b *AnimationBuilder) Build() anim.Track {
	return b.track.Sorted()
}
