// SPDX-License-Identifier: Unlicense OR MIT

// Package ir implements Vidra's intermediate representation: the
// declarative Project/Scene/Layer tree, its Validator, and the
// supplemented data-binding and builder helpers.
package ir

import (
	"github.com/Sansa-Organisation/vidra-sub001/anim"
	"github.com/Sansa-Organisation/vidra-sub001/asset"
	"github.com/Sansa-Organisation/vidra-sub001/core"
	"github.com/Sansa-Organisation/vidra-sub001/layoutsolver"
)

// LayerType classifies a layer's content for diagnostics/dev-server
// reporting.
type LayerType uint8

const (
	LayerText LayerType = iota
	LayerImage
	LayerVideo
	LayerAudio
	LayerShape
	LayerSolid
	LayerComponent
	LayerTTS
	LayerAutoCaption
)

func (t LayerType) String() string {
	switch t {
	case LayerText:
		return "text"
	case LayerImage:
		return "image"
	case LayerVideo:
		return "video"
	case LayerAudio:
		return "audio"
	case LayerShape:
		return "shape"
	case LayerSolid:
		return "solid"
	case LayerComponent:
		return "component"
	case LayerTTS:
		return "tts"
	case LayerAutoCaption:
		return "autocaption"
	default:
		return "unknown"
	}
}

// Effect is a visual effect applied to a layer's rasterized buffer
// before it is composited.
type Effect struct {
	Kind   EffectKind
	Amount float64 // blur radius, or grayscale/invert intensity in [0,1]
}

type EffectKind uint8

const (
	EffectBlur EffectKind = iota
	EffectGrayscale
	EffectInvert
)

// ShapeKind selects a Shape layer's geometry.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeEllipse
)

// Shape is a Shape layer's geometry parameters; only the fields
// relevant to Kind are meaningful.
type Shape struct {
	Kind          ShapeKind
	Width, Height float64 // Rect
	CornerRadius  float64 // Rect
	Radius        float64 // Circle
	RX, RY        float64 // Ellipse
}

// ContentKind tags LayerContent's active variant.
type ContentKind uint8

const (
	ContentText ContentKind = iota
	ContentImage
	ContentVideo
	ContentAudio
	ContentShape
	ContentSolid
	ContentTTS
	ContentAutoCaption
	ContentEmpty
)

// LayerContent is a tagged union of what a layer renders. Exactly the
// fields relevant to Kind are meaningful.
type LayerContent struct {
	Kind ContentKind

	// Text, AutoCaption
	Text       string
	FontFamily string
	FontSize   float64
	Color      core.Color

	// Image, Video, Audio, AutoCaption
	AssetID asset.ID

	// Video, Audio
	TrimStart core.Duration
	TrimEnd   *core.Duration

	// Audio, TTS
	Volume float64

	// TTS
	Voice string

	// Shape
	Shape       Shape
	Fill        *core.Color
	Stroke      *core.Color
	StrokeWidth float64

	// Solid
	SolidColor core.Color
}

// LayerID uniquely identifies a layer within a scene.
type LayerID string

// Layer is a visual element: content, transform, animations, effects,
// optional children, and an optional mask.
type Layer struct {
	ID          LayerID
	Content     LayerContent
	Transform   core.Transform2D
	BlendMode   core.BlendMode
	Animations  []anim.Track
	Effects     []Effect
	Visible     bool
	Children    []*Layer
	Mask        *LayerID
	Constraints []layoutsolver.Constraint
}

// NewLayer returns a layer with identity transform, visible, and no
// animations/effects/children/mask.
func NewLayer(id LayerID, content LayerContent) *Layer {
	return &Layer{
		ID:        id,
		Content:   content,
		Transform: core.IdentityTransform(),
		BlendMode: core.BlendNormal,
		Visible:   true,
	}
}

// Type reports the LayerType implied by l's content.
func (l *Layer) Type() LayerType {
	switch l.Content.Kind {
	case ContentText:
		return LayerText
	case ContentImage:
		return LayerImage
	case ContentVideo:
		return LayerVideo
	case ContentAudio:
		return LayerAudio
	case ContentShape:
		return LayerShape
	case ContentSolid:
		return LayerSolid
	case ContentTTS:
		return LayerTTS
	case ContentAutoCaption:
		return LayerAutoCaption
	default:
		return LayerComponent
	}
}

// WithPosition sets the layer's position and returns it for chaining.
func (l *Layer) WithPosition(x, y float64) *Layer {
	l.Transform.Position = core.Point2D{X: x, Y: y}
	return l
}

// WithScale sets the layer's scale and returns it for chaining.
func (l *Layer) WithScale(sx, sy float64) *Layer {
	l.Transform.Scale = core.Point2D{X: sx, Y: sy}
	return l
}

// WithOpacity sets the layer's opacity and returns it for chaining.
func (l *Layer) WithOpacity(opacity float64) *Layer {
	l.Transform.Opacity = opacity
	return l
}

// WithAnimation appends an animation track and returns l for chaining.
func (l *Layer) WithAnimation(track anim.Track) *Layer {
	l.Animations = append(l.Animations, track)
	return l
}

// WithEffect appends an effect and returns l for chaining.
func (l *Layer) WithEffect(e Effect) *Layer {
	l.Effects = append(l.Effects, e)
	return l
}

// AddChild appends a child layer, rendered relative to l's transform.
func (l *Layer) AddChild(child *Layer) {
	l.Children = append(l.Children, child)
}

// WithConstraints sets the layer's layout constraints, resolved by
// the layout solver ahead of animation/transform composition, and
// returns l for chaining.
func (l *Layer) WithConstraints(constraints ...layoutsolver.Constraint) *Layer {
	l.Constraints = append(l.Constraints, constraints...)
	return l
}
