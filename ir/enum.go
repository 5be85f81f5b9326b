// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"encoding/json"
	"fmt"
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionCrossfade:
		return "crossfade"
	case TransitionSlide:
		return "slide"
	case TransitionPush:
		return "push"
	case TransitionWipe:
		return "wipe"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes k as its string name.
func (k TransitionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes k from its string name.
func (k *TransitionKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "crossfade":
		*k = TransitionCrossfade
	case "slide":
		*k = TransitionSlide
	case "push":
		*k = TransitionPush
	case "wipe":
		*k = TransitionWipe
	default:
		return fmt.Errorf("unknown transition kind %q", s)
	}
	return nil
}

// MarshalJSON encodes k as its string name.
func (k ContentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentImage:
		return "image"
	case ContentVideo:
		return "video"
	case ContentAudio:
		return "audio"
	case ContentShape:
		return "shape"
	case ContentSolid:
		return "solid"
	case ContentTTS:
		return "tts"
	case ContentAutoCaption:
		return "autocaption"
	case ContentEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// UnmarshalJSON decodes k from its string name.
func (k *ContentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "text":
		*k = ContentText
	case "image":
		*k = ContentImage
	case "video":
		*k = ContentVideo
	case "audio":
		*k = ContentAudio
	case "shape":
		*k = ContentShape
	case "solid":
		*k = ContentSolid
	case "tts":
		*k = ContentTTS
	case "autocaption":
		*k = ContentAutoCaption
	case "empty":
		*k = ContentEmpty
	default:
		return fmt.Errorf("unknown content kind %q", s)
	}
	return nil
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes k as its string name.
func (k ShapeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes k from its string name.
func (k *ShapeKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "rect":
		*k = ShapeRect
	case "circle":
		*k = ShapeCircle
	case "ellipse":
		*k = ShapeEllipse
	default:
		return fmt.Errorf("unknown shape kind %q", s)
	}
	return nil
}

func (k EffectKind) String() string {
	switch k {
	case EffectBlur:
		return "blur"
	case EffectGrayscale:
		return "grayscale"
	case EffectInvert:
		return "invert"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes k as its string name.
func (k EffectKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes k from its string name.
func (k *EffectKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "blur":
		*k = EffectBlur
	case "grayscale":
		*k = EffectGrayscale
	case "invert":
		*k = EffectInvert
	default:
		return fmt.Errorf("unknown effect kind %q", s)
	}
	return nil
}
