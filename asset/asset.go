// SPDX-License-Identifier: Unlicense OR MIT

// Package asset implements Vidra's content-addressed asset registry.
package asset

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID uniquely identifies an Asset within a registry.
type ID string

// NewID generates a fresh, collision-resistant asset id.
func NewID() ID {
	return ID(uuid.NewString())
}

// Kind names what an Asset points at.
type Kind uint8

const (
	KindImage Kind = iota
	KindVideo
	KindAudio
	KindFont
	KindShader
	// KindLut names a color lookup table asset.
	KindLut
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindFont:
		return "font"
	case KindShader:
		return "shader"
	case KindLut:
		return "lut"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes k as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes k from its string name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "image":
		*k = KindImage
	case "video":
		*k = KindVideo
	case "audio":
		*k = KindAudio
	case "font":
		*k = KindFont
	case "shader":
		*k = KindShader
	case "lut":
		*k = KindLut
	default:
		return fmt.Errorf("unknown asset kind %q", s)
	}
	return nil
}

// Asset describes one registered resource: its kind, its path or URL,
// and an optional human-readable name.
type Asset struct {
	ID   ID
	Kind Kind
	Path string
	Name string
}
