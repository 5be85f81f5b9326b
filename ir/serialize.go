// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"encoding/json"

	"github.com/Sansa-Organisation/vidra-sub001/asset"
	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// Marshal encodes a project tree to its IR JSON interchange format.
// Every field enumerated in the IR's type definitions round-trips
// through Parse(Marshal(p)); unexported internal state (e.g. a
// Registry's insertion order) is preserved via the types' own
// MarshalJSON/UnmarshalJSON methods.
func Marshal(p *Project) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Parse decodes a project tree from its IR JSON interchange format.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, core.Wrap(core.KindValidation, core.Node{}, "parsing project IR", err)
	}
	if p.Assets == nil {
		p.Assets = asset.NewRegistry()
	}
	for _, s := range p.Scenes {
		sortLayerAnimations(s.Layers)
	}
	return &p, nil
}

// sortLayerAnimations normalizes every layer's animation tracks to be
// time-sorted, recursing into children. The fluent builder path
// (AnimationBuilder.Build) already guarantees this via Track.Sorted;
// a project decoded from raw JSON has no such guarantee, but
// Track.Sample requires sorted keyframes to evaluate correctly.
func sortLayerAnimations(layers []*Layer) {
	for _, l := range layers {
		for i, tr := range l.Animations {
			l.Animations[i] = tr.Sorted()
		}
		sortLayerAnimations(l.Children)
	}
}
