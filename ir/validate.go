// SPDX-License-Identifier: Unlicense OR MIT

package ir

import "github.com/Sansa-Organisation/vidra-sub001/core"

// Validate checks a project's structural invariants, returning every
// violation found rather than stopping at the first. An empty slice
// means the project is well-formed.
//
// Checks: non-zero resolution, positive fps, at least one scene,
// unique scene ids, positive scene duration, unique layer ids within
// a scene, every content asset reference resolves against p.Assets,
// and every mask reference resolves to a layer in the same scene (a
// layer naming itself as its mask is not rejected).
func Validate(p *Project) []*core.Error {
	var errs []*core.Error

	if p.Settings.Width == 0 || p.Settings.Height == 0 {
		errs = append(errs, core.NewError(core.KindValidation, core.Node{},
			"project resolution must be non-zero"))
	}
	if p.Settings.FPS <= 0 {
		errs = append(errs, core.NewError(core.KindValidation, core.Node{},
			"project fps must be positive"))
	}
	if len(p.Scenes) == 0 {
		errs = append(errs, core.NewError(core.KindValidation, core.Node{},
			"project must contain at least one scene"))
	}

	seenScenes := make(map[SceneID]bool, len(p.Scenes))
	for _, s := range p.Scenes {
		node := core.Node{SceneID: string(s.ID)}
		if seenScenes[s.ID] {
			errs = append(errs, core.NewError(core.KindValidation, node,
				"duplicate scene id"))
		}
		seenScenes[s.ID] = true

		if s.Duration.Seconds() <= 0 {
			errs = append(errs, core.NewError(core.KindValidation, node,
				"scene duration must be positive"))
		}

		seenLayers := make(map[LayerID]bool)
		errs = append(errs, validateLayers(p, s, s.Layers, node, seenLayers)...)
	}

	return errs
}

// validateLayers checks layers and their nested children, tracking
// seenLayers across the whole call tree so layer ids are validated
// unique scene-wide rather than per sibling list.
func validateLayers(p *Project, s *Scene, layers []*Layer, node core.Node, seenLayers map[LayerID]bool) []*core.Error {
	var errs []*core.Error
	for _, l := range layers {
		lnode := node
		lnode.LayerID = string(l.ID)

		if seenLayers[l.ID] {
			errs = append(errs, core.NewError(core.KindValidation, lnode,
				"duplicate layer id"))
		}
		seenLayers[l.ID] = true

		if id := l.Content.AssetID; id != "" && !p.Assets.Has(id) {
			errs = append(errs, core.NewError(core.KindValidation, lnode,
				"asset reference does not resolve: "+string(id)))
		}

		if l.Mask != nil {
			if _, ok := s.GetLayer(*l.Mask); !ok {
				errs = append(errs, core.NewError(core.KindValidation, lnode,
					"mask reference does not resolve within scene: "+string(*l.Mask)))
			}
		}

		errs = append(errs, validateLayers(p, s, l.Children, lnode, seenLayers)...)
	}
	return errs
}
