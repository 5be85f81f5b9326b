// SPDX-License-Identifier: Unlicense OR MIT

package ir

import "github.com/Sansa-Organisation/vidra-sub001/core"

// SceneID uniquely identifies a scene within a project.
type SceneID string

// TransitionKind selects how a scene transitions in from its
// predecessor.
type TransitionKind uint8

const (
	TransitionCrossfade TransitionKind = iota
	TransitionSlide
	TransitionPush
	TransitionWipe
)

// Transition describes how a scene enters, blended against the tail
// of the previous scene over Duration.
type Transition struct {
	Kind      TransitionKind
	Direction string // Slide, Push, Wipe: "left"|"right"|"up"|"down"
	Duration  core.Duration
	Easing    core.Easing
}

// Scene is a duration-bounded collection of top-level layers, with an
// optional entry transition.
type Scene struct {
	ID         SceneID
	Duration   core.Duration
	Layers     []*Layer
	Transition *Transition
}

// NewScene returns an empty scene of the given duration.
func NewScene(id SceneID, duration core.Duration) *Scene {
	return &Scene{ID: id, Duration: duration}
}

// AddLayer appends a top-level layer to the scene.
func (s *Scene) AddLayer(l *Layer) {
	s.Layers = append(s.Layers, l)
}

// GetLayer returns the layer with the given id anywhere in the scene,
// searching nested children as well as top-level layers.
func (s *Scene) GetLayer(id LayerID) (*Layer, bool) {
	return findLayer(s.Layers, id)
}

func findLayer(layers []*Layer, id LayerID) (*Layer, bool) {
	for _, l := range layers {
		if l.ID == id {
			return l, true
		}
		if found, ok := findLayer(l.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// FrameCount is the number of frames this scene occupies at fps.
func (s *Scene) FrameCount(fps float64) int {
	return s.Duration.FrameCount(fps)
}
