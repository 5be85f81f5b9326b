// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"fmt"
	"sync"

	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// PluginManifest describes a registered plugin for diagnostics and
// listing; it carries no behavior.
type PluginManifest struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
}

func (m PluginManifest) String() string {
	return fmt.Sprintf("%s v%s by %s", m.Name, m.Version, m.Author)
}

// EffectContext carries the frame parameters an effect plugin needs to
// process its one frame, plus any named parameters the caller passed.
type EffectContext struct {
	Width, Height int
	Time          float64
	FPS           float64
	Params        map[string]float64
}

// EffectPlugin applies a custom visual effect to a frame buffer in
// place. Name is the identifier under which it was registered.
type EffectPlugin interface {
	Manifest() PluginManifest
	Name() string
	Apply(frame *core.FrameBuffer, ctx EffectContext) error
}

// LayerContext carries the parameters a layer plugin needs to render
// its one frame of content.
type LayerContext struct {
	Width, Height int
	Frame         int
	Time          float64
	FPS           float64
	Params        map[string]string
}

// LayerPlugin renders a custom layer type's content for one frame.
// Name is the layer type identifier under which it was registered.
type LayerPlugin interface {
	Manifest() PluginManifest
	Name() string
	Render(ctx LayerContext) (*core.FrameBuffer, error)
}

// TransitionContext carries the parameters a transition plugin needs
// to blend two frames.
type TransitionContext struct {
	Width, Height int
	Progress      float64
	Params        map[string]float64
}

// TransitionPlugin blends an outgoing and incoming frame into a single
// result. Name is the transition identifier under which it was
// registered.
type TransitionPlugin interface {
	Manifest() PluginManifest
	Name() string
	Apply(outgoing, incoming *core.FrameBuffer, ctx TransitionContext) (*core.FrameBuffer, error)
}

// PluginRegistry is a concurrency-safe lookup table for effect, layer,
// and transition plugins by name. Dynamic loading (.so/.dylib/.dll) is
// out of core scope; plugins register themselves programmatically.
type PluginRegistry struct {
	mu          sync.RWMutex
	effects     map[string]EffectPlugin
	layers      map[string]LayerPlugin
	transitions map[string]TransitionPlugin
}

// NewPluginRegistry returns an empty registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		effects:     make(map[string]EffectPlugin),
		layers:      make(map[string]LayerPlugin),
		transitions: make(map[string]TransitionPlugin),
	}
}

// RegisterEffect adds an effect plugin under its own reported name.
func (r *PluginRegistry) RegisterEffect(p EffectPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.effects[p.Name()] = p
}

// RegisterLayer adds a layer plugin under its own reported name.
func (r *PluginRegistry) RegisterLayer(p LayerPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers[p.Name()] = p
}

// RegisterTransition adds a transition plugin under its own reported
// name.
func (r *PluginRegistry) RegisterTransition(p TransitionPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions[p.Name()] = p
}

// Effect looks up a registered effect plugin by name.
func (r *PluginRegistry) Effect(name string) (EffectPlugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.effects[name]
	return p, ok
}

// Layer looks up a registered layer plugin by name.
func (r *PluginRegistry) Layer(name string) (LayerPlugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.layers[name]
	return p, ok
}

// Transition looks up a registered transition plugin by name.
func (r *PluginRegistry) Transition(name string) (TransitionPlugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.transitions[name]
	return p, ok
}

// List returns every registered plugin's manifest.
func (r *PluginRegistry) List() []PluginManifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PluginManifest, 0, len(r.effects)+len(r.layers)+len(r.transitions))
	for _, p := range r.effects {
		out = append(out, p.Manifest())
	}
	for _, p := range r.layers {
		out = append(out, p.Manifest())
	}
	for _, p := range r.transitions {
		out = append(out, p.Manifest())
	}
	return out
}
