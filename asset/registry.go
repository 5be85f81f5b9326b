// SPDX-License-Identifier: Unlicense OR MIT

package asset

import (
	"encoding/json"
	"fmt"
)

// Registry is a unique-key mapping of asset id to Asset.
type Registry struct {
	assets map[ID]Asset
	order  []ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[ID]Asset)}
}

// Add registers a, returning an error if its id is already taken.
func (r *Registry) Add(a Asset) error {
	if _, exists := r.assets[a.ID]; exists {
		return fmt.Errorf("asset: duplicate asset id %q", a.ID)
	}
	r.assets[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

// Get looks up an asset by id.
func (r *Registry) Get(id ID) (Asset, bool) {
	a, ok := r.assets[id]
	return a, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.assets[id]
	return ok
}

// All returns the registered assets in insertion order.
func (r *Registry) All() []Asset {
	out := make([]Asset, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.assets[id])
	}
	return out
}

// Len returns the number of registered assets.
func (r *Registry) Len() int { return len(r.assets) }

// MarshalJSON encodes the registry as an array of assets in insertion
// order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.All())
}

// UnmarshalJSON decodes an array of assets, rebuilding the registry
// and rejecting duplicate ids.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var assets []Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return err
	}
	*r = *NewRegistry()
	for _, a := range assets {
		if err := r.Add(a); err != nil {
			return err
		}
	}
	return nil
}
