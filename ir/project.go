// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"github.com/google/uuid"

	"github.com/Sansa-Organisation/vidra-sub001/asset"
	"github.com/Sansa-Organisation/vidra-sub001/core"
)

// ProjectID uniquely identifies a project.
type ProjectID string

// Settings are the project-wide render parameters: output resolution
// and frame rate.
type Settings struct {
	Width, Height int
	FPS           float64
	Background    core.Color
}

// HD30 is 1920x1080 at 30fps, the default preset.
func HD30() Settings {
	return Settings{Width: 1920, Height: 1080, FPS: 30, Background: core.ColorBlack}
}

// HD60 is 1920x1080 at 60fps.
func HD60() Settings {
	return Settings{Width: 1920, Height: 1080, FPS: 60, Background: core.ColorBlack}
}

// UHD30 is 3840x2160 at 30fps.
func UHD30() Settings {
	return Settings{Width: 3840, Height: 2160, FPS: 30, Background: core.ColorBlack}
}

// CustomSettings builds a Settings value for an arbitrary resolution
// and frame rate, defaulting background to black.
func CustomSettings(width, height int, fps float64) Settings {
	return Settings{Width: width, Height: height, FPS: fps, Background: core.ColorBlack}
}

// DefaultSettings is HD30, matching the original implementation's
// Default derive.
func DefaultSettings() Settings { return HD30() }

// Project is the root of the IR tree: project-wide settings, the
// asset registry, and an ordered list of scenes.
type Project struct {
	ID       ProjectID
	Settings Settings
	Assets   *asset.Registry
	Scenes   []*Scene
}

// NewProject returns an empty project with a freshly generated id and
// an empty asset registry.
func NewProject(settings Settings) *Project {
	return &Project{
		ID:       ProjectID(uuid.NewString()),
		Settings: settings,
		Assets:   asset.NewRegistry(),
	}
}

// AddScene appends a scene to the project.
func (p *Project) AddScene(s *Scene) {
	p.Scenes = append(p.Scenes, s)
}

// GetScene returns the scene with the given id, if present.
func (p *Project) GetScene(id SceneID) (*Scene, bool) {
	for _, s := range p.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// TotalDuration is the sum of every scene's duration, in seconds.
func (p *Project) TotalDuration() float64 {
	total := 0.0
	for _, s := range p.Scenes {
		total += s.Duration.Seconds()
	}
	return total
}

// TotalFrames is the sum of every scene's frame count at the
// project's fps.
func (p *Project) TotalFrames() int {
	total := 0
	for _, s := range p.Scenes {
		total += s.FrameCount(p.Settings.FPS)
	}
	return total
}
