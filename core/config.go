// SPDX-License-Identifier: Unlicense OR MIT

package core

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is Vidra's ambient configuration tree, loaded from a YAML
// file. It mirrors the shape of the original VidraConfig, minus the
// fields naming concerns this core explicitly excludes (auth, sync,
// brand kits); those survive as opaque passthrough so a config file
// written for the fuller system still loads without error, but the
// core never interprets them.
type Config struct {
	Project    ProjectConfig          `yaml:"project"`
	Render     RenderConfig           `yaml:"render"`
	Resources  ResourcesConfig        `yaml:"resources"`
	Telemetry  TelemetryConfig        `yaml:"telemetry"`
	Passthrough map[string]interface{} `yaml:",inline"`
}

// ProjectConfig carries project-level defaults.
type ProjectConfig struct {
	DefaultFPS    float64 `yaml:"default_fps"`
	DefaultWidth  int     `yaml:"default_width"`
	DefaultHeight int     `yaml:"default_height"`
}

// RenderConfig carries render-pipeline tuning knobs.
type RenderConfig struct {
	ParallelFrames int  `yaml:"parallel_frames"`
	UseGPU         bool `yaml:"use_gpu"`
}

// ResourcesConfig bounds cache sizes.
type ResourcesConfig struct {
	MaxImageCacheBytes int64 `yaml:"max_image_cache_bytes"`
	MaxFontCacheCount  int   `yaml:"max_font_cache_count"`
}

// TelemetryConfig controls whether render progress is logged.
type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
}

// DefaultConfig returns conservative defaults matching the spec's
// testable scenarios (30fps, single-threaded, no GPU path).
func DefaultConfig() Config {
	return Config{
		Project: ProjectConfig{DefaultFPS: 30, DefaultWidth: 1920, DefaultHeight: 1080},
		Render:  RenderConfig{ParallelFrames: 1, UseGPU: false},
		Resources: ResourcesConfig{
			MaxImageCacheBytes: 512 << 20,
			MaxFontCacheCount:  32,
		},
		Telemetry: TelemetryConfig{Enabled: true, Level: "info"},
	}
}

// LoadConfig reads and parses a YAML config file, starting from
// DefaultConfig so unset fields keep sane defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Wrap(KindAsset, Node{}, "reading config file", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, Wrap(KindValidation, Node{}, "parsing config file", err)
	}
	return cfg, nil
}
