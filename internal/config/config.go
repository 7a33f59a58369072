// Package config holds the scene settings. Values come from built-in
// defaults, optionally overlaid by a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"cubescene/internal/assets"
	"cubescene/internal/spin"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings file is looked up, relative to the
// working directory.
const DefaultPath = "config/scene.yaml"

type Variant string

const (
	// VariantCamera keeps the objects still and circles the camera.
	VariantCamera Variant = "camera"
	// VariantSpin turns the cube and model in place.
	VariantSpin Variant = "spin"
	// VariantOrbit adds the ring of computers revolving around the centre.
	VariantOrbit Variant = "orbit"
)

type Window struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Render struct {
	Alpha      bool   `yaml:"alpha"`
	Antialias  bool   `yaml:"antialias"`
	Background string `yaml:"background"`
}

type Camera struct {
	FOV        float32    `yaml:"fov"`
	Position   [3]float32 `yaml:"position"`
	Multiplier float32    `yaml:"multiplier"`
}

type Rotation struct {
	MaxSpeed       float32 `yaml:"max_speed"`
	DefaultSpeed   float32 `yaml:"default_speed"`
	CorrectionStep float32 `yaml:"correction_step"`
}

type Cube struct {
	Size    float32    `yaml:"size"`
	Opacity float32    `yaml:"opacity"`
	Tilt    [3]float32 `yaml:"tilt"` // XYZ Euler radians
}

type Orbit struct {
	Count  int                `yaml:"count"`
	Radius float32            `yaml:"radius"`
	Height float32            `yaml:"height"`
	Scale  float32            `yaml:"scale"`
	Tint   string             `yaml:"tint"`
	Model  assets.ModelSource `yaml:"model"`
}

type Config struct {
	Variant  Variant            `yaml:"variant"`
	Window   Window             `yaml:"window"`
	Render   Render             `yaml:"render"`
	Camera   Camera             `yaml:"camera"`
	Rotation Rotation           `yaml:"rotation"`
	Cube     Cube               `yaml:"cube"`
	Model    assets.ModelSource `yaml:"model"`
	Orbit    Orbit              `yaml:"orbit"`
}

// Default returns the built-in scene.
func Default() Config {
	return Config{
		Variant: VariantOrbit,
		Window: Window{
			Title:     "IT-CUBE",
			Width:     800,
			Height:    600,
			TargetFPS: 60,
		},
		Render: Render{
			Alpha:      true,
			Antialias:  true,
			Background: "Blank",
		},
		Camera: Camera{
			FOV:        75,
			Position:   [3]float32{0, 1.5, 1},
			Multiplier: 6,
		},
		Rotation: Rotation{
			MaxSpeed:       spin.DefaultMaxSpeed,
			DefaultSpeed:   spin.DefaultDefaultSpeed,
			CorrectionStep: spin.DefaultCorrectionStep,
		},
		Cube: Cube{
			Size:    2,
			Opacity: 0.95,
			Tilt:    [3]float32{45, 35.2644, 0},
		},
		Model: assets.ModelSource{
			Material: "data/cube-mesh.mtl",
			Geometry: "data/cube-mesh.obj",
		},
		Orbit: Orbit{
			Count:  8,
			Radius: 1.7,
			Height: 0.4,
			Scale:  1,
			Tint:   "White",
			Model: assets.ModelSource{
				Material: "data/computer.mtl",
				Geometry: "data/computer.obj",
			},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile is Load for a file the user asked for by name: it must exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the scene cannot run with.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantCamera, VariantSpin, VariantOrbit:
	default:
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Rotation.MaxSpeed <= 0 {
		return fmt.Errorf("rotation.max_speed must be positive, got %v", c.Rotation.MaxSpeed)
	}
	if c.Rotation.CorrectionStep < 0 {
		return fmt.Errorf("rotation.correction_step must not be negative, got %v", c.Rotation.CorrectionStep)
	}
	if c.Cube.Opacity < 0 || c.Cube.Opacity > 1 {
		return fmt.Errorf("cube.opacity must be within [0,1], got %v", c.Cube.Opacity)
	}
	if c.Variant == VariantOrbit && c.Orbit.Count < 0 {
		return fmt.Errorf("orbit.count must not be negative, got %d", c.Orbit.Count)
	}
	return nil
}

// Assets lists every model the chosen variant needs loaded before the
// scene can start.
func (c Config) Assets() []assets.ModelSource {
	out := []assets.ModelSource{c.Model}
	if c.Variant == VariantOrbit && c.Orbit.Count > 0 {
		out = append(out, c.Orbit.Model)
	}
	return out
}
