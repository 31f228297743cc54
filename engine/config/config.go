// Package config holds the viewer and snapshot settings, read from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/1siamBot/softraster/engine/math3d"
	"github.com/1siamBot/softraster/engine/render3d"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

type Projection struct {
	FOV  float64 `toml:"fov" yaml:"fov"` // radians
	Near float64 `toml:"near" yaml:"near"`
	Far  float64 `toml:"far" yaml:"far"`
}

type Camera struct {
	Position  [3]float64 `toml:"position" yaml:"position"`
	Target    [3]float64 `toml:"target" yaml:"target"`
	MoveSpeed float64    `toml:"move_speed" yaml:"move_speed"`
	// EdgeMargin is the border, in pixels, where mouse-look re-centres
	// instead of turning.
	EdgeMargin int `toml:"edge_margin" yaml:"edge_margin"`
}

type Scene struct {
	File       string      `toml:"file" yaml:"file"` // Babylon JSON, optional
	CubeGrid   bool        `toml:"cube_grid" yaml:"cube_grid"`
	Watch      bool        `toml:"watch" yaml:"watch"`
	Primitives []Primitive `toml:"primitives,omitempty" yaml:"primitives,omitempty"`
}

// Primitive kinds.
const (
	KindBox      = "box"
	KindCylinder = "cylinder"
	KindCone     = "cone"
)

// Primitive places a generated shape in the scene, after the meshes loaded
// from the scene file.
type Primitive struct {
	Kind string `toml:"kind" yaml:"kind"`
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`
	// Size is width, height and depth of a box.
	Size     [3]float64 `toml:"size,omitempty" yaml:"size,omitempty"`
	Radius   float64    `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Height   float64    `toml:"height,omitempty" yaml:"height,omitempty"`
	Segments int        `toml:"segments,omitempty" yaml:"segments,omitempty"`
	Position [3]float64 `toml:"position" yaml:"position"`
	Rotation [3]float64 `toml:"rotation,omitempty" yaml:"rotation,omitempty"`
}

func (p Primitive) validate() error {
	switch p.Kind {
	case KindBox:
		if p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0 {
			return fmt.Errorf("%w: box size %v", ErrInvalid, p.Size)
		}
	case KindCylinder, KindCone:
		if p.Radius <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: %s radius %g, height %g", ErrInvalid, p.Kind, p.Radius, p.Height)
		}
	default:
		return fmt.Errorf("%w: primitive kind %q", ErrInvalid, p.Kind)
	}
	return nil
}

// Mesh generates the shape and places it at Position and Rotation. An
// unnamed primitive is named after its kind.
func (p Primitive) Mesh() (*render3d.Mesh, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	name := p.Name
	if name == "" {
		name = p.Kind
	}
	var m *render3d.Mesh
	switch p.Kind {
	case KindBox:
		m = render3d.NewBox(name, p.Size[0], p.Size[1], p.Size[2])
	case KindCylinder:
		m = render3d.NewCylinder(name, p.Radius, p.Height, p.Segments)
	case KindCone:
		m = render3d.NewCone(name, p.Radius, p.Height, p.Segments)
	}
	m.Position = Vec(p.Position)
	m.Rotation = Vec(p.Rotation)
	return m, nil
}

// PrimitiveMeshes generates every configured primitive in order.
func (s Scene) PrimitiveMeshes() ([]*render3d.Mesh, error) {
	meshes := make([]*render3d.Mesh, 0, len(s.Primitives))
	for i, p := range s.Primitives {
		m, err := p.Mesh()
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// Spin is a per-tick rotation increment for one mesh of the scene.
type Spin struct {
	Mesh  int        `toml:"mesh" yaml:"mesh"`
	Delta [3]float64 `toml:"delta" yaml:"delta"`
}

type Animation struct {
	TickRate float64 `toml:"tick_rate" yaml:"tick_rate"` // ticks per second
	Paused   bool    `toml:"paused" yaml:"paused"`
	Spins    []Spin  `toml:"spins" yaml:"spins"`
}

type Color struct {
	R uint8 `toml:"r" yaml:"r"`
	G uint8 `toml:"g" yaml:"g"`
	B uint8 `toml:"b" yaml:"b"`
	A uint8 `toml:"a" yaml:"a"`
}

// Config is the full settings tree.
type Config struct {
	Window     Window     `toml:"window" yaml:"window"`
	Projection Projection `toml:"projection" yaml:"projection"`
	Camera     Camera     `toml:"camera" yaml:"camera"`
	Scene      Scene      `toml:"scene" yaml:"scene"`
	Animation  Animation  `toml:"animation" yaml:"animation"`
	Clear      Color      `toml:"clear" yaml:"clear"`
}

// Default returns the demo scene settings: a 720x480 window looking down +Z
// at the cube grid, with the first cube spinning.
func Default() Config {
	p := render3d.DefaultProjection
	return Config{
		Window:     Window{Width: 720, Height: 480, Title: "softraster"},
		Projection: Projection{FOV: p.FOV, Near: p.Near, Far: p.Far},
		Camera: Camera{
			Position:   [3]float64{0, 0, -20},
			Target:     [3]float64{0, 0, 0},
			MoveSpeed:  0.05,
			EdgeMargin: 10,
		},
		Scene: Scene{CubeGrid: true},
		Animation: Animation{
			TickRate: 1000.0 / 30,
			Spins: []Spin{
				{Mesh: 0, Delta: [3]float64{0.025, 0.025, 0}},
				{Mesh: 4, Delta: [3]float64{0, 0.025, 0}},
			},
		},
		Clear: Color{0, 0, 0, 255},
	}
}

// Load reads path over the defaults. The decoder is picked by extension:
// .toml, .yaml or .yml. Keys that match no setting are an error. The demo
// spins apply only when the file has no spin list at all.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	spins := cfg.Animation.Spins
	cfg.Animation.Spins = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.Animation.Spins == nil {
		cfg.Animation.Spins = spins
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path in the format implied by its extension.
func Save(cfg Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every setting the renderer depends on.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case !(c.Projection.FOV > 0 && c.Projection.FOV < math.Pi):
		return fmt.Errorf("%w: fov %g outside (0, pi)", ErrInvalid, c.Projection.FOV)
	case c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far:
		return fmt.Errorf("%w: near %g, far %g", ErrInvalid, c.Projection.Near, c.Projection.Far)
	case c.Camera.Position == c.Camera.Target:
		return fmt.Errorf("%w: camera position equals target", ErrInvalid)
	case c.Camera.MoveSpeed < 0:
		return fmt.Errorf("%w: negative move speed", ErrInvalid)
	case c.Camera.EdgeMargin < 0 || 2*c.Camera.EdgeMargin >= min(c.Window.Width, c.Window.Height):
		return fmt.Errorf("%w: edge margin %d", ErrInvalid, c.Camera.EdgeMargin)
	case c.Animation.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %g", ErrInvalid, c.Animation.TickRate)
	}
	for _, s := range c.Animation.Spins {
		if s.Mesh < 0 {
			return fmt.Errorf("%w: spin mesh index %d", ErrInvalid, s.Mesh)
		}
	}
	for i, p := range c.Scene.Primitives {
		if err := p.validate(); err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
	}
	return nil
}

// RenderProjection converts the projection settings for the renderer.
func (c Config) RenderProjection() render3d.Projection {
	return render3d.Projection{FOV: c.Projection.FOV, Near: c.Projection.Near, Far: c.Projection.Far}
}

// NewCamera builds the starting camera.
func (c Config) NewCamera() *render3d.Camera {
	return render3d.NewCamera(Vec(c.Camera.Position), Vec(c.Camera.Target))
}

// Vec converts a settings triple to a vector.
func Vec(a [3]float64) math3d.Vector3 { return math3d.V3(a[0], a[1], a[2]) }
