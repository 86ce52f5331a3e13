// Package config handles wirescene configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/wirescene/pkg/math3d"
	"github.com/taigrr/wirescene/pkg/render"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Model names accepted by DemoConfig.Model.
var ModelNames = []string{"cube", "pyramid", "grid", "all"}

// Output modes accepted by DemoConfig.Output.
var OutputModes = []string{"terminal", "png", "window"}

// Config holds all wirescene settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig holds the output size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds the lens and placement. FieldOfView is in degrees.
type CameraConfig struct {
	FieldOfView float64   `yaml:"field_of_view"`
	NearPlane   float64   `yaml:"near_plane"`
	FarPlane    float64   `yaml:"far_plane"`
	Position    []float64 `yaml:"position,flow"`
	Target      []float64 `yaml:"target,flow"`
}

// RenderConfig holds scene drawing settings.
type RenderConfig struct {
	BackfaceCulling     bool   `yaml:"backface_culling"`
	FrustumCulling      bool   `yaml:"frustum_culling"`
	BehindCameraCulling bool   `yaml:"behind_camera_culling"`
	StrokeColor         string `yaml:"stroke_color"`
	Background          string `yaml:"background"`
}

// DemoConfig holds settings for the wirescene command.
type DemoConfig struct {
	Model  string  `yaml:"model"`
	Output string  `yaml:"output"`
	FPS    int     `yaml:"fps"`
	Frames int     `yaml:"frames"`
	OutDir string  `yaml:"out_dir"`
	Spin   float64 `yaml:"spin"` // radians per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock scene: an 800x600 viewport and a
// 45 degree camera at (0, 0, 15) looking at the origin.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			FieldOfView: 45,
			NearPlane:   1,
			FarPlane:    1000,
			Position:    []float64{0, 0, 15},
			Target:      []float64{0, 0, 0},
		},
		Render: RenderConfig{
			BackfaceCulling: true,
			StrokeColor:     "#00ff80",
			Background:      "#1e1e28",
		},
		Demo: DemoConfig{
			Model:  "cube",
			Output: "terminal",
			FPS:    30,
			Frames: 60,
			OutDir: "frames",
			Spin:   1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Lens converts the camera section to a render.Lens.
func (c *Config) Lens() render.Lens {
	return render.Lens{
		FieldOfView: c.Camera.FieldOfView * math.Pi / 180,
		Near:        c.Camera.NearPlane,
		Far:         c.Camera.FarPlane,
	}
}

// NewCamera builds a camera for a width x height surface from the camera
// section.
func (c *Config) NewCamera(width, height int) (*render.Camera, error) {
	pos, err := vec3(c.Camera.Position)
	if err != nil {
		return nil, fmt.Errorf("%w: camera position: %w", ErrInvalidConfig, err)
	}
	target, err := vec3(c.Camera.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: camera target: %w", ErrInvalidConfig, err)
	}
	cam, err := render.NewCamera(width, height,
		render.WithLens(c.Lens()),
		render.WithLookAt(pos, target, math3d.Up()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: camera: %w", ErrInvalidConfig, err)
	}
	return cam, nil
}

// StrokeColor parses render.stroke_color.
func (c *Config) StrokeColor() (color.RGBA, error) {
	return parseColor("stroke_color", c.Render.StrokeColor)
}

// Background parses render.background.
func (c *Config) Background() (color.RGBA, error) {
	return parseColor("background", c.Render.Background)
}

// Validate checks every section and joins all failures.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.NewCamera(c.Viewport.Width, c.Viewport.Height); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.StrokeColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Background(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(ModelNames, c.Demo.Model) {
		errs = append(errs, fmt.Errorf("%w: unknown model %q (want one of %v)", ErrInvalidConfig, c.Demo.Model, ModelNames))
	}
	if !slices.Contains(OutputModes, c.Demo.Output) {
		errs = append(errs, fmt.Errorf("%w: unknown output %q (want one of %v)", ErrInvalidConfig, c.Demo.Output, OutputModes))
	}
	if c.Demo.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Demo.FPS))
	}
	if c.Demo.Output == "png" {
		if c.Demo.Frames <= 0 {
			errs = append(errs, fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, c.Demo.Frames))
		}
		if c.Demo.OutDir == "" {
			errs = append(errs, fmt.Errorf("%w: out_dir is required for png output", ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

func parseColor(field, s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, field, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func vec3(v []float64) (math3d.Vec3, error) {
	if len(v) != 3 {
		return math3d.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return math3d.V3(v[0], v[1], v[2]), nil
}
