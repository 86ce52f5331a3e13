package config

import (
	"flag"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/wirescene/pkg/math3d"
	"github.com/taigrr/wirescene/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800, cfg.Viewport.Width)
	assert.Equal(t, 600, cfg.Viewport.Height)
	assert.Equal(t, 45.0, cfg.Camera.FieldOfView)
	assert.Equal(t, []float64{0, 0, 15}, cfg.Camera.Position)
	assert.True(t, cfg.Render.BackfaceCulling)
	assert.False(t, cfg.Render.FrustumCulling)
	assert.False(t, cfg.Render.BehindCameraCulling)
	assert.Equal(t, "cube", cfg.Demo.Model)
	assert.Equal(t, "terminal", cfg.Demo.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)

	require.NoError(t, cfg.Validate())
}

func TestLens(t *testing.T) {
	cfg := Default()
	lens := cfg.Lens()

	assert.InDelta(t, math.Pi/4, lens.FieldOfView, 1e-12)
	assert.Equal(t, 1.0, lens.Near)
	assert.Equal(t, 1000.0, lens.Far)
}

func TestNewCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.Position = []float64{1, 2, 3}
	cfg.Camera.Target = []float64{0, 1, 0}

	cam, err := cfg.NewCamera(640, 480)
	require.NoError(t, err)
	assert.Equal(t, math3d.V3(1, 2, 3), cam.Position())
	assert.Equal(t, math3d.V3(0, 1, 0), cam.Target())

	w, h := cam.Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestColors(t *testing.T) {
	cfg := Default()

	stroke, err := cfg.StrokeColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x00, 0xff, 0x80, 0xff}, stroke)

	bg, err := cfg.Background()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x1e, 0x1e, 0x28, 0xff}, bg)

	cfg.Render.StrokeColor = "#fff"
	stroke, err = cfg.StrokeColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, stroke)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		also   error
	}{
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }, render.ErrInvalidViewport},
		{"negative height", func(c *Config) { c.Viewport.Height = -5 }, render.ErrInvalidViewport},
		{"near equals far", func(c *Config) { c.Camera.NearPlane, c.Camera.FarPlane = 10, 10 }, render.ErrInvalidLens},
		{"fov past 180", func(c *Config) { c.Camera.FieldOfView = 200 }, render.ErrInvalidLens},
		{"camera on target", func(c *Config) { c.Camera.Position = []float64{0, 0, 0} }, render.ErrDegenerateView},
		{"short position", func(c *Config) { c.Camera.Position = []float64{1, 2} }, nil},
		{"bad stroke color", func(c *Config) { c.Render.StrokeColor = "green" }, nil},
		{"bad background", func(c *Config) { c.Render.Background = "#12345" }, nil},
		{"unknown model", func(c *Config) { c.Demo.Model = "teapot" }, nil},
		{"unknown output", func(c *Config) { c.Demo.Output = "svg" }, nil},
		{"zero fps", func(c *Config) { c.Demo.FPS = 0 }, nil},
		{"png without frames", func(c *Config) { c.Demo.Output, c.Demo.Frames = "png", 0 }, nil},
		{"png without dir", func(c *Config) { c.Demo.Output, c.Demo.OutDir = "png", "" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Demo.Model = "teapot"
	cfg.Demo.Output = "svg"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teapot")
	assert.Contains(t, err.Error(), "svg")
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wirescene.yaml")

	yamlContent := `
viewport:
  width: 320
  height: 200
camera:
  field_of_view: 60
  position: [0, 5, 10]
render:
  frustum_culling: true
  stroke_color: "#ff0000"
demo:
  model: all
  output: png
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := Load(&Flags{Config: configPath})
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Viewport.Width)
	assert.Equal(t, 200, cfg.Viewport.Height)
	assert.Equal(t, 60.0, cfg.Camera.FieldOfView)
	assert.Equal(t, []float64{0, 5, 10}, cfg.Camera.Position)
	assert.True(t, cfg.Render.FrustumCulling)
	assert.Equal(t, "#ff0000", cfg.Render.StrokeColor)
	assert.Equal(t, "all", cfg.Demo.Model)
	assert.Equal(t, "png", cfg.Demo.Output)

	// Keys missing from the file keep their defaults.
	assert.Equal(t, 1.0, cfg.Camera.NearPlane)
	assert.Equal(t, []float64{0, 0, 0}, cfg.Camera.Target)
	assert.True(t, cfg.Render.BackfaceCulling)
	assert.Equal(t, "#1e1e28", cfg.Render.Background)
	assert.Equal(t, 30, cfg.Demo.FPS)

	require.NoError(t, cfg.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(&Flags{Config: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("viewport: [unterminated"), 0o644))

	_, err := Load(&Flags{Config: configPath})
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wirescene.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("viewport: {width: 320, height: 200}\ndemo: {model: grid}\n"), 0o644))

	fs := flag.NewFlagSet("wirescene", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-config", configPath,
		"-width", "1024",
		"-model", "pyramid",
		"-output", "png",
		"-frames", "12",
		"-out", "shots",
		"-fps", "24",
		"-debug",
	}))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Viewport.Width)
	assert.Equal(t, 200, cfg.Viewport.Height, "height from file")
	assert.Equal(t, "pyramid", cfg.Demo.Model)
	assert.Equal(t, "png", cfg.Demo.Output)
	assert.Equal(t, 12, cfg.Demo.Frames)
	assert.Equal(t, "shots", cfg.Demo.OutDir)
	assert.Equal(t, 24, cfg.Demo.FPS)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNilFlagsApply(t *testing.T) {
	var f *Flags
	cfg := Default()
	f.Apply(cfg)
	assert.Equal(t, Default(), cfg)
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Viewport.Width = 1234
	cfg.Camera.Target = []float64{1, 2, 3}
	cfg.Render.FrustumCulling = true
	cfg.Logging.LogFile = "wirescene.log"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, LoadFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
