package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/taigrr/wirescene/internal/config"
	"github.com/taigrr/wirescene/pkg/models"
	"github.com/taigrr/wirescene/pkg/render"
)

// demo is the spinning scene shared by every output mode.
type demo struct {
	scene  *render.Scene
	camera *render.Camera
	models []*models.Model
	tilt   []float64 // fixed pitch per model, added to the spin
	spin   *Spin
}

// newDemo builds the configured models and a scene drawing them onto
// surface. width and height size the camera viewport.
func newDemo(cfg *config.Config, surface render.Surface, width, height int, log *zap.Logger) (*demo, error) {
	cam, err := cfg.NewCamera(width, height)
	if err != nil {
		return nil, err
	}
	stroke, err := cfg.StrokeColor()
	if err != nil {
		return nil, err
	}

	list, tilt, err := buildModels(cfg.Demo.Model)
	if err != nil {
		return nil, err
	}

	scene, err := render.NewScene(surface,
		render.WithLogger(log.Named("scene")),
		render.WithFrustumCulling(cfg.Render.FrustumCulling),
		render.WithBehindCameraCulling(cfg.Render.BehindCameraCulling),
		render.WithPalette(palette(stroke, len(list))...),
	)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	scene.SetCamera(cam)

	for _, m := range list {
		if !cfg.Render.BackfaceCulling {
			m.SetBackfaceCulling(false)
		}
		scene.AddModel(m)
	}

	d := &demo{
		scene:  scene,
		camera: cam,
		models: list,
		tilt:   tilt,
		spin:   NewSpin(cfg.Demo.FPS, cfg.Demo.Spin),
	}
	d.apply()
	return d, nil
}

// buildModels returns the named demo models and their fixed pitch.
func buildModels(name string) ([]*models.Model, []float64, error) {
	switch name {
	case "cube":
		return []*models.Model{models.NewCube("cube", 4)}, []float64{0.4}, nil
	case "pyramid":
		return []*models.Model{models.NewPyramid("pyramid", 4, 4)}, []float64{0.3}, nil
	case "grid":
		return []*models.Model{models.NewGrid("grid", 10, 10)}, []float64{0.5}, nil
	case "all":
		cube := models.NewCube("cube", 3)
		cube.SetPosition(-4, 1, 0)
		pyramid := models.NewPyramid("pyramid", 3, 3)
		pyramid.SetPosition(4, 1, 0)
		grid := models.NewGrid("grid", 14, 7)
		grid.SetPosition(0, -3, 0)
		return []*models.Model{cube, pyramid, grid}, []float64{0.4, 0.3, 0.5}, nil
	default:
		return nil, nil, fmt.Errorf("unknown model %q", name)
	}
}

// palette spreads n colors evenly around the hue circle, starting at the
// stroke color and keeping its chroma and lightness.
func palette(stroke color.RGBA, n int) []color.Color {
	if n <= 1 {
		return []color.Color{stroke}
	}
	base, _ := colorful.MakeColor(stroke)
	h, c, l := base.Hcl()

	out := make([]color.Color, n)
	out[0] = stroke
	for i := 1; i < n; i++ {
		hue := math.Mod(h+float64(i)*360/float64(n), 360)
		out[i] = colorful.Hcl(hue, c, l).Clamped()
	}
	return out
}

// step advances the animation by one frame.
func (d *demo) step() {
	d.spin.Update()
	d.apply()
}

func (d *demo) apply() {
	for i, m := range d.models {
		m.SetRotation(d.tilt[i]+d.spin.Pitch.Position, d.spin.Yaw.Position, 0)
	}
}

// dolly moves the camera toward (factor < 1) or away from (factor > 1) its
// target. The distance stays within [2*near, far/2].
func (d *demo) dolly(factor float64) error {
	pos, target := d.camera.Position(), d.camera.Target()
	offset := pos.Sub(target)
	lens := d.camera.Lens()

	dist := offset.Len() * factor
	dist = max(dist, 2*lens.Near)
	dist = min(dist, lens.Far/2)

	return d.camera.SetPosition(target.Add(offset.Normalize().Scale(dist)))
}

// toggleCulling flips back-face culling on every model and reports the new
// state.
func (d *demo) toggleCulling() bool {
	enabled := !d.models[0].BackfaceCulling()
	for _, m := range d.models {
		m.SetBackfaceCulling(enabled)
	}
	return enabled
}

// triangleCount is the number of triangles and polygons in the scene.
func (d *demo) triangleCount() int {
	n := 0
	for _, m := range d.models {
		n += m.TriangleCount() + m.PolygonCount()
	}
	return n
}
