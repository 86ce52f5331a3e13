package render

import (
	"fmt"
	"image/color"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/taigrr/wirescene/pkg/math3d"
	"github.com/taigrr/wirescene/pkg/models"
)

// FrameStats describes the last frame drawn by a scene.
type FrameStats struct {
	ModelsDrawn     int // Models that reached the surface
	ModelsCulled    int // Models skipped by frustum culling
	TrianglesDrawn  int
	PolygonsDrawn   int
	BackfacesCulled int // Triangles and polygons rejected by the facing test
	BehindCamera    int // Elements skipped with a vertex behind the camera
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s FrameStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("models_drawn", s.ModelsDrawn)
	enc.AddInt("models_culled", s.ModelsCulled)
	enc.AddInt("triangles", s.TrianglesDrawn)
	enc.AddInt("polygons", s.PolygonsDrawn)
	enc.AddInt("backfaces_culled", s.BackfacesCulled)
	enc.AddInt("behind_camera", s.BehindCamera)
	return nil
}

// Scene draws an ordered list of models through one camera onto a surface.
// It is not safe for concurrent use; Draw must not overlap with mutation of
// the scene, its camera or its models.
type Scene struct {
	surface Surface
	camera  *Camera
	models  []*models.Model

	log            *zap.Logger
	frustumCulling bool
	behindCulling  bool
	palette        []color.Color

	stats FrameStats

	// Per-frame scratch buffers
	world  []math3d.Vec4
	screen []math3d.Vec2
	poly   []int
}

// SceneOption configures a scene at construction.
type SceneOption func(*Scene)

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *zap.Logger) SceneOption {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFrustumCulling skips models whose world bounds lie outside the view.
func WithFrustumCulling(enabled bool) SceneOption {
	return func(s *Scene) {
		s.frustumCulling = enabled
	}
}

// WithBehindCameraCulling skips triangles and polygons with any vertex
// behind the camera instead of projecting them.
func WithBehindCameraCulling(enabled bool) SceneOption {
	return func(s *Scene) {
		s.behindCulling = enabled
	}
}

// WithPalette assigns stroke colors to models by index, cycling through
// the palette. It only applies to surfaces implementing StrokeColorer.
func WithPalette(colors ...color.Color) SceneOption {
	return func(s *Scene) {
		s.palette = slices.Clone(colors)
	}
}

// NewScene creates a scene bound to surface.
func NewScene(surface Surface, opts ...SceneOption) (*Scene, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	s := &Scene{
		surface: surface,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddModel appends a model to the draw list and returns its index.
func (s *Scene) AddModel(m *models.Model) int {
	s.models = append(s.models, m)
	return len(s.models) - 1
}

// Model returns the model at index i.
func (s *Scene) Model(i int) *models.Model {
	return s.models[i]
}

// Models returns the draw list in insertion order.
func (s *Scene) Models() []*models.Model {
	return slices.Clone(s.models)
}

// ModelCount returns the number of models.
func (s *Scene) ModelCount() int {
	return len(s.models)
}

// SetCamera sets or replaces the camera. A nil camera makes Draw fail.
func (s *Scene) SetCamera(c *Camera) {
	s.camera = c
}

// Camera returns the current camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Surface returns the bound drawing surface.
func (s *Scene) Surface() Surface {
	return s.surface
}

// Stats returns the statistics of the last frame, including one that Draw
// aborted with an error.
func (s *Scene) Stats() FrameStats {
	return s.stats
}

// Draw renders one frame: clear the surface, then for each model transform
// its vertices to world space, run the facing test per triangle and polygon
// and emit each visible one as a closed loop, stroking once per model.
//
// There is no depth sorting. An element that references a missing vertex
// stops the frame with an error wrapping ErrIndexOutOfRange. Commands
// already sent to the surface stay sent, the failing model's open path is
// closed without a stroke, and Stats reports the partial frame.
func (s *Scene) Draw() error {
	if s.camera == nil {
		return ErrNoCamera
	}

	w, h := s.surface.Size()
	s.surface.Clear(0, 0, float64(w), float64(h))

	f := frame{
		camPos:   s.camera.Position(),
		viewProj: s.camera.ViewProjectionMatrix(),
		width:    float64(w),
		height:   float64(h),
	}

	var frustum Frustum
	if s.frustumCulling {
		frustum = s.camera.Frustum()
	}

	colorer, _ := s.surface.(StrokeColorer)

	for i, m := range s.models {
		if s.frustumCulling && m.VertexCount() > 0 {
			lo, hi := m.Bounds()
			if !frustum.IntersectAABB(NewAABB(lo, hi).Transform(m.World())) {
				f.stats.ModelsCulled++
				continue
			}
		}

		if colorer != nil && len(s.palette) > 0 {
			colorer.SetStrokeColor(s.palette[i%len(s.palette)])
		}

		s.world = m.AppendWorldVertices(s.world[:0])
		s.surface.BeginPath()

		for t := range m.TriangleCount() {
			tri := m.Triangle(t)
			drawn, err := s.drawElement(&f, m, "triangle", t, tri[:])
			if err != nil {
				return s.abort(&f, err)
			}
			if drawn {
				f.stats.TrianglesDrawn++
			}
		}
		for p := range m.PolygonCount() {
			s.poly = m.AppendPolygon(s.poly[:0], p)
			drawn, err := s.drawElement(&f, m, "polygon", p, s.poly)
			if err != nil {
				return s.abort(&f, err)
			}
			if drawn {
				f.stats.PolygonsDrawn++
			}
		}

		s.surface.Stroke()
		s.surface.ClosePath()
		f.stats.ModelsDrawn++
	}

	if fl, ok := s.surface.(Flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("render: flush surface: %w", err)
		}
	}

	s.stats = f.stats
	s.log.Debug("frame drawn", zap.Object("stats", f.stats))
	return nil
}

// abort ends a frame that failed mid-model.
func (s *Scene) abort(f *frame, err error) error {
	s.surface.ClosePath()
	s.stats = f.stats
	s.log.Debug("frame aborted", zap.Object("stats", f.stats), zap.Error(err))
	return err
}

// frame carries the per-frame constants through the element loop.
type frame struct {
	camPos        math3d.Vec3
	viewProj      math3d.Mat4
	width, height float64
	stats         FrameStats
}

// drawElement emits one triangle or polygon whose indices refer to s.world.
// The first three vertices decide facing.
func (s *Scene) drawElement(f *frame, m *models.Model, kind string, n int, idx []int) (bool, error) {
	for _, i := range idx {
		if i < 0 || i >= len(s.world) {
			return false, fmt.Errorf("model %q %s %d: vertex %d of %d: %w",
				m.Name(), kind, n, i, len(s.world), ErrIndexOutOfRange)
		}
	}

	if m.BackfaceCulling() && !facesCamera(f.camPos, s.world[idx[0]], s.world[idx[1]], s.world[idx[2]]) {
		f.stats.BackfacesCulled++
		return false, nil
	}

	s.screen = s.screen[:0]
	for _, i := range idx {
		p, inFront := Project(s.world[i], f.viewProj, f.width, f.height)
		if !inFront && s.behindCulling {
			f.stats.BehindCamera++
			return false, nil
		}
		s.screen = append(s.screen, p)
	}

	first := s.screen[0]
	s.surface.MoveTo(first.X, first.Y)
	for _, p := range s.screen[1:] {
		s.surface.LineTo(p.X, p.Y)
	}
	s.surface.LineTo(first.X, first.Y)
	return true, nil
}

// facesCamera applies the facing test to world-space points p1, p2, p3.
// With normal = (p1-p2) x (p3-p2) and c = cam - p1, the element faces the
// camera when c · normal < 0, which holds for vertices that appear
// counter-clockwise from the camera.
func facesCamera(cam math3d.Vec3, v1, v2, v3 math3d.Vec4) bool {
	p1, p2, p3 := v1.Vec3(), v2.Vec3(), v3.Vec3()
	normal := p1.Sub(p2).Cross(p3.Sub(p2))
	theta := cam.Sub(p1).Dot(normal)
	return theta < 0
}
