package render

import (
	"fmt"
	"math"

	"github.com/taigrr/wirescene/pkg/math3d"
)

// Lens holds the projection parameters of a camera.
type Lens struct {
	FieldOfView float64 // Vertical field of view in radians
	Near        float64 // Near clipping plane distance
	Far         float64 // Far clipping plane distance
}

// DefaultLens returns a 45 degree lens with planes at 1 and 1000.
func DefaultLens() Lens {
	return Lens{
		FieldOfView: math.Pi / 4,
		Near:        1,
		Far:         1000,
	}
}

// Validate reports whether the lens can build a finite projection.
func (l Lens) Validate() error {
	switch {
	case !isFinite(l.FieldOfView) || !isFinite(l.Near) || !isFinite(l.Far):
		return fmt.Errorf("%w: non-finite parameter", ErrInvalidLens)
	case l.FieldOfView <= 0 || l.FieldOfView >= math.Pi:
		return fmt.Errorf("%w: field of view %v outside (0, π)", ErrInvalidLens, l.FieldOfView)
	case l.Near <= 0:
		return fmt.Errorf("%w: near plane %v must be positive", ErrInvalidLens, l.Near)
	case l.Far <= l.Near:
		return fmt.Errorf("%w: far plane %v must exceed near plane %v", ErrInvalidLens, l.Far, l.Near)
	}
	return nil
}

// Camera is a look-at camera with a perspective lens.
//
// Every mutator recomputes the derived matrices before it returns, so
// ViewProjectionMatrix always equals ProjectionMatrix().Mul(ViewMatrix()).
// A mutator that fails leaves the camera unchanged.
type Camera struct {
	position math3d.Vec3
	target   math3d.Vec3
	up       math3d.Vec3

	lens          Lens
	width, height int

	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
}

// CameraOption configures a camera at construction.
type CameraOption func(*Camera)

// WithLens sets the projection parameters.
func WithLens(l Lens) CameraOption {
	return func(c *Camera) {
		c.lens = l
	}
}

// WithLookAt sets the eye position, target and up vector.
func WithLookAt(eye, target, up math3d.Vec3) CameraOption {
	return func(c *Camera) {
		c.position = eye
		c.target = target
		c.up = up
	}
}

// NewCamera creates a camera for a width x height viewport. By default it
// sits at (0, 0, 15) looking at the origin with +Y up and DefaultLens.
func NewCamera(width, height int, opts ...CameraOption) (*Camera, error) {
	c := &Camera{
		position: math3d.V3(0, 0, 15),
		target:   math3d.Zero3(),
		up:       math3d.Up(),
		lens:     DefaultLens(),
		width:    width,
		height:   height,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := validateViewport(width, height); err != nil {
		return nil, err
	}
	if err := c.lens.Validate(); err != nil {
		return nil, err
	}
	if err := validateView(c.position, c.target, c.up); err != nil {
		return nil, err
	}

	c.computeProjectionMatrix()
	c.computeViewMatrix()
	return c, nil
}

// SetPosition moves the eye.
func (c *Camera) SetPosition(p math3d.Vec3) error {
	return c.SetLookAt(p, c.target, c.up)
}

// SetTarget changes the point the camera looks at.
func (c *Camera) SetTarget(t math3d.Vec3) error {
	return c.SetLookAt(c.position, t, c.up)
}

// SetUp changes the up vector.
func (c *Camera) SetUp(u math3d.Vec3) error {
	return c.SetLookAt(c.position, c.target, u)
}

// SetLookAt sets eye, target and up together.
func (c *Camera) SetLookAt(eye, target, up math3d.Vec3) error {
	if err := validateView(eye, target, up); err != nil {
		return err
	}
	c.position, c.target, c.up = eye, target, up
	c.computeViewMatrix()
	return nil
}

// SetLens replaces the projection parameters.
func (c *Camera) SetLens(l Lens) error {
	if err := l.Validate(); err != nil {
		return err
	}
	c.lens = l
	c.computeProjectionMatrix()
	c.computeViewMatrix()
	return nil
}

// SetViewport changes the viewport size and therefore the aspect ratio.
func (c *Camera) SetViewport(width, height int) error {
	if err := validateViewport(width, height); err != nil {
		return err
	}
	c.width, c.height = width, height
	c.computeProjectionMatrix()
	c.computeViewMatrix()
	return nil
}

// Position returns the eye position.
func (c *Camera) Position() math3d.Vec3 { return c.position }

// Target returns the look-at target.
func (c *Camera) Target() math3d.Vec3 { return c.target }

// Up returns the up vector as given (not re-orthogonalized).
func (c *Camera) Up() math3d.Vec3 { return c.up }

// Lens returns the projection parameters.
func (c *Camera) Lens() Lens { return c.lens }

// Viewport returns the viewport size.
func (c *Camera) Viewport() (width, height int) { return c.width, c.height }

// AspectRatio returns width / height.
func (c *Camera) AspectRatio() float64 {
	return float64(c.width) / float64(c.height)
}

// Forward returns the unit direction from the eye to the target.
func (c *Camera) Forward() math3d.Vec3 {
	return c.target.Sub(c.position).Normalize()
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 { return c.viewMatrix }

// ProjectionMatrix returns the view-to-clip matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 { return c.projMatrix }

// ViewProjectionMatrix returns the combined world-to-clip matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 { return c.viewProjMatrix }

// Frustum returns the current view frustum.
func (c *Camera) Frustum() Frustum {
	return NewFrustumFromMatrix(c.viewProjMatrix)
}

// WorldToScreen projects a world point into the camera viewport.
// The bool is false when the point is behind the camera.
func (c *Camera) WorldToScreen(p math3d.Vec3) (math3d.Vec2, bool) {
	return Project(math3d.V4FromV3(p, 1), c.viewProjMatrix, float64(c.width), float64(c.height))
}

// computeViewMatrix rebuilds the view matrix and the combined matrix.
func (c *Camera) computeViewMatrix() {
	c.viewMatrix = math3d.LookAt(c.position, c.target, c.up)
	c.viewProjMatrix = c.projMatrix.Mul(c.viewMatrix)
}

func (c *Camera) computeProjectionMatrix() {
	c.projMatrix = math3d.PerspectiveFov(c.lens.FieldOfView, c.AspectRatio(), c.lens.Near, c.lens.Far)
}

func validateViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, width, height)
	}
	return nil
}

// minBasis is the smallest |up x forward| accepted as a usable basis.
const minBasis = 1e-9

func validateView(eye, target, up math3d.Vec3) error {
	if !eye.IsFinite() || !target.IsFinite() || !up.IsFinite() {
		return fmt.Errorf("%w: non-finite vector", ErrDegenerateView)
	}
	forward := eye.Sub(target)
	if forward.LenSq() == 0 {
		return fmt.Errorf("%w: eye and target coincide at %v", ErrDegenerateView, eye)
	}
	if up.Cross(forward.Normalize()).Len() < minBasis {
		return fmt.Errorf("%w: up %v is zero or parallel to the view direction", ErrDegenerateView, up)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
