package render

import "errors"

var (
	// ErrNoCamera is returned by Scene.Draw when no camera has been set.
	ErrNoCamera = errors.New("render: scene has no camera")

	// ErrNilSurface is returned when a scene is created without a surface.
	ErrNilSurface = errors.New("render: nil drawing surface")

	// ErrIndexOutOfRange is returned when a triangle or polygon references a
	// vertex outside its model's vertex buffer.
	ErrIndexOutOfRange = errors.New("render: vertex index out of range")

	// ErrInvalidViewport is returned for a non-positive viewport size.
	ErrInvalidViewport = errors.New("render: viewport width and height must be positive")

	// ErrInvalidLens is returned for a lens that cannot build a projection.
	ErrInvalidLens = errors.New("render: invalid lens")

	// ErrDegenerateView is returned when position, target and up cannot
	// form a view basis.
	ErrDegenerateView = errors.New("render: degenerate view")
)
