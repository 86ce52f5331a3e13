package render

import "github.com/taigrr/wirescene/pkg/math3d"

// Project maps a world-space homogeneous point to screen coordinates.
//
// The point is transformed to clip space, divided by its w component and
// mapped so that x grows to the right and y grows downward:
//
//	x = width  * ((cx/cw) + 1) / 2
//	y = height * (1 - ((cy/cw) + 1) / 2)
//
// The bool reports cw > 0. There is no clipping: a point behind the camera
// still yields coordinates, and cw == 0 yields non-finite ones.
func Project(p math3d.Vec4, viewProj math3d.Mat4, width, height float64) (math3d.Vec2, bool) {
	clip := viewProj.MulVec4(p)
	x := width * ((clip.X / clip.W) + 1) / 2
	y := height * (1 - ((clip.Y/clip.W)+1)/2)
	return math3d.V2(x, y), clip.W > 0
}
