package render

import (
	"math"
	"testing"

	"github.com/taigrr/wirescene/pkg/math3d"
)

func TestPlaneDistanceToPoint(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	length := plane.Normal.Len()
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1.0", length)
	}
	if math.Abs(plane.Normal.Y-0.6) > 1e-9 {
		t.Errorf("normal.Y = %v, want 0.6", plane.Normal.Y)
	}
	if math.Abs(plane.Normal.Z-0.8) > 1e-9 {
		t.Errorf("normal.Z = %v, want 0.8", plane.Normal.Z)
	}
	if math.Abs(plane.D-2.0) > 1e-9 {
		t.Errorf("D = %v, want 2.0", plane.D)
	}
}

func TestPlaneNormalizeZero(t *testing.T) {
	plane := Plane{D: 3}
	plane.Normalize()
	if plane.D != 3 {
		t.Errorf("zero-normal plane changed: %+v", plane)
	}
}

func TestAABBBasics(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3))

	center := box.Center()
	if center.X != 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("center = %v, want (0, 0, 0)", center)
	}

	size := box.Size()
	if size.X != 2 || size.Y != 4 || size.Z != 6 {
		t.Errorf("size = %v, want (2, 4, 6)", size)
	}

	halfSize := box.HalfSize()
	if halfSize.X != 1 || halfSize.Y != 2 || halfSize.Z != 3 {
		t.Errorf("halfSize = %v, want (1, 2, 3)", halfSize)
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3(0, 0, 0), math3d.V3(10, 10, 10))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center", math3d.V3(5, 5, 5), true},
		{"corner min", math3d.V3(0, 0, 0), true},
		{"corner max", math3d.V3(10, 10, 10), true},
		{"edge", math3d.V3(5, 0, 5), true},
		{"outside X", math3d.V3(11, 5, 5), false},
		{"outside Y", math3d.V3(5, -1, 5), false},
		{"outside Z", math3d.V3(5, 5, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := box.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		trans := math3d.Translate(math3d.V3(10, 20, 30))
		transformed := box.Transform(trans)

		if transformed.Min.X != 9 || transformed.Min.Y != 19 || transformed.Min.Z != 29 {
			t.Errorf("translated min = %v, want (9, 19, 29)", transformed.Min)
		}
		if transformed.Max.X != 11 || transformed.Max.Y != 21 || transformed.Max.Z != 31 {
			t.Errorf("translated max = %v, want (11, 21, 31)", transformed.Max)
		}
	})

	t.Run("scale", func(t *testing.T) {
		scale := math3d.ScaleUniform(2.0)
		transformed := box.Transform(scale)

		if transformed.Min.X != -2 || transformed.Min.Y != -2 || transformed.Min.Z != -2 {
			t.Errorf("scaled min = %v, want (-2, -2, -2)", transformed.Min)
		}
		if transformed.Max.X != 2 || transformed.Max.Y != 2 || transformed.Max.Z != 2 {
			t.Errorf("scaled max = %v, want (2, 2, 2)", transformed.Max)
		}
	})

	t.Run("rotation grows box", func(t *testing.T) {
		transformed := box.Transform(math3d.RotateY(math.Pi / 4))
		want := math.Sqrt2
		if math.Abs(transformed.Max.X-want) > 1e-9 || math.Abs(transformed.Max.Z-want) > 1e-9 {
			t.Errorf("rotated max = %v, want (%v, 1, %v)", transformed.Max, want, want)
		}
		if math.Abs(transformed.Max.Y-1) > 1e-9 {
			t.Errorf("rotated max.Y = %v, want 1", transformed.Max.Y)
		}
	})
}

func TestFrustumPlanesNormalized(t *testing.T) {
	proj := math3d.PerspectiveFov(math.Pi/3, 16.0/9.0, 0.1, 100)
	frustum := NewFrustumFromMatrix(proj.Mul(math3d.Identity()))

	for i, plane := range frustum.Planes {
		length := plane.Normal.Len()
		if math.Abs(length-1.0) > 1e-6 {
			t.Errorf("plane %d normal length = %v, want 1.0", i, length)
		}
	}
}

func TestFrustumNearFarDistances(t *testing.T) {
	near, far := 2.0, 50.0
	frustum := NewFrustumFromMatrix(math3d.PerspectiveFov(math.Pi/3, 1, near, far))

	// Camera looks down -Z: the near plane sits at z=-near, the far plane at z=-far.
	if d := frustum.Planes[FrustumNear].DistanceToPoint(math3d.V3(0, 0, -near)); math.Abs(d) > 1e-9 {
		t.Errorf("near plane distance at z=-near = %v, want 0", d)
	}
	if d := frustum.Planes[FrustumFar].DistanceToPoint(math3d.V3(0, 0, -far)); math.Abs(d) > 1e-6 {
		t.Errorf("far plane distance at z=-far = %v, want 0", d)
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	fov := math.Pi / 3 // 60 degrees
	aspect := 16.0 / 9.0
	near := 0.1
	far := 100.0

	proj := math3d.PerspectiveFov(fov, aspect, near, far)
	frustum := NewFrustumFromMatrix(proj.Mul(math3d.Identity()))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center near", math3d.V3(0, 0, -1), true},
		{"center mid", math3d.V3(0, 0, -50), true},
		{"center far", math3d.V3(0, 0, -99), true},
		{"behind camera", math3d.V3(0, 0, 1), false},
		{"too far", math3d.V3(0, 0, -200), false},
		{"too close", math3d.V3(0, 0, -0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	proj := math3d.PerspectiveFov(math.Pi/3, 16.0/9.0, 1.0, 100.0)
	frustum := NewFrustumFromMatrix(proj.Mul(math3d.Identity()))

	tests := []struct {
		name     string
		box      AABB
		expected bool
	}{
		{
			"fully inside",
			NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5)),
			true,
		},
		{
			"partially visible",
			NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2)), // Crosses near plane and goes behind
			true,
		},
		{
			"behind camera",
			NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 10)),
			false,
		},
		{
			"beyond far plane",
			NewAABB(math3d.V3(-1, -1, -150), math3d.V3(1, 1, -120)),
			false,
		},
		{
			"far to the right",
			NewAABB(math3d.V3(100, -1, -10), math3d.V3(110, 1, -5)),
			false,
		},
		{
			"large box containing frustum",
			NewAABB(math3d.V3(-200, -200, -200), math3d.V3(200, 200, 200)),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectAABB(tc.box)
			if result != tc.expected {
				t.Errorf("IntersectAABB(%v) = %v, want %v", tc.box, result, tc.expected)
			}
		})
	}
}

func TestFrustumContainsAABB(t *testing.T) {
	proj := math3d.PerspectiveFov(math.Pi/3, 1, 1, 100)
	frustum := NewFrustumFromMatrix(proj)

	inside := NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5))
	if !frustum.ContainsAABB(inside) {
		t.Error("small box in front of the camera should be fully contained")
	}

	straddling := NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2))
	if frustum.ContainsAABB(straddling) {
		t.Error("box crossing the near plane should not be fully contained")
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	proj := math3d.PerspectiveFov(math.Pi/3, 16.0/9.0, 1.0, 100.0)
	frustum := NewFrustumFromMatrix(proj.Mul(math3d.Identity()))

	tests := []struct {
		name     string
		center   math3d.Vec3
		radius   float64
		expected bool
	}{
		{"inside", math3d.V3(0, 0, -10), 1.0, true},
		{"partially visible", math3d.V3(0, 0, -0.5), 1.0, true}, // Near the near plane
		{"behind", math3d.V3(0, 0, 5), 1.0, false},
		{"far behind", math3d.V3(0, 0, 20), 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := frustum.IntersectsSphere(tc.center, tc.radius)
			if result != tc.expected {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestFrustumWithRotatedCamera(t *testing.T) {
	// Camera at origin looking at a target along +X axis
	proj := math3d.PerspectiveFov(math.Pi/3, 1.0, 1.0, 100.0)
	view := math3d.LookAt(math3d.V3(0, 0, 0), math3d.V3(10, 0, 0), math3d.V3(0, 1, 0))
	frustum := NewFrustumFromMatrix(proj.Mul(view))

	if !frustum.ContainsPoint(math3d.V3(10, 0, 0)) {
		t.Error("point in front of rotated camera should be visible")
	}
	if frustum.ContainsPoint(math3d.V3(-10, 0, 0)) {
		t.Error("point behind rotated camera should not be visible")
	}
}

func BenchmarkFrustumExtraction(b *testing.B) {
	proj := math3d.PerspectiveFov(math.Pi/3, 16.0/9.0, 0.1, 1000.0)
	view := math3d.LookAt(math3d.V3(0, 10, 20), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	viewProj := proj.Mul(view)

	for b.Loop() {
		_ = NewFrustumFromMatrix(viewProj)
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	proj := math3d.PerspectiveFov(math.Pi/3, 16.0/9.0, 0.1, 1000.0)
	frustum := NewFrustumFromMatrix(proj)

	visible := NewAABB(math3d.V3(-1, -1, -15), math3d.V3(1, 1, -5))
	culled := NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 15))

	b.Run("visible", func(b *testing.B) {
		for b.Loop() {
			_ = frustum.IntersectAABB(visible)
		}
	})

	b.Run("culled", func(b *testing.B) {
		for b.Loop() {
			_ = frustum.IntersectAABB(culled)
		}
	})
}

func BenchmarkAABBTransform(b *testing.B) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	trans := math3d.Translate(math3d.V3(10, 0, 0)).Mul(math3d.RotateY(0.5))

	for b.Loop() {
		_ = box.Transform(trans)
	}
}
