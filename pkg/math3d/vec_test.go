package math3d

import (
	"math"
	"testing"
)

func approxVec3(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"general", V3(2, 3, 4), V3(5, 6, 7), V3(-3, 6, -3)},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if !approxVec3(got, tt.want) {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
			if back := tt.b.Cross(tt.a); !approxVec3(back, tt.want.Negate()) {
				t.Errorf("Cross not anticommutative: %v vs %v", back, tt.want.Negate())
			}
			if d := got.Dot(tt.a); !approx(d, 0) {
				t.Errorf("Cross not orthogonal to a: dot = %v", d)
			}
		})
	}
}

func TestVecDot(t *testing.T) {
	if got := V3(2, 3, 4).Dot(V3(5, 6, 7)); got != 56 {
		t.Errorf("Vec3 Dot = %v, want 56", got)
	}
	if got := V3(1, 0, 0).Dot(V3(0, 1, 0)); got != 0 {
		t.Errorf("orthogonal Vec3 Dot = %v, want 0", got)
	}
	if got := V4(1, 2, 3, 4).Dot(V4(5, 6, 7, 8)); got != 70 {
		t.Errorf("Vec4 Dot = %v, want 70", got)
	}
	if got := V2(3, -2).Dot(V2(4, 6)); got != 0 {
		t.Errorf("Vec2 Dot = %v, want 0", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit axis", V3(0, 0, 1)},
		{"3-4-12", V3(3, 4, 12)},
		{"negative", V3(-1, -1, -1)},
		{"tiny", V3(1e-300, 0, 0)},
		{"tiny all components", V3(1e-200, -1e-200, 1e-200)},
		{"subnormal", V3(5e-324, 0, 0)},
		{"huge", V3(1e300, 1e300, 0)},
		{"near max float", V3(-1e308, 1e308, 1e308)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if !n.IsFinite() {
				t.Fatalf("Normalize(%v) = %v, not finite", tt.v, n)
			}
			if l := n.Len(); !approx(l, 1) {
				t.Errorf("Normalize(%v).Len() = %v, want 1", tt.v, l)
			}
			if d := n.Dot(tt.v); d <= 0 {
				t.Errorf("Normalize(%v) flipped direction: dot = %v", tt.v, d)
			}
		})
	}

	want := V3(3.0/13, 4.0/13, 12.0/13)
	if got := V3(3, 4, 12).Normalize(); !approxVec3(got, want) {
		t.Errorf("Normalize(3,4,12) = %v, want %v", got, want)
	}
}

func TestVecNormalizeZero(t *testing.T) {
	if got := Zero3().Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3 zero Normalize = %v, want zero vector", got)
	}
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Vec4 zero Normalize = %v, want zero vector", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Vec2 zero Normalize = %v, want zero vector", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec4
	}{
		{"simple", V4(1, 2, 2, 4)},
		{"tiny", V4(1e-200, 1e-200, 1e-200, 1e-200)},
		{"huge", V4(1e300, -1e300, 1e300, -1e300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if l := n.Len(); !approx(l, 1) {
				t.Errorf("Normalize(%v).Len() = %v, want 1", tt.v, l)
			}
		})
	}

	if got, want := V4(1, 2, 2, 4).Len(), 5.0; !approx(got, want) {
		t.Errorf("Len = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	for _, v := range []Vec2{V2(3, 4), V2(1e-300, 0), V2(1e300, -1e300)} {
		if l := v.Normalize().Len(); !approx(l, 1) {
			t.Errorf("Normalize(%v).Len() = %v, want 1", v, l)
		}
	}
}

func TestVec3Len(t *testing.T) {
	if got := V3(3, 4, 12).Len(); !approx(got, 13) {
		t.Errorf("Len = %v, want 13", got)
	}
	if got := V3(1e300, 1e300, 0).Len(); math.IsInf(got, 0) || !approx(got/1e300, math.Sqrt2) {
		t.Errorf("Len of huge vector = %v", got)
	}
	if got := V3(1e-300, 0, 0).Len(); got != 1e-300 {
		t.Errorf("Len of tiny vector = %v, want 1e-300", got)
	}
	if got := V3(1, 2, 3).Distance(V3(4, 6, 3)); !approx(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, -1, -2)
	if got := a.Min(b); got != V3(1, -1, -2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(3, 5, -2) {
		t.Errorf("Max = %v", got)
	}
}

func TestVecIsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if V3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component reported finite")
	}
	if V2(0, math.Inf(-1)).IsFinite() {
		t.Error("infinite component reported finite")
	}
}
