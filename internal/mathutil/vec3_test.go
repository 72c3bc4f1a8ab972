package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-12

func vecNear(a, b Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"scale", a.Scale(2), Vec3{2, 4, 6}},
		{"div", b.Div(2), Vec3{2, -2.5, 3}},
		{"cross", a.Cross(b), Vec3{27, 6, -13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if a != (Vec3{1, 2, 3}) || b != (Vec3{4, -5, 6}) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	x, y := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x × y = %v, want (0,0,1)", got)
	}
	if x.Cross(y).Dot(x) != 0 {
		t.Error("cross product is not orthogonal to its operand")
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if !vecNear(v, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize = %v, want (0.6, 0, 0.8)", v)
	}
	if math.Abs(v.Len()-1) > eps {
		t.Errorf("|Normalize| = %v, want 1", v.Len())
	}
}

func TestVec3DegenerateInputs(t *testing.T) {
	z := Vec3{}.Normalize()
	for i, c := range z {
		if !math.IsNaN(c) {
			t.Errorf("zero Normalize component %d = %v, want NaN", i, c)
		}
	}

	d := Vec3{1, -1, 0}.Div(0)
	if !math.IsInf(d[0], 1) || !math.IsInf(d[1], -1) || !math.IsNaN(d[2]) {
		t.Errorf("Div(0) = %v, want (+Inf, -Inf, NaN)", d)
	}
}

func TestVec3Accessors(t *testing.T) {
	v := Vec3{7, 8, 9}
	if v.X() != 7 || v.Y() != 8 || v.Z() != 9 {
		t.Errorf("accessors = (%v, %v, %v), want (7, 8, 9)", v.X(), v.Y(), v.Z())
	}
}
