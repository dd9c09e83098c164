package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Subtract(a); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract = %v, want (3,3,3)", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply = %v, want (2,4,6)", got)
	}
	if got := a.MultiplyVec(b); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec = %v, want (4,10,18)", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate = %v, want (-1,-2,-3)", got)
	}
}

func TestVec3DotCross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := x.Cross(y); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Cross = %v, want (0,0,1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	unit, ok := v.Normalize()
	if !ok {
		t.Fatal("Normalize reported failure on non-zero vector")
	}
	if math.Abs(unit.Length()-1.0) > 1e-9 {
		t.Errorf("unit length = %v, want 1", unit.Length())
	}
	if !unit.Equals(NewVec3(0.6, 0, 0.8)) {
		t.Errorf("Normalize = %v, want (0.6,0,0.8)", unit)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	cases := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(math.NaN(), 0, 0),
		NewVec3(math.Inf(1), 0, 0),
	}
	for _, c := range cases {
		if _, ok := c.Normalize(); ok {
			t.Errorf("Normalize(%v) reported ok, want failure", c)
		}
	}
}

func TestVec3ReflectInvolution(t *testing.T) {
	d, _ := NewVec3(0.4, -0.3, 0.7).Normalize()
	n, _ := NewVec3(0, 1, 0).Normalize()

	once := d.Reflect(n)
	twice := once.Reflect(n)

	if !twice.Equals(d) {
		t.Errorf("reflect(reflect(d,n),n) = %v, want %v", twice, d)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, 1))
	got := r.At(2)
	if !got.Equals(NewVec3(1, 1, 3)) {
		t.Errorf("At(2) = %v, want (1,1,3)", got)
	}
}
