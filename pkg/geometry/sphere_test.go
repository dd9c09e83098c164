package geometry

import (
	"math"
	"testing"

	"github.com/aevyrie/rays/pkg/core"
)

func TestSphereDistanceOnSurface(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	sphere := NewSphere(center, 2.5)

	dirs := []core.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: 0},
	}
	for _, n := range dirs {
		unit, _ := n.Normalize()
		p := center.Add(unit.Multiply(sphere.Radius))
		d := sphere.Distance(p)
		if math.Abs(d) > 1e-4 {
			t.Errorf("Distance(surface point along %v) = %v, want ~0", unit, d)
		}
		if got := sphere.Normal(p); !got.Equals(unit) {
			t.Errorf("Normal(surface point along %v) = %v, want %v", unit, got, unit)
		}
	}
}

func TestSphereDistanceInsideOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	if d := sphere.Distance(core.NewVec3(0, 0, 0)); d != -1 {
		t.Errorf("Distance(center) = %v, want -1", d)
	}
	if d := sphere.Distance(core.NewVec3(3, 0, 0)); d != 2 {
		t.Errorf("Distance(3,0,0) = %v, want 2", d)
	}
}
