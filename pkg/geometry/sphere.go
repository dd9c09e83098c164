// Package geometry holds concrete SDF shapes.
package geometry

import "github.com/aevyrie/rays/pkg/core"

// Sphere is the SDF `||p-c|| - r`, with normal `normalize(p-c)`.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Distance returns the signed distance from p to the sphere surface,
// negative inside.
func (s *Sphere) Distance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Normal returns the unit outward normal at (or near) p.
func (s *Sphere) Normal(p core.Vec3) core.Vec3 {
	n, ok := p.Subtract(s.Center).Normalize()
	if !ok {
		return core.Vec3{X: 0, Y: 1, Z: 0}
	}
	return n
}
