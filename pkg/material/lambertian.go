// Package material holds concrete material implementations.
package material

import (
	"math/rand"

	"github.com/aevyrie/rays/pkg/core"
)

// Lambertian is a perfectly diffuse material: scatter direction is the
// surface normal plus a random point on the unit sphere, attenuation is
// the albedo directly.
type Lambertian struct {
	Albedo core.Color
}

// NewLambertian creates a new Lambertian material.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns hit.Normal + RandomOnUnitSphere(); the caller applies
// the normalize-or-fallback rule if the sum is degenerate.
func (l *Lambertian) Scatter(hit core.RayHit, rng *rand.Rand) core.Vec3 {
	return hit.Normal.Add(core.RandomOnUnitSphere(rng))
}

// Attenuation returns the albedo unchanged.
func (l *Lambertian) Attenuation() core.Color {
	return l.Albedo
}
