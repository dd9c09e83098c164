package material

import (
	"math/rand"

	"github.com/aevyrie/rays/pkg/core"
)

// Metal is a mirror material: scatter direction is the incident ray
// reflected about the surface normal, attenuation is the albedo
// directly (no fuzz term).
type Metal struct {
	Albedo core.Color
}

// NewMetal creates a new Metal material.
func NewMetal(albedo core.Color) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter reflects the incident ray's direction about the hit normal.
func (m *Metal) Scatter(hit core.RayHit, rng *rand.Rand) core.Vec3 {
	return hit.InDir.Direction.Reflect(hit.Normal)
}

// Attenuation returns the albedo unchanged.
func (m *Metal) Attenuation() core.Color {
	return m.Albedo
}
