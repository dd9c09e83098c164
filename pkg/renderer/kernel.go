// Package renderer implements the sphere-tracing kernel and the
// parallel path tracer driver.
package renderer

import (
	"math"
	"math/rand"

	"github.com/aevyrie/rays/pkg/core"
)

const (
	// MaxSteps bounds the sphere-tracing march so grazing rays
	// terminate instead of stalling.
	MaxSteps = 1024
	// DistEpsilon is the fixed (not screen-relative) hit threshold.
	DistEpsilon = 1e-4
	// MaxDist is the escape radius past which a ray is considered a
	// miss. A caller wanting the original implementation's more
	// forgiving 1e8 escape radius may construct a PathTracer with that
	// MaxDist override.
	MaxDist = 1e4
	// RayOffset nudges a scatter ray off the surface it originated
	// from to avoid immediately re-hitting it.
	RayOffset = 1e-3
)

// closestHit marches ray through scene, returning the nearest surface
// hit (and its material) or ok=false if the ray escapes.
func closestHit(ray core.Ray, scene *core.Scene, maxDist float64) (core.RayHit, core.Material, bool) {
	if len(scene.Objects) == 0 {
		return core.RayHit{}, nil, false
	}

	rayPos := ray.Origin

	for step := 0; step < MaxSteps; step++ {
		index := 0
		dMin := scene.Objects[0].Shape.Distance(rayPos)
		for i := 1; i < len(scene.Objects); i++ {
			d := scene.Objects[i].Shape.Distance(rayPos)
			if d < dMin {
				dMin, index = d, i
			}
		}

		// original_source/crates/rays_core/src/ray.rs uses abs() here.
		// A bare d_min<=eps test would report a hit at the start point
		// of any ray that begins inside a shape (d_min is negative
		// there); with abs() such a ray instead steps by the negative
		// d_min, backward along its direction, until it reaches the
		// surface of the shape that contains it.
		if math.Abs(dMin) <= DistEpsilon {
			obj := scene.Objects[index]
			return core.RayHit{
				Position: rayPos,
				Normal:   obj.Shape.Normal(rayPos),
				InDir:    ray,
			}, obj.Material, true
		}

		if rayPos.LengthSquared() > maxDist*maxDist {
			return core.RayHit{}, nil, false
		}

		rayPos = rayPos.Add(ray.Direction.Multiply(dMin))
	}

	return core.RayHit{}, nil, false
}

// Color returns the light arriving along ray, recursing on scatter
// bounces until either the ray escapes the scene (sky contribution) or
// depth reaches zero.
func Color(ray core.Ray, scene *core.Scene, depth int, maxDist float64, rng *rand.Rand) core.Color {
	if depth == 0 {
		return core.Black
	}

	hit, material, ok := closestHit(ray, scene, maxDist)
	if !ok {
		return core.Sky(ray.Direction)
	}

	scatterDir := material.Scatter(hit, rng)
	unit, normOk := scatterDir.Normalize()
	if !normOk {
		unit = hit.Normal
	}

	scatterRay := core.NewRay(hit.Position.Add(unit.Multiply(RayOffset)), unit)

	return material.Attenuation().Multiply(Color(scatterRay, scene, depth-1, maxDist, rng))
}
