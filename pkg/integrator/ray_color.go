package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// RayColor returns the radiance along ray with a constant background:
//
//	color(ray, 0) = black
//	color(ray, d) = background                          if nothing is hit
//	              = emitted                             if the material absorbs
//	              = emitted + attenuation ⊙ color(scattered, d-1) otherwise
func RayColor(ray core.Ray, world geometry.Hittable, depth int, background core.Vec3, sampler core.Sampler) core.Vec3 {
	return rayColor(ray, world, depth, constant(background), sampler)
}

// RayColorIterative computes the same value as RayColor without recursion,
// carrying the path throughput and the radiance gathered so far
func RayColorIterative(ray core.Ray, world geometry.Hittable, depth int, background core.Vec3, sampler core.Sampler) core.Vec3 {
	return rayColorIterative(ray, world, depth, constant(background), sampler)
}

type backgroundFunc func(ray core.Ray) core.Vec3

func constant(color core.Vec3) backgroundFunc {
	return func(core.Ray) core.Vec3 { return color }
}

func rayColor(ray core.Ray, world geometry.Hittable, depth int, background backgroundFunc, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMin, tMax)
	if !isHit {
		return background(ray)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	emitted := hit.Material.Emit(hit.U, hit.V, hit.Point)
	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := rayColor(scatter.Scattered, world, depth-1, background, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

func rayColorIterative(ray core.Ray, world geometry.Hittable, depth int, background backgroundFunc, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, tMin, tMax)
		if !isHit {
			return radiance.Add(throughput.MultiplyVec(background(ray)))
		}
		if hit.Material == nil {
			return radiance
		}

		emitted := hit.Material.Emit(hit.U, hit.V, hit.Point)
		radiance = radiance.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return radiance
		}
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return radiance
}
