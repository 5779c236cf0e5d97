// Package trace provides the recursive ray caster and the surfaces it intersects.
package trace

import "github.com/fogleman/pt/pt"

// Tracer resolves the color seen along a ray.
// Reflective surfaces call it to follow the bounced ray back into the scene.
type Tracer func(ray pt.Ray) pt.Color

// Intersection is the result of a successful ray/surface test.
type Intersection struct {
	Time  float64  // Parametric distance along the ray, used to pick the nearest hit
	Color pt.Color // Resolved color for this hit
}

// Surface is a renderable primitive.
// Intersect reports false when the ray misses; a returned hit never has a negative time.
type Surface interface {
	Intersect(ray pt.Ray, trace Tracer) (Intersection, bool)
}
