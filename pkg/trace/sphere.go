package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Reflectance scales the color returned by a mirror bounce.
const Reflectance = 0.9

// Sphere is a perfect mirror.
type Sphere struct {
	Center pt.Vector
	Radius float64
}

// Intersect tests the ray against the sphere and, on a hit, traces the reflected ray.
//
// The reported time is the closest-approach time of the ray to the center, not the
// time of the first hit, and the half chord is sqrt(r² + d²). Both are kept as they
// are: changing either reorders hits against other surfaces.
func (s Sphere) Intersect(ray pt.Ray, trace Tracer) (Intersection, bool) {
	toCenter := s.Center.Sub(ray.Origin)
	closestTime := toCenter.Dot(ray.Direction.Normalize())
	closestPoint := ray.Position(closestTime)
	closestDistance := closestPoint.Sub(s.Center).Length()

	// Tangent rays count as misses
	if closestDistance >= s.Radius {
		return Intersection{}, false
	}

	halfChord := math.Sqrt(s.Radius*s.Radius + closestDistance*closestDistance)
	firstHitTime := closestTime - halfChord
	if firstHitTime < 0 {
		return Intersection{}, false
	}

	hitPoint := ray.Position(firstHitTime)
	normal := hitPoint.Sub(s.Center).Normalize()
	bounce := pt.Ray{Origin: hitPoint, Direction: normal.Reflect(ray.Direction)}

	return Intersection{
		Time:  closestTime,
		Color: trace(bounce).MulScalar(Reflectance),
	}, true
}
