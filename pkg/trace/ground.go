package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

const (
	// CellSize is the edge length of one checkerboard cell on the ground.
	CellSize = 10.0

	// GradientSpan is the distance along Y over which the red channel ramps from 0 to 1.
	GradientSpan = 50.0
)

var groundNormal = pt.Vector{X: 0, Y: 0, Z: 1}

// Ground is an infinite horizontal plane at z = 0 facing up,
// shaded with a procedural checkerboard.
type Ground struct{}

// Intersect tests the ray against the plane. Rays moving away from or parallel to
// the plane miss, as do rays whose origin lies below it.
func (g Ground) Intersect(ray pt.Ray, _ Tracer) (Intersection, bool) {
	// Closing speed toward the plane along the (unnormalized) direction
	closing := ray.Direction.Dot(groundNormal.Negate().Normalize())
	if closing <= 0 {
		return Intersection{}, false
	}

	t := ray.Origin.Z / closing
	if t < 0 {
		return Intersection{}, false
	}

	return Intersection{
		Time:  t,
		Color: g.ColorAt(ray.Position(t)),
	}, true
}

// ColorAt returns the checkerboard color at a point on the ground.
// X and Y parities are XORed to pick the base color; red ramps with Y.
func (Ground) ColorAt(p pt.Vector) pt.Color {
	evenX := fmod(p.X, CellSize) < CellSize/2
	evenY := fmod(p.Y, CellSize) < CellSize/2
	red := clamp01(p.Y / GradientSpan)

	if evenX != evenY {
		return pt.Color{R: red, G: 0, B: 1}
	}
	return pt.Color{R: red, G: 1, B: 1}
}

// fmod is a modulo whose result takes the sign of n, so cells stay aligned across the origin.
func fmod(m, n float64) float64 {
	return math.Mod(math.Mod(m, n)+n, n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
