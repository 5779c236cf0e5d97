package trace

import (
	"slices"
	"sync/atomic"

	"github.com/fogleman/pt/pt"
)

// Scene is an ordered, immutable list of surfaces.
// A surface is identified by its index, which is what Exclusions refer to.
type Scene struct {
	surfaces []Surface
}

// NewScene creates a scene from the given surfaces in order.
func NewScene(surfaces ...Surface) *Scene {
	return &Scene{surfaces: slices.Clone(surfaces)}
}

// Len returns the number of surfaces in the scene.
func (s *Scene) Len() int {
	return len(s.surfaces)
}

// Surface returns the surface at index i.
func (s *Scene) Surface(i int) Surface {
	return s.surfaces[i]
}

// Exclusions lists the scene indices a cast must not test against.
type Exclusions []int

// Contains reports whether index i is excluded.
func (e Exclusions) Contains(i int) bool {
	return slices.Contains(e, i)
}

// Options configures a Caster.
type Options struct {
	MaxDepth   int      // Casting levels before giving up on a reflection chain
	Background pt.Color // Color returned when nothing is hit
}

// DefaultOptions returns a white background and a bounded reflection depth.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   32,
		Background: pt.Color{R: 1, G: 1, B: 1},
	}
}

// Caster resolves colors along rays by finding the nearest hit in a scene
// and following mirror reflections recursively.
// A Caster is safe for concurrent use.
type Caster struct {
	scene     *Scene
	opts      Options
	limitHits atomic.Int64
}

// NewCaster creates a caster over the scene.
func NewCaster(scene *Scene, opts Options) *Caster {
	return &Caster{
		scene: scene,
		opts:  opts,
	}
}

// Scene returns the scene being cast into.
func (c *Caster) Scene() *Scene {
	return c.scene
}

// Cast returns the color seen along a primary ray.
func (c *Caster) Cast(ray pt.Ray) pt.Color {
	return c.CastFrom(nil, ray, c.opts.MaxDepth)
}

// CastFrom returns the color seen along ray, skipping the excluded surfaces.
// depth is the number of casting levels left; at zero the background is returned
// and the event is counted in DepthLimitHits.
func (c *Caster) CastFrom(exclusions Exclusions, ray pt.Ray, depth int) pt.Color {
	if depth <= 0 {
		c.limitHits.Add(1)
		return c.opts.Background
	}

	var (
		nearest Intersection
		found   bool
	)

	for i, surface := range c.scene.surfaces {
		if exclusions.Contains(i) {
			continue
		}

		// A bounce off surface i only excludes surface i, not the caller's exclusions
		trace := func(r pt.Ray) pt.Color {
			return c.CastFrom(Exclusions{i}, r, depth-1)
		}

		hit, ok := surface.Intersect(ray, trace)
		if !ok {
			continue
		}
		// Strict comparison: on equal times the earlier surface wins
		if !found || hit.Time < nearest.Time {
			nearest = hit
			found = true
		}
	}

	if !found {
		return c.opts.Background
	}
	return nearest.Color
}

// DepthLimitHits returns how many casts were cut off by the depth limit.
func (c *Caster) DepthLimitHits() int64 {
	return c.limitHits.Load()
}
