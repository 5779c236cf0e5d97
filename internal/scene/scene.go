// Package scene builds the named scenes that can be rendered.
package scene

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/fogleman/pt/pt"

	"github.com/Faultbox/mirrorcast/pkg/trace"
)

// DefaultName is the scene rendered when none is configured.
const DefaultName = "default"

// ErrUnknownScene is returned by Build for names without a preset.
var ErrUnknownScene = errors.New("unknown scene")

var presets = map[string]func() []trace.Surface{
	// Checkered ground with one mirror sphere hovering ahead of the camera
	DefaultName: func() []trace.Surface {
		return []trace.Surface{
			trace.Ground{},
			trace.Sphere{Center: pt.Vector{X: 0, Y: 80, Z: 12}, Radius: 10},
		}
	},

	// Three spheres close enough to reflect each other
	"mirrors": func() []trace.Surface {
		return []trace.Surface{
			trace.Ground{},
			trace.Sphere{Center: pt.Vector{X: -11, Y: 60, Z: 9}, Radius: 8},
			trace.Sphere{Center: pt.Vector{X: 11, Y: 60, Z: 9}, Radius: 8},
			trace.Sphere{Center: pt.Vector{X: 0, Y: 75, Z: 24}, Radius: 6},
		}
	},

	// A lone sphere in front of the background
	"sphere": func() []trace.Surface {
		return []trace.Surface{
			trace.Sphere{Center: pt.Vector{X: 0, Y: 80, Z: 12}, Radius: 10},
		}
	},
}

// Build returns a fresh scene for the named preset.
func Build(name string) (*trace.Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return trace.NewScene(build()...), nil
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists reports whether name is a known preset.
func Exists(name string) bool {
	return slices.Contains(Names(), name)
}
