// Package camera generates one primary ray per pixel from view parameters.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	"github.com/ungerik/go3d/float64/quaternion"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/multierr"
)

// parallelTolerance bounds |cos| between Forward and Up before the view is degenerate.
const parallelTolerance = 1e-9

// View describes where the camera is and what it sees.
type View struct {
	Origin  pt.Vector
	Forward pt.Vector
	Up      pt.Vector
	VFov    float64 // Vertical field of view in radians
	Width   int
	Height  int
}

// Validate reports every degenerate parameter of the view.
// Rays built from an invalid view contain NaNs.
func (v View) Validate() error {
	var err error
	if v.Width <= 0 || v.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("image size %dx%d must be positive", v.Width, v.Height))
	}
	if !(v.VFov > 0 && v.VFov < math.Pi) {
		err = multierr.Append(err, fmt.Errorf("vertical fov %v rad must be in (0, pi)", v.VFov))
	}

	forwardLen := v.Forward.Length()
	upLen := v.Up.Length()
	if forwardLen == 0 {
		err = multierr.Append(err, errors.New("forward direction is zero"))
	}
	if upLen == 0 {
		err = multierr.Append(err, errors.New("up direction is zero"))
	}
	if forwardLen > 0 && upLen > 0 {
		cos := v.Forward.Dot(v.Up) / (forwardLen * upLen)
		if math.Abs(math.Abs(cos)-1) < parallelTolerance {
			err = multierr.Append(err, errors.New("forward and up directions are parallel"))
		}
	}
	return err
}

// Directions returns one direction per pixel in row-major order, top row first,
// each row from left to right.
func Directions(v View) []pt.Vector {
	hfov := float64(v.Width) * v.VFov / float64(v.Height)
	right := v.Forward.Cross(v.Up)
	down := v.Up.Negate()

	dirs := make([]pt.Vector, 0, v.Width*v.Height)
	for y := v.Height - 1; y >= 0; y-- {
		row := Rotate(right, spread(y, v.Height)*v.VFov/2, v.Forward)
		for x := 0; x < v.Width; x++ {
			dirs = append(dirs, Rotate(down, spread(x, v.Width)*hfov/2, row))
		}
	}
	return dirs
}

// Rays returns Directions paired with the view origin.
func Rays(v View) []pt.Ray {
	dirs := Directions(v)
	rays := make([]pt.Ray, len(dirs))
	for i, d := range dirs {
		rays[i] = pt.Ray{Origin: v.Origin, Direction: d}
	}
	return rays
}

// Rotate turns vec about axis by angle radians (right-handed).
// The axis does not need to be normalized; the result keeps the length of vec.
func Rotate(axis pt.Vector, angle float64, vec pt.Vector) pt.Vector {
	a := vec3.T{axis.X, axis.Y, axis.Z}
	a.Normalize()

	q := quaternion.FromAxisAngle(&a, angle)
	in := vec3.T{vec.X, vec.Y, vec.Z}
	out := q.RotatedVec3(&in)

	return pt.Vector{X: out[0], Y: out[1], Z: out[2]}
}

// spread maps index 0..n-1 onto [-1, 1]. A single sample sits at 0.
func spread(val, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(val)*2/float64(n-1) - 1
}
