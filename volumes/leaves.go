// Package volumes provides implicit Volume implementations the afront
// engine can triangulate: primitive fields (sphere, cube, noise), the
// usual CSG combinators (union, difference, select), arithmetic and
// transform wrappers, and data-carrying decorators for adaptive edge
// length and custom payloads.
package volumes

import (
	"math"

	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a signed field positive inside a sphere of the given radius
// centered at the origin.
type Sphere struct {
	Radius float64
}

func (s Sphere) Value(p r3.Vec) float64       { return s.Radius - r3.Norm(p) }
func (s Sphere) Data(p r3.Vec, d *afront.VolumeData) {}

// Cube is a signed field positive inside an axis-aligned box of the
// given size (full extents, not half) centered at the origin.
type Cube struct {
	Size r3.Vec
}

func (c Cube) Value(p r3.Vec) float64 {
	hx, hy, hz := c.Size.X*0.5, c.Size.Y*0.5, c.Size.Z*0.5
	xa := math.Abs(p.X) - hx
	ya := math.Abs(p.Y) - hy
	za := math.Abs(p.Z) - hz
	return -math.Max(xa, math.Max(ya, za))
}

func (c Cube) Data(p r3.Vec, d *afront.VolumeData) {}

// Constant is a uniform field, entirely solid if Value > 0, entirely air
// otherwise. Mostly useful as a union_volume base or a test fixture.
type Constant float64

func (c Constant) Value(p r3.Vec) float64       { return float64(c) }
func (c Constant) Data(p r3.Vec, d *afront.VolumeData) {}
