package afront

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// testSphere and testCube are minimal Volume fixtures: they don't need a
// Data implementation for these pure-function tests.
type testSphere struct{ radius float64 }

func (s testSphere) Value(p r3.Vec) float64 { return s.radius - r3.Norm(p) }
func (s testSphere) Data(p r3.Vec, d *VolumeData) {}

type testCube struct{ halfExtent float64 }

func (c testCube) Value(p r3.Vec) float64 {
	return c.halfExtent - math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
}
func (c testCube) Data(p r3.Vec, d *VolumeData) {}

func TestGradientNormalPointsOutwardOnSphere(t *testing.T) {
	s := testSphere{radius: 5}
	n, ok := GradientNormal(s, r3.Vec{X: 5, Y: 0, Z: 0}, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 1, n.X, 0.05)
	assert.InDelta(t, 0, n.Y, 0.05)
	assert.InDelta(t, 0, n.Z, 0.05)
}

func TestGradientNormalFailsOnFlatField(t *testing.T) {
	flat := testSphere{radius: 1e12}
	_, ok := GradientNormal(flat, r3.Vec{}, 1e-9)
	assert.False(t, ok)
}

func TestSnapToSurfaceConvergesOnSphere(t *testing.T) {
	s := testSphere{radius: 5}
	pos, ok := SnapToSurface(s, r3.Vec{X: 4, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 0, Z: 0}, 0.01)
	require.True(t, ok)
	assert.InDelta(t, 5, r3.Norm(pos), 0.05)
}

func TestFindSurfaceOnCubeFace(t *testing.T) {
	c := testCube{halfExtent: 2}
	start := r3.Vec{X: 4, Y: 0, Z: 0}
	surface, ok := FindSurface(c, start, 0.05, 5)
	require.True(t, ok)
	assert.InDelta(t, 2, math.Max(math.Abs(surface.X), math.Max(math.Abs(surface.Y), math.Abs(surface.Z))), 0.1)
}

func TestFindSolidAndFindAir(t *testing.T) {
	s := testSphere{radius: 5}
	inside, ok := FindSolid(s, r3.Vec{X: 1}, 0.1, 10)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 1}, inside)

	outside, ok := FindAir(s, r3.Vec{X: 10}, 0.1, 10)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 10}, outside)

	toSurface, ok := FindAir(s, r3.Vec{X: 1}, 0.1, 10)
	require.True(t, ok)
	assert.True(t, InAir(s.Value(toSurface)) || math.Abs(s.Value(toSurface)) < 0.2)
}

func TestIsBlocked(t *testing.T) {
	s := testSphere{radius: 5}
	assert.True(t, IsBlocked(s, r3.Vec{X: 1}, r3.Vec{X: 2}, 0.1), "solid start must report blocked")
	assert.True(t, IsBlocked(s, r3.Vec{X: 10}, r3.Vec{X: -10}, 0.2), "a ray straight through the sphere must hit it")
	assert.False(t, IsBlocked(s, r3.Vec{X: 10}, r3.Vec{X: 11}, 0.1), "a ray that never nears the sphere must not be blocked")
}

func TestFollowSurfaceStaysOnSphere(t *testing.T) {
	s := testSphere{radius: 5}
	start := r3.Vec{X: 5, Y: 0, Z: 0}
	tangent := r3.Vec{X: 0, Y: 1, Z: 0}
	end, ok := FollowSurface(s, start, tangent, 0.2, 1.0)
	require.True(t, ok)
	assert.InDelta(t, 5, r3.Norm(end), 0.2)
	assert.False(t, r3.Norm(r3.Sub(end, start)) < 0.1, "following the surface should actually move")
}
