package volumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphereValue(t *testing.T) {
	s := Sphere{Radius: 5}
	assert.Equal(t, 5.0, s.Value(r3.Vec{}))
	assert.InDelta(t, 0, s.Value(r3.Vec{X: 5}), 1e-9)
	assert.True(t, s.Value(r3.Vec{X: 10}) < 0)
}

func TestCubeValue(t *testing.T) {
	c := Cube{Size: r3.Vec{X: 4, Y: 4, Z: 4}}
	assert.Equal(t, 2.0, c.Value(r3.Vec{}))
	assert.InDelta(t, 0, c.Value(r3.Vec{X: 2}), 1e-9)
	assert.True(t, c.Value(r3.Vec{X: 3}) < 0)
}

func TestConstantValue(t *testing.T) {
	assert.Equal(t, 1.0, Constant(1).Value(r3.Vec{X: 100, Y: -50}))
}

func TestUnionIsMaxOfSources(t *testing.T) {
	u := NewUnion(Sphere{Radius: 1}, Sphere{Radius: 3})
	assert.InDelta(t, 3, u.Value(r3.Vec{}), 1e-9)
}

func TestDifferenceCarvesOutSubtrahend(t *testing.T) {
	d := NewDifference(Cube{Size: r3.Vec{X: 10, Y: 10, Z: 10}}, Sphere{Radius: 1})
	assert.True(t, d.Value(r3.Vec{}) < 0, "origin should be carved away by the sphere")
	assert.True(t, d.Value(r3.Vec{X: 4}) > 0, "far from the sphere the cube should remain solid")
}
