package volumes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNoiseIsBoundedAndDeterministic(t *testing.T) {
	n := NewNoise(42, 10)
	p := r3.Vec{X: 3.5, Y: -1.2, Z: 7.7}
	first := n.Value(p)
	second := n.Value(p)
	assert.Equal(t, first, second, "the same seed and point must reproduce the same value")
	assert.True(t, math.Abs(first) <= 1.5, "classic gradient noise should stay close to [-1,1]")
}

func TestNoiseDifferentSeedsDiffer(t *testing.T) {
	a := NewNoise(1, 10)
	b := NewNoise(2, 10)
	p := r3.Vec{X: 3.5, Y: -1.2, Z: 7.7}
	assert.NotEqual(t, a.Value(p), b.Value(p))
}

func TestNoise2DPanicsOnNonPositiveRadius(t *testing.T) {
	assert.Panics(t, func() { NewNoise2D(1, 0, 10) })
	assert.Panics(t, func() { NewNoise2D(1, -1, 10) })
}
