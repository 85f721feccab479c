package volumes

import (
	"math"
	"math/rand"

	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// gradientNoise is a seeded classic-Perlin 3D gradient noise generator.
// The original engine's noise table wasn't available to ground an exact
// port on, so this builds a standard permutation-table noise instead,
// seeded the way a Go port of that style of generator normally is: a
// math/rand-shuffled permutation table rather than a baked-in constant
// one.
type gradientNoise struct {
	perm [512]int
}

func newGradientNoise(seed int64) *gradientNoise {
	rng := rand.New(rand.NewSource(seed))
	var p [256]int
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	n := &gradientNoise{}
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	var u float64
	if h < 8 {
		u = x
	} else {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	g := 0.0
	if h&1 == 0 {
		g += u
	} else {
		g -= u
	}
	if h&2 == 0 {
		g += v
	} else {
		g -= v
	}
	return g
}

// value samples the field at (x, y, z), in roughly [-1, 1].
func (n *gradientNoise) value(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)
	u := fade(x)
	v := fade(y)
	w := fade(z)

	p := n.perm[:]
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z)),
			lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1)),
			lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))))
}

// Noise is a 3D gradient noise field, re-sampled at 1/period frequency.
type Noise struct {
	noise     *gradientNoise
	frequency float64
}

// NewNoise creates a noise volume with the given seed and spatial
// period.
func NewNoise(seed int64, period float64) *Noise {
	return &Noise{noise: newGradientNoise(seed), frequency: 1 / period}
}

func (n *Noise) Value(p r3.Vec) float64 {
	f := n.frequency
	return n.noise.value(f*p.X, f*p.Y, f*p.Z)
}

func (n *Noise) Data(p r3.Vec, data *afront.VolumeData) {}

// Noise2D projects p onto a sphere of the given radius before sampling
// the noise field, producing a noise pattern that lives purely on that
// sphere's surface.
type Noise2D struct {
	noise     *gradientNoise
	radius    float64
	frequency float64
}

// NewNoise2D creates a spherical-surface noise volume. It panics if r is
// not positive.
func NewNoise2D(seed int64, r, period float64) *Noise2D {
	if r <= 0 {
		panic("volumes: sphere radius for Noise2D must be greater than zero")
	}
	return &Noise2D{noise: newGradientNoise(seed), radius: r, frequency: 1 / period}
}

func (n *Noise2D) Value(p r3.Vec) float64 {
	surface := rescale(p, n.radius)
	f := n.frequency
	return n.noise.value(f*surface.X, f*surface.Y, f*surface.Z)
}

func (n *Noise2D) Data(p r3.Vec, data *afront.VolumeData) {}

func rescale(v r3.Vec, length float64) r3.Vec {
	l := r3.Norm(v)
	if l < 1e-12 {
		return r3.Vec{X: length}
	}
	return r3.Scale(length/l, v)
}
