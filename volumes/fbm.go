package volumes

import "github.com/jonmaiga/advancing-front-triangulation/afront"
import "gonum.org/v1/gonum/spatial/r3"

// FBM layers source at increasing frequency and decreasing amplitude
// (fractional Brownian motion), normalized so its output stays roughly
// in the same range as source's.
type FBM struct {
	source     afront.Volume
	octaves    int
	scale      float64
	lacunarity float64
	gain       float64
}

// NewFBM creates an octaves-layer fbm over source, with the conventional
// lacunarity of 2 and gain of 0.5.
func NewFBM(source afront.Volume, octaves int) *FBM {
	const lacunarity = 2.0
	const gain = 0.5
	amp := gain
	ampFractal := 1.0
	for i := 1; i < octaves; i++ {
		ampFractal += 0.5 * amp
		amp *= gain
	}
	return &FBM{
		source:     source,
		octaves:    octaves,
		scale:      1.0 / ampFractal,
		lacunarity: lacunarity,
		gain:       gain,
	}
}

func (f *FBM) Value(p r3.Vec) float64 {
	sum := 0.0
	amp := 1.0
	for i := 0; i < f.octaves; i++ {
		sum += amp * f.source.Value(p)
		p = r3.Scale(f.lacunarity, p)
		amp *= f.gain
	}
	return f.scale * sum
}

func (f *FBM) Data(p r3.Vec, d *afront.VolumeData) {
	f.source.Data(p, d)
}
