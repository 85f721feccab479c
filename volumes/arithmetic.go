package volumes

import (
	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"github.com/jonmaiga/advancing-front-triangulation/internal/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// Negate inverts a source's field, turning solid into air and back.
type Negate struct {
	source afront.Volume
}

func NewNegate(source afront.Volume) *Negate { return &Negate{source: source} }

func (n *Negate) Value(p r3.Vec) float64           { return -n.source.Value(p) }
func (n *Negate) Data(p r3.Vec, d *afront.VolumeData) { n.source.Data(p, d) }

// Add sums the field values of two or more sources.
type Add struct {
	sources []afront.Volume
}

// NewAdd creates a sum volume. It is a programmer error to supply fewer
// than two sources.
func NewAdd(sources ...afront.Volume) *Add {
	assert.That(len(sources) >= 2, "at least two sources are required for Add")
	return &Add{sources: sources}
}

func (a *Add) Value(p r3.Vec) float64 {
	v := 0.0
	for _, s := range a.sources {
		v += s.Value(p)
	}
	return v
}

func (a *Add) Data(p r3.Vec, d *afront.VolumeData) {
	for _, s := range a.sources {
		s.Data(p, d)
	}
}

// Mul multiplies the field values of two or more sources.
type Mul struct {
	sources []afront.Volume
}

// NewMul creates a product volume.
func NewMul(sources ...afront.Volume) *Mul {
	assert.That(len(sources) >= 2, "at least two sources are required for Mul")
	return &Mul{sources: sources}
}

func (m *Mul) Value(p r3.Vec) float64 {
	v := 1.0
	for _, s := range m.sources {
		v *= s.Value(p)
	}
	return v
}

func (m *Mul) Data(p r3.Vec, d *afront.VolumeData) {
	for _, s := range m.sources {
		s.Data(p, d)
	}
}

// ToRange rescales source's (assumed [-1, 1]) output into [from, to].
type ToRange struct {
	source   afront.Volume
	from, to float64
}

// NewToRange creates a rescaling volume.
func NewToRange(source afront.Volume, from, to float64) *ToRange {
	return &ToRange{source: source, from: from, to: to}
}

func (r *ToRange) Value(p r3.Vec) float64 {
	v01 := 0.5 * (1 + r.source.Value(p))
	assert.Thatf(v01 >= -1e-9 && v01 <= 1+1e-9, "ToRange source out of expected [-1,1] range: %v", r.source.Value(p))
	if v01 < 0 {
		v01 = 0
	}
	if v01 > 1 {
		v01 = 1
	}
	return r.from + v01*(r.to-r.from)
}

func (r *ToRange) Data(p r3.Vec, d *afront.VolumeData) { r.source.Data(p, d) }
