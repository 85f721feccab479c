package volumes

import (
	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// InvTranslate offsets every sample of source by (-X(p), -Y(p), -Z(p)),
// where X, Y and Z are themselves volumes sampled at the query point -
// letting the translation vary across space instead of being fixed.
type InvTranslate struct {
	source, x, y, z afront.Volume
}

// NewInvTranslate creates an inverse-translated volume.
func NewInvTranslate(source, x, y, z afront.Volume) *InvTranslate {
	return &InvTranslate{source: source, x: x, y: y, z: z}
}

func (t *InvTranslate) offset(p r3.Vec) r3.Vec {
	return r3.Vec{X: t.x.Value(p), Y: t.y.Value(p), Z: t.z.Value(p)}
}

func (t *InvTranslate) Value(p r3.Vec) float64 {
	return t.source.Value(r3.Sub(p, t.offset(p)))
}

func (t *InvTranslate) Data(p r3.Vec, d *afront.VolumeData) {
	t.source.Data(r3.Sub(p, t.offset(p)), d)
}

// InvScale divides every sample of source by a per-point scale volume s,
// then rescales the result back up by s so the field stays roughly
// signed-distance-like.
type InvScale struct {
	source, s afront.Volume
}

// NewInvScale creates an inverse-scaled volume.
func NewInvScale(source, s afront.Volume) *InvScale {
	return &InvScale{source: source, s: s}
}

func (t *InvScale) Value(p r3.Vec) float64 {
	s := t.s.Value(p)
	return t.source.Value(r3.Scale(1/s, p)) * s
}

func (t *InvScale) Data(p r3.Vec, d *afront.VolumeData) {
	s := t.s.Value(p)
	t.source.Data(r3.Scale(1/s, p), d)
}
