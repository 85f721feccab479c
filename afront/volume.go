package afront

import "gonum.org/v1/gonum/spatial/r3"

// Volume is the implicit scalar field the front triangulates the zero
// level surface of. Values are signed-distance-like: positive is inside
// solid, negative is air. A Volume need not be an exact signed distance
// field, but it must be continuous and locally monotone across the zero
// set for surface snapping and following to converge.
//
// Implementations are supplied by the consumer - the engine only ever
// calls through this interface, never assumes a particular field algebra.
type Volume interface {
	// Value returns the field value at p.
	Value(p r3.Vec) float64
	// Data fills data with the per-point hints for p. Implementations
	// that don't care about adaptive resolution or a payload can leave
	// data untouched; it arrives pre-seeded with the default edge length.
	Data(p r3.Vec, data *VolumeData)
}

// VolumeData is a mutable per-query record a Volume fills in on request.
type VolumeData struct {
	// EdgeLen is the locally suggested edge length. The engine reads it
	// when adaptive resolution is enabled, otherwise it keeps whatever
	// default it was seeded with.
	EdgeLen float64
	// Custom is an opaque payload, e.g. a material id. The engine never
	// inspects it, only forwards it to the mesh sink.
	Custom interface{}
}
