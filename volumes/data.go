package volumes

import (
	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeLenFunc computes the locally suggested edge length at p.
type EdgeLenFunc func(p r3.Vec) float64

// AdaptiveEdgeLen wraps source, overriding the EdgeLen hint of any query
// that reaches it with edgeLen(p), letting resolution vary across the
// field instead of staying fixed at the front's default.
type AdaptiveEdgeLen struct {
	source  afront.Volume
	edgeLen EdgeLenFunc
}

// NewAdaptiveEdgeLen creates an adaptive-resolution wrapper over source.
func NewAdaptiveEdgeLen(source afront.Volume, edgeLen EdgeLenFunc) *AdaptiveEdgeLen {
	return &AdaptiveEdgeLen{source: source, edgeLen: edgeLen}
}

func (a *AdaptiveEdgeLen) Value(p r3.Vec) float64 { return a.source.Value(p) }

func (a *AdaptiveEdgeLen) Data(p r3.Vec, data *afront.VolumeData) {
	data.EdgeLen = a.edgeLen(p)
	a.source.Data(p, data)
}

// SetCustomData wraps source, stamping every query's Custom payload with
// a fixed value - e.g. a material id shared by a whole sub-volume.
type SetCustomData struct {
	source afront.Volume
	custom interface{}
}

// NewSetCustomData creates a custom-payload wrapper over source.
func NewSetCustomData(source afront.Volume, custom interface{}) *SetCustomData {
	return &SetCustomData{source: source, custom: custom}
}

func (s *SetCustomData) Value(p r3.Vec) float64 { return s.source.Value(p) }

func (s *SetCustomData) Data(p r3.Vec, data *afront.VolumeData) {
	data.Custom = s.custom
	s.source.Data(p, data)
}
