package volumes

import (
	"github.com/jonmaiga/advancing-front-triangulation/afront"
	"gonum.org/v1/gonum/spatial/r3"
)

// minValue is the value Union starts its maximum from: a Union with no
// sources, or whose sources all evaluate below it, reports minValue
// (air).
const minValue = -1e9

// Union is the field maximum of its sources: solid wherever any source
// is solid.
type Union struct {
	sources []afront.Volume
}

// NewUnion creates a union over sources. It panics if fewer than one
// source is given.
func NewUnion(sources ...afront.Volume) *Union {
	if len(sources) < 1 {
		panic("volumes: union requires at least one source")
	}
	return &Union{sources: sources}
}

func (u *Union) Value(p r3.Vec) float64 {
	max := minValue
	for _, s := range u.sources {
		if v := s.Value(p); v > max {
			max = v
		}
	}
	return max
}

func (u *Union) Data(p r3.Vec, d *afront.VolumeData) {
	if m := u.dominant(p); m != nil {
		m.Data(p, d)
	}
}

func (u *Union) dominant(p r3.Vec) afront.Volume {
	var dominant afront.Volume
	max := minValue
	for _, s := range u.sources {
		if v := s.Value(p); v > max {
			max = v
			dominant = s
		}
	}
	return dominant
}

// Difference is source with every one of its subtrahends carved out.
type Difference struct {
	source      afront.Volume
	subtrahends []afront.Volume
}

// NewDifference creates source minus every volume in subtrahends.
func NewDifference(source afront.Volume, subtrahends ...afront.Volume) *Difference {
	return &Difference{source: source, subtrahends: subtrahends}
}

func (d *Difference) Value(p r3.Vec) float64 {
	v := d.source.Value(p)
	for _, s := range d.subtrahends {
		if carved := -s.Value(p); carved < v {
			v = carved
		}
	}
	return v
}

func (d *Difference) Data(p r3.Vec, data *afront.VolumeData) {
	dominant := d.source
	v := d.source.Value(p)
	for _, s := range d.subtrahends {
		if carved := -s.Value(p); carved < v {
			dominant = s
			v = carved
		}
	}
	dominant.Data(p, data)
}

// Condition maps a controller's field value to a blend weight in [0, 1].
type Condition func(controlValue float64) float64

// Select blends between first and second based on controller's field
// value passed through condition: alpha<=0 is pure first, alpha>=1 is
// pure second, otherwise a linear blend.
type Select struct {
	first, second, controller afront.Volume
	condition                 Condition
}

// NewSelect creates a select volume.
func NewSelect(first, second, controller afront.Volume, condition Condition) *Select {
	return &Select{first: first, second: second, controller: controller, condition: condition}
}

func (s *Select) Value(p r3.Vec) float64 {
	alpha := s.condition(s.controller.Value(p))
	switch {
	case alpha <= 0:
		return s.first.Value(p)
	case alpha >= 1:
		return s.second.Value(p)
	default:
		return (1-alpha)*s.first.Value(p) + alpha*s.second.Value(p)
	}
}

func (s *Select) Data(p r3.Vec, data *afront.VolumeData) {
	alpha := s.condition(s.controller.Value(p))
	if alpha > 0 {
		s.second.Data(p, data)
		return
	}
	s.first.Data(p, data)
}
