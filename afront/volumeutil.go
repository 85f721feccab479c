package afront

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	epsilon    = 1e-7
	epsilonSqr = epsilon * epsilon
)

// InAir reports whether a sampled field value is on the air side of the
// surface.
func InAir(v float64) bool { return v < 0 }

func inAirAt(v Volume, p r3.Vec) bool { return InAir(v.Value(p)) }

// unitOrFallback normalizes v, returning fallback instead if v is too
// close to zero to normalize reliably.
func unitOrFallback(v, fallback r3.Vec) r3.Vec {
	if r3.Dot(v, v) < epsilonSqr {
		return fallback
	}
	return r3.Unit(v)
}

// GradientNormal estimates the outward unit normal of v's zero surface
// at p from a central difference of v sampled at +-0.4*scale along each
// axis. It reports false when the estimate is too small to normalize -
// p sits in a flat or noisy region of the field.
func GradientNormal(v Volume, p r3.Vec, scale float64) (r3.Vec, bool) {
	d := 0.4 * scale
	n := r3.Vec{
		X: v.Value(r3.Vec{X: p.X - d, Y: p.Y, Z: p.Z}) - v.Value(r3.Vec{X: p.X + d, Y: p.Y, Z: p.Z}),
		Y: v.Value(r3.Vec{X: p.X, Y: p.Y - d, Z: p.Z}) - v.Value(r3.Vec{X: p.X, Y: p.Y + d, Z: p.Z}),
		Z: v.Value(r3.Vec{X: p.X, Y: p.Y, Z: p.Z - d}) - v.Value(r3.Vec{X: p.X, Y: p.Y, Z: p.Z + d}),
	}
	if r3.Dot(n, n) < epsilonSqr {
		return r3.Vec{}, false
	}
	return r3.Unit(n), true
}

// rayStep is the running best point found along one snapToSurface pass.
type rayStep struct {
	pos    r3.Vec
	signed float64
}

// snapAlongRay walks pos along dir for up to maxTries secant-like steps,
// scaled by the signed field value and halved each time the sign flips,
// and returns the closest-to-zero point it saw.
func snapAlongRay(v Volume, pos, dir r3.Vec, maxTries int) rayStep {
	signed := v.Value(pos)
	last := signed
	stepScale := 1.0
	best := rayStep{pos, signed}
	for i := 0; i < maxTries; i++ {
		if signed*last < 0 {
			stepScale *= 0.5
		}
		pos = r3.Add(pos, r3.Scale(signed*stepScale, dir))
		last = signed
		signed = v.Value(pos)
		if math.Abs(signed) < math.Abs(best.signed) {
			best = rayStep{pos, signed}
		}
	}
	return best
}

// SnapToSurface searches for a point near pos+t*dir whose field value is
// within tolerance of zero: 10 fixed-point iterations first, then up to
// 20 more from the best point seen if that wasn't enough.
func SnapToSurface(v Volume, pos, dir r3.Vec, tolerance float64) (r3.Vec, bool) {
	r := snapAlongRay(v, pos, dir, 10)
	if math.Abs(r.signed) <= tolerance {
		return r.pos, true
	}
	refined := snapAlongRay(v, r.pos, dir, 20)
	if math.Abs(refined.signed) < math.Abs(r.signed) {
		r = refined
	}
	if math.Abs(r.signed) <= tolerance {
		return r.pos, true
	}
	return r3.Vec{}, false
}

// findSurfaceDir samples pos+s*dir at increasing s until it crosses the
// air/solid boundary posInAir started on, or gives up past maxDistance.
func findSurfaceDir(v Volume, pos, dir r3.Vec, posInAir bool, step, maxDistance float64) (r3.Vec, bool) {
	for s := step; s <= maxDistance; s += step {
		test := r3.Add(pos, r3.Scale(s, dir))
		if posInAir != inAirAt(v, test) {
			return test, true
		}
	}
	return r3.Vec{}, false
}

// FindSurface walks from start along its local gradient direction until
// it crosses the surface, stepping by step for up to distance.
func FindSurface(v Volume, start r3.Vec, step, distance float64) (r3.Vec, bool) {
	dir, ok := GradientNormal(v, start, distance)
	if !ok {
		return r3.Vec{}, false
	}
	air := inAirAt(v, start)
	if air {
		dir = r3.Scale(-1, dir)
	}
	return findSurfaceDir(v, start, dir, air, step, distance)
}

// FindSolid returns from unchanged if it's already solid, otherwise
// walks to the nearest surface crossing like FindSurface.
func FindSolid(v Volume, from r3.Vec, step, distance float64) (r3.Vec, bool) {
	if !inAirAt(v, from) {
		return from, true
	}
	return FindSurface(v, from, step, distance)
}

// FindAir returns from unchanged if it's already air, otherwise walks to
// the nearest surface crossing like FindSurface.
func FindAir(v Volume, from r3.Vec, step, distance float64) (r3.Vec, bool) {
	if inAirAt(v, from) {
		return from, true
	}
	return FindSurface(v, from, step, distance)
}

// IsBlocked reports whether solid lies between from and to: true if from
// itself is solid, or if a surface crossing is found before reaching to.
func IsBlocked(v Volume, from, to r3.Vec, step float64) bool {
	if !inAirAt(v, from) {
		return true
	}
	d := r3.Sub(to, from)
	dist := r3.Norm(d)
	if dist < epsilon {
		return false
	}
	_, ok := findSurfaceDir(v, from, r3.Scale(1/dist, d), true, step, dist)
	return ok
}

// FollowSurface walks tangentially along v's zero surface starting near
// start, stepping by step along tangent x normal and snapping each
// micro-step back onto the surface, for up to distance/step steps. It
// returns the last surface point successfully reached, and false if the
// very first step couldn't find a normal or a surface to snap to.
func FollowSurface(v Volume, start, tangent r3.Vec, step, distance float64) (r3.Vec, bool) {
	if step <= 0 {
		return r3.Vec{}, false
	}
	surface := start
	last := start
	ok := false
	maxSteps := int(distance / step)
	for i := 0; i < maxSteps; i++ {
		normal, normalOK := GradientNormal(v, surface, distance)
		if !normalOK {
			break
		}
		dir := unitOrFallback(r3.Cross(tangent, normal), tangent)
		test := r3.Add(surface, r3.Scale(step, dir))
		next, foundOK := FindSurface(v, test, step, distance)
		if !foundOK {
			break
		}
		surface = next
		last = surface
		ok = true
	}
	return last, ok
}
