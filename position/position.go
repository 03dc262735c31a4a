// Package position implements the typed coordinate vectors a substrate
// places its nodes at (spec.md §3/§4.3). Position is deliberately narrow —
// coords, distance, origin, interpolation — everything else (what a
// coordinate "means" to a particular substrate layout) lives in the caller.
package position

import "math"

// Position is a finite-dimensional coordinate with a distance metric.
// substrate.PlacedNode is generic over any type satisfying Position, so a
// caller can plug in arbitrary-dimensional layouts without this module
// needing to know about them.
type Position interface {
	// Coords returns the coordinate vector in a stable, fixed order. The
	// returned slice must not be mutated by callers.
	Coords() []float64
	// Distance returns the Euclidean distance to other.
	Distance(other Position) float64
	// SquaredDistance returns the squared Euclidean distance to other,
	// offered separately so callers comparing many distances (e.g. a
	// max_distance cutoff) can skip the sqrt.
	SquaredDistance(other Position) float64
}

// Point2D is a 2-dimensional Position.
type Point2D [2]float64

// NewPoint2D constructs a Point2D from x, y.
func NewPoint2D(x, y float64) Point2D { return Point2D{x, y} }

// Origin2D returns the 2-D origin.
func Origin2D() Point2D { return Point2D{0, 0} }

// X returns the first coordinate.
func (p Point2D) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point2D) Y() float64 { return p[1] }

// Coords implements Position.
func (p Point2D) Coords() []float64 { return []float64{p[0], p[1]} }

// SquaredDistance implements Position.
func (p Point2D) SquaredDistance(other Position) float64 {
	o := other.Coords()
	dx := p[0] - o[0]
	dy := p[1] - o[1]

	return dx*dx + dy*dy
}

// Distance implements Position.
func (p Point2D) Distance(other Position) float64 {
	return math.Sqrt(p.SquaredDistance(other))
}

// Interpolate returns the point a fraction t of the way from p to other
// (t=0 -> p, t=1 -> other), applied uniformly across both axes.
func (p Point2D) Interpolate(other Point2D, t float64) Point2D {
	return Point2D{
		lerp(p[0], other[0], t),
		lerp(p[1], other[1], t),
	}
}

// InterpolateMulti is like Interpolate but takes a per-axis fraction.
func (p Point2D) InterpolateMulti(other Point2D, tPerAxis [2]float64) Point2D {
	return Point2D{
		lerp(p[0], other[0], tPerAxis[0]),
		lerp(p[1], other[1], tPerAxis[1]),
	}
}

// Point3D is a 3-dimensional Position, added by this expansion for
// substrates laid out in 3 dimensions (common in HyperNEAT retina/locomotion
// setups; spec.md's glossary notes coordinate length is "fixed per type,
// e.g. 2 or 3" but the kept original_source fragment only carried
// Position2d).
type Point3D [3]float64

// NewPoint3D constructs a Point3D from x, y, z.
func NewPoint3D(x, y, z float64) Point3D { return Point3D{x, y, z} }

// Origin3D returns the 3-D origin.
func Origin3D() Point3D { return Point3D{0, 0, 0} }

// X returns the first coordinate.
func (p Point3D) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point3D) Y() float64 { return p[1] }

// Z returns the third coordinate.
func (p Point3D) Z() float64 { return p[2] }

// Coords implements Position.
func (p Point3D) Coords() []float64 { return []float64{p[0], p[1], p[2]} }

// SquaredDistance implements Position.
func (p Point3D) SquaredDistance(other Position) float64 {
	o := other.Coords()
	dx := p[0] - o[0]
	dy := p[1] - o[1]
	dz := p[2] - o[2]

	return dx*dx + dy*dy + dz*dz
}

// Distance implements Position.
func (p Point3D) Distance(other Position) float64 {
	return math.Sqrt(p.SquaredDistance(other))
}

// Interpolate returns the point a fraction t of the way from p to other.
func (p Point3D) Interpolate(other Point3D, t float64) Point3D {
	return Point3D{
		lerp(p[0], other[0], t),
		lerp(p[1], other[1], t),
		lerp(p[2], other[2], t),
	}
}

// InterpolateMulti is like Interpolate but takes a per-axis fraction.
func (p Point3D) InterpolateMulti(other Point3D, tPerAxis [3]float64) Point3D {
	return Point3D{
		lerp(p[0], other[0], tPerAxis[0]),
		lerp(p[1], other[1], tPerAxis[1]),
		lerp(p[2], other[2], tPerAxis[2]),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
