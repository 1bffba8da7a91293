package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointOnCircle places a point on the circle around center.
// Angles are in radians, 0 along +x, increasing counter-clockwise.
func PointOnCircle(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// ArcEndpoints returns the start and end points of the arc from startAngle
// to endAngle around center.
func ArcEndpoints(center Point, radius, startAngle, endAngle float64) (Point, Point) {
	return PointOnCircle(center, radius, startAngle), PointOnCircle(center, radius, endAngle)
}

// AngleOf returns the angle of p as seen from center, in [0, 2π)
func AngleOf(center, p Point) float64 {
	a := math.Atan2(p.Y-center.Y, p.X-center.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// OnCircle reports whether p lies on the circle (center, radius) within tol
func OnCircle(p, center Point, radius, tol float64) bool {
	return scalar.EqualWithinAbs(p.Distance(center), radius, tol)
}

// SweepCCW returns the counter-clockwise sweep from p1 to p2 around center,
// in (0, 2π]. Coincident endpoints describe a full circle.
func SweepCCW(center, p1, p2 Point) float64 {
	if p1.Same(p2) {
		return 2 * math.Pi
	}
	s := AngleOf(center, p2) - AngleOf(center, p1)
	if s <= 0 {
		s += 2 * math.Pi
	}
	return s
}

// ArcPoints flattens an arc into n+1 points starting at startAngle and
// sweeping by sweep radians (negative sweeps run clockwise).
func ArcPoints(center Point, radius, startAngle, sweep float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		pts = append(pts, PointOnCircle(center, radius, a))
	}
	return pts
}

// Tangent returns the unit direction of travel at p for a counter-clockwise
// arc around center.
func Tangent(center, p Point) Point {
	radial := r2.Sub(p.vec(), center.vec())
	return fromVec(r2.Unit(r2.Vec{X: -radial.Y, Y: radial.X}))
}

// Direction returns the unit vector pointing from p to q
func Direction(p, q Point) Point {
	return fromVec(r2.Unit(r2.Sub(q.vec(), p.vec())))
}

// TurnAngle returns the signed angle from direction a to direction b in (-π, π]
func TurnAngle(a, b Point) float64 {
	return math.Atan2(r2.Cross(a.vec(), b.vec()), r2.Dot(a.vec(), b.vec()))
}
