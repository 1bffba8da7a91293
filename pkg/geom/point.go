// Package geom provides the 2D coordinate math shared by the board builders:
// points, circle placement, arc sweeps and bounding boxes.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance is the absolute distance under which two coordinates are
// treated as the same point.
const Tolerance = 1e-9

// Point represents a 2D coordinate in board units
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return fromVec(r2.Add(p.vec(), q.vec()))
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return fromVec(r2.Sub(p.vec(), q.vec()))
}

// Scale returns p multiplied by f
func (p Point) Scale(f float64) Point {
	return fromVec(r2.Scale(f, p.vec()))
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// Eq reports whether p and q coincide within tol on both axes
func (p Point) Eq(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

// Finite reports whether both coordinates are neither NaN nor infinite
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Same reports whether p and q coincide within Tolerance
func (p Point) Same(q Point) bool {
	return p.Eq(q, Tolerance)
}
