package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// BoundingBox is an axis-aligned box grown point by point. Unlike r2.Box
// a box holding a single point is not empty, so start from NewBoundingBox.
type BoundingBox struct {
	box r2.Box
}

// NewBoundingBox returns an empty box: every Expand replaces its inverted
// infinite corners.
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{box: r2.Box{
		Min: r2.Vec{X: inf, Y: inf},
		Max: r2.Vec{X: -inf, Y: -inf},
	}}
}

// IsEmpty reports whether no point has been added
func (bb BoundingBox) IsEmpty() bool {
	return bb.box.Min.X > bb.box.Max.X || bb.box.Min.Y > bb.box.Max.Y
}

// Min returns the lower-left corner
func (bb BoundingBox) Min() Point { return fromVec(bb.box.Min) }

// Max returns the upper-right corner
func (bb BoundingBox) Max() Point { return fromVec(bb.box.Max) }

// Expand grows the box to include p. Non-finite points are ignored.
func (bb *BoundingBox) Expand(p Point) {
	if !p.Finite() {
		return
	}
	bb.box.Min = r2.Vec{X: math.Min(bb.box.Min.X, p.X), Y: math.Min(bb.box.Min.Y, p.Y)}
	bb.box.Max = r2.Vec{X: math.Max(bb.box.Max.X, p.X), Y: math.Max(bb.box.Max.Y, p.Y)}
}

// ExpandCircle grows the box to include the disc (center, radius)
func (bb *BoundingBox) ExpandCircle(center Point, radius float64) {
	d := Pt(radius, radius)
	bb.Expand(center.Sub(d))
	bb.Expand(center.Add(d))
}

// ExpandBox grows the box to include another one
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if other.IsEmpty() {
		return
	}
	bb.Expand(other.Min())
	bb.Expand(other.Max())
}

// Width returns the X extent, 0 for an empty box
func (bb BoundingBox) Width() float64 {
	if bb.IsEmpty() {
		return 0
	}
	return bb.box.Size().X
}

// Height returns the Y extent, 0 for an empty box
func (bb BoundingBox) Height() float64 {
	if bb.IsEmpty() {
		return 0
	}
	return bb.box.Size().Y
}

// Center returns the middle of the box, the origin for an empty box
func (bb BoundingBox) Center() Point {
	if bb.IsEmpty() {
		return Point{}
	}
	return fromVec(bb.box.Center())
}
