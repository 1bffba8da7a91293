package hyp

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
)

// Edge is one perimeter record of a board contour
type Edge interface {
	Start() geom.Point
	End() geom.Point
	isEdge()
}

// PerimeterSegment is a straight board edge
type PerimeterSegment struct {
	P1, P2 geom.Point
}

func (s PerimeterSegment) Start() geom.Point { return s.P1 }
func (s PerimeterSegment) End() geom.Point   { return s.P2 }
func (PerimeterSegment) isEdge()             {}

// PerimeterArc is a curved board edge running counter-clockwise from P1 to P2.
// P1 == P2 describes a full circle.
type PerimeterArc struct {
	P1, P2 geom.Point
	Center geom.Point
	R      float64
}

func (a PerimeterArc) Start() geom.Point { return a.P1 }
func (a PerimeterArc) End() geom.Point   { return a.P2 }
func (PerimeterArc) isEdge()             {}

// Sweep returns the counter-clockwise angle covered by the arc
func (a PerimeterArc) Sweep() float64 {
	return geom.SweepCCW(a.Center, a.P1, a.P2)
}

func checkArc(p1, p2, center geom.Point, r float64) error {
	if err := finite("arc point", p1, p2, center); err != nil {
		return err
	}
	if err := positive("arc radius", r); err != nil {
		return err
	}
	tol := geom.Tolerance * (1 + r)
	if !geom.OnCircle(p1, center, r, tol) {
		return fmt.Errorf("start %v, center %v, radius %g: %w", p1, center, r, ErrNotOnCircle)
	}
	if !geom.OnCircle(p2, center, r, tol) {
		return fmt.Errorf("end %v, center %v, radius %g: %w", p2, center, r, ErrNotOnCircle)
	}
	return nil
}

// Contour is a closed loop of board edges (outer edge or cutout)
type Contour struct {
	Edges []Edge
}

// Closed reports whether every edge starts where its predecessor ends and
// the last edge returns to the first edge's start.
func (c Contour) Closed() bool {
	if len(c.Edges) == 0 {
		return false
	}
	for i := 1; i < len(c.Edges); i++ {
		if !c.Edges[i-1].End().Same(c.Edges[i].Start()) {
			return false
		}
	}
	return c.Edges[len(c.Edges)-1].End().Same(c.Edges[0].Start())
}

// TurningAngle returns the total signed rotation of the travel direction
// around the contour: arc sweeps plus the heading change at every joint.
// A simple counter-clockwise loop turns by 2π.
func (c Contour) TurningAngle() float64 {
	var total float64
	n := len(c.Edges)
	for i, e := range c.Edges {
		if a, ok := e.(PerimeterArc); ok {
			total += a.Sweep()
		}
		next := c.Edges[(i+1)%n]
		total += geom.TurnAngle(endDirection(e), startDirection(next))
	}
	return total
}

func startDirection(e Edge) geom.Point {
	switch e := e.(type) {
	case PerimeterArc:
		return geom.Tangent(e.Center, e.P1)
	default:
		return geom.Direction(e.Start(), e.End())
	}
}

func endDirection(e Edge) geom.Point {
	switch e := e.(type) {
	case PerimeterArc:
		return geom.Tangent(e.Center, e.P2)
	default:
		return geom.Direction(e.Start(), e.End())
	}
}

// Validate checks arc geometry and closure
func (c Contour) Validate() error {
	if len(c.Edges) == 0 {
		return ErrEmptyContour
	}
	for i, e := range c.Edges {
		var err error
		switch e := e.(type) {
		case PerimeterArc:
			err = checkArc(e.P1, e.P2, e.Center, e.R)
		default:
			err = finite("edge end", e.Start(), e.End())
		}
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	if !c.Closed() {
		return ErrOpenContour
	}
	return nil
}

// OutlineBuilder accumulates board contours edge by edge
type OutlineBuilder struct {
	contours []Contour
	current  []Edge
}

// NewOutlineBuilder creates an empty outline builder
func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{}
}

func (b *OutlineBuilder) appendEdge(e Edge) error {
	if n := len(b.current); n > 0 {
		last := b.current[n-1].End()
		if !last.Same(e.Start()) {
			return fmt.Errorf("edge from %v after %v: %w", e.Start(), last, ErrDiscontinuous)
		}
	}
	b.current = append(b.current, e)
	return nil
}

// AddSegment appends a straight edge to the current contour
func (b *OutlineBuilder) AddSegment(p1, p2 geom.Point) error {
	if err := finite("segment end", p1, p2); err != nil {
		return err
	}
	if p1.Same(p2) {
		return fmt.Errorf("segment at %v has zero length: %w", p1, ErrNotPositive)
	}
	return b.appendEdge(PerimeterSegment{P1: p1, P2: p2})
}

// AddArc appends a counter-clockwise arc edge to the current contour
func (b *OutlineBuilder) AddArc(p1, p2, center geom.Point, r float64) error {
	if err := checkArc(p1, p2, center, r); err != nil {
		return err
	}
	return b.appendEdge(PerimeterArc{P1: p1, P2: p2, Center: center, R: r})
}

// CloseContour checks the running contour is closed and starts a new one
func (b *OutlineBuilder) CloseContour() error {
	c := Contour{Edges: b.current}
	if len(c.Edges) == 0 {
		return ErrEmptyContour
	}
	if !c.Closed() {
		first, last := c.Edges[0].Start(), c.Edges[len(c.Edges)-1].End()
		return fmt.Errorf("contour %d starts at %v, ends at %v: %w", len(b.contours), first, last, ErrOpenContour)
	}
	b.contours = append(b.contours, c)
	b.current = nil
	Logger().Debug("contour closed", "index", len(b.contours)-1, "edges", len(c.Edges))
	return nil
}

// Contours returns the closed contours. It fails if a contour is still open.
func (b *OutlineBuilder) Contours() ([]Contour, error) {
	if len(b.current) > 0 {
		return nil, fmt.Errorf("%d pending edges: %w", len(b.current), ErrOpenContour)
	}
	return b.contours, nil
}
