package hyp

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
)

// PathEdge is a LINE or CURVE record inside a polygon, void or polyline
type PathEdge interface {
	// Next returns the point reached when the edge is traversed from cur
	Next(cur geom.Point) (geom.Point, error)
	isPathEdge()
}

// Line continues the path with a straight line to To
type Line struct {
	To geom.Point
}

func (l Line) Next(geom.Point) (geom.Point, error) { return l.To, nil }
func (Line) isPathEdge()                           {}

// Curve is a counter-clockwise arc from P1 to P2. Because curves are always
// counter-clockwise, a path may reach either endpoint first; traversal
// continues from the other one. P1 == P2 makes a full circle.
type Curve struct {
	P1, P2 geom.Point
	Center geom.Point
	R      float64
}

func (c Curve) Next(cur geom.Point) (geom.Point, error) {
	switch {
	case cur.Same(c.P1):
		return c.P2, nil
	case cur.Same(c.P2):
		return c.P1, nil
	default:
		return cur, fmt.Errorf("curve %v-%v from %v: %w", c.P1, c.P2, cur, ErrDiscontinuous)
	}
}

func (Curve) isPathEdge() {}

// Path is a point sequence starting at Start, as used by POLYGON, POLYVOID
// and POLYLINE blocks.
type Path struct {
	Start geom.Point
	Edges []PathEdge
}

// End walks the path and returns its final point
func (p Path) End() (geom.Point, error) {
	cur := p.Start
	for i, e := range p.Edges {
		next, err := e.Next(cur)
		if err != nil {
			return cur, fmt.Errorf("edge %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// Closed reports whether the path returns to its start
func (p Path) Closed() bool {
	if len(p.Edges) == 0 {
		return false
	}
	end, err := p.End()
	return err == nil && end.Same(p.Start)
}

// Points returns the vertices visited by the path, start included
func (p Path) Points() []geom.Point {
	pts := []geom.Point{p.Start}
	cur := p.Start
	for _, e := range p.Edges {
		next, err := e.Next(cur)
		if err != nil {
			break
		}
		pts = append(pts, next)
		cur = next
	}
	return pts
}

// Validate checks curve geometry and continuity. Closed loops must also
// return to their start.
func (p Path) Validate(closed bool) error {
	if len(p.Edges) == 0 {
		return ErrEmptyContour
	}
	if err := finite("path start", p.Start); err != nil {
		return err
	}
	for i, e := range p.Edges {
		var err error
		switch e := e.(type) {
		case Curve:
			err = checkArc(e.P1, e.P2, e.Center, e.R)
		case Line:
			err = finite("line end", e.To)
		}
		if err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	end, err := p.End()
	if err != nil {
		return err
	}
	if closed && !end.Same(p.Start) {
		return fmt.Errorf("loop from %v ends at %v: %w", p.Start, end, ErrOpenContour)
	}
	return nil
}
