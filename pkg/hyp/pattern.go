package hyp

import (
	"math"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
)

// Rectangle returns the axis-aligned loop origin, +x, +x+y, +y, back to origin
func Rectangle(origin geom.Point, width, height float64) Path {
	x, y := origin.X, origin.Y
	return Path{
		Start: origin,
		Edges: []PathEdge{
			Line{To: geom.Pt(x+width, y)},
			Line{To: geom.Pt(x+width, y+height)},
			Line{To: geom.Pt(x, y+height)},
			Line{To: origin},
		},
	}
}

// CircularCap returns a loop made of a single full-circle curve
func CircularCap(center geom.Point, r float64) Path {
	start := geom.PointOnCircle(center, r, 0)
	return Path{
		Start: start,
		Edges: []PathEdge{Curve{P1: start, P2: start, Center: center, R: r}},
	}
}

// HalfDisc returns the lower half disc of radius r: a curve from the left
// to the right end of the diameter, closed by a line back along it.
func HalfDisc(center geom.Point, r float64) Path {
	left, right := geom.ArcEndpoints(center, r, math.Pi, 0)
	return Path{
		Start: left,
		Edges: []PathEdge{
			Curve{P1: left, P2: right, Center: center, R: r},
			Line{To: left},
		},
	}
}

// LShape returns a stepped loop: a 2w by w base with a w by w riser on its
// left half.
func LShape(origin geom.Point, w float64) Path {
	x, y := origin.X, origin.Y
	return Path{
		Start: origin,
		Edges: []PathEdge{
			Line{To: geom.Pt(x+2*w, y)},
			Line{To: geom.Pt(x+2*w, y+w)},
			Line{To: geom.Pt(x+w, y+w)},
			Line{To: geom.Pt(x+w, y+2*w)},
			Line{To: geom.Pt(x, y+2*w)},
			Line{To: origin},
		},
	}
}

// Serpentine returns an open path meandering upward from origin: each turn
// runs length to the right, bends up by pitch through a curve bulging
// right, runs back, and bends up again through a curve bulging left.
func Serpentine(origin geom.Point, length, pitch float64, turns int) Path {
	x0, y0 := origin.X, origin.Y
	r := pitch / 2
	p := Path{Start: origin}
	for i := 0; i < turns; i++ {
		a := float64(2 * i)
		right := x0 + length
		p.Edges = append(p.Edges,
			Line{To: geom.Pt(right, y0+a*pitch)},
			Curve{
				P1:     geom.Pt(right, y0+a*pitch),
				P2:     geom.Pt(right, y0+(a+1)*pitch),
				Center: geom.Pt(right, y0+(a+0.5)*pitch),
				R:      r,
			},
			Line{To: geom.Pt(x0, y0+(a+1)*pitch)},
			// listed top first: curves run counter-clockwise
			Curve{
				P1:     geom.Pt(x0, y0+(a+2)*pitch),
				P2:     geom.Pt(x0, y0+(a+1)*pitch),
				Center: geom.Pt(x0, y0+(a+1.5)*pitch),
				R:      r,
			},
		)
	}
	return p
}

// RadialFan returns steps segments spoking out of center. Spoke i starts on
// the circle of radius r1 at angle 2πi/steps and grows linearly toward r2;
// its width grows linearly up to maxWidth.
func RadialFan(center geom.Point, r1, r2 float64, steps int, maxWidth float64, layer string) []Segment {
	segs := make([]Segment, 0, steps)
	for i := 0; i < steps; i++ {
		alpha := float64(i) * 2 * math.Pi / float64(steps)
		k := float64(i+1) / float64(steps)
		r := r1 + (r2-r1)*k
		segs = append(segs, Segment{
			P1:    geom.PointOnCircle(center, r1, alpha),
			P2:    geom.PointOnCircle(center, r, alpha),
			Width: maxWidth * k,
			Layer: layer,
		})
	}
	return segs
}

// ArcGrid returns an n by n grid of arcs of radius r spaced 4r apart. The arc
// in column a, row b runs from angle 2πa/n to 2πb/n; the diagonal holds full
// circles.
func ArcGrid(origin geom.Point, r float64, n int, width float64, layer string) []Arc {
	arcs := make([]Arc, 0, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			alpha := 2 * math.Pi * float64(a) / float64(n)
			beta := 2 * math.Pi * float64(b) / float64(n)
			c := geom.Pt(origin.X+4*r*float64(a), origin.Y+4*r*float64(b))
			p1, p2 := geom.ArcEndpoints(c, r, alpha, beta)
			arcs = append(arcs, Arc{P1: p1, P2: p2, Center: c, R: r, Width: width, Layer: layer})
		}
	}
	return arcs
}

// VoidFor returns a cutout of loop subtracting from polygon id
func VoidFor(id PolyID, loop Path) Polyvoid {
	return Polyvoid{Ref: id, Path: loop}
}
