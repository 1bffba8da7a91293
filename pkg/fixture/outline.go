package fixture

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// edge is one step of a contour recipe: a segment when r is zero, else an
// arc around c
type edge struct {
	p1, p2 geom.Point
	c      geom.Point
	r      float64
}

func seg(x1, y1, x2, y2 float64) edge {
	return edge{p1: geom.Pt(x1, y1), p2: geom.Pt(x2, y2)}
}

func arc(x1, y1, x2, y2, xc, yc, r float64) edge {
	return edge{p1: geom.Pt(x1, y1), p2: geom.Pt(x2, y2), c: geom.Pt(xc, yc), r: r}
}

// boardContours lists the board edge, the inner slot and four small
// decorative cutouts: a full circle, a half disc, a flipped half disc and a
// three-quarter disc.
var boardContours = [][]edge{
	{ // 20 x 10 rounded rectangle
		seg(1, 0, 19, 0),
		arc(19, 0, 20, 1, 19, 1, 1),
		seg(20, 1, 20, 9),
		arc(20, 9, 19, 10, 19, 9, 1),
		seg(19, 10, 1, 10),
		arc(1, 10, 0, 9, 1, 9, 1),
		seg(0, 9, 0, 1),
		arc(0, 1, 1, 0, 1, 1, 1),
	},
	{ // rounded slot
		seg(2, 1, 3, 1),
		arc(3, 1, 4, 2, 3, 2, 1),
		seg(4, 2, 4, 8),
		arc(4, 8, 3, 9, 3, 8, 1),
		seg(3, 9, 2, 9),
		arc(2, 9, 1, 8, 2, 8, 1),
		seg(1, 8, 1, 2),
		arc(1, 2, 2, 1, 2, 2, 1),
	},
	{
		arc(5.5, 5, 5.5, 5, 5, 5, 0.5),
	},
	{
		arc(5.5, 6, 4.5, 6, 5, 6, 0.5),
		seg(4.5, 6, 5.5, 6),
	},
	{
		arc(4.5, 7.5, 5.5, 7.5, 5, 7.5, 0.5),
		seg(5.5, 7.5, 4.5, 7.5),
	},
	{
		arc(5.5, 8.5, 5, 8, 5, 8.5, 0.5),
		seg(5, 8, 5.5, 8.5),
	},
}

// buildOutline runs every contour recipe through an OutlineBuilder
func buildOutline(recipes [][]edge) ([]hyp.Contour, error) {
	b := hyp.NewOutlineBuilder()
	for i, recipe := range recipes {
		for _, e := range recipe {
			var err error
			if e.r == 0 {
				err = b.AddSegment(e.p1, e.p2)
			} else {
				err = b.AddArc(e.p1, e.p2, e.c, e.r)
			}
			if err != nil {
				return nil, fmt.Errorf("contour %d: %w", i, err)
			}
		}
		if err := b.CloseContour(); err != nil {
			return nil, err
		}
	}
	return b.Contours()
}

// RoundedRectangle builds the single board-edge contour: four segments and
// four quarter arcs of radius r around a w by h rectangle at the origin.
func RoundedRectangle(w, h, r float64) (hyp.Contour, error) {
	contours, err := buildOutline([][]edge{{
		seg(r, 0, w-r, 0),
		arc(w-r, 0, w, r, w-r, r, r),
		seg(w, r, w, h-r),
		arc(w, h-r, w-r, h, w-r, h-r, r),
		seg(w-r, h, r, h),
		arc(r, h, 0, h-r, r, h-r, r),
		seg(0, h-r, 0, r),
		arc(0, r, r, 0, r, r, r),
	}})
	if err != nil {
		return hyp.Contour{}, err
	}
	return contours[0], nil
}
