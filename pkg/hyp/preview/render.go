// Package preview draws a board description to a raster image, for eyeballing
// generated fixtures without an importer.
package preview

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// Options controls the image size and colours
type Options struct {
	Width   int // pixels (default: 1200)
	Height  int // pixels (default: 600)
	Margin  int // pixels around the board (default: 20)
	Palette *Palette
}

// DefaultOptions returns a 1200x600 preview with the default palette
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 600, Margin: 20}
}

func (o *Options) normalize() error {
	if o.Width == 0 {
		o.Width = 1200
	}
	if o.Height == 0 {
		o.Height = 600
	}
	if o.Width < 0 || o.Height < 0 || o.Margin < 0 {
		return fmt.Errorf("preview size %dx%d margin %d: %w", o.Width, o.Height, o.Margin, hyp.ErrNotPositive)
	}
	if 2*o.Margin >= min(o.Width, o.Height) {
		return fmt.Errorf("margin %d leaves no room in %dx%d", o.Margin, o.Width, o.Height)
	}
	if o.Palette == nil {
		o.Palette = &DefaultPalette
	}
	return nil
}

// flattening step for arcs and curves
const arcStep = math.Pi / 32

func arcSegments(sweep float64) int {
	return max(4, int(math.Ceil(math.Abs(sweep)/arcStep)))
}

type renderer struct {
	dc     *gg.Context
	cam    *Camera
	colors layerColors
	p      *Palette
	doc    *hyp.Document
}

// Render validates doc and draws it into a new context. The caller owns the
// context and must Close it.
func Render(doc *hyp.Document, opts Options) (*gg.Context, error) {
	if doc == nil {
		return nil, hyp.ErrNoDocument
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	r := &renderer{
		dc:     gg.NewContext(opts.Width, opts.Height),
		cam:    NewCamera(opts.Width, opts.Height),
		colors: newLayerColors(*opts.Palette, doc.Stackup),
		p:      opts.Palette,
		doc:    doc,
	}
	r.cam.Fit(doc.Bounds(), opts.Margin)
	r.dc.ClearWithColor(gg.FromColor(r.p.Background))

	if err := r.board(); err != nil {
		r.dc.Close()
		return nil, fmt.Errorf("board: %w", err)
	}
	for _, n := range doc.Nets {
		if err := r.net(n); err != nil {
			r.dc.Close()
			return nil, fmt.Errorf("net %s: %w", n.Name, err)
		}
	}
	hyp.Logger().Debug("preview rendered", "width", opts.Width, "height", opts.Height, "zoom", r.cam.Zoom)
	return r.dc, nil
}

// WritePNG renders doc and encodes it as PNG to w
func WritePNG(w io.Writer, doc *hyp.Document, opts Options) error {
	dc, err := Render(doc, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func (r *renderer) moveTo(p geom.Point) {
	x, y := r.cam.WorldToScreen(p)
	r.dc.MoveTo(x, y)
}

func (r *renderer) lineTo(p geom.Point) {
	x, y := r.cam.WorldToScreen(p)
	r.dc.LineTo(x, y)
}

// arcTo continues the current path along an arc from angle a0 by sweep
func (r *renderer) arcTo(center geom.Point, radius, a0, sweep float64) {
	pts := geom.ArcPoints(center, radius, a0, sweep, arcSegments(sweep))
	for _, p := range pts[1:] {
		r.lineTo(p)
	}
}

// board fills the substrate with every contour as an even-odd subpath, so
// cutouts stay open, then strokes the edges
func (r *renderer) board() error {
	if len(r.doc.Outline) == 0 {
		return nil
	}
	for _, c := range r.doc.Outline {
		r.contour(c)
	}
	r.dc.SetFillRule(gg.FillRuleEvenOdd)
	r.dc.SetColor(r.p.Substrate)
	if err := r.dc.Fill(); err != nil {
		return err
	}

	for _, c := range r.doc.Outline {
		r.contour(c)
	}
	r.dc.SetColor(r.p.Outline)
	r.dc.SetLineWidth(1)
	return r.dc.Stroke()
}

func (r *renderer) contour(c hyp.Contour) {
	r.moveTo(c.Edges[0].Start())
	for _, e := range c.Edges {
		switch e := e.(type) {
		case hyp.PerimeterArc:
			r.arcTo(e.Center, e.R, geom.AngleOf(e.Center, e.P1), e.Sweep())
		default:
			r.lineTo(e.End())
		}
	}
	r.dc.ClosePath()
}

// path adds a polygon, void or polyline path. Curves entered from P2 are
// drawn clockwise back to P1.
func (r *renderer) path(p hyp.Path, closed bool) {
	r.moveTo(p.Start)
	cur := p.Start
	for _, e := range p.Edges {
		switch e := e.(type) {
		case hyp.Line:
			r.lineTo(e.To)
			cur = e.To
		case hyp.Curve:
			sweep := geom.SweepCCW(e.Center, e.P1, e.P2)
			if cur.Same(e.P1) {
				r.arcTo(e.Center, e.R, geom.AngleOf(e.Center, e.P1), sweep)
				cur = e.P2
			} else {
				r.arcTo(e.Center, e.R, geom.AngleOf(e.Center, e.P2), -sweep)
				cur = e.P1
			}
		}
	}
	if closed {
		r.dc.ClosePath()
	}
}

func (r *renderer) stroke(width float64) error {
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	r.dc.SetLineWidth(max(1, r.cam.Length(width)))
	return r.dc.Stroke()
}

func (r *renderer) net(n hyp.NetBlock) error {
	voids := make(map[hyp.PolyID][]hyp.Path)
	for _, p := range n.Primitives {
		if v, ok := p.(hyp.Polyvoid); ok {
			voids[v.Ref] = append(voids[v.Ref], v.Path)
		}
	}

	for _, p := range n.Primitives {
		if err := r.primitive(p, voids); err != nil {
			return fmt.Errorf("%s: %w", p.Keyword(), err)
		}
	}
	return nil
}

func (r *renderer) primitive(p hyp.Primitive, voids map[hyp.PolyID][]hyp.Path) error {
	switch p := p.(type) {
	case hyp.Segment:
		r.moveTo(p.P1)
		r.lineTo(p.P2)
		r.dc.SetColor(r.colors.of(p.Layer))
		return r.stroke(p.Width)
	case hyp.Arc:
		r.moveTo(p.P1)
		r.arcTo(p.Center, p.R, geom.AngleOf(p.Center, p.P1), geom.SweepCCW(p.Center, p.P1, p.P2))
		r.dc.SetColor(r.colors.of(p.Layer))
		return r.stroke(p.Width)
	case hyp.Via:
		return r.padstack(p.At, p.Padstack)
	case hyp.Pin:
		return r.padstack(p.At, p.Padstack)
	case hyp.LegacyVia:
		s := p.Shapes[0]
		if err := r.pad(p.At, s.Kind, s.Width, s.Height, r.p.Via); err != nil {
			return err
		}
		return r.drill(p.At, p.Drill)
	case hyp.Pad:
		return r.pad(p.At, p.Shape, p.Width, p.Height, r.colors.of(p.Layer))
	case hyp.ImpedanceSegment:
		r.moveTo(p.P1)
		r.lineTo(p.P2)
		r.dc.SetColor(r.p.Impedance)
		width := 0.0
		if p.Geometry != nil {
			width = p.Geometry.Width
		}
		return r.stroke(width)
	case hyp.Polygon:
		r.path(p.Path, true)
		for _, v := range voids[p.ID] {
			r.path(v, true)
		}
		r.dc.SetFillRule(gg.FillRuleEvenOdd)
		r.dc.SetColor(r.colors.of(p.Layer))
		return r.dc.Fill()
	case hyp.Polyline:
		r.path(p.Path, false)
		r.dc.SetColor(r.colors.of(p.Layer))
		return r.stroke(p.Width)
	}
	// voids are cut while filling their polygon
	return nil
}

// padstack draws the first shape of a padstack and its drill
func (r *renderer) padstack(at geom.Point, name string) error {
	ps, ok := r.doc.Padstacks.Lookup(name)
	if !ok || len(ps.Shapes) == 0 {
		return fmt.Errorf("padstack %q: %w", name, hyp.ErrUnknownPadstack)
	}
	s := ps.Shapes[0]
	if err := r.pad(at, s.Kind, s.Width, s.Height, r.colors.of(s.Layer)); err != nil {
		return err
	}
	return r.drill(at, ps.Drill)
}

func (r *renderer) pad(at geom.Point, kind hyp.ShapeKind, w, h float64, c color.Color) error {
	x, y := r.cam.WorldToScreen(at)
	pw, ph := r.cam.Length(w), r.cam.Length(h)
	switch kind {
	case hyp.ShapeRound:
		r.dc.DrawCircle(x, y, max(pw, ph)/2)
	case hyp.ShapeOblong:
		// stadium: a stroke along the long axis with round caps
		r.dc.SetColor(c)
		r.dc.SetLineCap(gg.LineCapRound)
		short := min(pw, ph)
		r.dc.SetLineWidth(short)
		dx, dy := (pw-short)/2, (ph-short)/2
		r.dc.MoveTo(x-dx, y-dy)
		r.dc.LineTo(x+dx, y+dy)
		return r.dc.Stroke()
	default:
		r.dc.DrawRectangle(x-pw/2, y-ph/2, pw, ph)
	}
	r.dc.SetFillRule(gg.FillRuleNonZero)
	r.dc.SetColor(c)
	return r.dc.Fill()
}

func (r *renderer) drill(at geom.Point, d float64) error {
	if d <= 0 {
		return nil
	}
	x, y := r.cam.WorldToScreen(at)
	r.dc.DrawCircle(x, y, r.cam.Length(d)/2)
	r.dc.SetColor(r.p.Drill)
	return r.dc.Fill()
}
