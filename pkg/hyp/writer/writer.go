// Package writer renders a hyp.Document as HyperLynx text.
//
// Sections are written in the order the format requires: version, data
// mode, units, board outline, plane separation, stackup, devices,
// padstacks, nets and the END terminator. Numbers go through a Formatter
// so every coordinate, width and radius uses the same fixed precision.
package writer

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// Serialize validates doc and writes it line by line to sink. Nothing is
// written when validation fails.
func Serialize(doc *hyp.Document, sink Sink, opts Options) error {
	if doc == nil {
		return hyp.ErrNoDocument
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	w := &docWriter{sink: sink, f: NewFormatter(opts)}
	w.header(doc)
	w.board(doc.Outline)
	if doc.PlaneSeparation != nil {
		w.line("{PLANE_SEP=" + w.f.Len(*doc.PlaneSeparation) + "}")
	}
	w.stackup(doc.Stackup)
	w.devices(doc.Devices)
	for _, ps := range doc.Padstacks.Padstacks() {
		w.padstack(ps)
	}
	for _, n := range doc.Nets {
		w.net(n)
	}
	w.line("{END}")

	if w.err != nil {
		return fmt.Errorf("write document: %w", w.err)
	}
	hyp.Logger().Debug("document written", "lines", w.lines, "nets", len(doc.Nets))
	return nil
}

// String renders doc with the default options
func String(doc *hyp.Document) (string, error) {
	var lines Lines
	if err := Serialize(doc, &lines, DefaultOptions()); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

type docWriter struct {
	sink  Sink
	f     Formatter
	err   error
	lines int
}

func (w *docWriter) line(s string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.WriteLine(s)
	w.lines++
}

// record accumulates "(KEYWORD K=V ...)"
type record struct {
	f Formatter
	b strings.Builder
}

func (w *docWriter) rec(keyword string) *record {
	r := &record{f: w.f}
	r.b.WriteString("(" + keyword)
	return r
}

func (r *record) str(key, v string) *record {
	r.b.WriteString(" " + key + "=" + v)
	return r
}

func (r *record) num(key string, v float64) *record {
	return r.str(key, r.f.Len(v))
}

func (r *record) pt(kx, ky string, p geom.Point) *record {
	return r.num(kx, p.X).num(ky, p.Y)
}

func (r *record) String() string {
	return r.b.String() + ")"
}

func (w *docWriter) header(doc *hyp.Document) {
	w.line("{VERSION=" + Version(doc.Version) + "}")
	if doc.DataMode != hyp.DataModeUnset {
		w.line("{DATA_MODE=" + doc.DataMode.String() + "}")
	}
	w.line("{UNITS=" + doc.Units.System.String() + " " + doc.Units.Thickness.String() + "}")
}

func (w *docWriter) board(contours []hyp.Contour) {
	w.line("{BOARD")
	for _, c := range contours {
		for _, e := range c.Edges {
			switch e := e.(type) {
			case hyp.PerimeterSegment:
				w.line("  " + w.rec("PERIMETER_SEGMENT").pt("X1", "Y1", e.P1).pt("X2", "Y2", e.P2).String())
			case hyp.PerimeterArc:
				w.line("  " + w.rec("PERIMETER_ARC").pt("X1", "Y1", e.P1).pt("X2", "Y2", e.P2).
					pt("XC", "YC", e.Center).num("R", e.R).String())
			}
		}
	}
	w.line("}")
}

func (w *docWriter) stackup(layers []hyp.StackupLayer) {
	if len(layers) == 0 {
		return
	}
	w.line("{STACKUP")
	for _, l := range layers {
		r := w.rec(l.Kind.String()).num("T", l.Thickness)
		if l.EpsilonR > 0 {
			r.str("C", Value(l.EpsilonR))
		}
		if l.LossTangent > 0 {
			r.str("LT", Value(l.LossTangent))
		}
		if l.Name != "" {
			r.str("L", l.Name)
		}
		if l.Material != "" {
			r.str("M", l.Material)
		}
		if l.PlaneSeparation != nil {
			r.num("PS", *l.PlaneSeparation)
		}
		w.line("  " + r.String())
	}
	w.line("}")
}

func (w *docWriter) devices(devices []hyp.Device) {
	if len(devices) == 0 {
		return
	}
	w.line("{DEVICES")
	for _, d := range devices {
		r := w.rec(d.TypeCode()).str("REF", d.Ref)
		if d.Name != "" {
			r.str("NAME", d.Name)
		}
		if d.Value != "" {
			r.str("VAL", d.Value)
		}
		if d.Package != "" {
			r.str("PKG", d.Package)
		}
		if d.Layer != "" {
			r.str("L", d.Layer)
		}
		w.line("  " + r.String())
	}
	w.line("}")
}

func (w *docWriter) padstack(ps hyp.Padstack) {
	head := "{PADSTACK=" + ps.Name + ","
	if ps.Drilled() {
		head += " " + w.f.Len(ps.Drill)
	}
	w.line(head)
	for _, s := range ps.Shapes {
		fields := []string{
			s.Layer,
			Int(int(s.Kind)),
			w.f.Len(s.Width),
			w.f.Len(s.Height),
			Value(s.Angle),
		}
		if code := s.Type.Code(); code != "" {
			fields = append(fields, code)
		}
		w.line("  (" + strings.Join(fields, ", ") + ")")
	}
	w.line("}")
}

func (w *docWriter) net(n hyp.NetBlock) {
	head := "{NET=" + n.Name
	if n.PlaneSeparation != nil {
		head += " PS=" + w.f.Len(*n.PlaneSeparation)
	}
	w.line(head)
	for _, p := range n.Primitives {
		w.primitive(p)
	}
	w.line("}")
}

func (w *docWriter) primitive(p hyp.Primitive) {
	switch p := p.(type) {
	case hyp.Segment:
		w.line("  " + w.rec("SEG").pt("X1", "Y1", p.P1).pt("X2", "Y2", p.P2).
			num("W", p.Width).str("L", p.Layer).String())
	case hyp.Arc:
		w.line("  " + w.rec("ARC").pt("X1", "Y1", p.P1).pt("X2", "Y2", p.P2).
			pt("XC", "YC", p.Center).num("R", p.R).num("W", p.Width).str("L", p.Layer).String())
	case hyp.Via:
		w.line("  " + w.rec("VIA").pt("X", "Y", p.At).str("P", p.Padstack).String())
	case hyp.LegacyVia:
		w.line("  " + w.legacyVia(p))
	case hyp.Pin:
		r := w.rec("PIN").pt("X", "Y", p.At).str("R", p.Ref).str("P", p.Padstack)
		if p.Function != hyp.PinFunctionUnset {
			r.str("F", p.Function.String())
		}
		w.line("  " + r.String())
	case hyp.Pad:
		r := w.rec("PAD").pt("X", "Y", p.At).str("L", p.Layer).str("S", p.Shape.Name()).
			num("SX", p.Width).num("SY", p.Height)
		if p.Angle != 0 {
			r.str("SA", Value(p.Angle))
		}
		w.line("  " + r.String())
	case hyp.ImpedanceSegment:
		w.line("  " + w.useg(p))
	case hyp.Polygon:
		r := w.rec("").str("L", p.Layer)
		if t := p.Type.String(); t != "" {
			r.str("T", t)
		}
		r.num("W", p.Width).str("ID", Int(int(p.ID)))
		w.block("POLYGON", r, p.Path)
	case hyp.Polyvoid:
		w.block("POLYVOID", w.rec("").str("ID", Int(int(p.Ref))), p.Path)
	case hyp.Polyline:
		r := w.rec("").str("L", p.Layer).num("W", p.Width).str("ID", Int(int(p.ID)))
		w.block("POLYLINE", r, p.Path)
	}
}

func (w *docWriter) legacyVia(v hyp.LegacyVia) string {
	r := w.rec("VIA").pt("X", "Y", v.At).num("D", v.Drill).str("L1", v.Layer1)
	if v.Layer2 != "" {
		r.str("L2", v.Layer2)
	}
	for i, s := range v.Shapes {
		k := fmt.Sprintf("S%d", i+1)
		r.str(k, s.Kind.Name()).num(k+"X", s.Width).num(k+"Y", s.Height)
		if s.Angle != 0 {
			r.str(k+"A", Value(s.Angle))
		}
	}
	return r.String()
}

func (w *docWriter) useg(u hyp.ImpedanceSegment) string {
	r := w.rec("USEG").pt("X1", "Y1", u.P1).str("L1", u.Layer1).pt("X2", "Y2", u.P2).str("L2", u.Layer2)
	if g := u.Geometry; g != nil {
		r.str("ZL", g.Layer).num("ZW", g.Width).num("ZLEN", g.Length)
	} else {
		r.str("Z", Value(u.Target.Impedance)).str("D", Value(u.Target.Delay)).str("R", Value(u.Target.Resistance))
	}
	return r.String()
}

// block writes a polygon, void or polyline sub-block: a header carrying the
// attributes in attrs and the path start, then one LINE or CURVE record per edge.
func (w *docWriter) block(keyword string, attrs *record, path hyp.Path) {
	head := "  {" + keyword + strings.TrimPrefix(attrs.b.String(), "(")
	head += " X=" + w.f.Len(path.Start.X) + " Y=" + w.f.Len(path.Start.Y)
	w.line(head)
	for _, e := range path.Edges {
		switch e := e.(type) {
		case hyp.Line:
			w.line("    " + w.rec("LINE").pt("X", "Y", e.To).String())
		case hyp.Curve:
			w.line("    " + w.rec("CURVE").pt("X1", "Y1", e.P1).pt("X2", "Y2", e.P2).
				pt("XC", "YC", e.Center).num("R", e.R).String())
		}
	}
	w.line("  }")
}
