package fixture

import (
	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// Copper layer names of the reference stackup
const (
	LayerTop    = "component"
	LayerBottom = "solder"
)

// DeviceRef is the through-hole transistor carrying the pintst pins
const DeviceRef = "U1"

// polygon outline width of the nesting tests, which only stress void
// bookkeeping
const nestingPen = 0.01

type netSpec struct {
	name string
	opts []hyp.NetOption
	body func(cfg *Config, e *hyp.NetEmitter) error
}

func referenceNets(cfg *Config) []netSpec {
	nets := []netSpec{
		{name: "segtst", body: segTest},
		{name: "arctst", body: arcTest},
		{name: "viatst", body: viaTest},
		{name: "oldviatst", body: oldViaTest},
		{name: "pintst", body: pinTest},
		{name: "padtst", body: padTest},
		{name: "usegtst", body: usegTest},
		{name: "polylinetst", body: polylineTest},
		{name: "curvetst", body: curveTest},
		{name: "linetst", body: lineTest},
		{name: "poly_clearance_tst", opts: []hyp.NetOption{hyp.WithPlaneSeparation(0.05)}, body: clearanceTest},
		{name: "poly_clearance_tst2", opts: []hyp.NetOption{hyp.WithPlaneSeparation(0.05)}, body: clearanceTest2},
		{name: "nesting_poly_1", opts: []hyp.NetOption{hyp.WithPlaneSeparation(0)}, body: nestingTest1},
		{name: "nesting_poly_2", opts: []hyp.NetOption{hyp.WithPlaneSeparation(0)}, body: nestingTest2},
	}
	if cfg.NestingChain {
		nets = append(nets, netSpec{
			name: "nesting_poly_3",
			opts: []hyp.NetOption{hyp.WithPlaneSeparation(0)},
			body: nestingTest3,
		})
	}
	return nets
}

// segTest fans out spokes that widen and lengthen as they rotate
func segTest(cfg *Config, e *hyp.NetEmitter) error {
	return hyp.EmitEach(e, hyp.RadialFan(geom.Pt(6, 3), 0.5, 2, cfg.FanSteps, 0.1, LayerTop))
}

// arcTest covers every start/end angle pair on a grid of small arcs
func arcTest(cfg *Config, e *hyp.NetEmitter) error {
	const r = 0.1
	return hyp.EmitEach(e, hyp.ArcGrid(geom.Pt(9, 1), r, cfg.ArcGrid, r/4, LayerTop))
}

// viaChain places one via per padstack down a column and links them
func viaChain(e *hyp.NetEmitter, x float64, padstacks []string) error {
	for i, ps := range padstacks {
		if err := e.Emit(hyp.Via{At: geom.Pt(x, float64(i+1)), Padstack: ps}); err != nil {
			return err
		}
	}
	return linkColumn(e, x, len(padstacks))
}

func linkColumn(e *hyp.NetEmitter, x float64, n int) error {
	for i := 1; i < n; i++ {
		seg := hyp.Segment{
			P1:    geom.Pt(x, float64(i)),
			P2:    geom.Pt(x, float64(i+1)),
			Width: 0.1,
			Layer: LayerTop,
		}
		if err := e.Emit(seg); err != nil {
			return err
		}
	}
	return nil
}

func viaTest(_ *Config, e *hyp.NetEmitter) error {
	return viaChain(e, 13, []string{RoundPad, SquarePad, OblongPad, NoDrill})
}

// oldViaTest uses the version 1 via encoding; the last via has no drill
func oldViaTest(_ *Config, e *hyp.NetEmitter) error {
	const x = 14
	round := hyp.ViaShape{Kind: hyp.ShapeRound, Width: 0.5, Height: 0.5}
	vias := []hyp.Primitive{
		hyp.LegacyVia{At: geom.Pt(x, 1), Drill: 0.2, Layer1: LayerTop, Shapes: []hyp.ViaShape{round}},
		hyp.LegacyVia{At: geom.Pt(x, 2), Drill: 0.2, Layer1: LayerTop, Layer2: LayerBottom,
			Shapes: []hyp.ViaShape{{Kind: hyp.ShapeSquare, Width: 0.5, Height: 0.5}}},
		hyp.LegacyVia{At: geom.Pt(x, 3), Drill: 0.2, Layer1: LayerTop, Layer2: LayerBottom,
			Shapes: []hyp.ViaShape{{Kind: hyp.ShapeOblong, Width: 0.75, Height: 0.5}}},
		hyp.LegacyVia{At: geom.Pt(x, 4), Drill: 0, Layer1: LayerTop, Layer2: LayerBottom, Shapes: []hyp.ViaShape{round}},
	}
	if err := e.EmitAll(vias...); err != nil {
		return err
	}
	return linkColumn(e, x, len(vias))
}

func pinTest(_ *Config, e *hyp.NetEmitter) error {
	return e.EmitAll(
		hyp.Pin{At: geom.Pt(15, 1), Ref: DeviceRef + ".1", Padstack: RoundPad},
		hyp.Pin{At: geom.Pt(15, 2), Ref: DeviceRef + ".2", Padstack: SquarePad},
		hyp.Pin{At: geom.Pt(15, 3), Ref: DeviceRef + ".3", Padstack: OblongPad},
	)
}

func padTest(_ *Config, e *hyp.NetEmitter) error {
	for i, layer := range []string{LayerTop, LayerBottom} {
		x := float64(16 + i)
		err := e.EmitAll(
			hyp.Pad{At: geom.Pt(x, 1), Layer: layer, Shape: hyp.ShapeRound, Width: 0.5, Height: 0.5},
			hyp.Pad{At: geom.Pt(x, 2), Layer: layer, Shape: hyp.ShapeSquare, Width: 0.5, Height: 0.5},
			hyp.Pad{At: geom.Pt(x, 3), Layer: layer, Shape: hyp.ShapeOblong, Width: 0.75, Height: 0.5},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// usegTest alternates geometric and electrical descriptions, first within
// one layer and then across layers
func usegTest(_ *Config, e *hyp.NetEmitter) error {
	geometry := &hyp.TraceGeometry{Layer: LayerTop, Width: 0.1, Length: 2}
	target := &hyp.ImpedanceTarget{Impedance: 50, Delay: 1e-12, Resistance: 5}
	ends := []string{LayerTop, LayerTop, LayerBottom, LayerBottom}
	for i, l2 := range ends {
		y := float64(i + 1)
		u := hyp.ImpedanceSegment{P1: geom.Pt(18, y), Layer1: LayerTop, P2: geom.Pt(19, y), Layer2: l2}
		if i%2 == 0 {
			u.Geometry = geometry
		} else {
			u.Target = target
		}
		if err := e.Emit(u); err != nil {
			return err
		}
	}
	return nil
}

// polylineTest draws a small square pad and a serpentine polyline leaving it
func polylineTest(_ *Config, e *hyp.NetEmitter) error {
	origin := geom.Pt(6, 5)
	const pitch = 0.5
	w := pitch / 4
	return e.EmitAll(
		hyp.Polygon{ID: 1, Layer: LayerTop, Width: 0.05, Path: hyp.Rectangle(origin.Sub(geom.Pt(w, w)), 2*w, 2*w)},
		hyp.Polyline{ID: 1, Layer: LayerTop, Width: 0.1, Path: hyp.Serpentine(origin, 2, pitch, 4)},
	)
}

// curveTest cuts a half disc out of a round polygon
func curveTest(_ *Config, e *hyp.NetEmitter) error {
	center := geom.Pt(9.5, 5.5)
	const r = 0.5
	if err := e.OpenPolygon(hyp.Polygon{ID: 2, Layer: LayerTop, Width: 0.05, Path: hyp.CircularCap(center, r)}); err != nil {
		return err
	}
	if err := e.Void(hyp.HalfDisc(center, r/2)); err != nil {
		return err
	}
	return e.ClosePolygon()
}

// lineTest cuts a stepped void out of a stepped polygon
func lineTest(_ *Config, e *hyp.NetEmitter) error {
	if err := e.OpenPolygon(hyp.Polygon{ID: 3, Layer: LayerTop, Width: 0.05, Path: hyp.LShape(geom.Pt(9, 6.5), 0.5)}); err != nil {
		return err
	}
	if err := e.Void(hyp.LShape(geom.Pt(9.125, 6.625), 0.25)); err != nil {
		return err
	}
	return e.ClosePolygon()
}

// clearance test geometry: three 1 x 0.5 polygons stacked 1 apart
var (
	clearanceOrigin = geom.Pt(11.5, 5)
	clearanceW      = 1.0
	clearanceH      = 0.5
	clearancePitch  = 1.0
)

// clearanceTraces places an SMD via at x2 on each polygon row, routed from
// a vertical spine at x1
func clearanceTraces(e *hyp.NetEmitter, x1, x2 float64) error {
	y := func(row int) float64 {
		return clearanceOrigin.Y + clearanceH/2 + float64(row)*clearancePitch
	}
	for row := 0; row < 3; row++ {
		if err := e.Emit(hyp.Via{At: geom.Pt(x2, y(row)), Padstack: SMDPad}); err != nil {
			return err
		}
	}
	trace := func(p1, p2 geom.Point) hyp.Primitive {
		return hyp.Segment{P1: p1, P2: p2, Width: 0.04, Layer: LayerTop}
	}
	return e.EmitAll(
		trace(geom.Pt(x1, y(0)), geom.Pt(x2, y(0))),
		trace(geom.Pt(x1, y(1)), geom.Pt(x2, y(1))),
		trace(geom.Pt(x1, y(2)), geom.Pt(x2, y(2))),
		trace(geom.Pt(x1, y(0)), geom.Pt(x1, y(1))),
		trace(geom.Pt(x1, y(1)), geom.Pt(x1, y(2))),
	)
}

// clearanceTest puts vias of this net inside its own pour, copper and
// plane polygons
func clearanceTest(_ *Config, e *hyp.NetEmitter) error {
	if err := clearanceTraces(e, 11, clearanceOrigin.X+clearanceW/4); err != nil {
		return err
	}
	types := []hyp.PolygonType{hyp.PolygonPour, hyp.PolygonCopper, hyp.PolygonPlane}
	for i, t := range types {
		origin := clearanceOrigin.Add(geom.Pt(0, float64(i)*clearancePitch))
		p := hyp.Polygon{
			ID:    hyp.PolyID(4 + i),
			Layer: LayerTop,
			Width: 0.1,
			Type:  t,
			Path:  hyp.Rectangle(origin, clearanceW, clearanceH),
		}
		if err := e.Emit(p); err != nil {
			return err
		}
	}
	return nil
}

// clearanceTest2 puts vias of a foreign net inside the same polygons
func clearanceTest2(_ *Config, e *hyp.NetEmitter) error {
	return clearanceTraces(e, 13, clearanceOrigin.X+clearanceW*3/4)
}

// nest emits a square pour polygon at origin with a square void inset by
// nestingStep, leaving the polygon open when keepOpen is set
func nest(e *hyp.NetEmitter, id hyp.PolyID, origin geom.Point, side float64, keepOpen bool) error {
	const s = nestingStep
	p := hyp.Polygon{ID: id, Layer: LayerTop, Width: nestingPen, Type: hyp.PolygonPour, Path: hyp.Rectangle(origin, side, side)}
	if err := e.OpenPolygon(p); err != nil {
		return err
	}
	if err := e.Void(hyp.Rectangle(origin.Add(geom.Pt(s, s)), side-2*s, side-2*s)); err != nil {
		return err
	}
	if keepOpen {
		return nil
	}
	return e.ClosePolygon()
}

var nestingOrigin = geom.Pt(14, 5)

const nestingStep = 0.25

func nestingTest1(_ *Config, e *hyp.NetEmitter) error {
	return nest(e, 7, nestingOrigin, 8*nestingStep, false)
}

// nestingTest2 sits inside the void of nesting_poly_1 on the same layer
func nestingTest2(_ *Config, e *hyp.NetEmitter) error {
	inner := nestingOrigin.Add(geom.Pt(2*nestingStep, 2*nestingStep))
	return nest(e, 8, inner, 4*nestingStep, false)
}

// nestingTest3 builds the same two-level arrangement inside one net: an
// island polygon in the void of an outer polygon, with its own void
func nestingTest3(_ *Config, e *hyp.NetEmitter) error {
	origin := geom.Pt(16.5, 5)
	if err := nest(e, 9, origin, 8*nestingStep, true); err != nil {
		return err
	}
	inner := origin.Add(geom.Pt(2*nestingStep, 2*nestingStep))
	if err := nest(e, 10, inner, 4*nestingStep, false); err != nil {
		return err
	}
	return e.ClosePolygon()
}
