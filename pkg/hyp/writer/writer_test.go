package writer

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

func TestFormatter(t *testing.T) {
	f := NewFormatter(DefaultOptions())
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"length", f.Len(0.5), "0.500000"},
		{"integer length", f.Len(20), "20.000000"},
		{"negative zero", f.Len(-1e-9), "0.000000"},
		{"negative", f.Len(-0.25), "-0.250000"},
		{"rounding", f.Len(1.0 / 3), "0.333333"},
		{"value", Value(50), "50"},
		{"small value", Value(1e-12), "1e-12"},
		{"version", Version(2), "2.0"},
		{"int", Int(7), "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if got := NewFormatter(Options{Precision: 2}).Len(0.125); got != "0.12" && got != "0.13" {
		t.Errorf("precision 2: got %q", got)
	}
}

func TestOptionsValidate(t *testing.T) {
	for _, p := range []int{0, -1, 13} {
		if err := (Options{Precision: p}).Validate(); err == nil {
			t.Errorf("precision %d should be rejected", p)
		}
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("default options: %v", err)
	}
}

func TestSerializeEmptyDocument(t *testing.T) {
	got, err := String(hyp.NewDocument())
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "{VERSION=2.0}\n{UNITS=METRIC LENGTH}\n{BOARD\n}\n{END}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("empty document mismatch (-want +got):\n%s", diff)
	}
}

func recordDocument(t *testing.T) *hyp.Document {
	t.Helper()
	doc := hyp.NewDocument()
	doc.PlaneSeparation = hyp.Float(0.05)
	doc.Stackup = []hyp.StackupLayer{
		{Kind: hyp.LayerSignal, Name: "component", Thickness: 0.0007},
		{Kind: hyp.LayerDielectric, Thickness: 0.002, EpsilonR: 4},
	}
	doc.Devices = []hyp.Device{{Ref: "U1", Name: "BC548", Layer: "component"}}
	if err := doc.Padstacks.Define("roundpad", 0.2, hyp.PadShape{Layer: hyp.AllLayers, Width: 0.5, Height: 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Padstacks.Define("0802pad", 0, hyp.PadShape{Layer: "component", Kind: hyp.ShapeSquare, Width: 0.2, Height: 0.12}); err != nil {
		t.Fatal(err)
	}

	b := hyp.NewOutlineBuilder()
	if err := b.AddArc(geom.Pt(5.5, 5), geom.Pt(5.5, 5), geom.Pt(5, 5), 0.5); err != nil {
		t.Fatal(err)
	}
	if err := b.CloseContour(); err != nil {
		t.Fatal(err)
	}
	doc.Outline, _ = b.Contours()

	e := hyp.NewNetEmitter(doc.Padstacks)
	steps := []func() error{
		func() error { return e.BeginNet("mixed", hyp.WithPlaneSeparation(0.05)) },
		func() error {
			return e.EmitAll(
				hyp.Segment{P1: geom.Pt(13, 1), P2: geom.Pt(13, 2), Width: 0.1, Layer: "component"},
				hyp.Via{At: geom.Pt(13, 1), Padstack: "roundpad"},
				hyp.LegacyVia{At: geom.Pt(14, 1), Drill: 0.2, Layer1: "component",
					Shapes: []hyp.ViaShape{{Kind: hyp.ShapeRound, Width: 0.5, Height: 0.5}}},
				hyp.Pin{At: geom.Pt(15, 1), Ref: "U1.1", Padstack: "roundpad"},
				hyp.Pad{At: geom.Pt(16, 2), Layer: "solder", Shape: hyp.ShapeSquare, Width: 0.5, Height: 0.5},
				hyp.ImpedanceSegment{P1: geom.Pt(18, 2), Layer1: "component", P2: geom.Pt(19, 2), Layer2: "component",
					Target: &hyp.ImpedanceTarget{Impedance: 50, Delay: 1e-12, Resistance: 5}},
				hyp.ImpedanceSegment{P1: geom.Pt(18, 1), Layer1: "component", P2: geom.Pt(19, 1), Layer2: "component",
					Geometry: &hyp.TraceGeometry{Layer: "component", Width: 0.1, Length: 2}},
			)
		},
		func() error {
			return e.OpenPolygon(hyp.Polygon{ID: 2, Layer: "component", Width: 0.05, Type: hyp.PolygonPour,
				Path: hyp.Rectangle(geom.Pt(0, 0), 1, 1)})
		},
		func() error { return e.Void(hyp.CircularCap(geom.Pt(0.5, 0.5), 0.25)) },
		func() error { return e.ClosePolygon() },
		func() error { return e.EndNet() },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	doc.Nets, _ = e.Nets()
	return doc
}

func TestSerializeRecords(t *testing.T) {
	var lines Lines
	if err := Serialize(recordDocument(t), &lines, DefaultOptions()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := []string{
		"{VERSION=2.0}",
		"{UNITS=METRIC LENGTH}",
		"{BOARD",
		"  (PERIMETER_ARC X1=5.500000 Y1=5.000000 X2=5.500000 Y2=5.000000 XC=5.000000 YC=5.000000 R=0.500000)",
		"}",
		"{PLANE_SEP=0.050000}",
		"{STACKUP",
		"  (SIGNAL T=0.000700 L=component)",
		"  (DIELECTRIC T=0.002000 C=4)",
		"}",
		"{DEVICES",
		"  (? REF=U1 NAME=BC548 L=component)",
		"}",
		"{PADSTACK=roundpad, 0.200000",
		"  (MDEF, 0, 0.500000, 0.500000, 0)",
		"}",
		"{PADSTACK=0802pad,",
		"  (component, 1, 0.200000, 0.120000, 0)",
		"}",
		"{NET=mixed PS=0.050000",
		"  (SEG X1=13.000000 Y1=1.000000 X2=13.000000 Y2=2.000000 W=0.100000 L=component)",
		"  (VIA X=13.000000 Y=1.000000 P=roundpad)",
		"  (VIA X=14.000000 Y=1.000000 D=0.200000 L1=component S1=ROUND S1X=0.500000 S1Y=0.500000)",
		"  (PIN X=15.000000 Y=1.000000 R=U1.1 P=roundpad)",
		"  (PAD X=16.000000 Y=2.000000 L=solder S=RECT SX=0.500000 SY=0.500000)",
		"  (USEG X1=18.000000 Y1=2.000000 L1=component X2=19.000000 Y2=2.000000 L2=component Z=50 D=1e-12 R=5)",
		"  (USEG X1=18.000000 Y1=1.000000 L1=component X2=19.000000 Y2=1.000000 L2=component ZL=component ZW=0.100000 ZLEN=2.000000)",
		"  {POLYGON L=component T=POUR W=0.050000 ID=2 X=0.000000 Y=0.000000",
		"    (LINE X=1.000000 Y=0.000000)",
		"    (LINE X=1.000000 Y=1.000000)",
		"    (LINE X=0.000000 Y=1.000000)",
		"    (LINE X=0.000000 Y=0.000000)",
		"  }",
		"  {POLYVOID ID=2 X=0.750000 Y=0.500000",
		"    (CURVE X1=0.750000 Y1=0.500000 X2=0.750000 Y2=0.500000 XC=0.500000 YC=0.500000 R=0.250000)",
		"  }",
		"}",
		"{END}",
	}
	if diff := cmp.Diff(want, []string(lines)); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeInvalidDocumentWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *hyp.Document) *hyp.Document
		want   error
	}{
		{
			name:   "unknown device",
			mutate: func(d *hyp.Document) *hyp.Document { d.Devices = nil; return d },
			want:   hyp.ErrUnknownDevice,
		},
		{
			name: "negative net plane separation",
			mutate: func(d *hyp.Document) *hyp.Document {
				d.Nets = append(d.Nets, hyp.NetBlock{Name: "n", PlaneSeparation: hyp.Float(-1)})
				return d
			},
			want: hyp.ErrNotPositive,
		},
		{
			name: "NaN segment",
			mutate: func(d *hyp.Document) *hyp.Document {
				seg := hyp.Segment{P1: geom.Pt(math.Inf(1), 0), P2: geom.Pt(1, math.NaN()), Width: math.NaN(), Layer: "component"}
				d.Nets = append(d.Nets, hyp.NetBlock{Name: "n", Primitives: []hyp.Primitive{seg}})
				return d
			},
			want: hyp.ErrNotFinite,
		},
		{
			name:   "nil document",
			mutate: func(*hyp.Document) *hyp.Document { return nil },
			want:   hyp.ErrNoDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.mutate(recordDocument(t))
			var lines Lines
			err := Serialize(doc, &lines, DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Errorf("Serialize() error = %v, want %v", err, tt.want)
			}
			if len(lines) != 0 {
				t.Errorf("wrote %d lines for an invalid document", len(lines))
			}
		})
	}
}

type failingSink struct{ after int }

func (s *failingSink) WriteLine(string) error {
	if s.after == 0 {
		return errors.New("disk full")
	}
	s.after--
	return nil
}

func TestSerializeSinkError(t *testing.T) {
	err := Serialize(recordDocument(t), &failingSink{after: 3}, DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Serialize() error = %v, want sink failure", err)
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	if err := Serialize(hyp.NewDocument(), sink, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("sink should buffer until Flush")
	}
	if err := sink.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "{END}\n") {
		t.Errorf("output %q does not end with the terminator", buf.String())
	}
}
