package fixture

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
	"github.com/OpenTraceLab/hypgen/pkg/hyp"
	"github.com/OpenTraceLab/hypgen/pkg/hyp/writer"
)

func build(t *testing.T, cfg *Config) *hyp.Document {
	t.Helper()
	doc, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return doc
}

func net(t *testing.T, doc *hyp.Document, name string) *hyp.NetBlock {
	t.Helper()
	n, ok := doc.Net(name)
	if !ok {
		t.Fatalf("net %s missing", name)
	}
	return n
}

func TestBuildNetOrder(t *testing.T) {
	doc := build(t, nil)
	var names []string
	for _, n := range doc.Nets {
		names = append(names, n.Name)
	}
	want := []string{
		"segtst", "arctst", "viatst", "oldviatst", "pintst", "padtst", "usegtst",
		"polylinetst", "curvetst", "linetst", "poly_clearance_tst", "poly_clearance_tst2",
		"nesting_poly_1", "nesting_poly_2", "nesting_poly_3",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("nets = %v\nwant %v", names, want)
	}
	if doc.Padstacks.Len() != 5 {
		t.Errorf("%d padstacks, want 5", doc.Padstacks.Len())
	}
	if len(doc.Outline) != 6 {
		t.Errorf("%d contours, want 6", len(doc.Outline))
	}
}

func TestRoundedRectangleTurning(t *testing.T) {
	c, err := RoundedRectangle(20, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Edges) != 8 {
		t.Errorf("%d edges, want 8", len(c.Edges))
	}
	if got := c.TurningAngle(); math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("TurningAngle() = %v, want 2π", got)
	}
}

func TestOutlineContoursClosed(t *testing.T) {
	doc := build(t, nil)
	for i, c := range doc.Outline {
		if !c.Closed() {
			t.Errorf("contour %d is open", i)
		}
		if got := c.TurningAngle(); math.Abs(got-2*math.Pi) > 1e-9 {
			t.Errorf("contour %d turns %v, want 2π", i, got)
		}
	}
}

func TestViaTest(t *testing.T) {
	doc := build(t, nil)
	n := net(t, doc, "viatst")
	if n.Count("VIA") != 4 || n.Count("SEG") != 3 || len(n.Primitives) != 7 {
		t.Fatalf("viatst has %d VIA, %d SEG of %d", n.Count("VIA"), n.Count("SEG"), len(n.Primitives))
	}
	for _, p := range n.Primitives {
		if v, ok := p.(hyp.Via); ok {
			if _, ok := doc.Padstacks.Lookup(v.Padstack); !ok {
				t.Errorf("via padstack %q does not resolve", v.Padstack)
			}
		}
	}
}

// polygonsAndVoids splits a net's polygon records
func polygonsAndVoids(n *hyp.NetBlock) ([]hyp.Polygon, []hyp.Polyvoid) {
	var polys []hyp.Polygon
	var voids []hyp.Polyvoid
	for _, p := range n.Primitives {
		switch p := p.(type) {
		case hyp.Polygon:
			polys = append(polys, p)
		case hyp.Polyvoid:
			voids = append(voids, p)
		}
	}
	return polys, voids
}

func TestNestingNets(t *testing.T) {
	doc := build(t, nil)
	tests := []struct {
		net   string
		id    hyp.PolyID
		side  float64
		inner float64
	}{
		{"nesting_poly_1", 7, 2, 1.5},
		{"nesting_poly_2", 8, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.net, func(t *testing.T) {
			n := net(t, doc, tt.net)
			polys, voids := polygonsAndVoids(n)
			if len(polys) != 1 || len(voids) != 1 {
				t.Fatalf("%d polygons, %d voids, want 1 and 1", len(polys), len(voids))
			}
			if polys[0].ID != tt.id || voids[0].Ref != tt.id {
				t.Errorf("polygon %d, void ref %d, want %d", polys[0].ID, voids[0].Ref, tt.id)
			}
			if got := n.Chain(voids[0].Ref); len(got) != 1 {
				t.Errorf("nesting depth %d, want 1", len(got))
			}
			if *n.PlaneSeparation != 0 {
				t.Errorf("plane separation %v, want 0", *n.PlaneSeparation)
			}

			bb := geom.NewBoundingBox()
			for _, p := range polys[0].Path.Points() {
				bb.Expand(p)
			}
			if math.Abs(bb.Width()-tt.side) > 1e-9 {
				t.Errorf("polygon side %v, want %v", bb.Width(), tt.side)
			}
			bb = geom.NewBoundingBox()
			for _, p := range voids[0].Path.Points() {
				bb.Expand(p)
			}
			if math.Abs(bb.Width()-tt.inner) > 1e-9 {
				t.Errorf("void side %v, want %v", bb.Width(), tt.inner)
			}
		})
	}

	// the two nets share a layer but not an id namespace
	n1, n2 := net(t, doc, "nesting_poly_1"), net(t, doc, "nesting_poly_2")
	if n1.HasPolygon(8) || n2.HasPolygon(7) {
		t.Error("nesting polygons leak between nets")
	}
}

func TestNestingChainNet(t *testing.T) {
	doc := build(t, nil)
	n := net(t, doc, "nesting_poly_3")
	polys, voids := polygonsAndVoids(n)
	if len(polys) != 2 || len(voids) != 2 {
		t.Fatalf("%d polygons, %d voids, want 2 and 2", len(polys), len(voids))
	}
	if voids[0].Ref != 9 || voids[1].Ref != 10 {
		t.Errorf("void refs %d, %d, want 9, 10", voids[0].Ref, voids[1].Ref)
	}
	if got, want := n.Chain(10), []hyp.PolyID{9, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("Chain(10) = %v, want %v", got, want)
	}

	cfg := DefaultConfig()
	cfg.NestingChain = false
	if _, ok := build(t, cfg).Net("nesting_poly_3"); ok {
		t.Error("nesting_poly_3 emitted with NestingChain off")
	}
}

func TestSegTestWidths(t *testing.T) {
	doc := build(t, nil)
	n := net(t, doc, "segtst")
	if len(n.Primitives) != 12 {
		t.Fatalf("%d primitives, want 12", len(n.Primitives))
	}
	prev := 0.0
	for i, p := range n.Primitives {
		s, ok := p.(hyp.Segment)
		if !ok {
			t.Fatalf("primitive %d is %s", i, p.Keyword())
		}
		if s.Width <= prev {
			t.Errorf("segment %d width %v not above %v", i, s.Width, prev)
		}
		prev = s.Width
	}
}

func TestConfigSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FanSteps = 5
	cfg.ArcGrid = 3
	doc := build(t, cfg)
	if got := net(t, doc, "segtst").Count("SEG"); got != 5 {
		t.Errorf("segtst has %d segments, want 5", got)
	}
	if got := net(t, doc, "arctst").Count("ARC"); got != 9 {
		t.Errorf("arctst has %d arcs, want 9", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero precision defaults", func(c *Config) { c.Precision = 0 }, true},
		{"no fan", func(c *Config) { c.FanSteps = 0 }, false},
		{"no arcs", func(c *Config) { c.ArcGrid = 0 }, false},
		{"arc grid too wide", func(c *Config) { c.ArcGrid = 11 }, false},
		{"precision too high", func(c *Config) { c.Precision = 20 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestDocumentProperties(t *testing.T) {
	doc := build(t, nil)
	for _, n := range doc.Nets {
		for i, p := range n.Primitives {
			switch p := p.(type) {
			case hyp.Arc:
				if !geom.OnCircle(p.P1, p.Center, p.R, 1e-9) || !geom.OnCircle(p.P2, p.Center, p.R, 1e-9) {
					t.Errorf("%s arc %d endpoints off circle", n.Name, i)
				}
			case hyp.Segment:
				if p.Width <= 0 {
					t.Errorf("%s segment %d width %v", n.Name, i, p.Width)
				}
			case hyp.Polygon:
				if p.Width <= 0 {
					t.Errorf("%s polygon %d width %v", n.Name, p.ID, p.Width)
				}
			case hyp.Polyvoid:
				if !n.HasPolygon(p.Ref) {
					t.Errorf("%s void %d has no polygon", n.Name, p.Ref)
				}
			case hyp.LegacyVia:
				if p.Drill < 0 {
					t.Errorf("%s legacy via drill %v", n.Name, p.Drill)
				}
			}
		}
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestRenderedFixture(t *testing.T) {
	doc := build(t, nil)
	got, err := writer.String(doc)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := writer.String(build(t, nil))
	if got != again {
		t.Error("rendering is not deterministic")
	}

	for _, line := range []string{
		"{PLANE_SEP=0.050000}",
		"  (PLANE T=0.000700 L=solder PS=0.508000)",
		"  (? REF=U1 NAME=BC548 L=component)",
		"{PADSTACK=nodrill,",
		"{NET=poly_clearance_tst PS=0.050000",
		"{NET=nesting_poly_1 PS=0.000000",
		"  (VIA X=14.000000 Y=4.000000 D=0.000000 L1=component L2=solder S1=ROUND S1X=0.500000 S1Y=0.500000)",
		"  (USEG X1=18.000000 Y1=2.000000 L1=component X2=19.000000 Y2=2.000000 L2=component Z=50 D=1e-12 R=5)",
		"  {POLYVOID ID=7 X=14.250000 Y=5.250000",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("output lacks %q", line)
		}
	}
	if !strings.HasPrefix(got, "{VERSION=2.0}\n{UNITS=METRIC LENGTH}\n{BOARD\n") || !strings.HasSuffix(got, "}\n{END}\n") {
		t.Error("unexpected document framing")
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FanSteps = -1
	if _, err := Build(cfg); err == nil {
		t.Error("Build() accepted a bad config")
	}
}
