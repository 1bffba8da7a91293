package hyp

import (
	"errors"
	"math"
	"testing"
)

func TestLibraryDefine(t *testing.T) {
	lib := NewLibrary()
	round := PadShape{Layer: AllLayers, Kind: ShapeRound, Width: 0.5, Height: 0.5}

	if err := lib.Define("roundpad", 0.2, round); err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	if err := lib.Define("nodrill", 0, round); err != nil {
		t.Fatalf("Define() error = %v", err)
	}

	ps, ok := lib.Lookup("roundpad")
	if !ok {
		t.Fatal("roundpad not found")
	}
	if !ps.Drilled() || ps.Drill != 0.2 {
		t.Errorf("roundpad drill = %v, want 0.2", ps.Drill)
	}
	if ps, _ := lib.Lookup("nodrill"); ps.Drilled() {
		t.Error("nodrill should have no drill")
	}
	if _, ok := lib.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}

	names := []string{}
	for _, p := range lib.Padstacks() {
		names = append(names, p.Name)
	}
	if len(names) != 2 || names[0] != "roundpad" || names[1] != "nodrill" {
		t.Errorf("definition order = %v", names)
	}
}

func TestLibraryDefineErrors(t *testing.T) {
	ok := PadShape{Layer: AllLayers, Kind: ShapeSquare, Width: 1, Height: 1}
	tests := []struct {
		name   string
		ps     string
		drill  float64
		shapes []PadShape
		want   error
	}{
		{"duplicate", "pad", 0.2, []PadShape{ok}, ErrDuplicatePadstack},
		{"empty name", "", 0.2, []PadShape{ok}, ErrEmptyName},
		{"negative drill", "neg", -1, []PadShape{ok}, ErrNotPositive},
		{"zero width", "flat", 0.2, []PadShape{{Layer: AllLayers, Height: 1}}, ErrNotPositive},
		{"no layer", "nolayer", 0.2, []PadShape{{Width: 1, Height: 1}}, ErrEmptyName},
		{"NaN drill", "nandrill", math.NaN(), []PadShape{ok}, ErrNotPositive},
		{"NaN width", "nanpad", 0.2, []PadShape{{Layer: AllLayers, Width: math.NaN(), Height: 1}}, ErrNotPositive},
		{"infinite angle", "spun", 0.2, []PadShape{{Layer: AllLayers, Width: 1, Height: 1, Angle: math.Inf(1)}}, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := NewLibrary()
			if err := lib.Define("pad", 0.2, ok); err != nil {
				t.Fatal(err)
			}
			err := lib.Define(tt.ps, tt.drill, tt.shapes...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Define() error = %v, want %v", err, tt.want)
			}
			if lib.Len() != 1 {
				t.Errorf("Len() = %d after failed define", lib.Len())
			}
		})
	}

	if err := NewLibrary().Define("bare", 0.2); !errors.Is(err, ErrShapeCount) {
		t.Errorf("Define() without shapes error = %v, want %v", err, ErrShapeCount)
	}
}

func TestShapeCodes(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		name string
		code int
	}{
		{ShapeRound, "ROUND", 0},
		{ShapeSquare, "RECT", 1},
		{ShapeOblong, "OBLONG", 2},
	}
	for _, tt := range tests {
		if tt.kind.Name() != tt.name || int(tt.kind) != tt.code {
			t.Errorf("%v: name %q code %d, want %q %d", tt.kind, tt.kind.Name(), int(tt.kind), tt.name, tt.code)
		}
	}
	if PadMetal.Code() != "" || PadAntipad.Code() != "A" || PadThermal.Code() != "T" {
		t.Error("unexpected pad type codes")
	}
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	if lib.Len() != 0 || lib.Padstacks() != nil {
		t.Error("nil library should be empty")
	}
	if _, ok := lib.Lookup("x"); ok {
		t.Error("nil library lookup should fail")
	}
}
