package hyp

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
)

// Primitive is one record (or polygon block) of a net
type Primitive interface {
	// Keyword is the record name written to the document
	Keyword() string
	Validate() error
}

// positive rejects zero, negative, NaN and infinite sizes
func positive(what string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %g: %w", what, v, ErrNotPositive)
	}
	return nil
}

// nonNegative is positive with zero allowed
func nonNegative(what string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %g: %w", what, v, ErrNotPositive)
	}
	return nil
}

func finiteValue(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %g: %w", what, v, ErrNotFinite)
	}
	return nil
}

func finite(what string, pts ...geom.Point) error {
	for _, p := range pts {
		if !p.Finite() {
			return fmt.Errorf("%s %v: %w", what, p, ErrNotFinite)
		}
	}
	return nil
}

func named(what, v string) error {
	if v == "" {
		return fmt.Errorf("%s: %w", what, ErrEmptyName)
	}
	return nil
}

// Segment is a straight trace
type Segment struct {
	P1, P2 geom.Point
	Width  float64
	Layer  string
}

func (Segment) Keyword() string { return "SEG" }

func (s Segment) Validate() error {
	if err := finite("segment end", s.P1, s.P2); err != nil {
		return err
	}
	if err := positive("segment width", s.Width); err != nil {
		return err
	}
	return named("segment layer", s.Layer)
}

// Arc is a curved trace running counter-clockwise from P1 to P2
type Arc struct {
	P1, P2 geom.Point
	Center geom.Point
	R      float64
	Width  float64
	Layer  string
}

func (Arc) Keyword() string { return "ARC" }

func (a Arc) Validate() error {
	if err := checkArc(a.P1, a.P2, a.Center, a.R); err != nil {
		return err
	}
	if err := positive("arc width", a.Width); err != nil {
		return err
	}
	return named("arc layer", a.Layer)
}

// Via is a via placed with a padstack reference
type Via struct {
	At       geom.Point
	Padstack string
}

func (Via) Keyword() string { return "VIA" }

func (v Via) Validate() error {
	if err := finite("via position", v.At); err != nil {
		return err
	}
	return named("via padstack", v.Padstack)
}

// ViaShape is one explicit pad of a legacy via
type ViaShape struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Angle  float64
}

// LegacyVia is the version 1 via record carrying its own drill, layer span
// and pad shapes instead of a padstack reference. A zero drill is allowed.
type LegacyVia struct {
	At     geom.Point
	Drill  float64
	Layer1 string
	Layer2 string // optional
	Shapes []ViaShape
}

func (LegacyVia) Keyword() string { return "VIA" }

func (v LegacyVia) Validate() error {
	if err := finite("legacy via position", v.At); err != nil {
		return err
	}
	if err := nonNegative("legacy via drill", v.Drill); err != nil {
		return err
	}
	if err := named("legacy via layer", v.Layer1); err != nil {
		return err
	}
	if len(v.Shapes) == 0 || len(v.Shapes) > 2 {
		return fmt.Errorf("legacy via at %v has %d shapes, want 1 or 2: %w", v.At, len(v.Shapes), ErrShapeCount)
	}
	for _, s := range v.Shapes {
		if err := positive("legacy via shape width", s.Width); err != nil {
			return err
		}
		if err := positive("legacy via shape height", s.Height); err != nil {
			return err
		}
		if err := finiteValue("legacy via shape angle", s.Angle); err != nil {
			return err
		}
	}
	return nil
}

// PinFunction is the optional simulation direction of a pin
type PinFunction int

const (
	PinFunctionUnset PinFunction = iota
	PinSimIn
	PinSimOut
	PinSimBoth
)

func (f PinFunction) String() string {
	switch f {
	case PinSimIn:
		return "SIM_IN"
	case PinSimOut:
		return "SIM_OUT"
	case PinSimBoth:
		return "SIM_BOTH"
	default:
		return ""
	}
}

// Pin is a device pin, referenced as DEVICE.PIN
type Pin struct {
	At       geom.Point
	Ref      string
	Padstack string
	Function PinFunction
}

func (Pin) Keyword() string { return "PIN" }

// Device returns the device designator part of the reference
func (p Pin) Device() string {
	dev, _, _ := strings.Cut(p.Ref, ".")
	return dev
}

func (p Pin) Validate() error {
	if err := finite("pin position", p.At); err != nil {
		return err
	}
	dev, num, ok := strings.Cut(p.Ref, ".")
	if !ok || dev == "" || num == "" {
		return fmt.Errorf("pin %q: %w", p.Ref, ErrPinRef)
	}
	return named("pin padstack", p.Padstack)
}

// Pad is a bare pad on one layer
type Pad struct {
	At     geom.Point
	Layer  string
	Shape  ShapeKind
	Width  float64
	Height float64
	Angle  float64
}

func (Pad) Keyword() string { return "PAD" }

func (p Pad) Validate() error {
	if err := finite("pad position", p.At); err != nil {
		return err
	}
	if err := positive("pad width", p.Width); err != nil {
		return err
	}
	if err := positive("pad height", p.Height); err != nil {
		return err
	}
	if err := finiteValue("pad angle", p.Angle); err != nil {
		return err
	}
	return named("pad layer", p.Layer)
}

// TraceGeometry describes a controlled-impedance segment by its routing
type TraceGeometry struct {
	Layer  string
	Width  float64
	Length float64
}

// ImpedanceTarget describes a controlled-impedance segment electrically
type ImpedanceTarget struct {
	Impedance  float64 // ohms
	Delay      float64 // seconds
	Resistance float64 // ohms
}

// ImpedanceSegment is a USEG record. Exactly one of Geometry and Target is set.
type ImpedanceSegment struct {
	P1       geom.Point
	Layer1   string
	P2       geom.Point
	Layer2   string
	Geometry *TraceGeometry
	Target   *ImpedanceTarget
}

func (ImpedanceSegment) Keyword() string { return "USEG" }

func (u ImpedanceSegment) Validate() error {
	if err := finite("useg end", u.P1, u.P2); err != nil {
		return err
	}
	if err := named("useg layer 1", u.Layer1); err != nil {
		return err
	}
	if err := named("useg layer 2", u.Layer2); err != nil {
		return err
	}
	switch {
	case (u.Geometry == nil) == (u.Target == nil):
		return ErrImpedanceSpec
	case u.Geometry != nil:
		if err := named("useg trace layer", u.Geometry.Layer); err != nil {
			return err
		}
		if err := positive("useg trace width", u.Geometry.Width); err != nil {
			return err
		}
		return positive("useg trace length", u.Geometry.Length)
	default:
		if err := positive("useg impedance", u.Target.Impedance); err != nil {
			return err
		}
		if err := positive("useg delay", u.Target.Delay); err != nil {
			return err
		}
		return positive("useg resistance", u.Target.Resistance)
	}
}

// PolyID identifies a polygon; voids reference the polygon they cut
type PolyID int

// PolygonType is the optional fill type tag of a polygon
type PolygonType int

const (
	PolygonUntyped PolygonType = iota
	PolygonPour
	PolygonPlane
	PolygonCopper
	PolygonPad
	PolygonAntipad
)

func (t PolygonType) String() string {
	switch t {
	case PolygonPour:
		return "POUR"
	case PolygonPlane:
		return "PLANE"
	case PolygonCopper:
		return "COPPER"
	case PolygonPad:
		return "PAD"
	case PolygonAntipad:
		return "ANTIPAD"
	default:
		return ""
	}
}

// Polygon is a filled copper region bounded by a closed path
type Polygon struct {
	ID    PolyID
	Layer string
	Width float64
	Type  PolygonType
	Path  Path
}

func (Polygon) Keyword() string { return "POLYGON" }

func (p Polygon) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("polygon id %d: %w", p.ID, ErrNotPositive)
	}
	if err := named("polygon layer", p.Layer); err != nil {
		return err
	}
	if err := positive("polygon width", p.Width); err != nil {
		return err
	}
	if err := p.Path.Validate(true); err != nil {
		return fmt.Errorf("polygon %d: %w", p.ID, err)
	}
	return nil
}

// Polyvoid is a closed cutout subtracted from the polygon Ref
type Polyvoid struct {
	Ref  PolyID
	Path Path
}

func (Polyvoid) Keyword() string { return "POLYVOID" }

func (v Polyvoid) Validate() error {
	if v.Ref <= 0 {
		return fmt.Errorf("polyvoid id %d: %w", v.Ref, ErrNotPositive)
	}
	if err := v.Path.Validate(true); err != nil {
		return fmt.Errorf("polyvoid %d: %w", v.Ref, err)
	}
	return nil
}

// Polyline is an open path of lines and curves drawn with a pen width
type Polyline struct {
	ID    PolyID
	Layer string
	Width float64
	Path  Path
}

func (Polyline) Keyword() string { return "POLYLINE" }

func (p Polyline) Validate() error {
	if err := named("polyline layer", p.Layer); err != nil {
		return err
	}
	if err := positive("polyline width", p.Width); err != nil {
		return err
	}
	if err := p.Path.Validate(false); err != nil {
		return fmt.Errorf("polyline %d: %w", p.ID, err)
	}
	return nil
}
