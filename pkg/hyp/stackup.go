package hyp

import "fmt"

// LayerKind is the stackup record type
type LayerKind int

const (
	LayerSignal LayerKind = iota
	LayerDielectric
	LayerPlane
)

func (k LayerKind) String() string {
	switch k {
	case LayerDielectric:
		return "DIELECTRIC"
	case LayerPlane:
		return "PLANE"
	default:
		return "SIGNAL"
	}
}

// StackupLayer is one record of the STACKUP section
type StackupLayer struct {
	Kind            LayerKind
	Name            string   // L=, required for signal and plane layers
	Thickness       float64  // T=
	EpsilonR        float64  // C=, dielectric constant, 0 when not given
	LossTangent     float64  // LT=, 0 when not given
	Material        string   // M=, optional
	PlaneSeparation *float64 // PS=, optional
}

// Copper reports whether the layer carries copper
func (l StackupLayer) Copper() bool {
	return l.Kind != LayerDielectric
}

// Validate checks the layer record
func (l StackupLayer) Validate() error {
	if err := positive("thickness", l.Thickness); err != nil {
		return fmt.Errorf("%s layer %q: %w", l.Kind, l.Name, err)
	}
	if l.Copper() && l.Name == "" {
		return fmt.Errorf("%s layer: %w", l.Kind, ErrEmptyName)
	}
	if err := nonNegative("dielectric constant", l.EpsilonR); err != nil {
		return fmt.Errorf("%s layer %q: %w", l.Kind, l.Name, err)
	}
	if err := nonNegative("loss tangent", l.LossTangent); err != nil {
		return fmt.Errorf("%s layer %q: %w", l.Kind, l.Name, err)
	}
	if l.PlaneSeparation != nil {
		if err := nonNegative("plane separation", *l.PlaneSeparation); err != nil {
			return fmt.Errorf("%s layer %q: %w", l.Kind, l.Name, err)
		}
	}
	return nil
}

// Device is one record of the DEVICES section
type Device struct {
	Type    string // device type code, "?" when unknown
	Ref     string // reference designator, e.g. U1
	Name    string
	Value   string // optional
	Package string // optional
	Layer   string
}

// TypeCode returns the device type, defaulting to "?"
func (d Device) TypeCode() string {
	if d.Type == "" {
		return "?"
	}
	return d.Type
}
