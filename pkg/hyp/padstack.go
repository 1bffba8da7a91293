package hyp

import "fmt"

// AllLayers is the padstack layer name meaning "every copper layer"
const AllLayers = "MDEF"

// ShapeKind is the pad outline; its value is the numeric code written in
// padstack records.
type ShapeKind int

const (
	ShapeRound ShapeKind = iota
	ShapeSquare
	ShapeOblong
)

// Name returns the keyword used by pad and legacy via records
func (k ShapeKind) Name() string {
	switch k {
	case ShapeSquare:
		return "RECT"
	case ShapeOblong:
		return "OBLONG"
	default:
		return "ROUND"
	}
}

func (k ShapeKind) String() string {
	return k.Name()
}

// PadType distinguishes metal pads from antipads and thermal reliefs
type PadType int

const (
	PadMetal PadType = iota
	PadAntipad
	PadThermal
)

// Code returns the single-letter tag of the pad type, empty for metal
func (p PadType) Code() string {
	switch p {
	case PadAntipad:
		return "A"
	case PadThermal:
		return "T"
	default:
		return ""
	}
}

// PadShape is one per-layer entry of a padstack
type PadShape struct {
	Layer  string    // Layer name, or AllLayers
	Kind   ShapeKind // Outline
	Width  float64   // X size
	Height float64   // Y size
	Angle  float64   // Rotation in degrees (the record's fourth column)
	Type   PadType   // Metal unless stated
}

// Validate checks the shape dimensions
func (s PadShape) Validate() error {
	if s.Layer == "" {
		return fmt.Errorf("pad shape layer: %w", ErrEmptyName)
	}
	if err := positive("width", s.Width); err != nil {
		return fmt.Errorf("pad shape on %s: %w", s.Layer, err)
	}
	if err := positive("height", s.Height); err != nil {
		return fmt.Errorf("pad shape on %s: %w", s.Layer, err)
	}
	if err := finiteValue("angle", s.Angle); err != nil {
		return fmt.Errorf("pad shape on %s: %w", s.Layer, err)
	}
	return nil
}

// Padstack is a named, reusable pad definition referenced by vias and pins
type Padstack struct {
	Name   string
	Drill  float64 // Drill diameter, 0 when the padstack has no hole
	Shapes []PadShape
}

// Drilled reports whether the padstack carries a drill diameter
func (p Padstack) Drilled() bool {
	return p.Drill > 0
}

// Library holds padstacks in definition order
type Library struct {
	stacks []Padstack
	byName map[string]int
}

// NewLibrary creates an empty padstack library
func NewLibrary() *Library {
	return &Library{byName: make(map[string]int)}
}

// Define appends a padstack. Names must be unique within the library.
func (l *Library) Define(name string, drill float64, shapes ...PadShape) error {
	if name == "" {
		return fmt.Errorf("padstack: %w", ErrEmptyName)
	}
	if _, ok := l.byName[name]; ok {
		return fmt.Errorf("padstack %q: %w", name, ErrDuplicatePadstack)
	}
	if err := nonNegative("drill", drill); err != nil {
		return fmt.Errorf("padstack %q: %w", name, err)
	}
	if len(shapes) == 0 {
		return fmt.Errorf("padstack %q has no shapes: %w", name, ErrShapeCount)
	}
	for _, s := range shapes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("padstack %q: %w", name, err)
		}
	}

	l.byName[name] = len(l.stacks)
	l.stacks = append(l.stacks, Padstack{
		Name:   name,
		Drill:  drill,
		Shapes: append([]PadShape(nil), shapes...),
	})
	Logger().Debug("padstack defined", "name", name, "shapes", len(shapes))
	return nil
}

// Lookup retrieves a padstack by name
func (l *Library) Lookup(name string) (*Padstack, bool) {
	if l == nil {
		return nil, false
	}
	i, ok := l.byName[name]
	if !ok {
		return nil, false
	}
	return &l.stacks[i], true
}

// Padstacks returns the padstacks in definition order
func (l *Library) Padstacks() []Padstack {
	if l == nil {
		return nil
	}
	return l.stacks
}

// Len returns the number of padstacks
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.stacks)
}
