package hyp

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/geom"
)

// Document is the complete board description. It is assembled once from
// the builders and then rendered; it is not mutated afterwards.
type Document struct {
	Version         float64
	DataMode        DataMode
	Units           Units
	Outline         []Contour
	PlaneSeparation *float64
	Stackup         []StackupLayer
	Devices         []Device
	Padstacks       *Library
	Nets            []NetBlock
}

// NewDocument returns an empty document at the default version
func NewDocument() *Document {
	return &Document{
		Version:   DefaultVersion,
		Padstacks: NewLibrary(),
	}
}

// Float returns a pointer to v, for the optional numeric fields
func Float(v float64) *float64 {
	return &v
}

// Device looks up a device by reference designator
func (d *Document) Device(ref string) (*Device, bool) {
	for i := range d.Devices {
		if d.Devices[i].Ref == ref {
			return &d.Devices[i], true
		}
	}
	return nil, false
}

// Net looks up a net by name
func (d *Document) Net(name string) (*NetBlock, bool) {
	for i := range d.Nets {
		if d.Nets[i].Name == name {
			return &d.Nets[i], true
		}
	}
	return nil, false
}

// Validate re-checks every document invariant: closed contours with arcs on
// their circles, unique net names and polygon ids, resolvable padstack,
// device and void references, and positive dimensions.
func (d *Document) Validate() error {
	if d == nil {
		return ErrNoDocument
	}
	if err := positive("version", d.Version); err != nil {
		return err
	}
	for i, c := range d.Outline {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("board contour %d: %w", i, err)
		}
	}
	if d.PlaneSeparation != nil {
		if err := nonNegative("plane separation", *d.PlaneSeparation); err != nil {
			return err
		}
	}
	for _, l := range d.Stackup {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("stackup: %w", err)
		}
	}
	refs := make(map[string]bool)
	for _, dev := range d.Devices {
		if dev.Ref == "" {
			return fmt.Errorf("device: %w", ErrEmptyName)
		}
		refs[dev.Ref] = true
	}
	for _, ps := range d.Padstacks.Padstacks() {
		if err := nonNegative("drill", ps.Drill); err != nil {
			return fmt.Errorf("padstack %q: %w", ps.Name, err)
		}
		for _, s := range ps.Shapes {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("padstack %q: %w", ps.Name, err)
			}
		}
	}

	names := make(map[string]bool)
	ids := make(map[PolyID]string)
	for _, n := range d.Nets {
		if names[n.Name] {
			return fmt.Errorf("net %q: %w", n.Name, ErrDuplicateNet)
		}
		names[n.Name] = true
		if err := d.validateNet(n, refs, ids); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) validateNet(n NetBlock, devices map[string]bool, ids map[PolyID]string) error {
	if err := n.checkPlaneSeparation(); err != nil {
		return err
	}
	defined := make(map[PolyID]bool)
	for i, p := range n.Primitives {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("net %q primitive %d: %w", n.Name, i, err)
		}
		switch p := p.(type) {
		case Via:
			if _, ok := d.Padstacks.Lookup(p.Padstack); !ok {
				return fmt.Errorf("net %q via padstack %q: %w", n.Name, p.Padstack, ErrUnknownPadstack)
			}
		case Pin:
			if _, ok := d.Padstacks.Lookup(p.Padstack); !ok {
				return fmt.Errorf("net %q pin padstack %q: %w", n.Name, p.Padstack, ErrUnknownPadstack)
			}
			if !devices[p.Device()] {
				return fmt.Errorf("net %q pin %q: %w", n.Name, p.Ref, ErrUnknownDevice)
			}
		case Polygon:
			if owner, ok := ids[p.ID]; ok {
				return fmt.Errorf("net %q polygon %d already in %q: %w", n.Name, p.ID, owner, ErrDuplicatePolygon)
			}
			ids[p.ID] = n.Name
			defined[p.ID] = true
		case Polyvoid:
			if !defined[p.Ref] {
				return fmt.Errorf("net %q void of %d: %w", n.Name, p.Ref, ErrUnknownPolygon)
			}
		}
	}
	return nil
}

// Stats counts the records of a document
type Stats struct {
	Contours   int
	Edges      int
	Padstacks  int
	Nets       int
	Primitives map[string]int // by keyword
}

// Stats returns record counts
func (d *Document) Stats() Stats {
	s := Stats{
		Contours:   len(d.Outline),
		Padstacks:  d.Padstacks.Len(),
		Nets:       len(d.Nets),
		Primitives: make(map[string]int),
	}
	for _, c := range d.Outline {
		s.Edges += len(c.Edges)
	}
	for _, n := range d.Nets {
		for _, p := range n.Primitives {
			s.Primitives[p.Keyword()]++
		}
	}
	return s
}

// Bounds returns the bounding box of the outline and every net primitive
func (d *Document) Bounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, c := range d.Outline {
		for _, e := range c.Edges {
			if a, ok := e.(PerimeterArc); ok {
				bb.ExpandCircle(a.Center, a.R)
				continue
			}
			bb.Expand(e.Start())
			bb.Expand(e.End())
		}
	}
	for _, n := range d.Nets {
		for _, p := range n.Primitives {
			expandPrimitive(&bb, p)
		}
	}
	return bb
}

func expandPrimitive(bb *geom.BoundingBox, p Primitive) {
	switch p := p.(type) {
	case Segment:
		bb.Expand(p.P1)
		bb.Expand(p.P2)
	case Arc:
		bb.ExpandCircle(p.Center, p.R)
	case Via:
		bb.Expand(p.At)
	case LegacyVia:
		bb.Expand(p.At)
	case Pin:
		bb.Expand(p.At)
	case Pad:
		bb.ExpandCircle(p.At, max(p.Width, p.Height)/2)
	case ImpedanceSegment:
		bb.Expand(p.P1)
		bb.Expand(p.P2)
	case Polygon:
		expandPath(bb, p.Path)
	case Polyvoid:
		expandPath(bb, p.Path)
	case Polyline:
		expandPath(bb, p.Path)
	}
}

func expandPath(bb *geom.BoundingBox, path Path) {
	for _, pt := range path.Points() {
		bb.Expand(pt)
	}
	for _, e := range path.Edges {
		if c, ok := e.(Curve); ok {
			bb.ExpandCircle(c.Center, c.R)
		}
	}
}
