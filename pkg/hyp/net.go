package hyp

import "fmt"

// NetBlock is the ordered set of primitives belonging to one named net
type NetBlock struct {
	Name            string
	PlaneSeparation *float64 // per-net override, nil when inherited
	Primitives      []Primitive

	polygons map[PolyID]bool
	parents  map[PolyID]PolyID
}

// HasPolygon reports whether the net defines polygon id
func (n NetBlock) HasPolygon(id PolyID) bool {
	return n.polygons[id]
}

// Chain returns the nesting chain of polygon id, outermost polygon first and
// id itself last. A polygon opened inside another polygon's void is nested
// in it. Unknown ids return nil.
func (n NetBlock) Chain(id PolyID) []PolyID {
	if !n.polygons[id] {
		return nil
	}
	chain := []PolyID{id}
	for {
		parent, ok := n.parents[chain[0]]
		if !ok {
			return chain
		}
		chain = append([]PolyID{parent}, chain...)
	}
}

func (n NetBlock) checkPlaneSeparation() error {
	if n.PlaneSeparation == nil {
		return nil
	}
	if err := nonNegative("plane separation", *n.PlaneSeparation); err != nil {
		return fmt.Errorf("net %q: %w", n.Name, err)
	}
	return nil
}

// Count returns how many primitives carry the given keyword
func (n NetBlock) Count(keyword string) int {
	var c int
	for _, p := range n.Primitives {
		if p.Keyword() == keyword {
			c++
		}
	}
	return c
}

// NetOption configures a net when it is opened
type NetOption func(*NetBlock)

// WithPlaneSeparation overrides the document plane separation for one net
func WithPlaneSeparation(ps float64) NetOption {
	return func(n *NetBlock) {
		n.PlaneSeparation = &ps
	}
}

// NetEmitter builds net blocks one at a time, checking padstack references,
// net name uniqueness and polygon/void nesting as primitives arrive.
type NetEmitter struct {
	lib      *Library
	nets     []NetBlock
	names    map[string]bool
	polygons map[PolyID]string // polygon id -> owning net

	open  *NetBlock
	stack []PolyID // polygons opened with OpenPolygon, innermost last
}

// NewNetEmitter creates an emitter resolving padstacks against lib
func NewNetEmitter(lib *Library) *NetEmitter {
	return &NetEmitter{
		lib:      lib,
		names:    make(map[string]bool),
		polygons: make(map[PolyID]string),
	}
}

// BeginNet opens a new net block
func (e *NetEmitter) BeginNet(name string, opts ...NetOption) error {
	if e.open != nil {
		return fmt.Errorf("begin %q while %q is open: %w", name, e.open.Name, ErrNetOpen)
	}
	if name == "" {
		return fmt.Errorf("net: %w", ErrEmptyName)
	}
	if e.names[name] {
		return fmt.Errorf("net %q: %w", name, ErrDuplicateNet)
	}

	n := &NetBlock{
		Name:     name,
		polygons: make(map[PolyID]bool),
		parents:  make(map[PolyID]PolyID),
	}
	for _, opt := range opts {
		opt(n)
	}
	if err := n.checkPlaneSeparation(); err != nil {
		return err
	}

	e.names[name] = true
	e.open = n
	return nil
}

// Emit appends a primitive to the open net
func (e *NetEmitter) Emit(p Primitive) error {
	if e.open == nil {
		return fmt.Errorf("emit %s: %w", p.Keyword(), ErrNoOpenNet)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("net %q: %w", e.open.Name, err)
	}

	switch p := p.(type) {
	case Via:
		if err := e.checkPadstack(p.Padstack); err != nil {
			return err
		}
	case Pin:
		if err := e.checkPadstack(p.Padstack); err != nil {
			return err
		}
	case Polygon:
		if owner, ok := e.polygons[p.ID]; ok {
			return fmt.Errorf("net %q polygon %d already defined in %q: %w", e.open.Name, p.ID, owner, ErrDuplicatePolygon)
		}
		e.polygons[p.ID] = e.open.Name
		e.open.polygons[p.ID] = true
		if len(e.stack) > 0 {
			e.open.parents[p.ID] = e.stack[len(e.stack)-1]
		}
	case Polyvoid:
		if !e.open.polygons[p.Ref] {
			return fmt.Errorf("net %q void of %d: %w", e.open.Name, p.Ref, ErrUnknownPolygon)
		}
	}

	e.open.Primitives = append(e.open.Primitives, p)
	return nil
}

// EmitAll appends primitives in order, stopping at the first failure
func (e *NetEmitter) EmitAll(ps ...Primitive) error {
	for _, p := range ps {
		if err := e.Emit(p); err != nil {
			return err
		}
	}
	return nil
}

// EmitEach appends a slice of concrete primitives, as returned by the
// pattern builders
func EmitEach[T Primitive](e *NetEmitter, ps []T) error {
	for _, p := range ps {
		if err := e.Emit(p); err != nil {
			return err
		}
	}
	return nil
}

func (e *NetEmitter) checkPadstack(name string) error {
	if _, ok := e.lib.Lookup(name); !ok {
		return fmt.Errorf("net %q padstack %q: %w", e.open.Name, name, ErrUnknownPadstack)
	}
	return nil
}

// OpenPolygon emits p and makes it the innermost open polygon: voids emitted
// with Void cut it, and polygons opened before ClosePolygon are islands
// nested inside it.
func (e *NetEmitter) OpenPolygon(p Polygon) error {
	if err := e.Emit(p); err != nil {
		return err
	}
	e.stack = append(e.stack, p.ID)
	return nil
}

// Void emits a polyvoid cutting the innermost open polygon
func (e *NetEmitter) Void(path Path) error {
	if len(e.stack) == 0 {
		return ErrNoOpenPolygon
	}
	return e.Emit(VoidFor(e.stack[len(e.stack)-1], path))
}

// ClosePolygon closes the innermost open polygon
func (e *NetEmitter) ClosePolygon() error {
	if len(e.stack) == 0 {
		return ErrNoOpenPolygon
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// Depth returns the number of open polygons
func (e *NetEmitter) Depth() int {
	return len(e.stack)
}

// EndNet closes the open net
func (e *NetEmitter) EndNet() error {
	if e.open == nil {
		return ErrNoOpenNet
	}
	if len(e.stack) > 0 {
		return fmt.Errorf("net %q has %d open polygons: %w", e.open.Name, len(e.stack), ErrPolygonOpen)
	}
	e.nets = append(e.nets, *e.open)
	Logger().Debug("net emitted", "name", e.open.Name, "primitives", len(e.open.Primitives))
	e.open = nil
	return nil
}

// Nets returns the closed nets in creation order. It fails while a net is open.
func (e *NetEmitter) Nets() ([]NetBlock, error) {
	if e.open != nil {
		return nil, fmt.Errorf("net %q: %w", e.open.Name, ErrNetOpen)
	}
	return e.nets, nil
}
