package hyp

// UnitSystem selects metric or english lengths
type UnitSystem int

const (
	Metric UnitSystem = iota
	English
)

func (u UnitSystem) String() string {
	if u == English {
		return "ENGLISH"
	}
	return "METRIC"
}

// MetalThickness selects whether copper thickness is given as a length or a weight
type MetalThickness int

const (
	ThicknessLength MetalThickness = iota
	ThicknessWeight
)

func (m MetalThickness) String() string {
	if m == ThicknessWeight {
		return "WEIGHT"
	}
	return "LENGTH"
}

// Units is the {UNITS=...} header section
type Units struct {
	System    UnitSystem
	Thickness MetalThickness
}

// DataMode is the optional {DATA_MODE=...} header section
type DataMode int

const (
	DataModeUnset DataMode = iota
	DataModeSimulation
	DataModeDetailed
)

func (d DataMode) String() string {
	switch d {
	case DataModeSimulation:
		return "SIMULATION"
	case DataModeDetailed:
		return "DETAILED"
	default:
		return ""
	}
}

// DefaultVersion is the format version written when none is given
const DefaultVersion = 2.0
