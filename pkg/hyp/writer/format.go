package writer

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals written for lengths
const DefaultPrecision = 6

// Options controls number rendering
type Options struct {
	Precision int // decimals for coordinates, widths, radii and thicknesses
}

// DefaultOptions returns the options used by String
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Precision < 1 || o.Precision > 12 {
		return fmt.Errorf("precision %d out of range 1..12", o.Precision)
	}
	return nil
}

// Formatter renders numbers with the fixed precision of one document.
// Every length-like field goes through Len so equal geometry always prints
// identically.
type Formatter struct {
	prec int
}

// NewFormatter creates a formatter for opts
func NewFormatter(opts Options) Formatter {
	return Formatter{prec: opts.Precision}
}

// Len renders a coordinate, width, radius, length or thickness
func (f Formatter) Len(v float64) string {
	s := strconv.FormatFloat(v, 'f', f.prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		// -0.000000
		return s[1:]
	}
	return s
}

// Value renders an electrical quantity (impedance, delay, resistance,
// dielectric constant) in shortest round-trip form, so 1e-12 stays 1e-12.
func Value(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Version renders the format version with one decimal
func Version(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Int renders an identifier or shape code
func Int(v int) string {
	return strconv.Itoa(v)
}
