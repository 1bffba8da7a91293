package fixture

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/hyp"
	"github.com/OpenTraceLab/hypgen/pkg/hyp/writer"
)

// Config controls the generated reference board
type Config struct {
	// Pattern sizes
	FanSteps int // spokes in segtst (default: 12)
	ArcGrid  int // arcs per side in arctst (default: 8)

	// Output
	Precision int       // decimals for lengths (default: 6)
	Version   float64   // format version (default: 2.0)
	Units     hyp.Units // default: metric, thickness by length

	// NestingChain adds nesting_poly_3, a two-level polygon/void chain
	// inside a single net (default: true)
	NestingChain bool
}

// DefaultConfig returns the configuration of the reference fixture
func DefaultConfig() *Config {
	return &Config{
		FanSteps:     12,
		ArcGrid:      8,
		Precision:    writer.DefaultPrecision,
		Version:      hyp.DefaultVersion,
		NestingChain: true,
	}
}

// Validate normalises the configuration and rejects values the fixture
// cannot lay out.
func (c *Config) Validate() error {
	if c.FanSteps < 1 {
		return fmt.Errorf("fan steps %d: must be at least 1", c.FanSteps)
	}
	if c.ArcGrid < 1 {
		return fmt.Errorf("arc grid %d: must be at least 1", c.ArcGrid)
	}
	// the grid starts at x=9 with a 0.4 pitch and must stay left of viatst
	if c.ArcGrid > 10 {
		return fmt.Errorf("arc grid %d: at most 10 arcs fit beside viatst", c.ArcGrid)
	}
	if c.Version == 0 {
		c.Version = hyp.DefaultVersion
	}
	if c.Precision == 0 {
		c.Precision = writer.DefaultPrecision
	}
	return c.WriterOptions().Validate()
}

// WriterOptions returns the rendering options matching the configuration
func (c *Config) WriterOptions() writer.Options {
	return writer.Options{Precision: c.Precision}
}
