// Package fixture builds the reference board used to exercise HyperLynx
// importers: one outline with cutouts, a three-layer stackup, a padstack of
// each kind and one net per record type.
package fixture

import (
	"fmt"

	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// Build assembles the reference document. A nil cfg uses DefaultConfig.
func Build(cfg *Config) (*hyp.Document, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := hyp.Logger()

	doc := hyp.NewDocument()
	doc.Version = cfg.Version
	doc.Units = cfg.Units
	doc.PlaneSeparation = hyp.Float(0.05)

	outline, err := buildOutline(boardContours)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	doc.Outline = outline
	log.Debug("outline built", "contours", len(outline))

	doc.Stackup = Stackup()
	doc.Devices = []hyp.Device{{Ref: DeviceRef, Name: "BC548", Layer: LayerTop}}

	if err := definePadstacks(doc.Padstacks); err != nil {
		return nil, fmt.Errorf("padstacks: %w", err)
	}

	e := hyp.NewNetEmitter(doc.Padstacks)
	for _, n := range referenceNets(cfg) {
		if err := e.BeginNet(n.name, n.opts...); err != nil {
			return nil, err
		}
		if err := n.body(cfg, e); err != nil {
			return nil, fmt.Errorf("net %s: %w", n.name, err)
		}
		if err := e.EndNet(); err != nil {
			return nil, err
		}
	}
	if doc.Nets, err = e.Nets(); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("reference document: %w", err)
	}
	log.Info("reference board built", "nets", len(doc.Nets), "padstacks", doc.Padstacks.Len())
	return doc, nil
}

// Stackup returns the reference stackup: a signal layer on top, one
// dielectric and a plane at the bottom
func Stackup() []hyp.StackupLayer {
	return []hyp.StackupLayer{
		{Kind: hyp.LayerSignal, Name: LayerTop, Thickness: 0.0007},
		{Kind: hyp.LayerDielectric, Thickness: 0.002, EpsilonR: 4},
		{Kind: hyp.LayerPlane, Name: LayerBottom, Thickness: 0.0007, PlaneSeparation: hyp.Float(0.508)},
	}
}
