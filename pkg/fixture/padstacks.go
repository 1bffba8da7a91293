package fixture

import "github.com/OpenTraceLab/hypgen/pkg/hyp"

// Padstack names used by the reference nets
const (
	RoundPad  = "roundpad"
	SquarePad = "squarepad"
	OblongPad = "oblongpad"
	NoDrill   = "nodrill"
	SMDPad    = "0802pad"
)

func definePadstacks(lib *hyp.Library) error {
	defs := []struct {
		name  string
		drill float64
		shape hyp.PadShape
	}{
		{RoundPad, 0.2, hyp.PadShape{Layer: hyp.AllLayers, Kind: hyp.ShapeRound, Width: 0.5, Height: 0.5}},
		{SquarePad, 0.2, hyp.PadShape{Layer: hyp.AllLayers, Kind: hyp.ShapeSquare, Width: 0.5, Height: 0.5}},
		{OblongPad, 0.2, hyp.PadShape{Layer: hyp.AllLayers, Kind: hyp.ShapeOblong, Width: 0.75, Height: 0.5}},
		{NoDrill, 0, hyp.PadShape{Layer: hyp.AllLayers, Kind: hyp.ShapeRound, Width: 0.5, Height: 0.5}},
		{SMDPad, 0, hyp.PadShape{Layer: LayerTop, Kind: hyp.ShapeSquare, Width: 0.2, Height: 0.12}},
	}
	for _, d := range defs {
		if err := lib.Define(d.name, d.drill, d.shape); err != nil {
			return err
		}
	}
	return nil
}
