package preview

import (
	"image/color"

	"github.com/OpenTraceLab/hypgen/pkg/hyp"
)

// Palette holds the colours of one preview
type Palette struct {
	Background color.NRGBA
	Substrate  color.NRGBA
	Outline    color.NRGBA
	Via        color.NRGBA
	Drill      color.NRGBA
	Impedance  color.NRGBA
	// Copper layers in stackup order; layers beyond the list reuse it
	Layers []color.NRGBA
}

// DefaultPalette is the classic PCB look: dark background, green
// substrate, red top copper and blue bottom copper
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 0, G: 16, B: 35, A: 255},
	Substrate:  color.NRGBA{R: 20, G: 90, B: 50, A: 255},
	Outline:    color.NRGBA{R: 208, G: 210, B: 205, A: 255},
	Via:        color.NRGBA{R: 236, G: 236, B: 236, A: 255},
	Drill:      color.NRGBA{R: 227, G: 183, B: 46, A: 255},
	Impedance:  color.NRGBA{R: 242, G: 237, B: 161, A: 255},
	Layers: []color.NRGBA{
		{R: 200, G: 52, B: 52, A: 200},   // top
		{R: 77, G: 127, B: 196, A: 200},  // bottom
		{R: 127, G: 200, B: 127, A: 200}, // inner 1
		{R: 206, G: 125, B: 44, A: 200},  // inner 2
	},
}

// layerColors assigns palette colours to the copper layers of a stackup
type layerColors struct {
	p     Palette
	index map[string]int
}

func newLayerColors(p Palette, stackup []hyp.StackupLayer) layerColors {
	lc := layerColors{p: p, index: make(map[string]int)}
	for _, l := range stackup {
		if l.Copper() {
			lc.index[l.Name] = len(lc.index)
		}
	}
	return lc
}

// of returns the colour of a layer; unknown layers get the next free slot
func (lc layerColors) of(layer string) color.NRGBA {
	if layer == hyp.AllLayers {
		return lc.p.Via
	}
	if len(lc.p.Layers) == 0 {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	i, ok := lc.index[layer]
	if !ok {
		i = len(lc.index)
		lc.index[layer] = i
	}
	return lc.p.Layers[i%len(lc.p.Layers)]
}
