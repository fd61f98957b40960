package kicad

import (
	"github.com/xoviat/klib/lib/catalog"
)

/*
	TransformerFootprint compiles the footprint for one transformer
	series: two pad columns numbered in dual-inline order with a pin-1
	dot beside the top-left pad.
*/
func TransformerFootprint(e *Emitter, series string) (Document, error) {
	spec, err := catalog.Transformer(series)
	if err != nil {
		return Document{}, err
	}

	perSide := spec.PinCount / 2
	positions := GroupedPadColumns(spec.Pad.CenterX, spec.PitchY, perSide)
	numbers := make([]string, 0, len(positions))
	for i := range positions {
		numbers = append(numbers, padNumber(i+1))
	}

	sections := []string{
		e.FootprintHeader(series),
		e.FootprintProperties(spec.RefOffsetY, series),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		e.Pin1Indicator(spec.Pad.CenterX, spec.Pad.Width, perSide, spec.PitchY),
	}
	pads, err := e.GroupedPads(positions, numbers, spec.Pad.Width, spec.Pad.Height)
	if err != nil {
		return Document{}, err
	}
	sections = append(sections, pads, e.Model3D(ModelDir, series))
	return Document{Name: series, Content: AssembleFootprint(sections)}, nil
}

var transformerProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 7.62}, Override: "T"},
	"Value":       {At: XY{0, -7.62}},
	"Footprint":   {At: XY{0, -10.16}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0.254, -12.7}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -15.24}, ShowName: true, Hide: true},
}

/*
	TransformerSymbol draws two facing windings with polarity dots and
	coupling lines. The coupling lines span the pin rows, so taller pin
	configurations stretch them automatically. The per-side pin layout
	comes from the series catalogue.
*/
func TransformerSymbol(e *Emitter, c Component, order []string) (string, error) {
	series := c.Get("Series", "")
	pins, err := catalog.TransformerPins(series)
	if err != nil {
		return "", err
	}

	configs := clonePropertySpecs(transformerProperties)
	if v := c.Get("MPN", ""); v != "" {
		value := configs["Value"]
		value.Override = v
		configs["Value"] = value
	}

	minY, maxY := pinBounds(pins)
	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, configs, XY{0, -17.78}),
		e.OpenUnit(c.Name, "0_1"),
	}
	sections = append(sections, windingArcs(e)...)
	sections = append(sections, polarityDots(e)...)
	sections = append(sections, couplingLines(e, minY, maxY)...)
	for _, p := range pins.Left {
		sections = append(sections, e.SymbolPin(Pin{
			At: XY{-7.62, p.Y}, Angle: 0, Number: p.Number,
			Type: p.Type, Length: p.Length, Hide: p.Hide,
		}))
	}
	for _, p := range pins.Right {
		sections = append(sections, e.SymbolPin(Pin{
			At: XY{7.62, p.Y}, Angle: 180, Number: p.Number,
			Type: p.Type, Length: p.Length, Hide: p.Hide,
		}))
	}
	sections = append(sections, e.CloseUnit(), e.CloseSymbol())
	return joinSections(sections), nil
}

func pinBounds(pins catalog.WindingPins) (minY, maxY float64) {
	first := true
	for _, side := range [][]catalog.SymbolPin{pins.Left, pins.Right} {
		for _, p := range side {
			if first || p.Y < minY {
				minY = p.Y
			}
			if first || p.Y > maxY {
				maxY = p.Y
			}
			first = false
		}
	}
	return minY, maxY
}
