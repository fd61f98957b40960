package kicad

import (
	"github.com/xoviat/klib/lib/catalog"
)

/*
	InductorFootprint compiles the footprint for one power inductor
	series. The artifact is named after the series itself.
*/
func InductorFootprint(e *Emitter, series string) (Document, error) {
	spec, err := catalog.Inductor(series)
	if err != nil {
		return Document{}, err
	}

	xs := TwoPadXs(spec.Pad.CenterX)
	sections := []string{
		e.FootprintHeader(series),
		e.FootprintProperties(spec.RefOffsetY, series),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		e.RoundRectPad("1", XY{xs[0], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.RoundRectPad("2", XY{xs[1], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.Model3D(ModelDir, series),
	}
	return Document{Name: series, Content: AssembleFootprint(sections)}, nil
}

var inductorProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 2.54}, Override: "L"},
	"Value":       {At: XY{0, -2.54}},
	"Footprint":   {At: XY{0, -5.08}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0.254, -7.62}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -10.16}, ShowName: true, Hide: true},
}

func inductorArcs(e *Emitter) []string {
	params := [][3]float64{
		{-2.54, -3.81, -5.08},
		{0, -1.27, -2.54},
		{2.54, 1.27, 0},
		{5.08, 3.81, 2.54},
	}
	arcs := make([]string, 0, len(params))
	for _, p := range params {
		arcs = append(arcs, e.SymbolArc(
			XY{p[0], 0.0056}, XY{p[1], 1.27}, XY{p[2], 0.0056}, 0.2032))
	}
	return arcs
}

func InductorSymbol(e *Emitter, c Component, order []string) string {
	configs := clonePropertySpecs(inductorProperties)
	if v := c.Get("Inductance", ""); v != "" {
		value := configs["Value"]
		value.Override = v
		configs["Value"] = value
	}

	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, configs, XY{0, -12.7}),
		e.OpenUnit(c.Name, "1_1"),
	}
	sections = append(sections, inductorArcs(e)...)
	sections = append(sections,
		e.SymbolPin(Pin{At: XY{-7.62, 0}, Angle: 0, Number: "1"}),
		e.SymbolPin(Pin{At: XY{7.62, 0}, Angle: 180, Number: "2"}),
		e.CloseUnit(),
		e.CloseSymbol(),
	)
	return joinSections(sections)
}

/*
	CoupledInductorFootprint places the four pads of a dual-winding
	inductor at the corners of the pad grid with a pin-1 dot beside the
	top-left pad.
*/
func CoupledInductorFootprint(e *Emitter, series string) (Document, error) {
	spec, err := catalog.CoupledInductor(series)
	if err != nil {
		return Document{}, err
	}

	positions := QuadPadPositions(spec.Pad.CenterX, spec.PitchY)
	sections := []string{
		e.FootprintHeader(series),
		e.FootprintProperties(spec.RefOffsetY, series),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		e.Pin1Indicator(spec.Pad.CenterX, spec.Pad.Width, 2, spec.PitchY),
	}
	for i, at := range positions {
		sections = append(sections,
			e.SMDPad(padNumber(i+1), at, spec.Pad.Width, spec.Pad.Height))
	}
	sections = append(sections, e.Model3D(ModelDir, series))
	return Document{Name: series, Content: AssembleFootprint(sections)}, nil
}

var coupledInductorProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 2.54}, Override: "L"},
	"Value":       {At: XY{0, -2.54}},
	"Footprint":   {At: XY{0, -7.62}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0.254, -10.16}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -12.7}, ShowName: true, Hide: true},
}

/*
	windingArcs draws the two facing winding glyphs: four arcs climbing
	the left side, four descending the right.
*/
func windingArcs(e *Emitter) []string {
	arcs := make([]string, 0, 8)
	for i := 0; i < 4; i++ {
		step := float64(i) * 2.54
		arcs = append(arcs, e.SymbolArc(
			XY{-2.54, -5.08 + step}, XY{-1.27, -3.81 + step}, XY{-2.54, -2.54 + step}, 0))
	}
	for i := 0; i < 4; i++ {
		step := float64(i) * 2.54
		arcs = append(arcs, e.SymbolArc(
			XY{2.54, 5.08 - step}, XY{1.27, 3.81 - step}, XY{2.54, 2.54 - step}, 0))
	}
	return arcs
}

func polarityDots(e *Emitter) []string {
	return []string{
		e.SymbolCircle(XY{-2.54, 3.81}, 0.508, 0),
		e.SymbolCircle(XY{2.54, -3.81}, 0.508, 0),
	}
}

func couplingLines(e *Emitter, minY, maxY float64) []string {
	return []string{
		e.SymbolPolyline([]XY{{-0.254, maxY}, {-0.254, minY}}, 0, "none"),
		e.SymbolPolyline([]XY{{0.254, maxY}, {0.254, minY}}, 0, "none"),
	}
}

func CoupledInductorSymbol(e *Emitter, c Component, order []string) string {
	configs := clonePropertySpecs(coupledInductorProperties)
	if v := c.Get("Inductance", ""); v != "" {
		value := configs["Value"]
		value.Override = v
		configs["Value"] = value
	}

	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, configs, XY{0, -15.24}),
		e.OpenUnit(c.Name, "1_1"),
	}
	sections = append(sections, windingArcs(e)...)
	sections = append(sections, polarityDots(e)...)
	sections = append(sections, couplingLines(e, -5.08, 5.08)...)
	sections = append(sections,
		e.SymbolPin(Pin{At: XY{-7.62, 5.08}, Angle: 0, Number: "1"}),
		e.SymbolPin(Pin{At: XY{7.62, 5.08}, Angle: 180, Number: "4"}),
		e.SymbolPin(Pin{At: XY{-7.62, -5.08}, Angle: 0, Number: "3"}),
		e.SymbolPin(Pin{At: XY{7.62, -5.08}, Angle: 180, Number: "2"}),
		e.CloseUnit(),
		e.CloseSymbol(),
	)
	return joinSections(sections)
}
