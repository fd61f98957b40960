package kicad

import (
	"github.com/xoviat/klib/lib/catalog"
)

/*
	TransistorFootprint compiles the footprint for a power MOSFET
	package: a column of numbered gate and source pins on the left, a
	drain column sharing one electrical number on the right, and the
	heat-slug pad carrying that same number.
*/
func TransistorFootprint(e *Emitter, pkg string) (Document, error) {
	spec, err := catalog.Transistor(pkg)
	if err != nil {
		return Document{}, err
	}

	positions := GroupedPadColumns(spec.Pad.CenterX, spec.PitchY, spec.PinsPerSide)
	pads, err := e.GroupedPads(positions, spec.PadNumbers, spec.Pad.Width, spec.Pad.Height)
	if err != nil {
		return Document{}, err
	}

	sections := []string{
		e.FootprintHeader(pkg),
		e.FootprintProperties(spec.RefOffsetY, pkg),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		pads,
		e.ThermalPad(spec.ThermalNumber, XY{spec.ThermalCenterX, 0},
			spec.ThermalWidth, spec.ThermalHeight),
		e.Model3D(ModelDir, pkg),
	}
	return Document{Name: pkg, Content: AssembleFootprint(sections)}, nil
}

var transistorProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 7.62}},
	"Value":       {At: XY{0, -7.62}},
	"Footprint":   {At: XY{0, -10.16}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0, -12.7}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -15.24}, ShowName: true, Hide: true},
}

func offsetPts(pts []XY, dy float64) []XY {
	out := make([]XY, len(pts))
	for i, p := range pts {
		out[i] = XY{p.X, p.Y + dy}
	}
	return out
}

/*
	The MOS glyphs trace gate, channel segments and the body diode in a
	single self-crossing polyline, the way the upstream library symbols
	draw them. The points differ between the N and P variants because
	the body diode and the gate arrow flip.
*/
var mosGateGlyph = []XY{
	{0, -6.35}, {0, -2.54}, {-2.54, -2.54}, {2.54, -2.54}, {0, -2.54}, {0, -6.35},
}

var nmosBodyGlyph = []XY{
	{5.08, 1.27}, {5.08, 0}, {2.54, 0}, {2.54, 1.27},
	{0.508, 1.27}, {0.508, 1.778}, {-0.508, 1.27}, {-0.508, 1.778},
	{-0.508, 1.27}, {-2.54, 1.27}, {-2.54, 0}, {-5.08, 0},
	{-5.08, 1.27}, {-5.08, 0}, {-2.032, 0}, {-2.032, -2.032},
	{-2.54, -2.032}, {-1.524, -2.032}, {-2.032, -2.032}, {-2.032, 0},
	{-2.54, 0}, {-2.54, 1.27}, {-0.508, 1.27}, {-0.508, 0.762},
	{-0.508, 1.27}, {0.508, 0.762}, {0.508, 1.27}, {2.54, 1.27},
	{2.54, 0}, {0, 0}, {0, -1.016}, {-0.508, -1.016},
	{0, -2.032}, {-0.508, -2.032}, {0.508, -2.032}, {0, -2.032},
	{0.508, -1.016}, {0, -1.016}, {0, 0}, {2.032, 0},
	{2.032, -2.032}, {1.524, -2.032}, {2.54, -2.032}, {2.032, -2.032},
	{2.032, 0}, {5.08, 0}, {5.08, -3.81},
}

var pmosBodyGlyph = []XY{
	{-5.08, 1.27}, {-5.08, 0}, {-2.54, 0}, {-2.032, 0},
	{-2.032, -2.032}, {-2.54, -2.032}, {-1.524, -2.032}, {-2.032, -2.032},
	{-2.032, 0}, {-2.54, 0}, {-2.54, 1.27}, {-0.508, 1.27},
	{-0.508, 0.762}, {0.508, 1.27}, {0.508, 0.762}, {0.508, 1.27},
	{2.54, 1.27}, {2.54, 0}, {0, 0}, {-0.508, -1.016},
	{0, -1.016}, {0, -2.032}, {-0.508, -2.032}, {0.508, -2.032},
	{0, -2.032}, {0, -1.016}, {0.508, -1.016}, {0, 0},
	{2.032, 0}, {2.032, -2.032}, {1.524, -2.032}, {2.54, -2.032},
	{2.032, -2.032}, {2.032, 0}, {2.54, 0}, {5.08, 0},
	{5.08, -3.81}, {5.08, 1.27}, {5.08, 0}, {2.54, 0},
	{2.54, 1.27}, {0.508, 1.27}, {0.508, 1.778}, {0.508, 1.27},
	{-0.508, 1.778}, {-0.508, 1.27}, {-2.54, 1.27}, {-2.54, 0},
	{-5.08, 0}, {-5.08, 1.27},
}

func mosJunctionDots(e *Emitter, dy float64) []string {
	return []string{
		e.SymbolCircle(XY{-2.54, dy}, 0.0254, 0.381),
		e.SymbolCircle(XY{2.032, dy}, 0.0254, 0.381),
		e.SymbolCircle(XY{2.54, dy}, 0.0254, 0.381),
	}
}

func singleMosPins(e *Emitter, dy float64) []string {
	return []string{
		e.SymbolPin(Pin{At: XY{-7.62, 1.27 + dy}, Angle: 0, Number: "5", Name: "D"}),
		e.SymbolPin(Pin{At: XY{7.62, 1.27 + dy}, Angle: 180, Number: "1", Name: "S"}),
		e.SymbolPin(Pin{At: XY{7.62, -1.27 + dy}, Angle: 180, Number: "2", Name: "S"}),
		e.SymbolPin(Pin{At: XY{7.62, -3.81 + dy}, Angle: 180, Number: "3", Name: "S"}),
		e.SymbolPin(Pin{At: XY{2.54, -6.35 + dy}, Angle: 180, Number: "4", Name: "G"}),
	}
}

func singleMosUnit(e *Emitter, name string, body []XY, gateFill string) []string {
	sections := []string{
		e.OpenUnit(name, "1_0"),
		e.SymbolPolyline(mosGateGlyph, 0, gateFill),
		e.SymbolPolyline(body, 0, "outline"),
	}
	sections = append(sections, mosJunctionDots(e, 0)...)
	sections = append(sections, singleMosPins(e, 0)...)
	return append(sections, e.CloseUnit())
}

var dualMosGateGlyph = []XY{
	{0, -5.08}, {0, -1.27}, {-2.54, -1.27}, {2.54, -1.27}, {0, -1.27}, {0, -5.08},
}

var nmosDualBodyGlyph = []XY{
	{7.62, 2.54}, {7.62, 1.27}, {2.54, 1.27}, {2.54, 2.54},
	{0.508, 2.54}, {0.508, 3.048}, {-0.508, 2.54}, {-0.508, 3.048},
	{-0.508, 2.54}, {-2.54, 2.54}, {-2.54, 1.27}, {-7.62, 1.27},
	{-7.62, 2.54}, {-7.62, 1.27}, {-2.032, 1.27}, {-2.032, -0.762},
	{-2.54, -0.762}, {-1.524, -0.762}, {-2.032, -0.762}, {-2.032, 1.27},
	{-2.54, 1.27}, {-2.54, 2.54}, {-0.508, 2.54}, {-0.508, 2.032},
	{-0.508, 2.54}, {0.508, 2.032}, {0.508, 2.54}, {2.54, 2.54},
	{2.54, 1.27}, {0, 1.27}, {0, 0.254}, {-0.508, 0.254},
	{0, -0.762}, {-0.508, -0.762}, {0.508, -0.762}, {0, -0.762},
	{0.508, 0.254}, {0, 0.254}, {0, 1.27}, {2.032, 1.27},
	{2.032, -0.762}, {1.524, -0.762}, {2.54, -0.762}, {2.032, -0.762},
	{2.032, 1.27}, {7.62, 1.27}, {7.62, 2.54},
}

var pmosDualBodyGlyph = []XY{
	{-7.62, 2.54}, {-7.62, 1.27}, {-2.54, 1.27}, {-2.032, 1.27},
	{-2.032, -0.762}, {-2.54, -0.762}, {-1.524, -0.762}, {-2.032, -0.762},
	{-2.032, 1.27}, {-2.54, 1.27}, {-2.54, 2.54}, {-0.508, 2.54},
	{-0.508, 2.032}, {0.508, 2.54}, {0.508, 2.032}, {0.508, 2.54},
	{2.54, 2.54}, {2.54, 1.27}, {0, 1.27}, {-0.508, 0.254},
	{0, 0.254}, {0, -0.762}, {-0.508, -0.762}, {0.508, -0.762},
	{0, -0.762}, {0, 0.254}, {0.508, 0.254}, {0, 1.27},
	{2.032, 1.27}, {2.032, -0.762}, {1.524, -0.762}, {2.54, -0.762},
	{2.032, -0.762}, {2.032, 1.27}, {2.54, 1.27}, {7.62, 1.27},
	{7.62, 2.54}, {7.62, 2.54}, {7.62, 1.27}, {2.54, 1.27},
	{2.54, 2.54}, {0.508, 2.54}, {0.508, 3.048}, {0.508, 2.54},
	{-0.508, 3.048}, {-0.508, 2.54}, {-2.54, 2.54}, {-2.54, 1.27},
	{-7.62, 1.27}, {-7.62, 2.54},
}

type dualMosPin struct {
	Number string
	Name   string
}

var dualMosPinSpecs = [2][3]dualMosPin{
	{{"1", "S1"}, {"2", "G1"}, {"6", "D1"}},
	{{"3", "S2"}, {"4", "G2"}, {"5", "D2"}},
}

func dualMosUnit(e *Emitter, name, unit string, body []XY, gateFill string, pins [3]dualMosPin, dy float64) []string {
	sections := []string{
		e.OpenUnit(name, unit),
		e.SymbolPolyline(offsetPts(dualMosGateGlyph, dy), 0, gateFill),
		e.SymbolPolyline(offsetPts(body, dy), 0, "outline"),
	}
	sections = append(sections, mosJunctionDots(e, 1.27+dy)...)
	sections = append(sections,
		e.SymbolPin(Pin{At: XY{10.16, 2.54 + dy}, Angle: 180, Number: pins[0].Number, Name: pins[0].Name}),
		e.SymbolPin(Pin{At: XY{2.54, -5.08 + dy}, Angle: 180, Number: pins[1].Number, Name: pins[1].Name}),
		e.SymbolPin(Pin{At: XY{-10.16, 2.54 + dy}, Angle: 0, Number: pins[2].Number, Name: pins[2].Name}),
		e.CloseUnit(),
	)
	return sections
}

/*
	TransistorSymbol dispatches on the record's Transistor Type column:
	single and dual variants of both channel polarities. Dual packages
	render as two stacked units so each element places separately in the
	schematic.
*/
func TransistorSymbol(e *Emitter, c Component, order []string) string {
	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, transistorProperties, XY{0, -17.78}),
	}

	const dualOffset = 1.27
	switch c.Get("Transistor Type", "") {
	case "P-Channel":
		sections = append(sections, singleMosUnit(e, c.Name, pmosBodyGlyph, "outline")...)
	case "N-Channel Dual":
		sections = append(sections,
			dualMosUnit(e, c.Name, "1_0", nmosDualBodyGlyph, "none",
				dualMosPinSpecs[0], dualOffset)...)
		sections = append(sections,
			dualMosUnit(e, c.Name, "2_0", nmosDualBodyGlyph, "none",
				dualMosPinSpecs[1], dualOffset)...)
	case "P-Channel Dual":
		sections = append(sections,
			dualMosUnit(e, c.Name, "1_0", pmosDualBodyGlyph, "outline",
				dualMosPinSpecs[0], dualOffset)...)
		sections = append(sections,
			dualMosUnit(e, c.Name, "2_0", pmosDualBodyGlyph, "outline",
				dualMosPinSpecs[1], dualOffset)...)
	default:
		sections = append(sections, singleMosUnit(e, c.Name, nmosBodyGlyph, "none")...)
	}

	sections = append(sections, e.CloseSymbol())
	return joinSections(sections)
}
