package kicad

import (
	"github.com/xoviat/klib/lib/catalog"
)

/*
	DiodeFootprint compiles the footprint for one discrete diode
	package. Pad 1 is the cathode at -center_x; the silkscreen and
	fabrication layers both carry a cathode bar on that side. Packages
	with a heat slug get a centered thermal pad numbered 3.
*/
func DiodeFootprint(e *Emitter, pkg string) (Document, error) {
	spec, err := catalog.Diode(pkg)
	if err != nil {
		return Document{}, err
	}

	halfWidth := spec.Body.Width / 2
	halfHeight := spec.Body.Height / 2
	silkX := spec.Pad.CenterX - spec.Pad.Width/2
	xs := TwoPadXs(spec.Pad.CenterX)

	sections := []string{
		e.FootprintHeaderFull(pkg, "", "diode", "smd"),
		e.FootprintProperties(spec.RefOffsetY, pkg),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		// Cathode bar beside pad 1.
		e.FPLine(XY{-silkX, -halfHeight}, XY{-silkX, halfHeight}, 0.254, "F.SilkS"),
		e.FPLine(XY{-halfWidth, -halfHeight}, XY{-halfWidth, halfHeight}, fabStroke, "F.Fab"),
		e.SMDPad("1", XY{xs[0], 0}, spec.Pad.Width, spec.Pad.Height),
		e.SMDPad("2", XY{xs[1], 0}, spec.Pad.Width, spec.Pad.Height),
	}
	if spec.HasThermalPad && spec.ThermalWidth > 0 {
		sections = append(sections,
			e.ThermalPad("3", XY{0, 0}, spec.ThermalWidth, spec.ThermalHeight))
	}
	sections = append(sections, e.Model3D(ModelDir, pkg))
	return Document{Name: pkg, Content: AssembleFootprint(sections)}, nil
}

var diodeProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 5.08}, Override: "D"},
	"Value":       {At: XY{0, -5.08}, ShowName: true, Hide: true},
	"Footprint":   {At: XY{0, -7.62}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0, -10.16}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -12.7}, ShowName: true, Hide: true},
}

var schottkyGlyph = []XY{
	{0.635, 1.27}, {0.635, 1.905}, {1.27, 1.905}, {1.27, 0},
	{-1.27, 1.905}, {-1.27, -1.905}, {1.27, 0},
	{1.27, -1.905}, {1.905, -1.905}, {1.905, -1.27},
}

var zenerGlyph = []XY{
	{0.635, 1.905}, {1.27, 1.27}, {1.27, 0},
	{-1.27, 1.905}, {-1.27, -1.905}, {1.27, 0},
	{1.27, -1.27}, {1.905, -1.905},
}

/*
	DiodeSymbol draws the triangle-and-bar glyph. The bar hooks mark the
	diode kind: zener bends both ends inward, everything else gets the
	schottky S hooks. Pin 1 is the cathode and enters from the right.
*/
func DiodeSymbol(e *Emitter, c Component, order []string) string {
	glyph := schottkyGlyph
	if c.Get("Diode Type", "") == "Zener" {
		glyph = zenerGlyph
	}

	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, diodeProperties, XY{0, -15.24}),
		e.OpenUnit(c.Name, "1_0"),
		e.SymbolPolyline(glyph, 0.2032, "none"),
		e.SymbolPin(Pin{At: XY{5.08, 0}, Angle: 180, Number: "1", Length: 3.81}),
		e.SymbolPin(Pin{At: XY{-5.08, 0}, Angle: 0, Number: "2", Length: 3.81}),
		e.CloseUnit(),
		e.CloseSymbol(),
	}
	return joinSections(sections)
}
