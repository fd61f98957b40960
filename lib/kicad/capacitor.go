package kicad

import (
	"fmt"

	"github.com/xoviat/klib/lib/catalog"
)

func CapacitorFootprint(e *Emitter, caseCode string) (Document, error) {
	spec, err := catalog.Capacitor(caseCode)
	if err != nil {
		return Document{}, err
	}

	name := fmt.Sprintf("C_%s_%sMetric", caseCode, catalog.MetricCase[caseCode])
	descr := fmt.Sprintf(
		"Capacitor SMD %s (%s Metric), square end terminal",
		caseCode, catalog.MetricCase[caseCode])

	xs := TwoPadXs(spec.Pad.CenterX)
	sections := []string{
		e.FootprintHeaderFull(name, descr, "capacitor", "smd"),
		e.FootprintProperties(spec.RefOffsetY, name),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		e.RoundRectPad("1", XY{xs[0], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.RoundRectPad("2", XY{xs[1], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.Model3D(ModelDir, "C_"+caseCode),
	}
	return Document{Name: name, Content: AssembleFootprint(sections)}, nil
}

var capacitorProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 5.08}, Override: "C"},
	"Value":       {At: XY{0, -5.08}},
	"Footprint":   {At: XY{0, -7.62}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0, -10.16}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -12.7}, ShowName: true, Hide: true},
}

/*
	CapacitorSymbol draws the two parallel plates with a pin reaching
	each plate.
*/
func CapacitorSymbol(e *Emitter, c Component, order []string) string {
	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, capacitorProperties, XY{0, -15.24}),
		e.OpenUnit(c.Name, "0_1"),
		e.SymbolPolyline([]XY{{-0.762, -2.032}, {-0.762, 2.032}}, 0.508, "none"),
		e.SymbolPolyline([]XY{{0.762, -2.032}, {0.762, 2.032}}, 0.508, "none"),
		e.SymbolPin(Pin{At: XY{-3.81, 0}, Angle: 0, Number: "1", Length: 2.8}),
		e.SymbolPin(Pin{At: XY{3.81, 0}, Angle: 180, Number: "2", Length: 2.8}),
		e.CloseUnit(),
		e.CloseSymbol(),
	}
	return joinSections(sections)
}
