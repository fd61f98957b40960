package kicad

import (
	"fmt"

	"github.com/xoviat/klib/lib/catalog"
)

const roundRectRatio = 0.25

/*
	ModelDir is the footprint-relative directory the 3D step models are
	resolved from.
*/
const ModelDir = "KiCAD_Symbol_Generator/3D_models"

/*
	Document is one generated artifact: the file stem and the full text
	content.
*/
type Document struct {
	Name    string
	Content string
}

/*
	ResistorFootprint compiles the footprint for one chip resistor case
	code, named R_<case>_<metric>Metric.
*/
func ResistorFootprint(e *Emitter, caseCode string) (Document, error) {
	spec, err := catalog.Resistor(caseCode)
	if err != nil {
		return Document{}, err
	}

	name := fmt.Sprintf("R_%s_%sMetric", caseCode, catalog.MetricCase[caseCode])
	descr := fmt.Sprintf(
		"Resistor SMD %s (%s Metric), square end terminal",
		caseCode, catalog.MetricCase[caseCode])

	xs := TwoPadXs(spec.Pad.CenterX)
	sections := []string{
		e.FootprintHeaderFull(name, descr, "resistor", "smd"),
		e.FootprintProperties(spec.RefOffsetY, name),
		e.Courtyard(spec.Body.Width, spec.Body.Height),
		e.FabRectangle(spec.Body.Width, spec.Body.Height),
		e.SilkscreenLines(spec.Body.Height, spec.Pad.CenterX, spec.Pad.Width),
		e.RoundRectPad("1", XY{xs[0], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.RoundRectPad("2", XY{xs[1], 0}, spec.Pad.Width, spec.Pad.Height, roundRectRatio),
		e.Model3D(ModelDir, "R_"+caseCode),
	}
	return Document{Name: name, Content: AssembleFootprint(sections)}, nil
}

var resistorProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 2.54}, Override: "R"},
	"Value":       {At: XY{0, -2.54}},
	"Footprint":   {At: XY{0, -5.08}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{0, -7.62}, ShowName: true, Hide: true},
	"Description": {At: XY{0, -10.16}, ShowName: true, Hide: true},
}

/*
	ResistorSymbol emits one resistor symbol block: the property stack,
	the zig-zag glyph and a pin on each end.
*/
func ResistorSymbol(e *Emitter, c Component, order []string) string {
	configs := clonePropertySpecs(resistorProperties)
	if v := c.Get("Resistance", ""); v != "" {
		value := configs["Value"]
		value.Override = v
		configs["Value"] = value
	}

	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, configs, XY{0, -12.7}),
		e.OpenUnit(c.Name, "0_1"),
		e.SymbolPolyline([]XY{{2.286, 0}, {2.54, 0}}, 0, "none"),
		e.SymbolPolyline([]XY{{-2.286, 0}, {-2.54, 0}}, 0, "none"),
		e.SymbolPolyline([]XY{
			{0.762, 0}, {1.143, 1.016}, {1.524, 0}, {1.905, -1.016}, {2.286, 0},
		}, 0, "none"),
		e.SymbolPolyline([]XY{
			{-0.762, 0}, {-0.381, 1.016}, {0, 0}, {0.381, -1.016}, {0.762, 0},
		}, 0, "none"),
		e.SymbolPolyline([]XY{
			{-2.286, 0}, {-1.905, 1.016}, {-1.524, 0}, {-1.143, -1.016}, {-0.762, 0},
		}, 0, "none"),
		e.SymbolPin(Pin{At: XY{-5.08, 0}, Angle: 0, Number: "1"}),
		e.SymbolPin(Pin{At: XY{5.08, 0}, Angle: 180, Number: "2"}),
		e.CloseUnit(),
		e.CloseSymbol(),
	}
	return joinSections(sections)
}

func clonePropertySpecs(src map[string]PropertySpec) map[string]PropertySpec {
	dst := make(map[string]PropertySpec, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
