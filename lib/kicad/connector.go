package kicad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xoviat/klib/lib/catalog"
)

/*
	Terminal block connectors stretch with their pin count: the stored
	series dimensions describe the two-pin variant and every additional
	pin widens the body by one pitch. Pads are through-hole, pin 1 gets
	the rectangular pad and a filled silkscreen dot beside the body.
*/

type connectorDimensions struct {
	HalfWidthLeft  float64
	HalfWidthRight float64
	TotalLength    float64
	StartX         float64
}

func connectorLayout(spec catalog.ConnectorSpec, pinCount int) connectorDimensions {
	extraPerSide := float64(pinCount-2) * spec.Pitch / 2
	totalLength := float64(pinCount-1) * spec.Pitch
	return connectorDimensions{
		HalfWidthLeft:  spec.WidthLeft + extraPerSide,
		HalfWidthRight: spec.WidthRight + extraPerSide,
		TotalLength:    totalLength,
		StartX:         -totalLength / 2,
	}
}

func hiddenConnectorFontProps() string {
	return "        (effects\n" +
		"            (font (size 1.27 1.27) (thickness 0.15))\n" +
		"        )"
}

/*
	Connector text properties differ from the shared layout: the value
	sits on its own offset rather than mirroring the reference, and the
	hidden bookkeeping properties anchor at pin 1 instead of the origin.
*/
func (e *Emitter) connectorProperties(mpn string, spec catalog.ConnectorSpec, dims connectorDimensions) string {
	font := footprintFontProps()
	hiddenFont := hiddenConnectorFontProps()

	hidden := func(name string) string {
		return fmt.Sprintf(
			"    (property \"%s\" \"\"\n"+
				"        (at %s 0 0)\n"+
				"        (layer \"F.Fab\")\n"+
				"        (hide yes)\n"+
				"        (uuid \"%s\")\n%s\n"+
				"    )",
			name, ftoa(dims.StartX), e.NewID(), hiddenFont)
	}

	sections := []string{
		fmt.Sprintf(
			"    (property \"Reference\" \"REF**\"\n"+
				"        (at 0 %s 0)\n"+
				"        (layer \"F.SilkS\")\n"+
				"        (uuid \"%s\")\n%s\n"+
				"    )",
			ftoa(spec.RefOffsetY), e.NewID(), font),
		fmt.Sprintf(
			"    (property \"Value\" \"%s\"\n"+
				"        (at 0 %s 0)\n"+
				"        (layer \"F.Fab\")\n"+
				"        (uuid \"%s\")\n%s\n"+
				"    )",
			mpn, ftoa(spec.MPNOffsetY), e.NewID(), font),
		hidden("Footprint"),
		hidden("Datasheet"),
		hidden("Description"),
	}
	return strings.Join(sections, "\n")
}

func (e *Emitter) connectorShapes(spec catalog.ConnectorSpec, dims connectorDimensions) string {
	rectStart := XY{-dims.HalfWidthLeft, spec.HeightBottom}
	rectEnd := XY{dims.HalfWidthRight, spec.HeightTop}

	// Pin 1 marker just outside the left body edge.
	circleCenter := -(dims.HalfWidthLeft + spec.SilkMargin*6)
	circleEnd := -(dims.HalfWidthLeft + spec.SilkMargin*2)

	shapes := []string{
		"    (attr through_hole)",
		e.FPRect(rectStart, rectEnd, spec.SilkMargin, "default", "F.SilkS"),
		e.FPCircle(XY{circleCenter, 0}, XY{circleEnd, 0},
			spec.SilkMargin, "solid", "F.SilkS"),
		e.FPRect(rectStart, rectEnd, courtyardStroke, "default", "F.CrtYd"),
		e.FPRect(rectStart, rectEnd, spec.SilkMargin, "default", "F.Fab"),
		e.FPCircle(XY{circleCenter, 0}, XY{circleEnd, 0},
			spec.SilkMargin, "none", "F.Fab"),
	}
	return strings.Join(shapes, "\n")
}

func (e *Emitter) connectorPads(spec catalog.ConnectorSpec, dims connectorDimensions, pinCount int) string {
	pads := make([]string, 0, pinCount)
	for pin := 0; pin < pinCount; pin++ {
		shape := "circle"
		if pin == 0 {
			shape = "rect"
		}
		x := dims.StartX + float64(pin)*spec.Pitch
		pads = append(pads, e.ThruHolePad(padNumber(pin+1), shape,
			XY{x, 0}, spec.PadSize, spec.DrillSize, spec.MaskMargin))
	}
	return strings.Join(pads, "\n")
}

func connectorModelOffset(spec catalog.ConnectorSpec, pinCount int) [3]float64 {
	step := float64(pinCount-2) * spec.ModelStep
	return [3]float64{
		spec.ModelOffset[0] + spec.ModelStepSign*step,
		spec.ModelOffset[1],
		spec.ModelOffset[2],
	}
}

/*
	ConnectorFootprint compiles the footprint for one terminal block
	variant. The artifact is named after the full MPN; the series
	catalogue supplies everything except the pin count.
*/
func ConnectorFootprint(e *Emitter, series, mpn string, pinCount int) (Document, error) {
	spec, err := catalog.Connector(series)
	if err != nil {
		return Document{}, err
	}

	dims := connectorLayout(spec, pinCount)
	sections := []string{
		e.FootprintHeader(mpn),
		e.connectorProperties(mpn, spec, dims),
		e.connectorShapes(spec, dims),
		e.connectorPads(spec, dims, pinCount),
		e.Model3DPlaced(ModelDir, "CUI_DEVICES_"+mpn,
			connectorModelOffset(spec, pinCount), spec.ModelRotation),
	}
	return Document{Name: mpn, Content: AssembleFootprint(sections)}, nil
}

var connectorSymbolProperties = map[string]PropertySpec{
	"Reference":   {At: XY{0, 7.62}, Override: "J"},
	"Value":       {At: XY{5.08, 5.08}, ShowName: true, Hide: true},
	"Footprint":   {At: XY{5.08, 2.54}, ShowName: true, Hide: true},
	"Datasheet":   {At: XY{5.08, 0}, ShowName: true, Hide: true},
	"Description": {At: XY{5.08, -2.54}, ShowName: true, Hide: true},
}

/*
	ConnectorPinCount reads the record's Pin Count column. An absent
	column means the two-pin variant; a present value must be a positive
	integer.
*/
func ConnectorPinCount(c Component) (int, error) {
	raw := c.Get("Pin Count", "")
	if raw == "" {
		return 2, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid pin count %q", raw)
	}
	return n, nil
}

/*
	ConnectorSymbol draws a numbered pin row entering a plain rectangle
	from the left. The rectangle grows with the pin count but never
	shrinks below the two-pin height.
*/
func ConnectorSymbol(e *Emitter, c Component, order []string) (string, error) {
	pinCount, err := ConnectorPinCount(c)
	if err != nil {
		return "", err
	}

	configs := clonePropertySpecs(connectorSymbolProperties)
	if v := c.Get("MPN", ""); v != "" {
		value := configs["Value"]
		value.Override = v
		configs["Value"] = value
	}

	sections := []string{
		e.SymbolHeader(c.Name),
		e.SymbolProperties(c, order, configs, XY{5.08, -5.08}),
		e.OpenUnit(c.Name, "0_0"),
	}
	for i, y := range LinearPinYs(pinCount, 2.54) {
		sections = append(sections, e.SymbolPin(Pin{
			At: XY{-5.08, y}, Angle: 0, Number: padNumber(i + 1),
		}))
	}

	height := float64(pinCount)*2.54 + 2.54
	if height < 7.62 {
		height = 7.62
	}
	sections = append(sections,
		e.CloseUnit(),
		e.OpenUnit(c.Name, "1_0"),
		e.SymbolRectangle(XY{-2.54, height / 2}, XY{2.54, -height / 2}),
		e.CloseUnit(),
		e.CloseSymbol(),
	)
	return joinSections(sections), nil
}
