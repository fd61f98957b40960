package kicad

import (
	"fmt"
	"sort"
	"strings"
)

/*
	Symbol-library primitives. A .kicad_sym document is a library header,
	one symbol block per part in input order, and a closing paren. Inside
	a block: the symbol header, the property stack, then one or more unit
	sub-symbols holding the graphics and pins.
*/

const symbolFontSize = 1.27

/*
	Component is one part record: the tabular fields of a single row.
	Field names double as symbol property names.
*/
type Component struct {
	Name   string
	Fields map[string]string
}

func (c Component) Get(key, fallback string) string {
	if v, ok := c.Fields[key]; ok && v != "" {
		return v
	}
	return fallback
}

/*
	PropertyOrder fixes the property sequence for a batch of components:
	the well-known properties first, then every remaining field name in
	alphabetical order. The order is computed over the whole batch so
	that all symbols in one library stack their properties identically.
*/
func PropertyOrder(components []Component) []string {
	priority := []string{"Reference", "Value", "Footprint", "Datasheet", "Description"}

	seen := map[string]bool{}
	for _, c := range components {
		for name := range c.Fields {
			seen[name] = true
		}
	}

	order := make([]string, 0, len(seen))
	for _, name := range priority {
		if seen[name] {
			order = append(order, name)
			delete(seen, name)
		}
	}

	rest := make([]string, 0, len(seen))
	for name := range seen {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	return append(order, rest...)
}

/*
	PropertySpec places one named property. Override, when set, replaces
	the field value in the emitted property.
*/
type PropertySpec struct {
	At       XY
	ShowName bool
	Hide     bool
	Override string
}

func (e *Emitter) SymbolLibraryHeader() string {
	return "(kicad_symbol_lib\n" +
		"    (version 20231120)\n" +
		"    (generator \"kicad_symbol_editor\")\n" +
		"    (generator_version \"8.0\")"
}

func (e *Emitter) SymbolHeader(name string) string {
	return fmt.Sprintf(
		"    (symbol \"%s\"\n"+
			"        (pin_names (offset 0.254))\n"+
			"        (exclude_from_sim no)\n"+
			"        (in_bom yes)\n"+
			"        (on_board yes)", name)
}

func (e *Emitter) SymbolProperty(name, value string, at XY, showName, hide bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "        (property \"%s\" \"%s\"\n", name, value)
	fmt.Fprintf(&b, "            (at %s %s 0)\n", ftoa(at.X), ftoa(at.Y))
	if showName {
		b.WriteString("            (show_name)\n")
	}
	b.WriteString("            (effects\n")
	fmt.Fprintf(&b, "                (font (size %s %s))\n",
		ftoa(symbolFontSize), ftoa(symbolFontSize))
	b.WriteString("                (justify left)\n")
	if hide {
		b.WriteString("                (hide yes)\n")
	}
	b.WriteString("            )\n")
	b.WriteString("        )")
	return b.String()
}

/*
	SymbolProperties emits the property stack for one component. Fields
	without a placement in configs continue downward from extraStart in
	2.54 steps, name shown and text hidden, so arbitrary table columns
	survive into the symbol without colliding with the glyph.
*/
func (e *Emitter) SymbolProperties(c Component, order []string, configs map[string]PropertySpec, extraStart XY) string {
	parts := make([]string, 0, len(order))
	extraY := extraStart.Y

	for _, name := range order {
		field, ok := c.Fields[name]
		if !ok {
			continue
		}
		spec, known := configs[name]
		if !known {
			spec = PropertySpec{
				At:       XY{extraStart.X, extraY},
				ShowName: true,
				Hide:     true,
			}
		}
		value := spec.Override
		if value == "" {
			value = field
		}
		parts = append(parts,
			e.SymbolProperty(name, value, spec.At, spec.ShowName, spec.Hide))
		if !known {
			extraY -= 2.54
		}
	}
	return strings.Join(parts, "\n")
}

/*
	Pin describes one symbol pin. Angle 0 points the pin right (entering
	from the left side), 180 points it left.
*/
type Pin struct {
	At     XY
	Angle  int
	Number string
	Name   string
	Type   string
	Length float64
	Hide   bool
}

func (e *Emitter) SymbolPin(p Pin) string {
	pinType := p.Type
	if pinType == "" {
		pinType = "unspecified"
	}
	length := p.Length
	if length == 0 {
		length = 2.54
	}

	var b strings.Builder
	fmt.Fprintf(&b, "            (pin %s line\n", pinType)
	fmt.Fprintf(&b, "                (at %s %s %d)\n",
		ftoa(p.At.X), ftoa(p.At.Y), p.Angle)
	fmt.Fprintf(&b, "                (length %s)\n", ftoa(length))
	fmt.Fprintf(&b,
		"                (name \"%s\" (effects (font (size 1.27 1.27))))\n",
		p.Name)
	fmt.Fprintf(&b,
		"                (number \"%s\" (effects (font (size 1.27 1.27))))\n",
		p.Number)
	if p.Hide {
		b.WriteString("                hide\n")
	}
	b.WriteString("            )")
	return b.String()
}

/*
	OpenUnit starts a unit sub-symbol. The unit suffix encodes the KiCad
	unit and body-style indices, e.g. "0_1" or "1_0".
*/
func (e *Emitter) OpenUnit(symbolName, unit string) string {
	return fmt.Sprintf("        (symbol \"%s_%s\"", symbolName, unit)
}

func (e *Emitter) CloseUnit() string {
	return "        )"
}

func (e *Emitter) CloseSymbol() string {
	return "    )"
}

func (e *Emitter) SymbolPolyline(pts []XY, stroke float64, fill string) string {
	points := make([]string, 0, len(pts))
	for _, pt := range pts {
		points = append(points, fmt.Sprintf("(xy %s %s)", ftoa(pt.X), ftoa(pt.Y)))
	}
	return fmt.Sprintf(
		"            (polyline\n"+
			"                (pts %s)\n"+
			"                (stroke (width %s) (type default))\n"+
			"                (fill (type %s))\n"+
			"            )",
		strings.Join(points, " "), ftoa(stroke), fill)
}

func (e *Emitter) SymbolArc(start, mid, end XY, stroke float64) string {
	return fmt.Sprintf(
		"            (arc\n"+
			"                (start %s %s)\n"+
			"                (mid %s %s)\n"+
			"                (end %s %s)\n"+
			"                (stroke (width %s) (type default))\n"+
			"                (fill (type none))\n"+
			"            )",
		ftoa(start.X), ftoa(start.Y), ftoa(mid.X), ftoa(mid.Y),
		ftoa(end.X), ftoa(end.Y), ftoa(stroke))
}

func (e *Emitter) SymbolCircle(center XY, radius, stroke float64) string {
	return fmt.Sprintf(
		"            (circle\n"+
			"                (center %s %s)\n"+
			"                (radius %s)\n"+
			"                (stroke (width %s) (type default))\n"+
			"                (fill (type none))\n"+
			"            )",
		ftoa(center.X), ftoa(center.Y), ftoa(radius), ftoa(stroke))
}

func (e *Emitter) SymbolRectangle(start, end XY) string {
	return fmt.Sprintf(
		"            (rectangle\n"+
			"                (start %s %s)\n"+
			"                (end %s %s)\n"+
			"                (stroke (width 0.254) (type solid))\n"+
			"                (fill (type none))\n"+
			"            )",
		ftoa(start.X), ftoa(start.Y), ftoa(end.X), ftoa(end.Y))
}

/*
	AssembleSymbolLibrary joins the header, the symbol blocks in input
	order and the closing paren.
*/
func AssembleSymbolLibrary(header string, blocks []string) string {
	parts := append([]string{header}, blocks...)
	return strings.Join(append(parts, ")"), "\n") + "\n"
}
