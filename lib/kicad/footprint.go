package kicad

import (
	"fmt"
	"strconv"
	"strings"
)

/*
	Footprint primitives and the shared sections every family emits:
	header, text properties, courtyard, fabrication outline, silkscreen,
	pads and the 3D model association. Families sequence these into a
	complete .kicad_mod document.

	Coordinates follow the KiCad footprint convention: origin at the
	component center, positive X right, positive Y down on the board.
*/

const (
	courtyardStroke  = 0.00635
	fabStroke        = 0.0254
	silkscreenStroke = 0.1524

	propertyFontSize      = 0.762
	propertyFontThickness = 0.1524
)

func (e *Emitter) FootprintHeader(name string) string {
	return fmt.Sprintf(
		"(footprint \"%s\"\n"+
			"    (version 20240108)\n"+
			"    (generator \"pcbnew\")\n"+
			"    (generator_version \"8.0\")\n"+
			"    (layer \"F.Cu\")", name)
}

/*
	FootprintHeaderFull adds the description, tag and attribute lines
	used by the passive families.
*/
func (e *Emitter) FootprintHeaderFull(name, descr, tags, attr string) string {
	return fmt.Sprintf(
		"(footprint \"%s\"\n"+
			"    (version 20240108)\n"+
			"    (generator \"pcbnew\")\n"+
			"    (generator_version \"8.0\")\n"+
			"    (layer \"F.Cu\")\n"+
			"    (descr \"%s\")\n"+
			"    (tags \"%s\")\n"+
			"    (attr %s)", name, descr, tags, attr)
}

func footprintFontProps() string {
	return fmt.Sprintf(
		"        (effects\n"+
			"            (font (size %s %s) (thickness %s))\n"+
			"            (justify left)\n"+
			"        )",
		ftoa(propertyFontSize), ftoa(propertyFontSize),
		ftoa(propertyFontThickness))
}

/*
	FootprintProperties places the reference designator above the body,
	the value text mirrored below it, a hidden footprint property at the
	origin and the fabrication-layer reference echo. The value position
	is the arithmetic negation of refOffsetY, not an independent number.
*/
func (e *Emitter) FootprintProperties(refOffsetY float64, value string) string {
	font := footprintFontProps()

	return fmt.Sprintf(
		"    (property \"Reference\" \"REF**\"\n"+
			"        (at 0 %s 0)\n"+
			"        (unlocked yes)\n"+
			"        (layer \"F.SilkS\")\n"+
			"        (uuid \"%s\")\n%s\n"+
			"    )\n"+
			"    (property \"Value\" \"%s\"\n"+
			"        (at 0 %s 0)\n"+
			"        (unlocked yes)\n"+
			"        (layer \"F.Fab\")\n"+
			"        (uuid \"%s\")\n%s\n"+
			"    )\n"+
			"    (property \"Footprint\" \"\"\n"+
			"        (at 0 0 0)\n"+
			"        (layer \"F.Fab\")\n"+
			"        (hide yes)\n"+
			"        (uuid \"%s\")\n%s\n"+
			"    )\n"+
			"    (fp_text user \"${REFERENCE}\"\n"+
			"        (at 0 %s 0)\n"+
			"        (unlocked yes)\n"+
			"        (layer \"F.Fab\")\n"+
			"        (uuid \"%s\")\n%s\n"+
			"    )",
		ftoa(refOffsetY), e.NewID(), font,
		value, ftoa(-refOffsetY), e.NewID(), font,
		e.NewID(), font,
		ftoa(-refOffsetY+1.27), e.NewID(), font)
}

func (e *Emitter) FPLine(start, end XY, stroke float64, layer string) string {
	return fmt.Sprintf(
		"    (fp_line\n"+
			"        (start %s %s)\n"+
			"        (end %s %s)\n"+
			"        (stroke (width %s) (type solid))\n"+
			"        (layer \"%s\")\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		ftoa(start.X), ftoa(start.Y), ftoa(end.X), ftoa(end.Y),
		ftoa(stroke), layer, e.NewID())
}

func (e *Emitter) FPRect(start, end XY, stroke float64, strokeType, layer string) string {
	return fmt.Sprintf(
		"    (fp_rect\n"+
			"        (start %s %s)\n"+
			"        (end %s %s)\n"+
			"        (stroke (width %s) (type %s))\n"+
			"        (fill none)\n"+
			"        (layer \"%s\")\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		ftoa(start.X), ftoa(start.Y), ftoa(end.X), ftoa(end.Y),
		ftoa(stroke), strokeType, layer, e.NewID())
}

func (e *Emitter) FPCircle(center, end XY, stroke float64, fill, layer string) string {
	return fmt.Sprintf(
		"    (fp_circle\n"+
			"        (center %s %s)\n"+
			"        (end %s %s)\n"+
			"        (stroke (width %s) (type solid))\n"+
			"        (fill %s)\n"+
			"        (layer \"%s\")\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		ftoa(center.X), ftoa(center.Y), ftoa(end.X), ftoa(end.Y),
		ftoa(stroke), fill, layer, e.NewID())
}

func (e *Emitter) FPPoly(pts []XY, stroke float64, fill, layer string) string {
	points := make([]string, 0, len(pts))
	for _, pt := range pts {
		points = append(points,
			fmt.Sprintf("            (xy %s %s)", ftoa(pt.X), ftoa(pt.Y)))
	}

	return fmt.Sprintf(
		"    (fp_poly\n"+
			"        (pts\n%s\n"+
			"        )\n"+
			"        (stroke (width %s) (type solid))\n"+
			"        (fill %s)\n"+
			"        (layer \"%s\")\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		strings.Join(points, "\n"), ftoa(stroke), fill, layer, e.NewID())
}

func (e *Emitter) FPTextUser(text string, at XY) string {
	return fmt.Sprintf(
		"    (fp_text user \"%s\"\n"+
			"        (at %s %s 0)\n"+
			"        (unlocked yes)\n"+
			"        (layer \"F.Fab\")\n"+
			"        (uuid \"%s\")\n%s\n"+
			"    )",
		text, ftoa(at.X), ftoa(at.Y), e.NewID(), footprintFontProps())
}

/*
	Courtyard draws the keep-clear envelope centered on the origin. The
	catalogue body dimensions are the courtyard envelope, so the same
	width and height feed FabRectangle.
*/
func (e *Emitter) Courtyard(width, height float64) string {
	return e.FPRect(
		XY{-width / 2, -height / 2}, XY{width / 2, height / 2},
		courtyardStroke, "solid", "F.CrtYd")
}

func (e *Emitter) FabRectangle(width, height float64) string {
	return e.FPRect(
		XY{-width / 2, -height / 2}, XY{width / 2, height / 2},
		fabStroke, "default", "F.Fab")
}

/*
	SilkscreenLines draws the horizontal orientation lines above and
	below the body, stopping short of the pads.
*/
func (e *Emitter) SilkscreenLines(bodyHeight, padCenterX, padWidth float64) string {
	halfHeight := bodyHeight / 2
	silkX := padCenterX - padWidth/2

	lines := []string{
		e.FPLine(XY{silkX, -halfHeight}, XY{-silkX, -halfHeight},
			silkscreenStroke, "F.SilkS"),
		e.FPLine(XY{silkX, halfHeight}, XY{-silkX, halfHeight},
			silkscreenStroke, "F.SilkS"),
	}
	return strings.Join(lines, "\n")
}

func (e *Emitter) SMDPad(number string, at XY, width, height float64) string {
	return fmt.Sprintf(
		"    (pad \"%s\" smd rect\n"+
			"        (at %s %s)\n"+
			"        (size %s %s)\n"+
			"        (layers \"F.Cu\" \"F.Paste\" \"F.Mask\")\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		number, ftoa(at.X), ftoa(at.Y), ftoa(width), ftoa(height), e.NewID())
}

func (e *Emitter) RoundRectPad(number string, at XY, width, height, ratio float64) string {
	return fmt.Sprintf(
		"    (pad \"%s\" smd roundrect\n"+
			"        (at %s %s)\n"+
			"        (size %s %s)\n"+
			"        (layers \"F.Cu\" \"F.Paste\" \"F.Mask\")\n"+
			"        (roundrect_rratio %s)\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		number, ftoa(at.X), ftoa(at.Y), ftoa(width), ftoa(height),
		ftoa(ratio), e.NewID())
}

func (e *Emitter) ThruHolePad(number, shape string, at XY, size, drill, maskMargin float64) string {
	return fmt.Sprintf(
		"    (pad \"%s\" thru_hole %s\n"+
			"        (at %s %s)\n"+
			"        (size %s %s)\n"+
			"        (drill %s)\n"+
			"        (layers \"*.Cu\" \"*.Mask\")\n"+
			"        (remove_unused_layers no)\n"+
			"        (solder_mask_margin %s)\n"+
			"        (uuid \"%s\")\n"+
			"    )",
		number, shape, ftoa(at.X), ftoa(at.Y), ftoa(size), ftoa(size),
		ftoa(drill), ftoa(maskMargin), e.NewID())
}

func (e *Emitter) Model3D(dir, name string) string {
	return fmt.Sprintf(
		"    (model \"${KIPRJMOD}/%s/%s.step\"\n"+
			"        (offset (xyz 0 0 0))\n"+
			"        (scale (xyz 1 1 1))\n"+
			"        (rotate (xyz 0 0 0))\n"+
			"    )",
		dir, name)
}

func (e *Emitter) Model3DPlaced(dir, name string, offset, rotation [3]float64) string {
	return fmt.Sprintf(
		"    (model \"${KIPRJMOD}/%s/%s.step\"\n"+
			"        (offset (xyz %s %s %s))\n"+
			"        (scale (xyz 1 1 1))\n"+
			"        (rotate (xyz %s %s %s))\n"+
			"    )",
		dir, name,
		ftoa(offset[0]), ftoa(offset[1]), ftoa(offset[2]),
		ftoa(rotation[0]), ftoa(rotation[1]), ftoa(rotation[2]))
}

/*
	TwoPadXs mirrors a single stored offset across the origin: pad 1
	sits at -centerX, pad 2 at +centerX, both on the X axis.
*/
func TwoPadXs(centerX float64) [2]float64 {
	return [2]float64{-centerX, centerX}
}

/*
	QuadPadPositions places four pads at the corners of the pad grid.
	The traversal order is a format contract: consumers identify pin 1
	by the first position, so the sequence must stay
	(-x,-y) (-x,+y) (+x,+y) (+x,-y).
*/
func QuadPadPositions(centerX, pitchY float64) [4]XY {
	return [4]XY{
		{-centerX, -pitchY / 2},
		{-centerX, pitchY / 2},
		{centerX, pitchY / 2},
		{centerX, -pitchY / 2},
	}
}

/*
	LinearPinYs spreads count positions symmetrically about zero at the
	given pitch, descending from +span/2. The multiset of positions is
	its own negation for both odd and even counts.
*/
func LinearPinYs(count int, pitch float64) []float64 {
	startY := float64(count-1) * pitch / 2
	ys := make([]float64, count)
	for i := range ys {
		ys[i] = startY - float64(i)*pitch
	}
	return ys
}

/*
	GroupedPadColumns lays out perSide pads on each side of the origin
	in dual-inline traversal order: down the left column, then up the
	right column. Electrical numbers are supplied independently so that
	several physical pads can share one number; the two sequences must
	agree in length.
*/
func GroupedPadColumns(centerX, pitchY float64, perSide int) []XY {
	ys := LinearPinYs(perSide, pitchY)
	positions := make([]XY, 0, 2*perSide)
	for _, y := range ys {
		positions = append(positions, XY{-centerX, -y})
	}
	for _, y := range ys {
		positions = append(positions, XY{centerX, y})
	}
	return positions
}

/*
	Pin1Indicator marks the top-left pad with a filled silkscreen dot
	just outside the pad column.
*/
func (e *Emitter) Pin1Indicator(padCenterX, padWidth float64, perSide int, pitchY float64) string {
	topY := -float64(perSide-1) * pitchY / 2
	x := -(padCenterX + padWidth/2 + 0.4)
	return e.FPCircle(XY{x, topY}, XY{x + 0.2, topY},
		silkscreenStroke, "solid", "F.SilkS")
}

func (e *Emitter) GroupedPads(positions []XY, numbers []string, width, height float64) (string, error) {
	if len(positions) != len(numbers) {
		return "", fmt.Errorf(
			"pad position count %d does not match pad number count %d",
			len(positions), len(numbers))
	}

	pads := make([]string, 0, len(positions))
	for i, at := range positions {
		pads = append(pads, e.SMDPad(numbers[i], at, width, height))
	}
	return strings.Join(pads, "\n"), nil
}

/*
	ThermalPad emits the heat-slug pad. It typically shares its number
	with a group of signal pads.
*/
func (e *Emitter) ThermalPad(number string, at XY, width, height float64) string {
	return e.SMDPad(number, at, width, height)
}

func padNumber(n int) string {
	return strconv.Itoa(n)
}

/*
	AssembleFootprint joins the ordered sections and the closing marker
	into one document.
*/
func AssembleFootprint(sections []string) string {
	return strings.Join(append(sections, ")"), "\n")
}
