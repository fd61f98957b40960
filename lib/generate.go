package lib

import (
	"fmt"
	"path/filepath"

	"github.com/xoviat/klib/lib/kicad"
)

/*
	Generation runs one family at a time: resolve every record against
	the geometry catalogue, compile all symbol blocks and footprint
	documents in memory, then write the artifacts. Nothing touches the
	filesystem until the whole family has compiled, so a bad record or
	an unknown package leaves no partial output behind.
*/

type Family string

const (
	FamilyResistor        Family = "resistor"
	FamilyCapacitor       Family = "capacitor"
	FamilyInductor        Family = "inductor"
	FamilyCoupledInductor Family = "coupled_inductor"
	FamilyDiode           Family = "diode"
	FamilyTransistor      Family = "transistor"
	FamilyTransformer     Family = "transformer"
	FamilyConnector       Family = "connector"
)

func Families() []Family {
	return []Family{
		FamilyResistor,
		FamilyCapacitor,
		FamilyInductor,
		FamilyCoupledInductor,
		FamilyDiode,
		FamilyTransistor,
		FamilyTransformer,
		FamilyConnector,
	}
}

type familyPlan struct {
	KeyField     string
	SymbolFile   string
	FootprintDir string
	Footprint    func(e *kicad.Emitter, c kicad.Component) (kicad.Document, error)
	Symbol       func(e *kicad.Emitter, c kicad.Component, order []string) (string, error)
}

func keyed(f func(e *kicad.Emitter, key string) (kicad.Document, error), field string) func(*kicad.Emitter, kicad.Component) (kicad.Document, error) {
	return func(e *kicad.Emitter, c kicad.Component) (kicad.Document, error) {
		return f(e, c.Get(field, ""))
	}
}

func plain(f func(e *kicad.Emitter, c kicad.Component, order []string) string) func(*kicad.Emitter, kicad.Component, []string) (string, error) {
	return func(e *kicad.Emitter, c kicad.Component, order []string) (string, error) {
		return f(e, c, order), nil
	}
}

var familyPlans = map[Family]familyPlan{
	FamilyResistor: {
		KeyField:     "Package",
		SymbolFile:   "RESISTORS.kicad_sym",
		FootprintDir: "resistor_footprints.pretty",
		Footprint:    keyed(kicad.ResistorFootprint, "Package"),
		Symbol:       plain(kicad.ResistorSymbol),
	},
	FamilyCapacitor: {
		KeyField:     "Package",
		SymbolFile:   "CAPACITORS.kicad_sym",
		FootprintDir: "capacitor_footprints.pretty",
		Footprint:    keyed(kicad.CapacitorFootprint, "Package"),
		Symbol:       plain(kicad.CapacitorSymbol),
	},
	FamilyInductor: {
		KeyField:     "Series",
		SymbolFile:   "INDUCTORS.kicad_sym",
		FootprintDir: "inductor_footprints.pretty",
		Footprint:    keyed(kicad.InductorFootprint, "Series"),
		Symbol:       plain(kicad.InductorSymbol),
	},
	FamilyCoupledInductor: {
		KeyField:     "Series",
		SymbolFile:   "COUPLED_INDUCTORS.kicad_sym",
		FootprintDir: "coupled_inductor_footprints.pretty",
		Footprint:    keyed(kicad.CoupledInductorFootprint, "Series"),
		Symbol:       plain(kicad.CoupledInductorSymbol),
	},
	FamilyDiode: {
		KeyField:     "Package",
		SymbolFile:   "DIODES.kicad_sym",
		FootprintDir: "diode_footprints.pretty",
		Footprint:    keyed(kicad.DiodeFootprint, "Package"),
		Symbol:       plain(kicad.DiodeSymbol),
	},
	FamilyTransistor: {
		KeyField:     "Package",
		SymbolFile:   "TRANSISTORS.kicad_sym",
		FootprintDir: "transistor_footprints.pretty",
		Footprint:    keyed(kicad.TransistorFootprint, "Package"),
		Symbol:       plain(kicad.TransistorSymbol),
	},
	FamilyTransformer: {
		KeyField:     "Series",
		SymbolFile:   "TRANSFORMERS.kicad_sym",
		FootprintDir: "transformer_footprints.pretty",
		Footprint:    keyed(kicad.TransformerFootprint, "Series"),
		Symbol:       kicad.TransformerSymbol,
	},
	FamilyConnector: {
		KeyField:     "Series",
		SymbolFile:   "CONNECTORS.kicad_sym",
		FootprintDir: "connector_footprints.pretty",
		Footprint: func(e *kicad.Emitter, c kicad.Component) (kicad.Document, error) {
			pinCount, err := kicad.ConnectorPinCount(c)
			if err != nil {
				return kicad.Document{}, &MalformedRecordError{Field: "Pin Count", Reason: err.Error()}
			}

			mpn := c.Get("MPN", c.Name)
			return kicad.ConnectorFootprint(e, c.Get("Series", ""), mpn, pinCount)
		},
		Symbol: kicad.ConnectorSymbol,
	},
}

/*
	GenerateFamily compiles and writes the symbol library and the
	footprint set for one family of part records. The returned paths are
	the files written, footprints first, in input order with duplicate
	packages collapsed to one footprint.
*/
func GenerateFamily(family Family, parts []kicad.Component, outputDir string, ids kicad.IDGenerator) ([]string, error) {
	plan, ok := familyPlans[family]
	if !ok {
		return nil, fmt.Errorf("unknown component family %q", family)
	}
	if ids == nil {
		ids = kicad.UUIDs()
	}

	e := &kicad.Emitter{NewID: ids}
	order := kicad.PropertyOrder(parts)

	footprints := []kicad.Document{}
	seen := map[string]bool{}
	blocks := make([]string, 0, len(parts))

	for i, c := range parts {
		if c.Get(plan.KeyField, "") == "" {
			return nil, &MalformedRecordError{Line: i + 1, Field: plan.KeyField}
		}

		doc, err := plan.Footprint(e, c)
		if err != nil {
			if merr, ok := err.(*MalformedRecordError); ok && merr.Line == 0 {
				merr.Line = i + 1
			}
			return nil, err
		}
		if !seen[doc.Name] {
			seen[doc.Name] = true
			footprints = append(footprints, doc)
		}

		block, err := plan.Symbol(e, c, order)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	written := make([]string, 0, len(footprints)+1)
	for _, doc := range footprints {
		path := filepath.Join(outputDir, plan.FootprintDir, doc.Name+".kicad_mod")
		if err := WriteFileAtomic(path, []byte(doc.Content)); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	library := kicad.AssembleSymbolLibrary(e.SymbolLibraryHeader(), blocks)
	path := filepath.Join(outputDir, plan.SymbolFile)
	if err := WriteFileAtomic(path, []byte(library)); err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
}
