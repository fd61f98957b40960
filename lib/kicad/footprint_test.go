package kicad

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/klib/lib/catalog"
)

func testEmitter() *Emitter {
	return &Emitter{NewID: SequentialIDs()}
}

func TestTwoPadMirrorPlacement(t *testing.T) {
	lookups := map[string]struct {
		keys   []string
		lookup func(string) (catalog.PassiveSpec, error)
	}{
		"resistor":  {catalog.ResistorKeys(), catalog.Resistor},
		"capacitor": {catalog.CapacitorKeys(), catalog.Capacitor},
		"inductor":  {catalog.InductorKeys(), catalog.Inductor},
	}

	for family, f := range lookups {
		for _, key := range f.keys {
			spec, err := f.lookup(key)
			require.NoError(t, err, family)

			xs := TwoPadXs(spec.Pad.CenterX)
			assert.Equal(t, -xs[0], xs[1], "%s %s", family, key)
		}
	}
}

func TestQuadPadTraversalOrder(t *testing.T) {
	positions := QuadPadPositions(1.5, 4)
	assert.Equal(t, [4]XY{
		{-1.5, -2},
		{-1.5, 2},
		{1.5, 2},
		{1.5, -2},
	}, positions)
}

func TestLinearPinYsCentered(t *testing.T) {
	for n := 1; n <= 7; n++ {
		ys := LinearPinYs(n, 2.54)
		require.Len(t, ys, n)

		negated := make([]float64, n)
		for i, y := range ys {
			negated[i] = -y
		}
		sort.Float64s(negated)

		sorted := append([]float64{}, ys...)
		sort.Float64s(sorted)
		assert.InDeltaSlice(t, sorted, negated, 1e-9, "n=%d", n)
	}
}

func TestGroupedPadsLengthMismatch(t *testing.T) {
	e := testEmitter()
	_, err := e.GroupedPads([]XY{{0, 0}, {1, 0}}, []string{"1"}, 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestGroupedPadColumnsWrapOrder(t *testing.T) {
	positions := GroupedPadColumns(2, 1, 2)
	require.Len(t, positions, 4)
	assert.Equal(t, XY{-2, -0.5}, positions[0])
	assert.Equal(t, XY{-2, 0.5}, positions[1])
	assert.Equal(t, XY{2, 0.5}, positions[2])
	assert.Equal(t, XY{2, -0.5}, positions[3])
}

func TestResistorFootprint0402(t *testing.T) {
	doc, err := ResistorFootprint(testEmitter(), "0402")
	require.NoError(t, err)

	assert.Equal(t, "R_0402_1005Metric", doc.Name)
	assert.Contains(t, doc.Content, "(footprint \"R_0402_1005Metric\"")

	assert.Contains(t, doc.Content, "(at -0.51 0)")
	assert.Contains(t, doc.Content, "(at 0.51 0)")

	// Courtyard envelope.
	assert.Contains(t, doc.Content, "(start -0.91 -0.4775)")
	assert.Contains(t, doc.Content, "(end 0.91 0.4775)")

	// Reference designator anchor.
	assert.Contains(t, doc.Content, "(property \"Reference\" \"REF**\"\n        (at 0 -1.27 0)")

	assert.True(t, strings.HasSuffix(doc.Content, ")"))
}

func TestResistorFootprintUnknownPackage(t *testing.T) {
	_, err := ResistorFootprint(testEmitter(), "0201")
	require.Error(t, err)

	perr, ok := err.(*catalog.UnknownPackageError)
	require.True(t, ok)
	assert.Equal(t, "0201", perr.Key)
}

func TestTransistorFootprintGroupedNumbering(t *testing.T) {
	doc, err := TransistorFootprint(testEmitter(), "PowerPAK 1212-8")
	require.NoError(t, err)

	assert.Equal(t, 9, strings.Count(doc.Content, "(pad \""))
	for _, number := range []string{"1", "2", "3", "4"} {
		assert.Equal(t, 1, strings.Count(doc.Content, "(pad \""+number+"\""), number)
	}
	// Four source pads plus the thermal pad share one number.
	assert.Equal(t, 5, strings.Count(doc.Content, "(pad \"5\""))
}

func TestDiodeFootprintThermalPad(t *testing.T) {
	doc, err := DiodeFootprint(testEmitter(), "PowerDI-123")
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "(pad \"3\"")

	doc, err = DiodeFootprint(testEmitter(), "SOD-123")
	require.NoError(t, err)
	assert.NotContains(t, doc.Content, "(pad \"3\"")
}

func TestConnectorFootprintPads(t *testing.T) {
	doc, err := ConnectorFootprint(testEmitter(), "TB004-508", "TB004-508-04BE", 4)
	require.NoError(t, err)

	assert.Equal(t, "TB004-508-04BE", doc.Name)
	assert.Contains(t, doc.Content, "(attr through_hole)")
	assert.Equal(t, 1, strings.Count(doc.Content, "thru_hole rect"))
	assert.Equal(t, 3, strings.Count(doc.Content, "thru_hole circle"))

	// Pin row spans (n-1)*pitch centered on the origin.
	assert.Contains(t, doc.Content, "(at -7.62 0)")
	assert.Contains(t, doc.Content, "(at 7.62 0)")
}

var uuidLine = regexp.MustCompile(`\(uuid "[^"]*"\)`)

func TestDeterminismModuloIdentifiers(t *testing.T) {
	first, err := CapacitorFootprint(NewEmitter(), "0603")
	require.NoError(t, err)
	second, err := CapacitorFootprint(NewEmitter(), "0603")
	require.NoError(t, err)

	assert.NotEqual(t, first.Content, second.Content)
	assert.Equal(t,
		uuidLine.ReplaceAllString(first.Content, "(uuid)"),
		uuidLine.ReplaceAllString(second.Content, "(uuid)"))
}
