package kicad

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/klib/lib/catalog"
)

func TestPropertyOrder(t *testing.T) {
	components := []Component{
		{Name: "A", Fields: map[string]string{
			"Value": "10k", "Tolerance": "1%", "Reference": "R",
		}},
		{Name: "B", Fields: map[string]string{
			"Datasheet": "https://example.com", "MPN": "RC0402",
		}},
	}

	order := PropertyOrder(components)
	assert.Equal(t,
		[]string{"Reference", "Value", "Datasheet", "MPN", "Tolerance"},
		order)
}

func TestPropertyOrderDescriptionBeforeExtras(t *testing.T) {
	components := []Component{
		{Name: "L", Fields: map[string]string{
			"Value":          "10 uH",
			"Current Rating": "2 A",
			"Description":    "Power inductor",
		}},
	}

	// Description belongs to the fixed prefix, ahead of fields that
	// would sort before it alphabetically.
	order := PropertyOrder(components)
	assert.Equal(t, []string{"Value", "Description", "Current Rating"}, order)
}

func TestSymbolPropertiesExtraStacking(t *testing.T) {
	e := testEmitter()
	c := Component{Name: "X", Fields: map[string]string{
		"Alpha": "a",
		"Beta":  "b",
	}}

	out := e.SymbolProperties(c, []string{"Alpha", "Beta"},
		map[string]PropertySpec{}, XY{5.08, -10.16})

	assert.Contains(t, out, "(property \"Alpha\" \"a\"\n            (at 5.08 -10.16 0)")
	assert.Contains(t, out, "(property \"Beta\" \"b\"\n            (at 5.08 -12.7 0)")
	assert.Equal(t, 2, strings.Count(out, "(show_name)"))
	assert.Equal(t, 2, strings.Count(out, "(hide yes)"))
}

func TestSymbolPropertyOverride(t *testing.T) {
	e := testEmitter()
	c := Component{Name: "X", Fields: map[string]string{"Reference": "ignored"}}

	out := e.SymbolProperties(c, []string{"Reference"},
		map[string]PropertySpec{"Reference": {At: XY{0, 2.54}, Override: "L"}},
		XY{0, -10})
	assert.Contains(t, out, "(property \"Reference\" \"L\"")
}

func connectorComponent(pins int) Component {
	return Component{
		Name: "TB004-508-TEST",
		Fields: map[string]string{
			"Symbol Name": "TB004-508-TEST",
			"Series":      "TB004-508",
			"MPN":         "TB004-508-TEST",
			"Pin Count":   strconv.Itoa(pins),
		},
	}
}

func TestConnectorBodyMinimumHeight(t *testing.T) {
	e := testEmitter()

	// Two pins stay at the minimum 7.62 body.
	c := connectorComponent(2)
	out, err := ConnectorSymbol(e, c, PropertyOrder([]Component{c}))
	require.NoError(t, err)
	assert.Contains(t, out, "(start -2.54 3.81)")
	assert.Contains(t, out, "(end 2.54 -3.81)")

	// Four pins grow to 4*2.54 + 2.54.
	c = connectorComponent(4)
	out, err = ConnectorSymbol(e, c, PropertyOrder([]Component{c}))
	require.NoError(t, err)
	assert.Contains(t, out, "(start -2.54 6.35)")
	assert.Contains(t, out, "(end 2.54 -6.35)")
}

func TestConnectorPinRowCentered(t *testing.T) {
	e := testEmitter()
	c := connectorComponent(3)
	out, err := ConnectorSymbol(e, c, PropertyOrder([]Component{c}))
	require.NoError(t, err)

	assert.Contains(t, out, "(at -5.08 2.54 0)")
	assert.Contains(t, out, "(at -5.08 0 0)")
	assert.Contains(t, out, "(at -5.08 -2.54 0)")
	assert.Equal(t, 3, strings.Count(out, "(pin unspecified line"))
}

func TestConnectorPinCount(t *testing.T) {
	// An absent column means the two-pin variant.
	n, err := ConnectorPinCount(Component{Name: "X", Fields: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ConnectorPinCount(Component{Name: "X", Fields: map[string]string{"Pin Count": "8"}})
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// A present value must parse as a positive integer.
	for _, raw := range []string{"garbage", "eight", "0", "-3"} {
		_, err = ConnectorPinCount(Component{
			Name: "X", Fields: map[string]string{"Pin Count": raw},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), raw)
	}
}

func TestResistorSymbolValueOverride(t *testing.T) {
	e := testEmitter()
	c := Component{Name: "R_TEST", Fields: map[string]string{
		"Value":      "R_0402_TEST",
		"Resistance": "10 kOhm",
	}}

	out := ResistorSymbol(e, c, PropertyOrder([]Component{c}))
	assert.Contains(t, out, "(property \"Value\" \"10 kOhm\"")
}

func TestTransformerSymbolUnknownSeries(t *testing.T) {
	e := testEmitter()
	c := Component{Name: "T_TEST", Fields: map[string]string{"Series": "ZZ0000"}}

	_, err := TransformerSymbol(e, c, PropertyOrder([]Component{c}))
	require.Error(t, err)

	perr, ok := err.(*catalog.UnknownPackageError)
	require.True(t, ok)
	assert.Equal(t, "ZZ0000", perr.Key)
}

func TestTransistorSymbolDispatch(t *testing.T) {
	e := testEmitter()

	single := Component{Name: "Q_N", Fields: map[string]string{
		"Transistor Type": "N-Channel",
	}}
	out := TransistorSymbol(e, single, PropertyOrder([]Component{single}))
	assert.Contains(t, out, "(symbol \"Q_N_1_0\"")
	assert.NotContains(t, out, "(symbol \"Q_N_2_0\"")

	dual := Component{Name: "Q_D", Fields: map[string]string{
		"Transistor Type": "N-Channel Dual",
	}}
	out = TransistorSymbol(e, dual, PropertyOrder([]Component{dual}))
	assert.Contains(t, out, "(symbol \"Q_D_1_0\"")
	assert.Contains(t, out, "(symbol \"Q_D_2_0\"")
}

func TestAssembleSymbolLibrary(t *testing.T) {
	e := testEmitter()
	out := AssembleSymbolLibrary(e.SymbolLibraryHeader(), []string{"    (block)"})

	assert.True(t, strings.HasPrefix(out, "(kicad_symbol_lib\n"))
	assert.True(t, strings.HasSuffix(out, ")\n"))
	assert.Contains(t, out, "(generator \"kicad_symbol_editor\")")
}
