package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownPackage(t *testing.T) {
	_, err := Resistor("9999")
	require.Error(t, err)

	perr, ok := err.(*UnknownPackageError)
	require.True(t, ok)
	assert.Equal(t, "resistor", perr.Family)
	assert.Equal(t, "9999", perr.Key)
	assert.Contains(t, perr.Error(), "resistor")
	assert.Contains(t, perr.Error(), "9999")
}

func TestKeysSorted(t *testing.T) {
	for name, keys := range map[string][]string{
		"resistor":         ResistorKeys(),
		"capacitor":        CapacitorKeys(),
		"inductor":         InductorKeys(),
		"coupled inductor": CoupledInductorKeys(),
		"diode":            DiodeKeys(),
		"transistor":       TransistorKeys(),
		"transformer":      TransformerKeys(),
		"connector":        ConnectorKeys(),
	} {
		assert.NotEmpty(t, keys, name)
		assert.True(t, sort.StringsAreSorted(keys), name)
	}
}

func TestPassiveSpecsPositive(t *testing.T) {
	families := map[string]func(string) (PassiveSpec, error){
		"resistor":  Resistor,
		"capacitor": Capacitor,
		"inductor":  Inductor,
	}
	keys := map[string][]string{
		"resistor":  ResistorKeys(),
		"capacitor": CapacitorKeys(),
		"inductor":  InductorKeys(),
	}

	for family, lookup := range families {
		for _, key := range keys[family] {
			spec, err := lookup(key)
			require.NoError(t, err, key)

			assert.Greater(t, spec.Body.Width, 0.0, key)
			assert.Greater(t, spec.Body.Height, 0.0, key)
			assert.Greater(t, spec.Pad.Width, 0.0, key)
			assert.Greater(t, spec.Pad.Height, 0.0, key)
			assert.Greater(t, spec.Pad.CenterX, 0.0, key)
		}
	}
}

func TestResistorMetricNames(t *testing.T) {
	assert.Equal(t, "1005", MetricCase["0402"])
	assert.Equal(t, "3216", MetricCase["1206"])
}

func TestTransformerPinConfigurations(t *testing.T) {
	pins, err := TransformerPins("ZA9384")
	require.NoError(t, err)
	assert.NotEmpty(t, pins.Left)
	assert.NotEmpty(t, pins.Right)

	_, err = TransformerPins("ZA0000")
	require.Error(t, err)

	perr, ok := err.(*UnknownPackageError)
	require.True(t, ok)
	assert.Equal(t, "ZA0000", perr.Key)
}

func TestTransistorGroupedNumbers(t *testing.T) {
	spec, err := Transistor("PowerPAK 1212-8")
	require.NoError(t, err)

	assert.Len(t, spec.PadNumbers, 2*spec.PinsPerSide)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "5", "5", "5"}, spec.PadNumbers)
	assert.Equal(t, "5", spec.ThermalNumber)
}
