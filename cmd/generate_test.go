package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/klib/lib"
	"github.com/xoviat/klib/lib/kicad"
)

func TestGroupByFamilyFlag(t *testing.T) {
	parts := []kicad.Component{
		{Name: "R_A", Fields: map[string]string{"Symbol Name": "R_A"}},
	}

	grouped, err := groupByFamily(parts, "resistor")
	require.NoError(t, err)
	assert.Len(t, grouped[lib.FamilyResistor], 1)
}

func TestGroupByFamilyUnknownFlag(t *testing.T) {
	_, err := groupByFamily(nil, "widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget")
}

func TestGroupByFamilyColumn(t *testing.T) {
	parts := []kicad.Component{
		{Name: "R_A", Fields: map[string]string{"Family": "resistor"}},
		{Name: "C_A", Fields: map[string]string{"Family": "capacitor"}},
		{Name: "R_B", Fields: map[string]string{"Family": "resistor"}},
	}

	grouped, err := groupByFamily(parts, "")
	require.NoError(t, err)
	assert.Len(t, grouped[lib.FamilyResistor], 2)
	assert.Len(t, grouped[lib.FamilyCapacitor], 1)
}

func TestGroupByFamilyUnknownColumn(t *testing.T) {
	parts := []kicad.Component{
		{Name: "W_A", Fields: map[string]string{"Family": "widget"}},
	}

	_, err := groupByFamily(parts, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget")
}
