package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoviat/klib/lib/catalog"
	"github.com/xoviat/klib/lib/kicad"
)

func resistorPart(name, pkg string) kicad.Component {
	return kicad.Component{
		Name: name,
		Fields: map[string]string{
			"Symbol Name": name,
			"Package":     pkg,
			"Resistance":  "10 kOhm",
		},
	}
}

func TestGenerateFamilyResistor(t *testing.T) {
	dir := t.TempDir()
	parts := []kicad.Component{
		resistorPart("R_0402_A", "0402"),
		resistorPart("R_0402_B", "0402"),
		resistorPart("R_0603_A", "0603"),
	}

	written, err := GenerateFamily(FamilyResistor, parts, dir, kicad.SequentialIDs())
	require.NoError(t, err)

	// Two packages collapse to two footprints plus one symbol library.
	require.Len(t, written, 3)
	assert.Equal(t,
		filepath.Join(dir, "resistor_footprints.pretty", "R_0402_1005Metric.kicad_mod"),
		written[0])
	assert.Equal(t, filepath.Join(dir, "RESISTORS.kicad_sym"), written[2])

	library, err := os.ReadFile(written[2])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(library), "(kicad_symbol_lib\n"))

	// One symbol block per part, in input order.
	first := strings.Index(string(library), "(symbol \"R_0402_A\"")
	second := strings.Index(string(library), "(symbol \"R_0402_B\"")
	third := strings.Index(string(library), "(symbol \"R_0603_A\"")
	assert.Greater(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestGenerateFamilyUnknownPackageWritesNothing(t *testing.T) {
	dir := t.TempDir()
	parts := []kicad.Component{
		resistorPart("R_GOOD", "0402"),
		resistorPart("R_BAD", "0201"),
	}

	_, err := GenerateFamily(FamilyResistor, parts, dir, kicad.SequentialIDs())
	require.Error(t, err)

	perr, ok := err.(*catalog.UnknownPackageError)
	require.True(t, ok)
	assert.Equal(t, "0201", perr.Key)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateFamilyMissingKeyField(t *testing.T) {
	dir := t.TempDir()
	parts := []kicad.Component{
		{Name: "R_NOPKG", Fields: map[string]string{"Symbol Name": "R_NOPKG"}},
	}

	_, err := GenerateFamily(FamilyResistor, parts, dir, kicad.SequentialIDs())
	require.Error(t, err)

	merr, ok := err.(*MalformedRecordError)
	require.True(t, ok)
	assert.Equal(t, "Package", merr.Field)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateFamilyUnknownFamily(t *testing.T) {
	_, err := GenerateFamily(Family("widget"), nil, t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget")
}

func TestGenerateFamilyConnectorBadPinCount(t *testing.T) {
	dir := t.TempDir()
	parts := []kicad.Component{{
		Name: "TB004-508-XXBE",
		Fields: map[string]string{
			"Symbol Name": "TB004-508-XXBE",
			"Series":      "TB004-508",
			"Pin Count":   "eight",
		},
	}}

	_, err := GenerateFamily(FamilyConnector, parts, dir, kicad.SequentialIDs())
	require.Error(t, err)

	merr, ok := err.(*MalformedRecordError)
	require.True(t, ok)
	assert.Equal(t, "Pin Count", merr.Field)
	assert.Equal(t, 1, merr.Line)
	assert.Contains(t, merr.Reason, "eight")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateFamilyConnector(t *testing.T) {
	dir := t.TempDir()
	parts := []kicad.Component{{
		Name: "TB004-508-04BE",
		Fields: map[string]string{
			"Symbol Name": "TB004-508-04BE",
			"Series":      "TB004-508",
			"MPN":         "TB004-508-04BE",
			"Pin Count":   "4",
		},
	}}

	written, err := GenerateFamily(FamilyConnector, parts, dir, kicad.SequentialIDs())
	require.NoError(t, err)
	require.Len(t, written, 2)

	footprint, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(footprint), "(footprint \"TB004-508-04BE\"")
	assert.Contains(t, string(footprint), "CUI_DEVICES_TB004-508-04BE.step")
}
