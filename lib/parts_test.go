package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestReadPartsCSV(t *testing.T) {
	src := writeTempFile(t, "parts.csv",
		"Symbol Name,Package,Resistance,Tolerance\n"+
			"R_0402_TEST,0402,10 kOhm,1%\n"+
			"R_0603_TEST,0603,4.7 kOhm,\n")

	parts, err := ReadPartsCSV(src)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "R_0402_TEST", parts[0].Name)
	assert.Equal(t, "0402", parts[0].Get("Package", ""))
	assert.Equal(t, "10 kOhm", parts[0].Get("Resistance", ""))

	// Empty cells do not become fields.
	_, ok := parts[1].Fields["Tolerance"]
	assert.False(t, ok)
}

func TestReadPartsCSVMissingSymbolName(t *testing.T) {
	src := writeTempFile(t, "parts.csv",
		"Symbol Name,Package\n"+
			"R_0402_TEST,0402\n"+
			",0603\n")

	_, err := ReadPartsCSV(src)
	require.Error(t, err)

	merr, ok := err.(*MalformedRecordError)
	require.True(t, ok)
	assert.Equal(t, 3, merr.Line)
	assert.Equal(t, "Symbol Name", merr.Field)
}

func TestReadPartsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.xlsx")

	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Symbol Name", "Series"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"L_XAL5030_TEST", "XAL5030"})
	require.NoError(t, f.SaveAs(path))
	f.Close()

	parts, err := ReadParts(path)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "L_XAL5030_TEST", parts[0].Name)
	assert.Equal(t, "XAL5030", parts[0].Get("Series", ""))
}

func TestReadPartsNoHeader(t *testing.T) {
	src := writeTempFile(t, "parts.csv", "")
	_, err := ReadPartsCSV(src)
	require.Error(t, err)
}
