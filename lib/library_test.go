package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPart() LibraryPart {
	return LibraryPart{
		MPN:         "RC0402FR-0710KL",
		Series:      "RC0402",
		Family:      "resistor",
		Package:     "0402",
		Value:       "10 kOhm",
		Description: "Thick film chip resistor",
		Datasheet:   "https://example.com/rc0402.pdf",
	}
}

func TestLibraryPutGet(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	defer library.Close()

	require.NoError(t, library.Put(testPart()))

	part, err := library.Get("RC0402FR-0710KL")
	require.NoError(t, err)
	assert.Equal(t, "0402", part.Package)
	assert.Equal(t, "resistor", part.Family)

	_, err = library.Get("missing")
	require.Error(t, err)
}

func TestLibraryIndexAndFind(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	defer library.Close()

	require.NoError(t, library.Put(testPart()))

	indexed, err := library.IndexPending()
	require.NoError(t, err)
	assert.Equal(t, 1, indexed)

	// Second pass has nothing left to index.
	indexed, err = library.IndexPending()
	require.NoError(t, err)
	assert.Equal(t, 0, indexed)

	parts := library.Find("film")
	require.Len(t, parts, 1)
	assert.Equal(t, "RC0402FR-0710KL", parts[0].MPN)
}

func TestLibraryExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	library, err := NewLibrary(dir)
	require.NoError(t, err)

	require.NoError(t, library.Put(testPart()))

	dst := filepath.Join(dir, "parts.xlsx")
	require.NoError(t, library.Export(dst))
	require.NoError(t, library.Close())

	second, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, second.Import(dst))

	part, err := second.Get("RC0402FR-0710KL")
	require.NoError(t, err)
	assert.Equal(t, "Thick film chip resistor", part.Description)
}

func TestLibraryAll(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	defer library.Close()

	first := testPart()
	second := testPart()
	second.MPN = "RC0603FR-074K7L"
	second.Package = "0603"

	require.NoError(t, library.Put(first))
	require.NoError(t, library.Put(second))

	parts, err := library.All()
	require.NoError(t, err)
	assert.Len(t, parts, 2)
}
