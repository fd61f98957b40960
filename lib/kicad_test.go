package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommandMissingBinary(t *testing.T) {
	ki := &KiCadInterface{binPath: t.TempDir()}

	err := ki.ExecuteCommand([]string{"version"}, "")
	require.Error(t, err)
}

func TestCheckArtifactsReportsBadSymbolFile(t *testing.T) {
	ki := &KiCadInterface{binPath: t.TempDir()}

	path := filepath.Join(t.TempDir(), "RESISTORS.kicad_sym")
	err := ki.CheckArtifacts([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestCheckArtifactsIgnoresOtherFiles(t *testing.T) {
	ki := &KiCadInterface{binPath: t.TempDir()}

	// Nothing to check means nothing to run.
	require.NoError(t, ki.CheckArtifacts([]string{"notes.txt"}))
}
