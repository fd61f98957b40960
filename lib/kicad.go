package lib

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	vlib "github.com/mcuadros/go-version"
)

type KiCadInterface struct {
	binPath string
}

/*
	Locate the newest installed KiCad version. Installations live in
	versioned directories under the program folder; the highest version
	with a kicad-cli binary wins.
*/
func NewKicadInterface() (*KiCadInterface, error) {
	rootDir := filepath.Join(GetProgramFiles(), "KiCad")

	versions, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, errors.New("no KiCad versions found in program folder")
	}

	latestVersion := "0.0.1"
	for _, e := range versions {
		version := e.Name()
		if vlib.CompareSimple(latestVersion, version) == -1 {
			latestVersion = version
		}
	}

	binPath := filepath.Join(rootDir, latestVersion, "bin")

	if _, err := os.Stat(filepath.Join(binPath, kicadBinaryName())); err != nil {
		return nil, errors.New("KiCad binPath does not exist or does not have kicad-cli")
	}

	return &KiCadInterface{binPath}, nil
}

func (ki *KiCadInterface) GetBinPath() string {
	return ki.binPath
}

func (ki *KiCadInterface) ExecuteCommand(args []string, cwd string) error {
	cmd := exec.Command(
		filepath.Join(ki.binPath, kicadBinaryName()), args...,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Dir = cwd
	return cmd.Run()
}

/*
	CheckArtifacts runs the generated files through kicad-cli's upgrade
	commands. The files are already in the current format, so a clean
	pass leaves them untouched and a parse failure reports the bad file.
*/
func (ki *KiCadInterface) CheckArtifacts(paths []string) error {
	pretties := map[string]bool{}
	for _, path := range paths {
		switch {
		case strings.HasSuffix(path, ".kicad_sym"):
			if err := ki.ExecuteCommand([]string{"sym", "upgrade", path}, ""); err != nil {
				return fmt.Errorf("kicad-cli rejected %s: %w", path, err)
			}
		case strings.HasSuffix(path, ".kicad_mod"):
			pretties[filepath.Dir(path)] = true
		}
	}

	for pretty := range pretties {
		if err := ki.ExecuteCommand([]string{"fp", "upgrade", pretty}, ""); err != nil {
			return fmt.Errorf("kicad-cli rejected %s: %w", pretty, err)
		}
	}

	return nil
}
