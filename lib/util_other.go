//go:build !windows

package lib

import (
	"os"
	"path/filepath"
)

func GetProgramFiles() string {
	return "/usr/share"
}

func GetLocalAppData() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func kicadBinaryName() string {
	return "kicad-cli"
}
