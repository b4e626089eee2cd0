// Package project locates the repository a commit message belongs to.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// RootEnv overrides root detection when set to an existing directory.
const RootEnv = "COMMITIONAL_ROOT"

// Markers identify a project root, checked in order at each level.
var Markers = []string{".commitional.yaml", ".commitional.yml", ".commitional.json", ".git"}

// FindRoot finds the project root starting from the working directory.
func FindRoot(fs afero.Fs) (string, error) {
	if root, found := checkRootEnv(fs); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindMarkerFrom(fs, cwd); found {
		return root, nil
	}

	// Fall back to current working directory
	return cwd, nil
}

// ID names a project for log lines.
func ID(root string) string {
	return filepath.Base(filepath.Clean(root))
}

func checkRootEnv(fs afero.Fs) (string, bool) {
	dir := os.Getenv(RootEnv)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	if ok, err := afero.DirExists(fs, abs); err != nil || !ok {
		return "", false
	}

	return abs, true
}

// FindMarkerFrom walks up from startDir to the first directory holding a marker.
func FindMarkerFrom(fs afero.Fs, startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}

		currentDir = parentDir
	}

	return "", false
}

func hasMarker(fs afero.Fs, dir string) bool {
	for _, marker := range Markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
