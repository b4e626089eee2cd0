package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestdataPath returns the path of a file under the module's testdata directory.
func TestdataPath(t *testing.T, relativePath string) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	projectRoot := wd
	for {
		if _, statErr := os.Stat(filepath.Join(projectRoot, "go.mod")); statErr == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			t.Fatal("Could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	return filepath.Join(projectRoot, "testdata", relativePath)
}

// LoadTestdata reads a testdata file as a string.
func LoadTestdata(t *testing.T, relativePath string) string {
	t.Helper()

	content, err := os.ReadFile(TestdataPath(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", relativePath, err)
	}
	return string(content)
}
