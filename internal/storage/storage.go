// Package storage provides XDG-compliant path management for commitional.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "commitional"

	// LogFilename is the name of the rotated log file inside the data directory
	LogFilename = "commitional.log"
)

// Manager resolves storage paths and creates their directories on the given filesystem
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for commitional, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the commitional log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, LogFilename), nil
}

// GetConfigDir returns the XDG config directory that holds a user-wide config file.
// The directory is not created.
func (*Manager) GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
